package notion

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/onboarding-api/infrastructure/integrator/notion/notionclient"
	"github.com/vfg2006/onboarding-api/internal/config"
)

// Integrator cria a página que representa o cliente no workspace. O ID da
// página criada vira a chave primária do registro durável do cliente.
type Integrator interface {
	CreateClientPage(businessName, currency string) (string, error)
}

type NotionIntegrator struct {
	cfg    *config.Config
	Client notionclient.Client
}

func New(cfg *config.Config, client notionclient.Client) Integrator {
	return &NotionIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *NotionIntegrator) CreateClientPage(businessName, currency string) (string, error) {
	clientFlag := true

	page, err := s.Client.CreatePage(&notionclient.CreatePageRequest{
		Parent: notionclient.Parent{
			DatabaseID: s.cfg.Notion.ProjectsDatabaseID,
		},
		Properties: map[string]notionclient.Property{
			"Project": {
				Title: []notionclient.TitleItem{
					{Text: notionclient.TextContent{Content: businessName}},
				},
			},
			"Client": {
				Checkbox: &clientFlag,
			},
			"Status": {
				Status: &notionclient.NamedValue{Name: "In Progress"},
			},
			"Currency": {
				Select: &notionclient.NamedValue{Name: currency},
			},
		},
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"business_name": businessName,
			"error":         err.Error(),
		}).Error("notion: falha ao criar página de cliente")
		return "", err
	}

	logrus.WithFields(logrus.Fields{
		"business_name": businessName,
		"page_id":       page.ID,
	}).Info("notion: página de cliente criada")

	return page.ID, nil
}
