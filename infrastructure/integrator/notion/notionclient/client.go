package notionclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/onboarding-api/internal/config"
)

type Client interface {
	CreatePage(request *CreatePageRequest) (*Page, error)
}

type NotionClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &NotionClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}

// CreatePageRequest é o corpo de POST /pages da API do Notion. As
// propriedades seguem o schema do database de destino (title, checkbox,
// status, select).
type CreatePageRequest struct {
	Parent     Parent              `json:"parent"`
	Properties map[string]Property `json:"properties"`
}

type Parent struct {
	DatabaseID string `json:"database_id"`
}

type Property struct {
	Title    []TitleItem   `json:"title,omitempty"`
	Checkbox *bool         `json:"checkbox,omitempty"`
	Status   *NamedValue   `json:"status,omitempty"`
	Select   *NamedValue   `json:"select,omitempty"`
}

type TitleItem struct {
	Text TextContent `json:"text"`
}

type TextContent struct {
	Content string `json:"content"`
}

type NamedValue struct {
	Name string `json:"name"`
}

// Page é a resposta da criação: só o identificador opaco interessa aqui
type Page struct {
	ID string `json:"id"`
}

func (c *NotionClient) CreatePage(request *CreatePageRequest) (*Page, error) {
	payload, err := json.Marshal(request)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar página do Notion")
	}

	endpoint := fmt.Sprintf("%s/pages", c.config.Notion.URL)

	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.config.Notion.Token)
	req.Header.Set("Notion-Version", c.config.Notion.Version)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler resposta do Notion")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Notion API error %d: %s", resp.StatusCode, string(body))
	}

	var page Page
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar resposta do Notion")
	}

	return &page, nil
}
