package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Meta          Meta          `mapstructure:",squash"`
	Notion        Notion        `mapstructure:",squash"`
	Dashboards    Dashboards    `mapstructure:",squash"`
	Onboarding    Onboarding    `mapstructure:",squash"`
	BackfillSweep BackfillSweep `mapstructure:",squash"`
	SecretKey     string        `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Meta struct {
	BaseURL     string `mapstructure:"meta_base_url"`
	URL         string `mapstructure:"meta_url"`
	Version     string `mapstructure:"meta_version"`
	AccessToken string `mapstructure:"meta_access_token"`
	// Business Manager da agência, que recebe o acesso de parceiro
	BusinessManagerID string `mapstructure:"meta_business_manager_id"`
}

type Notion struct {
	URL     string `mapstructure:"notion_url"`
	Version string `mapstructure:"notion_version"`
	Token   string `mapstructure:"notion_token"`
	// Database de projetos onde as páginas de cliente são criadas
	ProjectsDatabaseID string `mapstructure:"notion_projects_database_id"`
}

type Dashboards struct {
	URL            string `mapstructure:"client_dashboards_url"`
	Secret         string `mapstructure:"client_dashboards_secret"`
	BackfillMonths int    `mapstructure:"client_dashboards_backfill_months"`
}

type Onboarding struct {
	// Segredo compartilhado com o frontend de onboarding (bearer simples)
	Secret string `mapstructure:"onboarding_secret"`
}

type BackfillSweep struct {
	CronSchedule string `mapstructure:"backfill_sweep_cron"`
	Enabled      bool   `mapstructure:"backfill_sweep_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/onboarding")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v24.0")
	viper.SetDefault("META_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("META_BUSINESS_MANAGER_ID", "")

	viper.SetDefault("NOTION_URL", "https://api.notion.com/v1")
	viper.SetDefault("NOTION_VERSION", "2022-06-28")
	viper.SetDefault("NOTION_TOKEN", "")
	viper.SetDefault("NOTION_PROJECTS_DATABASE_ID", "")

	viper.SetDefault("CLIENT_DASHBOARDS_URL", "")
	viper.SetDefault("CLIENT_DASHBOARDS_SECRET", "")
	viper.SetDefault("CLIENT_DASHBOARDS_BACKFILL_MONTHS", 3)

	viper.SetDefault("ONBOARDING_SECRET", "")
	viper.SetDefault("SECRET_KEY", "your_secret_key")

	// Varredura de reconciliação de backfill a cada 30 minutos
	viper.SetDefault("BACKFILL_SWEEP_CRON", "*/30 * * * *")
	viper.SetDefault("BACKFILL_SWEEP_ENABLED", true)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
