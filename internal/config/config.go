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
	App        App        `mapstructure:",squash"`
	API        API        `mapstructure:",squash"`
	Meta       Meta       `mapstructure:",squash"`
	OAuthCb    OAuthCb    `mapstructure:",squash"`
	StatusPoll StatusPoll `mapstructure:",squash"`
	Chat       Chat       `mapstructure:",squash"`
	Store      Store      `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// API descreve o backend do Lucid Analytics consumido pelo cliente
type API struct {
	BaseURL string `mapstructure:"api_base_url"`
}

type Meta struct {
	AppID       string `mapstructure:"meta_app_id"`
	DialogURL   string `mapstructure:"meta_dialog_url"`
	Scopes      string `mapstructure:"meta_scopes"`
	RedirectURI string `mapstructure:"meta_redirect_uri"`
}

// OAuthCb configura o servidor local que recebe o redirect do OAuth do Meta
type OAuthCb struct {
	Host string `mapstructure:"oauth_callback_host"`
	Port string `mapstructure:"oauth_callback_port"`
}

type StatusPoll struct {
	CronSchedule string `mapstructure:"status_poll_cron"`
	Enabled      bool   `mapstructure:"status_poll_enabled"`
}

type Chat struct {
	HistoryLimit int `mapstructure:"chat_history_limit"`
}

// Store configura onde o token de sessão e o tema ficam persistidos
type Store struct {
	StatePath string `mapstructure:"state_path"`
}

func SetDefaults() {
	// Fallbacks de produção, sobrescritos via variáveis de ambiente ou .env
	viper.SetDefault("API_BASE_URL", "https://api.lucidestrategasia.online/api")

	viper.SetDefault("META_APP_ID", "")
	viper.SetDefault("META_DIALOG_URL", "https://www.facebook.com/v18.0/dialog/oauth")
	viper.SetDefault("META_SCOPES", "ads_read,ads_management,business_management")
	viper.SetDefault("META_REDIRECT_URI", "")

	viper.SetDefault("OAUTH_CALLBACK_HOST", "localhost")
	viper.SetDefault("OAUTH_CALLBACK_PORT", "4327")

	viper.SetDefault("STATUS_POLL_CRON", "*/5 * * * *")
	viper.SetDefault("STATUS_POLL_ENABLED", false)

	viper.SetDefault("CHAT_HISTORY_LIMIT", 50)

	viper.SetDefault("STATE_PATH", defaultStatePath())

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	// O redirect precisa apontar para o servidor local de callback quando não configurado
	if config.Meta.RedirectURI == "" {
		config.Meta.RedirectURI = fmt.Sprintf(
			"http://%s:%s/auth/meta/callback",
			config.OAuthCb.Host,
			config.OAuthCb.Port,
		)
	}

	return config, nil
}

func defaultStatePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".lucid-analytics.json"
	}
	return filepath.Join(home, ".lucid-analytics.json")
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de:", location)
			return
		}
	}
}
