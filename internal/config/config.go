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
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Unleashed    Unleashed    `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	SnapshotSync SnapshotSync `mapstructure:",squash"`
	SecretKey    string       `mapstructure:"secret_key"`

	// LoginStore é carregado do arquivo de secrets, nunca de variáveis
	// de ambiente. Chave = username.
	LoginStore map[string]LoginEntry `mapstructure:"-"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url"`
	User         string `mapstructure:"database_user"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
}

type Unleashed struct {
	BaseURL           string `mapstructure:"unleashed_base_url"`
	APIID             string `mapstructure:"unleashed_api_id"`
	APIKey            string `mapstructure:"unleashed_api_key"`
	PageSize          int    `mapstructure:"unleashed_page_size"`
	RequestsPerSecond int    `mapstructure:"unleashed_requests_per_second"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	TokenTTLHours int    `mapstructure:"auth_token_ttl_hours"`
	SecretsFile   string `mapstructure:"auth_secrets_file"`
}

type SnapshotSync struct {
	CronSchedule         string `mapstructure:"snapshot_sync_cron"`
	Enabled              bool   `mapstructure:"snapshot_sync_enabled"`
	TTLHours             int    `mapstructure:"snapshot_ttl_hours"`
	RetentionDays        int    `mapstructure:"snapshot_retention_days"`
	MaxConcurrentFetches int    `mapstructure:"snapshot_sync_max_concurrent_fetches"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales_dashboard")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)

	viper.SetDefault("UNLEASHED_BASE_URL", "https://api.unleashedsoftware.com")
	viper.SetDefault("UNLEASHED_API_ID", "")  // Preferir o arquivo de secrets
	viper.SetDefault("UNLEASHED_API_KEY", "") // Preferir o arquivo de secrets
	viper.SetDefault("UNLEASHED_PAGE_SIZE", 200)
	viper.SetDefault("UNLEASHED_REQUESTS_PER_SECOND", 4)

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL_HOURS", 24)
	viper.SetDefault("AUTH_SECRETS_FILE", "secrets.toml")

	// Defaults para sincronização de snapshots
	viper.SetDefault("SNAPSHOT_SYNC_CRON", "0 * * * *") // A cada hora cheia
	viper.SetDefault("SNAPSHOT_SYNC_ENABLED", false)
	viper.SetDefault("SNAPSHOT_TTL_HOURS", 2) // Mesma validade do cache do dashboard
	viper.SetDefault("SNAPSHOT_RETENTION_DAYS", 90)
	viper.SetDefault("SNAPSHOT_SYNC_MAX_CONCURRENT_FETCHES", 3)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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

	// Secrets (credenciais da API externa e login store) vêm de um
	// arquivo separado, no formato do secrets.toml original
	secrets, err := LoadSecrets(config.Auth.SecretsFile)
	if err != nil {
		logrus.Warn("Arquivo de secrets não carregado: ", err)
	}

	if secrets != nil {
		if config.Unleashed.APIID == "" {
			config.Unleashed.APIID = secrets.Unleashed.APIID
		}
		if config.Unleashed.APIKey == "" {
			config.Unleashed.APIKey = secrets.Unleashed.APIKey
		}
		config.LoginStore = secrets.LoginStore
	}

	if len(config.LoginStore) == 0 {
		logrus.Warn("Login store vazio: nenhum usuário poderá autenticar")
	}

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
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
