package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// LoginEntry é um usuário do login store. O hash de senha é bcrypt,
// gerado fora da aplicação (mesmo formato do secrets.toml original).
// Disabled bloqueia novos logins sem apagar a entrada e o hash.
type LoginEntry struct {
	Name         string `mapstructure:"name"`
	RoleID       int    `mapstructure:"role_id"`
	PasswordHash string `mapstructure:"password_hash"`
	Disabled     bool   `mapstructure:"disabled"`
}

// Secrets é o conteúdo do arquivo de secrets: credenciais da API externa
// e o login store com os usuários do dashboard
type Secrets struct {
	Unleashed struct {
		APIID  string `mapstructure:"api_id"`
		APIKey string `mapstructure:"api_key"`
	} `mapstructure:"unleashed"`
	LoginStore map[string]LoginEntry `mapstructure:"login_store"`
}

// LoadSecrets lê o arquivo TOML de secrets. Procura no caminho informado
// e nos diretórios acima, como o loadEnvFile faz com o .env.
func LoadSecrets(path string) (*Secrets, error) {
	if path == "" {
		return nil, fmt.Errorf("caminho do arquivo de secrets não configurado")
	}

	location, err := findSecretsFile(path)
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigFile(location)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("erro ao ler o arquivo de secrets: %w", err)
	}

	secrets := &Secrets{}
	if err := v.Unmarshal(secrets); err != nil {
		return nil, fmt.Errorf("erro ao interpretar o arquivo de secrets: %w", err)
	}

	return secrets, nil
}

func findSecretsFile(path string) (string, error) {
	if filepath.IsAbs(path) {
		if _, err := os.Stat(path); err != nil {
			return "", err
		}
		return path, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	locations := []string{
		filepath.Join(cwd, path),
		filepath.Join(filepath.Dir(cwd), path),
		filepath.Join(cwd, "..", path),
		filepath.Join(cwd, "..", "..", path),
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	return "", fmt.Errorf("arquivo de secrets %q não encontrado", path)
}
