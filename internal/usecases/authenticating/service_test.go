package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("senha@123"), bcrypt.MinCost)
	require.NoError(t, err)

	return &config.Config{
		SecretKey: "chave-de-teste",
		Auth: config.Auth{
			TokenTTLHours: 1,
		},
		LoginStore: map[string]config.LoginEntry{
			"maria":  {Name: "Maria Silva", RoleID: 1, PasswordHash: string(hash)},
			"joao":   {PasswordHash: string(hash)},
			"carlos": {Name: "Carlos Souza", RoleID: 2, PasswordHash: string(hash), Disabled: true},
		},
	}
}

func TestLogin(t *testing.T) {
	service := NewService(newTestConfig(t))

	tests := []struct {
		name     string
		username string
		password string
		wantCode string
	}{
		{
			name:     "Login com credenciais válidas retorna token",
			username: "maria",
			password: "senha@123",
		},
		{
			name:     "Username é normalizado antes da consulta ao login store",
			username: "  MARIA ",
			password: "senha@123",
		},
		{
			name:     "Senha incorreta retorna erro de credenciais",
			username: "maria",
			password: "senha-errada",
			wantCode: apiErrors.ErrInvalidCredentials,
		},
		{
			name:     "Usuário inexistente retorna erro de usuário não encontrado",
			username: "desconhecido",
			password: "senha@123",
			wantCode: apiErrors.ErrUserNotFound,
		},
		{
			name:     "Usuário desativado é bloqueado mesmo com a senha correta",
			username: "carlos",
			password: "senha@123",
			wantCode: apiErrors.ErrUserDisabled,
		},
		{
			name:     "Usuário vazio retorna erro de dados obrigatórios",
			username: "",
			password: "senha@123",
			wantCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:     "Senha vazia retorna erro de dados obrigatórios",
			username: "maria",
			password: "",
			wantCode: apiErrors.ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := service.Login(tt.username, tt.password)

			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Empty(t, token)

				var authErr *AuthError
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, tt.wantCode, authErr.Code)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, token)
		})
	}
}

func TestClassificacaoDosErros(t *testing.T) {
	service := NewService(newTestConfig(t))

	t.Run("Senha incorreta é classificada como erro de credenciais", func(t *testing.T) {
		_, err := service.Login("maria", "senha-errada")

		require.Error(t, err)
		assert.True(t, IsCredentialsError(err))
		assert.False(t, IsAuthorizationError(err))
	})

	t.Run("Token expirado é classificado como erro de autorização", func(t *testing.T) {
		expiredCfg := newTestConfig(t)
		expiredCfg.Auth.TokenTTLHours = -1
		token, err := NewService(expiredCfg).Login("maria", "senha@123")
		require.NoError(t, err)

		_, err = service.ValidateToken(token)

		require.Error(t, err)
		assert.True(t, IsAuthorizationError(err))
		assert.False(t, IsCredentialsError(err))
	})
}

func TestValidateToken(t *testing.T) {
	cfg := newTestConfig(t)
	service := NewService(cfg)

	t.Run("Token emitido pelo login é aceito e carrega a sessão", func(t *testing.T) {
		token, err := service.Login("maria", "senha@123")
		require.NoError(t, err)

		session, err := service.ValidateToken(token)

		require.NoError(t, err)
		assert.Equal(t, "maria", session.Username)
		assert.Equal(t, "Maria Silva", session.Name)
		assert.Equal(t, 1, session.RoleID)
	})

	t.Run("Token assinado com outra chave é rejeitado", func(t *testing.T) {
		otherCfg := newTestConfig(t)
		otherCfg.SecretKey = "outra-chave"
		token, err := NewService(otherCfg).Login("maria", "senha@123")
		require.NoError(t, err)

		session, err := service.ValidateToken(token)

		assert.Error(t, err)
		assert.Nil(t, session)
	})

	t.Run("Token expirado é rejeitado com código próprio", func(t *testing.T) {
		expiredCfg := newTestConfig(t)
		expiredCfg.Auth.TokenTTLHours = -1
		token, err := NewService(expiredCfg).Login("maria", "senha@123")
		require.NoError(t, err)

		session, err := service.ValidateToken(token)

		require.Error(t, err)
		assert.Nil(t, session)

		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, apiErrors.ErrExpiredToken, authErr.Code)
	})

	t.Run("String que não é um JWT é rejeitada", func(t *testing.T) {
		session, err := service.ValidateToken("nao-e-um-token")

		assert.Error(t, err)
		assert.Nil(t, session)
	})
}

func TestGetProfile(t *testing.T) {
	service := NewService(newTestConfig(t))

	t.Run("Perfil de usuário cadastrado não expõe o hash de senha", func(t *testing.T) {
		user, err := service.GetProfile("maria")

		require.NoError(t, err)
		assert.Equal(t, "maria", user.Username)
		assert.Equal(t, "Maria Silva", user.Name)
		assert.Equal(t, 1, user.RoleID)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("Entrada sem nome e sem role usa os valores padrão", func(t *testing.T) {
		user, err := service.GetProfile("joao")

		require.NoError(t, err)
		assert.Equal(t, "joao", user.Name)
		assert.Equal(t, 3, user.RoleID)
	})

	t.Run("Usuário fora do login store retorna erro", func(t *testing.T) {
		user, err := service.GetProfile("desconhecido")

		require.Error(t, err)
		assert.Nil(t, user)

		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, apiErrors.ErrUserNotFound, authErr.Code)
	})
}
