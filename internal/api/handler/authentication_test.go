package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/middleware"
	"golang.org/x/crypto/bcrypt"
)

func newAuthenticator(t *testing.T) authenticating.Authenticator {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("senha@123"), bcrypt.MinCost)
	require.NoError(t, err)

	return authenticating.NewService(&config.Config{
		SecretKey: "chave-de-teste",
		Auth: config.Auth{
			TokenTTLHours: 1,
		},
		LoginStore: map[string]config.LoginEntry{
			"maria":  {Name: "Maria Silva", RoleID: middleware.RoleAdmin, PasswordHash: string(hash)},
			"carlos": {Name: "Carlos Souza", RoleID: middleware.RoleViewer, PasswordHash: string(hash), Disabled: true},
		},
	})
}

func TestLoginHandler(t *testing.T) {
	service := newAuthenticator(t)

	body := `{"username": "maria", "password": "senha@123"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(body))
	w := httptest.NewRecorder()

	Login(service).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp LoginResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

	assert.NotEmpty(t, resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, "maria", resp.User.Username)
	assert.Equal(t, "Maria Silva", resp.User.Name)
	assert.Equal(t, middleware.RoleAdmin, resp.User.RoleID)
}

func TestLoginHandlerQuandoSenhaEstaIncorreta(t *testing.T) {
	service := newAuthenticator(t)

	body := `{"username": "maria", "password": "senha-errada"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(body))
	w := httptest.NewRecorder()

	Login(service).ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.NewDecoder(w.Body).Decode(&apiErr))
	assert.Equal(t, apiErrors.ErrInvalidCredentials, apiErr.Code)

	details, ok := apiErr.Details.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "maria", details["username"])
}

func TestLoginHandlerQuandoUsuarioEstaDesativado(t *testing.T) {
	service := newAuthenticator(t)

	body := `{"username": "carlos", "password": "senha@123"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(body))
	w := httptest.NewRecorder()

	Login(service).ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.NewDecoder(w.Body).Decode(&apiErr))
	assert.Equal(t, apiErrors.ErrUserDisabled, apiErr.Code)
}

func TestLoginHandlerQuandoUsuarioNaoExiste(t *testing.T) {
	service := newAuthenticator(t)

	body := `{"username": "desconhecido", "password": "senha@123"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(body))
	w := httptest.NewRecorder()

	Login(service).ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.NewDecoder(w.Body).Decode(&apiErr))
	assert.Equal(t, apiErrors.ErrUserNotFound, apiErr.Code)
}

func TestLoginHandlerQuandoCorpoEInvalido(t *testing.T) {
	service := newAuthenticator(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader("{invalido"))
	w := httptest.NewRecorder()

	Login(service).ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.NewDecoder(w.Body).Decode(&apiErr))
	assert.Equal(t, apiErrors.ErrInvalidRequest, apiErr.Code)
}

func TestLoginHandlerQuandoFaltamCampos(t *testing.T) {
	service := newAuthenticator(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(`{"username": "maria"}`))
	w := httptest.NewRecorder()

	Login(service).ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.NewDecoder(w.Body).Decode(&apiErr))
	assert.Equal(t, apiErrors.ErrMissingRequiredData, apiErr.Code)
}

func TestGetMe(t *testing.T) {
	service := newAuthenticator(t)

	session := &domain.Session{
		Username: "maria",
		Name:     "Maria Silva",
		RoleID:   middleware.RoleAdmin,
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, session))
	w := httptest.NewRecorder()

	GetMe(service).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var user domain.User
	require.NoError(t, json.NewDecoder(w.Body).Decode(&user))

	assert.Equal(t, "maria", user.Username)
	assert.Equal(t, "Maria Silva", user.Name)
	assert.Equal(t, middleware.RoleAdmin, user.RoleID)
	assert.Empty(t, user.PasswordHash)
}

func TestGetMeSemSessao(t *testing.T) {
	service := newAuthenticator(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	w := httptest.NewRecorder()

	GetMe(service).ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.NewDecoder(w.Body).Decode(&apiErr))
	assert.Equal(t, apiErrors.ErrInvalidToken, apiErr.Code)
}
