package authenticating

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenTTLHours = 24

type Authenticator interface {
	Login(username, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Session, error)
	GetProfile(username string) (*domain.User, error)
}

// Service autentica contra o login store carregado da configuração.
// Não existe cadastro de usuários em banco de dados.
type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		cfg: cfg,
	}
}

func (s *Service) Login(username, password string) (string, error) {
	// Validação de entrada
	if username == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Usuário e senha são obrigatórios")
	}

	username = handleUsername(username)

	entry, ok := s.cfg.LoginStore[username]
	if !ok {
		return "", NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, username, "Usuário não encontrado")
	}

	if entry.Disabled {
		return "", NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, username, "Usuário desativado")
	}

	// Verificar senha
	if err := bcrypt.CompareHashAndPassword([]byte(entry.PasswordHash), []byte(password)); err != nil {
		return "", NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, username, "Senha incorreta")
	}

	user := storeEntryToUser(username, entry)

	// Gerar token JWT
	token, err := s.generateJWT(user)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return token, nil
}

func (s *Service) GetProfile(username string) (*domain.User, error) {
	username = handleUsername(username)

	entry, ok := s.cfg.LoginStore[username]
	if !ok {
		return nil, NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, username, "Usuário não encontrado")
	}

	user := storeEntryToUser(username, entry)
	return user, nil
}

func (s *Service) ValidateToken(tokenString string) (*domain.Session, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Session{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "Token expirado")
		}
		return nil, err
	}

	if session, ok := token.Claims.(*domain.Session); ok && token.Valid {
		return session, nil
	}

	return nil, errors.New("invalid token")
}

func (s *Service) generateJWT(user *domain.User) (string, error) {
	ttlHours := s.cfg.Auth.TokenTTLHours
	if ttlHours == 0 {
		ttlHours = defaultTokenTTLHours
	}

	session := domain.Session{
		Username: user.Username,
		Name:     user.Name,
		RoleID:   user.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(ttlHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, session)
	return token.SignedString([]byte(s.cfg.SecretKey))
}

func storeEntryToUser(username string, entry config.LoginEntry) *domain.User {
	roleID := entry.RoleID
	if roleID == 0 {
		roleID = 3
	}

	name := entry.Name
	if name == "" {
		name = username
	}

	return &domain.User{
		Username: username,
		Name:     name,
		RoleID:   roleID,
	}
}

func handleUsername(s string) string {
	username := strings.ToLower(s)
	username = strings.TrimSpace(username)
	return username
}
