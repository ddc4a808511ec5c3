package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// User representa um usuário do dashboard carregado do login store da
// configuração. Não existe cadastro em banco de dados.
type User struct {
	Username     string `json:"username"`
	Name         string `json:"name"`
	RoleID       int    `json:"role_id"`
	PasswordHash string `json:"-"`
}

// Session é o objeto explícito de sessão propagado pelo contexto das
// requisições após a validação do token
type Session struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	RoleID   int    `json:"role_id"`
	jwt.RegisteredClaims
}
