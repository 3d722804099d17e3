package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	UserIDKey    = "user_id"
	UserRoleKey  = "user_role"
	UserNameKey  = "user_name"
	UserEmailKey = "user_email"
)

// Perfis do painel de agendamento
const (
	RoleDiretora    = "DIRETORA"
	RoleFuncionario = "FUNCIONARIO"
	RoleProfessor   = "PROFESSOR"
)

// PerfisGestao podem gerenciar reservas
var PerfisGestao = []string{RoleDiretora, RoleFuncionario}

// ExtractUserContext extrai informações do usuário dos headers injetados pelo gateway
// após validar a sessão:
// - X-User-ID: ID do usuário
// - X-User-Role: perfil (DIRETORA, FUNCIONARIO ou PROFESSOR)
// - X-User-Name: nome completo
// - X-User-Email: email
func ExtractUserContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID := c.GetHeader("X-User-ID"); userID != "" {
			c.Set(UserIDKey, userID)
		}

		if role := c.GetHeader("X-User-Role"); role != "" {
			c.Set(UserRoleKey, strings.ToUpper(strings.TrimSpace(role)))
		}

		if userName := c.GetHeader("X-User-Name"); userName != "" {
			c.Set(UserNameKey, userName)
		}

		if userEmail := c.GetHeader("X-User-Email"); userEmail != "" {
			c.Set(UserEmailKey, userEmail)
		}

		c.Next()
	}
}

func getString(c *gin.Context, key string) string {
	if v, exists := c.Get(key); exists {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// GetUserID retorna o ID do usuário
func GetUserID(c *gin.Context) string {
	return getString(c, UserIDKey)
}

// GetUserRole retorna o perfil do usuário
func GetUserRole(c *gin.Context) string {
	return getString(c, UserRoleKey)
}

// GetUserName retorna o nome completo do usuário
func GetUserName(c *gin.Context) string {
	return getString(c, UserNameKey)
}

// GetUserEmail retorna o email do usuário
func GetUserEmail(c *gin.Context) string {
	return getString(c, UserEmailKey)
}

// GetUserIdentificacao retorna como o usuário aparece em registros de autoria:
// nome, email ou ID, o primeiro disponível
func GetUserIdentificacao(c *gin.Context) string {
	if nome := GetUserName(c); nome != "" {
		return nome
	}
	if email := GetUserEmail(c); email != "" {
		return email
	}
	return GetUserID(c)
}

// HasRole verifica se o usuário tem uma das roles especificadas
func HasRole(c *gin.Context, roles ...string) bool {
	userRole := GetUserRole(c)
	for _, role := range roles {
		if userRole == role {
			return true
		}
	}
	return false
}

// RequireRole middleware que verifica se o usuário tem uma das roles necessárias
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetUserRole(c) == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuário não autenticado"})
			c.Abort()
			return
		}

		if !HasRole(c, roles...) {
			c.JSON(http.StatusForbidden, gin.H{
				"error":          "Acesso negado: permissão insuficiente",
				"roles_required": roles,
				"user_role":      GetUserRole(c),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
