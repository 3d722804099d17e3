package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	middlewares "github.com/prefeitura-rio/app-agenda-equipamentos/internal/middleware"
	"github.com/prefeitura-rio/app-agenda-equipamentos/internal/models"
	"github.com/prefeitura-rio/app-agenda-equipamentos/internal/services"
)

type ReservaHandler struct {
	reservaService *services.ReservaService
}

func NewReservaHandler(reservaService *services.ReservaService) *ReservaHandler {
	return &ReservaHandler{
		reservaService: reservaService,
	}
}

// Preparar godoc
// @Summary Prepara uma reserva a partir do formulário revisado
// @Description Valida o formulário e devolve o payload completo da reserva (ID, slug, campos legados) pronto para ser gravado. A autoria vem de X-User-Name, X-User-Email ou X-User-ID.
// @Tags reservas
// @Accept json
// @Produce json
// @Param X-User-Role header string true "Perfil do usuário (DIRETORA ou FUNCIONARIO)"
// @Param reserva body models.ReservaRequest true "Dados da reserva"
// @Success 200 {object} models.Reserva
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/reservas/preparar [post]
func (h *ReservaHandler) Preparar(c *gin.Context) {
	var request models.ReservaRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos", "details": err.Error()})
		return
	}

	reserva, err := h.reservaService.PrepararReserva(c.Request.Context(), &request, middlewares.GetUserIdentificacao(c))
	if err != nil {
		switch {
		case errors.Is(err, models.ErrValidacao):
			c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrValidacao.Error(), "details": err.Error()})
		case errors.Is(err, models.ErrIntervaloInvalido):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao preparar reserva", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, reserva)
}
