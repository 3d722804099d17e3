package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-agenda-equipamentos/internal/glpi"
	middlewares "github.com/prefeitura-rio/app-agenda-equipamentos/internal/middleware"
	"github.com/prefeitura-rio/app-agenda-equipamentos/internal/models"
	"github.com/prefeitura-rio/app-agenda-equipamentos/internal/services"
)

// GlpiHandler gerencia a extração de chamados GLPI
type GlpiHandler struct {
	reservaService *services.ReservaService
	cache          *glpi.Cache
}

// NewGlpiHandler cria o handler. cache é o mesmo usado pelo serviço e pode ser nil.
func NewGlpiHandler(reservaService *services.ReservaService, cache *glpi.Cache) *GlpiHandler {
	return &GlpiHandler{
		reservaService: reservaService,
		cache:          cache,
	}
}

// CampoResponse descreve um campo reconhecido no texto do chamado
type CampoResponse struct {
	Rotulo string `json:"rotulo"`
	Chave  string `json:"chave"`
	Tipo   string `json:"tipo"`
}

// Extrair godoc
// @Summary Extrai os dados de reserva de um chamado GLPI
// @Description Recebe o texto colado do chamado e devolve os campos do formulário de reserva pré-preenchidos. Campos não encontrados vêm vazios.
// @Tags glpi
// @Accept json
// @Produce json
// @Param X-User-Role header string true "Perfil do usuário (DIRETORA ou FUNCIONARIO)"
// @Param request body models.ExtracaoRequest true "Texto do chamado"
// @Success 200 {object} models.ExtracaoResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 413 {object} map[string]string
// @Router /api/v1/glpi/extrair [post]
func (h *GlpiHandler) Extrair(c *gin.Context) {
	var request models.ExtracaoRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos", "details": err.Error()})
		return
	}

	response, err := h.reservaService.ExtrairTexto(c.Request.Context(), &request)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrTextoMuitoLongo):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": models.ErrTextoMuitoLongo.Error(), "details": err.Error()})
		case errors.Is(err, models.ErrTextoVazio), errors.Is(err, models.ErrFormatoInvalido):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao extrair chamado", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListarCampos godoc
// @Summary Lista os campos reconhecidos no chamado
// @Description Retorna os rótulos do formulário GLPI que o extrator procura, com a chave e o tipo de cada um
// @Tags glpi
// @Produce json
// @Success 200 {array} CampoResponse
// @Router /api/v1/glpi/campos [get]
func (h *GlpiHandler) ListarCampos(c *gin.Context) {
	campos := glpi.Campos()

	response := make([]CampoResponse, 0, len(campos))
	for _, campo := range campos {
		response = append(response, CampoResponse{
			Rotulo: campo.Rotulo,
			Chave:  campo.Chave,
			Tipo:   campo.Tipo.String(),
		})
	}

	c.JSON(http.StatusOK, response)
}

// LimparCache godoc
// @Summary Limpa o cache de extrações
// @Description Descarta todas as extrações em cache (ex.: após mudança no formulário GLPI). Restrito à diretora.
// @Tags glpi
// @Produce json
// @Param X-User-Role header string true "Perfil do usuário (DIRETORA)"
// @Success 200 {object} map[string]int
// @Failure 403 {object} map[string]string
// @Router /api/v1/glpi/cache [delete]
func (h *GlpiHandler) LimparCache(c *gin.Context) {
	if h.cache == nil {
		c.JSON(http.StatusOK, gin.H{"removidas": 0})
		return
	}

	removidas, _ := h.cache.Stats()
	h.cache.Clear()

	log.Printf("[glpi] cache de extrações limpo por %s (%d entradas)", middlewares.GetUserIdentificacao(c), removidas)
	c.JSON(http.StatusOK, gin.H{"removidas": removidas})
}
