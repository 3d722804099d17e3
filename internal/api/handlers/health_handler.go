package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-agenda-equipamentos/internal/glpi"
	"github.com/prefeitura-rio/app-agenda-equipamentos/internal/models"
)

// chamadoSonda é extraído no readiness para confirmar que a tabela de campos compilou
const chamadoSonda = "3) SIAPE: 1234567\n4) E-mail: sonda@exemplo.br\n\n9) Data e horário de início: 10/03/2025 14:30"

// HealthHandler gerencia os endpoints de health check
type HealthHandler struct {
	extrator *glpi.Extrator
	cache    *glpi.Cache
}

// NewHealthHandler cria um novo handler de health check. cache pode ser nil.
func NewHealthHandler(extrator *glpi.Extrator, cache *glpi.Cache) *HealthHandler {
	return &HealthHandler{
		extrator: extrator,
		cache:    cache,
	}
}

// HealthResponse representa a resposta do health check
type HealthResponse struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks,omitempty"`
	Cache     *CacheStats       `json:"cache,omitempty"`
	Error     string            `json:"error,omitempty"`
	Timestamp int64             `json:"timestamp"`
}

// CacheStats resume o estado do cache de extrações
type CacheStats struct {
	Entradas  int `json:"entradas"`
	Expiradas int `json:"expiradas"`
}

// Liveness godoc
// @Summary Liveness probe endpoint
// @Description Verifica se a aplicação está viva
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /liveness [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "alive",
		Timestamp: time.Now().Unix(),
	})
}

// Readiness godoc
// @Summary Readiness probe endpoint
// @Description Verifica se a aplicação está pronta para receber tráfego (extrai um chamado de teste)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readiness [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	response := HealthResponse{
		Status:    "ready",
		Checks:    make(map[string]string),
		Timestamp: time.Now().Unix(),
	}

	if h.checkExtrator() {
		response.Checks["extrator"] = "ok"
	} else {
		response.Checks["extrator"] = "failed"
		response.Status = "not_ready"
		response.Error = "Extrator não reconheceu o chamado de teste"
	}

	statusCode := http.StatusOK
	if response.Status == "not_ready" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

// Health godoc
// @Summary Comprehensive health check endpoint
// @Description Verifica a saúde completa da aplicação (extrator e cache)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Checks:    make(map[string]string),
		Timestamp: time.Now().Unix(),
	}

	if h.checkExtrator() {
		response.Checks["extrator"] = "ok"
	} else {
		response.Checks["extrator"] = "failed"
		response.Status = "unhealthy"
		response.Error = "Extrator não reconheceu o chamado de teste"
	}

	if h.cache != nil {
		size, expired := h.cache.Stats()
		response.Checks["cache"] = "ok"
		response.Cache = &CacheStats{Entradas: size, Expiradas: expired}
	} else {
		response.Checks["cache"] = "disabled"
	}

	statusCode := http.StatusOK
	if response.Status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

func (h *HealthHandler) checkExtrator() bool {
	campos := h.extrator.Extrair(chamadoSonda).Campos
	return campos[models.ChaveSiape] == "1234567" &&
		campos[models.ChaveEmail] == "sonda@exemplo.br" &&
		campos[models.ChaveDataInicio] == "2025-03-10T14:30"
}
