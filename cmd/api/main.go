package main

import (
	"log"

	"github.com/gin-gonic/gin"
	_ "github.com/prefeitura-rio/app-agenda-equipamentos/docs"
	"github.com/prefeitura-rio/app-agenda-equipamentos/internal/api/routes"
	"github.com/prefeitura-rio/app-agenda-equipamentos/internal/config"
	"github.com/prefeitura-rio/app-agenda-equipamentos/internal/observability"
)

// @title           Agenda de Equipamentos API
// @version         1.0
// @description     API do painel de agendamento de equipamentos: extração de chamados GLPI e preparação de reservas
// @termsOfService  http://swagger.io/terms/

// @contact.name   Prefeitura do Rio de Janeiro
// @contact.url    https://prefeitura.rio
// @contact.email  contato@prefeitura.rio

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      services.staging.app.dados.rio/app-agenda-equipamentos

func main() {

	cfg := config.LoadConfig()

	gin.SetMode(cfg.GinMode)

	observability.InitTracer(cfg.Tracing)
	defer observability.ShutdownTracer()

	r := routes.SetupRouter(cfg)

	log.Printf("Servidor iniciado na porta %s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Printf("Erro ao iniciar servidor: %v", err)
	}
}
