package services

import (
	"fmt"
	"strings"

	"github.com/prefeitura-rio/app-agenda-equipamentos/internal/glpi"
	"github.com/prefeitura-rio/app-agenda-equipamentos/internal/models"
	"github.com/prefeitura-rio/app-agenda-equipamentos/internal/utils"
)

const naoInformado = "Não informado"

// MontarResumo gera um resumo em markdown da reserva extraída, no mesmo
// layout do modal de detalhes do calendário
func MontarResumo(r models.ReservaExtraida) string {
	var b strings.Builder

	item := func(rotulo, valor string) {
		fmt.Fprintf(&b, "- **%s:** %s\n", rotulo, valor)
	}

	item("Evento", ouPadrao(r.EventoNome, naoInformado))
	item("Equipamento", ouPadrao(r.Equipamento, naoInformado))
	item("Horário", ouPadrao(glpi.FormatarDataHoraBR(r.DataInicio), "?")+" - "+ouPadrao(glpi.FormatarDataHoraBR(r.DataFim), "?"))
	item("Solicitante", ouPadrao(r.Responsavel, naoInformado)+" ("+ouPadrao(r.Unidade, "Unidade não informada")+")")
	item("Contato", escapar(r.Email)+" / "+escapar(r.Telefone))
	item("SIAPE", ouPadrao(r.Siape, naoInformado))
	item("Local", ouPadrao(r.EventoLocal, naoInformado))
	item("Retirada", ouPadrao(glpi.FormatarDataHoraBR(r.RetiradaDataHora), naoInformado))
	item("Devolução", ouPadrao(glpi.FormatarDataHoraBR(r.DevolucaoDataHora), naoInformado))

	montagem := ouPadrao(r.DesejaMontagem, "Não")
	if r.MontagemDataHora != "" {
		montagem += " em " + escapar(glpi.FormatarDataHoraBR(r.MontagemDataHora))
	}
	item("Montagem", montagem)

	fmt.Fprintf(&b, "- **Público:** %s | **Verba:** %s\n",
		ouPadrao(r.PublicoTipo, naoInformado), ouPadrao(r.VerbaPublica, naoInformado))

	if r.Observacoes != "" {
		item("Obs", escapar(strings.ReplaceAll(r.Observacoes, "\n", "; ")))
	}

	return b.String()
}

// ouPadrao escapa o valor ou devolve o texto padrão quando vazio
func ouPadrao(valor, padrao string) string {
	if strings.TrimSpace(valor) == "" {
		return padrao
	}
	return escapar(valor)
}

func escapar(valor string) string {
	return utils.EscaparMarkdown(valor)
}
