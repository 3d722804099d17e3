// Package glpi extrai os dados de uma reserva de equipamentos a partir do texto
// de um chamado GLPI colado pelo usuário.
//
// Cada campo é localizado pelo seu rótulo (sem diferenciar caixa nem acentos) e
// o valor vai do ":" até a primeira fronteira: pergunta numerada ("3)"), linha
// em branco, linha iniciada por outro rótulo ou fim do texto. A extração nunca
// falha: campos ausentes ficam com string vazia.
package glpi

import (
	"strings"

	"github.com/prefeitura-rio/app-agenda-equipamentos/internal/models"
	"golang.org/x/text/unicode/norm"
)

// Resultado reúne a reserva extraída e o diagnóstico de quais campos foram achados
type Resultado struct {
	Reserva     models.ReservaExtraida
	Campos      map[string]string // valor de cada Campo, pela Chave
	Encontrados []string          // chaves de ReservaExtraida com valor no texto
	Ausentes    []string          // chaves de ReservaExtraida sem valor no texto
}

// Extrator aplica a tabela de campos a textos de chamados. Não guarda estado entre chamadas.
type Extrator struct {
	campos  []Campo
	limpeza func(string) string
}

// Opcao configura um Extrator
type Opcao func(*Extrator)

// ComLimpeza aplica fn a cada valor de texto depois da captura (datas não são afetadas)
func ComLimpeza(fn func(string) string) Opcao {
	return func(e *Extrator) {
		e.limpeza = fn
	}
}

// NewExtrator cria um extrator com a tabela de campos do formulário da Secom
func NewExtrator(opcoes ...Opcao) *Extrator {
	e := &Extrator{campos: camposPadrao}
	for _, opcao := range opcoes {
		opcao(e)
	}
	return e
}

var extratorPadrao = NewExtrator()

// ExtrairCampos extrai a reserva do texto usando o extrator padrão
func ExtrairCampos(texto string) models.ReservaExtraida {
	return extratorPadrao.Extrair(texto).Reserva
}

// Extrair processa o texto do chamado
func (e *Extrator) Extrair(texto string) *Resultado {
	// os padrões de rótulo só conhecem letras acentuadas pré-compostas (NFC)
	texto = norm.NFC.String(normalizarQuebras(texto))

	valores := make(map[string]string, len(e.campos))
	for _, c := range e.campos {
		valor := c.extrair(texto)
		if e.limpeza != nil && c.Tipo == CapturaTexto && valor != "" {
			valor = strings.TrimSpace(e.limpeza(valor))
		}
		valores[c.Chave] = valor
	}

	reserva := montarReserva(valores)

	resultado := &Resultado{
		Reserva:     reserva,
		Campos:      valores,
		Encontrados: make([]string, 0, len(models.ChavesReserva)),
		Ausentes:    make([]string, 0, len(models.ChavesReserva)),
	}

	for _, chave := range models.ChavesReserva {
		if encontrado(chave, valores) {
			resultado.Encontrados = append(resultado.Encontrados, chave)
		} else {
			resultado.Ausentes = append(resultado.Ausentes, chave)
		}
	}

	return resultado
}

func montarReserva(v map[string]string) models.ReservaExtraida {
	return models.ReservaExtraida{
		EventoNome:        v[models.ChaveEventoNome],
		Equipamento:       ComporEquipamento(v[ChaveItensNecessarios], v[ChaveDescricaoDetalhada]),
		Responsavel:       v[models.ChaveResponsavel],
		Unidade:           v[models.ChaveUnidade],
		Siape:             v[models.ChaveSiape],
		Email:             v[models.ChaveEmail],
		Telefone:          v[models.ChaveTelefone],
		HorarioContato:    v[models.ChaveHorarioContato],
		EventoLocal:       v[models.ChaveEventoLocal],
		DataInicio:        v[models.ChaveDataInicio],
		DataFim:           v[models.ChaveDataFim],
		PublicoTipo:       v[models.ChavePublicoTipo],
		VerbaPublica:      v[models.ChaveVerbaPublica],
		RetiradaDataHora:  v[models.ChaveRetiradaDataHora],
		DevolucaoDataHora: v[models.ChaveDevolucaoDataHora],
		MontagemDataHora:  v[models.ChaveMontagemDataHora],
		DesejaMontagem:    v[models.ChaveDesejaMontagem],
		Observacoes:       ComporObservacoes(v[ChaveInfoEvento], v[ChaveObsFinais]),
	}
}

// ComporEquipamento junta os itens marcados e a descrição detalhada.
// Com ambos vazios o resultado é ". Detalhes:".
func ComporEquipamento(itens, descricao string) string {
	return strings.TrimSpace(itens + ". Detalhes: " + descricao)
}

// ComporObservacoes junta as informações do evento e as observações finais.
// Com ambos vazios o resultado é "Info Evento: \nObs Finais:".
func ComporObservacoes(info, obs string) string {
	return strings.TrimSpace("Info Evento: " + info + "\nObs Finais: " + obs)
}

func encontrado(chave string, v map[string]string) bool {
	switch chave {
	case models.ChaveEquipamento:
		return v[ChaveItensNecessarios] != "" || v[ChaveDescricaoDetalhada] != ""
	case models.ChaveObservacoes:
		return v[ChaveInfoEvento] != "" || v[ChaveObsFinais] != ""
	default:
		return v[chave] != ""
	}
}
