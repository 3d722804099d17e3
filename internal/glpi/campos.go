package glpi

import (
	"regexp"
	"strings"

	"github.com/prefeitura-rio/app-agenda-equipamentos/internal/models"
	"github.com/prefeitura-rio/app-agenda-equipamentos/internal/utils"
)

// TipoCaptura define como o trecho capturado é tratado
type TipoCaptura int

const (
	// CapturaTexto junta as linhas do trecho em uma só e remove espaços das pontas
	CapturaTexto TipoCaptura = iota
	// CapturaDataHora converte "AAAA-MM-DD HH:mm" em "AAAA-MM-DDTHH:mm"
	CapturaDataHora
)

func (t TipoCaptura) String() string {
	if t == CapturaDataHora {
		return "data-hora"
	}
	return "texto"
}

// Fronteira define o conjunto de marcadores que encerram a captura de um campo
type Fronteira int

const (
	// FronteiraPadrao: pergunta numerada, linha em branco, linha de rótulo ou fim do texto
	FronteiraPadrao Fronteira = iota
	// FronteiraDescricao: parágrafo seguinte, título "Logística de Empréstimo" ou fim do texto
	FronteiraDescricao
)

// Chaves dos campos que compõem equipamento e observacoes
const (
	ChaveItensNecessarios   = "itensNecessarios"
	ChaveDescricaoDetalhada = "descricaoDetalhada"
	ChaveInfoEvento         = "infoEvento"
	ChaveObsFinais          = "obsFinais"
)

// Campo descreve um campo do formulário GLPI a ser extraído
type Campo struct {
	Rotulo    string
	Chave     string
	Tipo      TipoCaptura
	Fronteira Fronteira

	padrao *regexp.Regexp
}

func novoCampo(rotulo, chave string, tipo TipoCaptura, fronteira Fronteira) Campo {
	return Campo{
		Rotulo:    rotulo,
		Chave:     chave,
		Tipo:      tipo,
		Fronteira: fronteira,
		padrao:    compilarRotulo(rotulo),
	}
}

// extrair aplica o campo ao texto já com quebras de linha normalizadas
func (c Campo) extrair(texto string) string {
	loc := c.padrao.FindStringIndex(texto)
	if loc == nil {
		return ""
	}

	captura := capturar(texto, loc[1], c.Fronteira)
	if c.Tipo == CapturaDataHora {
		return NormalizarDataHora(captura)
	}
	return colapsarLinhas(captura)
}

var camposPadrao = []Campo{
	novoCampo("Nome do Solicitante", models.ChaveResponsavel, CapturaTexto, FronteiraPadrao),
	novoCampo("Órgão/Unidade solicitante", models.ChaveUnidade, CapturaTexto, FronteiraPadrao),
	novoCampo("SIAPE", models.ChaveSiape, CapturaTexto, FronteiraPadrao),
	novoCampo("E-mail", models.ChaveEmail, CapturaTexto, FronteiraPadrao),
	novoCampo("Telefone para contato", models.ChaveTelefone, CapturaTexto, FronteiraPadrao),
	novoCampo("Preferencia de horário para a equipe entrar em contato", models.ChaveHorarioContato, CapturaTexto, FronteiraPadrao),
	novoCampo("Nome da atividade/evento", models.ChaveEventoNome, CapturaTexto, FronteiraPadrao),
	novoCampo("Local do evento / Destino do material", models.ChaveEventoLocal, CapturaTexto, FronteiraPadrao),
	novoCampo("Data e horário de início", models.ChaveDataInicio, CapturaDataHora, FronteiraPadrao),
	novoCampo("Data e horário de término", models.ChaveDataFim, CapturaDataHora, FronteiraPadrao),
	novoCampo("Tipo de público", models.ChavePublicoTipo, CapturaTexto, FronteiraPadrao),
	novoCampo("Especifique qual?", models.ChaveVerbaPublica, CapturaTexto, FronteiraPadrao),
	novoCampo("Data e horário da retirada na Secom", models.ChaveRetiradaDataHora, CapturaDataHora, FronteiraPadrao),
	novoCampo("Data e horário da devolução na Secom", models.ChaveDevolucaoDataHora, CapturaDataHora, FronteiraPadrao),
	novoCampo("Data e horário para montagem dos equipamentos", models.ChaveMontagemDataHora, CapturaDataHora, FronteiraPadrao),
	novoCampo("Deseja montagem dos equipamentos emprestados?", models.ChaveDesejaMontagem, CapturaTexto, FronteiraPadrao),
	novoCampo("Marque os itens necessários", ChaveItensNecessarios, CapturaTexto, FronteiraPadrao),
	novoCampo("Descreva detalhadamente", ChaveDescricaoDetalhada, CapturaTexto, FronteiraDescricao),
	novoCampo("Informações gerais sobre o evento", ChaveInfoEvento, CapturaTexto, FronteiraPadrao),
	novoCampo("Observações gerais", ChaveObsFinais, CapturaTexto, FronteiraPadrao),
}

// Campos devolve uma cópia da tabela de campos reconhecidos
func Campos() []Campo {
	campos := make([]Campo, len(camposPadrao))
	copy(campos, camposPadrao)
	return campos
}

// BuscarCampo localiza um campo pela chave ou pelo rótulo, ignorando caixa e acentos
func BuscarCampo(nome string) (Campo, bool) {
	nome = strings.TrimSpace(nome)
	for _, c := range camposPadrao {
		if strings.EqualFold(c.Chave, nome) {
			return c, true
		}
	}

	rotulos := make([]string, len(camposPadrao))
	for i, c := range camposPadrao {
		rotulos[i] = c.Rotulo
	}

	rotulo, ok := utils.EncontrarRotulo(nome, rotulos)
	if !ok {
		return Campo{}, false
	}
	for _, c := range camposPadrao {
		if c.Rotulo == rotulo {
			return c, true
		}
	}
	return Campo{}, false
}
