package glpi

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/prefeitura-rio/app-agenda-equipamentos/internal/utils"
)

// variantesAcentuadas lista, para cada letra base, as grafias aceitas no texto
var variantesAcentuadas = map[rune]string{
	'a': "aáàâãä",
	'e': "eéèêë",
	'i': "iíìîï",
	'o': "oóòôõö",
	'u': "uúùûü",
	'c': "cç",
}

var (
	// linha iniciada por marcador de pergunta numerada, ex: "3)"
	marcadorEnumerado = regexp.MustCompile(`^\s*\d+\)`)

	// linha iniciada por um rótulo seguido de ":" ou "::"
	linhaRotulo = regexp.MustCompile(`^\s*\p{L}[\p{L}\p{M}\s/?.()-]*:`)

	// título da seção que encerra a descrição detalhada dos equipamentos
	secaoLogistica = regexp.MustCompile(`(?i)` + padraoRotulo("Logística de Empréstimo"))

	quebrasInternas = regexp.MustCompile(`[ \t]*\n\s*`)
)

// padraoRotulo converte um rótulo em expressão regular tolerante a acentos,
// variações de espaçamento e hífen opcional. O resultado não tem âncoras.
func padraoRotulo(rotulo string) string {
	base := []rune(utils.RemoverAcentos(strings.TrimSpace(rotulo)))

	var b strings.Builder
	for i := 0; i < len(base); i++ {
		r := base[i]

		if unicode.IsSpace(r) {
			j := i
			for j+1 < len(base) && unicode.IsSpace(base[j+1]) {
				j++
			}
			if i > 0 && j+1 < len(base) && alfanumerico(base[i-1]) && alfanumerico(base[j+1]) {
				b.WriteString(`\s+`)
			} else {
				b.WriteString(`\s*`)
			}
			i = j
			continue
		}

		if r == '-' {
			b.WriteString(`-?`)
			continue
		}

		if variantes, ok := variantesAcentuadas[unicode.ToLower(r)]; ok {
			b.WriteString("[" + variantes + "]")
			continue
		}

		b.WriteString(regexp.QuoteMeta(string(r)))
	}

	return b.String()
}

// compilarRotulo monta o padrão completo de busca de um campo: fronteira de
// palavra opcional, o rótulo, e um ou dois ":" com espaços horizontais ao redor.
// O fim do casamento marca o início da captura.
func compilarRotulo(rotulo string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(?:^|[^\p{L}\p{N}_])` + padraoRotulo(rotulo) + `[ \t]*:{1,2}[ \t]*`)
}

func alfanumerico(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// iniciaComPalavra indica se a linha começa imediatamente com letra, dígito ou "_"
func iniciaComPalavra(linha string) bool {
	r, _ := utf8.DecodeRuneInString(linha)
	return r != utf8.RuneError && (alfanumerico(r) || r == '_')
}

func linhaEmBranco(linha string) bool {
	return strings.TrimSpace(linha) == ""
}

// ehLinhaRotulo reconhece o início do próximo campo. URLs ("http://...") não contam.
func ehLinhaRotulo(linha string) bool {
	loc := linhaRotulo.FindStringIndex(linha)
	if loc == nil {
		return false
	}
	return !strings.HasPrefix(linha[loc[1]:], "//")
}

// linhaEm devolve a linha que começa na posição inicio (sem o "\n" final)
// e a posição do "\n" que a encerra, ou -1 se for a última.
func linhaEm(texto string, inicio int) (string, int) {
	fim := strings.IndexByte(texto[inicio:], '\n')
	if fim < 0 {
		return texto[inicio:], -1
	}
	return texto[inicio : inicio+fim], inicio + fim
}

// encerraCaptura decide se a linha (que não é a primeira da captura) é uma fronteira
func encerraCaptura(fronteira Fronteira, linha, proxima string, temProxima bool) bool {
	switch fronteira {
	case FronteiraDescricao:
		return linhaEmBranco(linha) && temProxima && iniciaComPalavra(proxima)
	default:
		return linhaEmBranco(linha) || marcadorEnumerado.MatchString(linha) || ehLinhaRotulo(linha)
	}
}

// capturar devolve o trecho bruto entre inicio e a primeira fronteira.
// A varredura é linear no tamanho do texto.
func capturar(texto string, inicio int, fronteira Fronteira) string {
	resto := texto[inicio:]

	if fronteira == FronteiraDescricao {
		if loc := secaoLogistica.FindStringIndex(resto); loc != nil {
			resto = resto[:loc[0]]
		}
	}

	// a primeira linha sempre pertence à captura
	quebra := strings.IndexByte(resto, '\n')
	for quebra >= 0 {
		linha, proximaQuebra := linhaEm(resto, quebra+1)

		proxima, temProxima := "", proximaQuebra >= 0
		if temProxima {
			proxima, _ = linhaEm(resto, proximaQuebra+1)
		}

		if encerraCaptura(fronteira, linha, proxima, temProxima) {
			return resto[:quebra]
		}
		quebra = proximaQuebra
	}

	return resto
}

// colapsarLinhas junta as linhas de uma captura de texto em uma só
func colapsarLinhas(captura string) string {
	return strings.TrimSpace(quebrasInternas.ReplaceAllString(captura, " "))
}

func normalizarQuebras(texto string) string {
	texto = strings.ReplaceAll(texto, "\r\n", "\n")
	return strings.ReplaceAll(texto, "\r", "\n")
}
