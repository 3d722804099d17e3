package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// RemoverAcentos remove acentos e diacríticos preservando a caixa
// Exemplo: "Órgão" -> "Orgao", "Devolução" -> "Devolucao"
func RemoverAcentos(texto string) string {
	if texto == "" {
		return texto
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalized, _, _ := transform.String(t, texto)
	return normalized
}

// NormalizarRotulo gera a forma canônica de um rótulo de campo para comparação:
// sem acentos, minúsculo e com espaços colapsados.
// Exemplo: "  Órgão/Unidade   solicitante " -> "orgao/unidade solicitante"
func NormalizarRotulo(rotulo string) string {
	normalized := strings.ToLower(RemoverAcentos(rotulo))
	return strings.Join(strings.Fields(normalized), " ")
}

// EncontrarRotulo procura, entre os rótulos válidos, aquele cuja forma
// canônica coincide com a do nome informado. Retorna false se nenhum casar.
func EncontrarRotulo(nome string, rotulosValidos []string) (string, bool) {
	alvo := NormalizarRotulo(nome)
	if alvo == "" {
		return "", false
	}
	for _, rotulo := range rotulosValidos {
		if NormalizarRotulo(rotulo) == alvo {
			return rotulo, true
		}
	}
	return "", false
}
