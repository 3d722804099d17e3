package utils

import (
	"regexp"
	"strings"
)

const (
	MaxSlugBaseLength = 50
	ShortIDLength     = 8
)

var slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)

// GenerateSlug cria um slug legível para a reserva a partir do nome do evento e do ID.
// Formato: {kebab-case-evento}-{short-id}
// Exemplo: "Colação de Grau" + "3f2a9c1e-..." -> "colacao-de-grau-3f2a9c1e"
func GenerateSlug(nomeEvento, reservaID string) string {
	if reservaID == "" {
		return ""
	}

	slug := normalizeToSlug(nomeEvento)
	shortID := truncateID(reservaID)

	if slug == "" {
		return shortID
	}

	return slug + "-" + shortID
}

// normalizeToSlug converte texto para formato slug kebab-case
func normalizeToSlug(text string) string {
	normalized := strings.ToLower(RemoverAcentos(text))

	slug := slugInvalidChars.ReplaceAllString(normalized, "-")
	slug = strings.Trim(slug, "-")

	if len(slug) > MaxSlugBaseLength {
		slug = slug[:MaxSlugBaseLength]
		if lastHyphen := strings.LastIndex(slug, "-"); lastHyphen > 0 {
			slug = slug[:lastHyphen]
		}
	}

	return slug
}

// truncateID retorna os primeiros 8 caracteres do ID
func truncateID(id string) string {
	if len(id) > ShortIDLength {
		return id[:ShortIDLength]
	}
	return id
}
