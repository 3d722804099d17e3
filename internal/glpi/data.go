package glpi

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// LayoutDataHora é o formato aceito por inputs datetime-local
	LayoutDataHora = "2006-01-02T15:04"

	layoutDataHoraBR = "02/01/2006 15:04"
)

var dataBR = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})`)

// NormalizarDataHora converte o trecho capturado para o formato datetime-local.
// "2025-03-10 14:30" -> "2025-03-10T14:30"
// "10/03/2025 14:30" -> "2025-03-10T14:30"
// Apenas o primeiro espaço vira "T"; o restante do trecho é preservado.
func NormalizarDataHora(valor string) string {
	valor = strings.TrimSpace(valor)
	if valor == "" {
		return ""
	}

	if m := dataBR.FindStringSubmatch(valor); m != nil {
		dia, _ := strconv.Atoi(m[1])
		mes, _ := strconv.Atoi(m[2])
		if dia >= 1 && dia <= 31 && mes >= 1 && mes <= 12 {
			valor = fmt.Sprintf("%s-%02d-%02d", m[3], mes, dia) + valor[len(m[0]):]
		}
	}

	return strings.Replace(valor, " ", "T", 1)
}

// FormatarDataHoraBR exibe uma data "AAAA-MM-DDTHH:mm" como "DD/MM/AAAA HH:mm".
// Valores fora desse formato são devolvidos sem alteração.
func FormatarDataHoraBR(valor string) string {
	t, err := time.Parse(LayoutDataHora, valor)
	if err != nil {
		return valor
	}
	return t.Format(layoutDataHoraBR)
}
