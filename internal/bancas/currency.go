package bancas

import (
	"strconv"
	"strings"
)

// StripToNumber remove todo caractere que não seja dígito ASCII e interpreta o resto.
// Sinal e separador decimal também somem: "R$ -1.200,50" vira 120050.
// A conversão é mantida assim por compatibilidade com as planilhas existentes,
// então o sinal do lucro bruto só é confiável quando os valores de origem são >= 0.
func StripToNumber(s string) (float64, error) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
	if digits == "" {
		return 0, ErrNoDigits
	}
	return strconv.ParseFloat(digits, 64)
}
