package bancas

import (
	"strconv"
	"strings"
)

// DaysValidationMessage é exibida quando o número de dias não é um inteiro
const DaysValidationMessage = "Por favor, insira um valor numérico válido"

// ColorKey define a coluna usada para agrupar/colorir os gráficos
type ColorKey string

const (
	ColorByOwner ColorKey = "owner"
	ColorByShop  ColorKey = "shop"
)

// Selection é o estado da interação: donos escolhidos + texto de dias simulados
type Selection struct {
	Owners []string `json:"owners"`
	Days   string   `json:"days"`
}

// NewSelection mantém a ordem de escolha e descarta repetidos e nomes vazios
func NewSelection(owners []string, days string) Selection {
	seen := make(map[string]struct{}, len(owners))
	out := make([]string, 0, len(owners))
	for _, o := range owners {
		o = strings.TrimSpace(o)
		if o == "" {
			continue
		}
		if _, ok := seen[o]; ok {
			continue
		}
		seen[o] = struct{}{}
		out = append(out, o)
	}
	return Selection{Owners: out, Days: days}
}

// Empty indica que nenhum dono foi escolhido
func (s Selection) Empty() bool { return len(s.Owners) == 0 }

// ColorKey agrupa por dono quando há mais de um selecionado, senão por banca
func (s Selection) ColorKey() ColorKey {
	if len(s.Owners) > 1 {
		return ColorByOwner
	}
	return ColorByShop
}

// SimulatedDays devolve os dias a simular e o erro de validação, se houver
func (s Selection) SimulatedDays() (int, *ValidationError) {
	return ParseDays(s.Days)
}

// ParseDays converte o texto livre como inteiro decimal. Aceita espaços nas pontas,
// sinal e "_" entre dígitos ("1_000"). Qualquer outro texto, ou um valor que não cabe
// em int, vale 0 com a mensagem de validação.
func ParseDays(raw string) (int, *ValidationError) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0, nil
	}
	digits, ok := integerDigits(v)
	if !ok {
		return 0, invalidDays(raw)
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, invalidDays(raw)
	}
	return n, nil
}

func invalidDays(raw string) *ValidationError {
	return &ValidationError{Field: "days", Input: raw, Message: DaysValidationMessage}
}

// integerDigits valida [+-]d(_?d)* e devolve o texto sem os "_"
func integerDigits(s string) (string, bool) {
	var b strings.Builder
	var prev byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case i == 0 && (c == '+' || c == '-'):
			b.WriteByte(c)
		case isDigit(c):
			b.WriteByte(c)
		case c == '_' && isDigit(prev):
		default:
			return "", false
		}
		prev = c
	}
	return b.String(), isDigit(prev)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
