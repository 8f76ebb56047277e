package charts

import (
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
)

// BRL formata valores monetários como reais ("R$1.200,00")
func BRL(v float64) string {
	return money.NewFromFloat(v, money.BRL).Display()
}

func brl(v interface{}) string {
	f, ok := v.(float64)
	if !ok {
		return fmt.Sprintf("%v", v)
	}
	return BRL(f)
}

func days(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.0f", f)
	}
	return fmt.Sprintf("%v", v)
}

// valueRange inclui o zero e garante amplitude não nula
func valueRange(values []float64) (lo, hi float64) {
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		hi = lo + 1
	}
	pad := (hi - lo) * 0.1
	if lo < 0 {
		lo -= pad
	}
	return lo, hi + pad
}
