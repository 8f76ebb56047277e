package bancas

// Point é um valor plotável com a chave de cor já resolvida
type Point struct {
	Shop  string  `json:"shop"`
	Owner string  `json:"owner"`
	Group string  `json:"group"`
	Value float64 `json:"value"`
	Share float64 `json:"share,omitempty"` // percentual, só no gráfico de pizza
}

// Series é uma sequência de pontos desenhada com a mesma identidade visual
type Series struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

func groupOf(r Row, key ColorKey) string {
	if key == ColorByOwner {
		return r.OwnerName
	}
	return r.ShopName
}

func pointOf(r Row, key ColorKey, v float64) Point {
	return Point{Shop: r.ShopName, Owner: r.OwnerName, Group: groupOf(r, key), Value: v}
}

// BetShare soma apostas/dia por banca (ordem de primeira aparição) e calcula o percentual
func BetShare(rows []Row, key ColorKey) []Point {
	pos := make(map[string]int)
	var out []Point
	var total float64
	for _, r := range rows {
		total += r.BetsPerDay
		if i, ok := pos[r.ShopName]; ok {
			out[i].Value += r.BetsPerDay
			continue
		}
		pos[r.ShopName] = len(out)
		out = append(out, pointOf(r, key, r.BetsPerDay))
	}
	if total != 0 {
		for i := range out {
			out[i].Share = out[i].Value / total * 100
		}
	}
	return out
}

// BetValues projeta o resultado simulado de cada banca
func BetValues(rows []Row, key ColorKey) []Point {
	out := make([]Point, 0, len(rows))
	for _, r := range rows {
		out = append(out, pointOf(r, key, r.BetValueResult))
	}
	return out
}

// ProfitSeries monta as duas séries do gráfico de dispersão (positivo e negativo)
func ProfitSeries(positive, negative []Row) []Series {
	mk := func(class ProfitClass, rows []Row) Series {
		s := Series{Name: string(class), Points: make([]Point, 0, len(rows))}
		for _, r := range rows {
			p := pointOf(r, ColorByShop, r.GrossProfit)
			p.Group = string(class)
			s.Points = append(s.Points, p)
		}
		return s
	}
	return []Series{mk(Positive, positive), mk(Negative, negative)}
}

// RenewalCountdown projeta os dias restantes para renovação por banca
func RenewalCountdown(rows []Row, key ColorKey) []Point {
	out := make([]Point, 0, len(rows))
	for _, r := range rows {
		out = append(out, pointOf(r, key, float64(r.DaysToRenewal)))
	}
	return out
}
