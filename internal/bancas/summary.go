package bancas

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary resume a seleção atual para o cabeçalho do dashboard
type Summary struct {
	Shops            int     `json:"shops"`
	TotalBetsPerDay  float64 `json:"totalBetsPerDay"`
	TotalBetValue    float64 `json:"totalBetValue"`
	ProfitAvailable  bool    `json:"profitAvailable"`
	TotalGrossProfit float64 `json:"totalGrossProfit"`
	MeanGrossProfit  float64 `json:"meanGrossProfit"`
	RenewalAvailable bool    `json:"renewalAvailable"`
	ExpiredLicenses  int     `json:"expiredLicenses"`
}

// Summarize aceita profitRows/renewalRows nil quando a etapa correspondente falhou
func Summarize(rows, profitRows, renewalRows []Row) Summary {
	s := Summary{Shops: len(rows)}
	if len(rows) == 0 {
		return s
	}

	bets := make([]float64, len(rows))
	values := make([]float64, len(rows))
	for i, r := range rows {
		bets[i] = r.BetsPerDay
		values[i] = r.BetValueResult
	}
	s.TotalBetsPerDay = floats.Sum(bets)
	s.TotalBetValue = floats.Sum(values)

	if profitRows != nil {
		gross := make([]float64, len(profitRows))
		for i, r := range profitRows {
			gross[i] = r.GrossProfit
		}
		s.ProfitAvailable = true
		s.TotalGrossProfit = floats.Sum(gross)
		s.MeanGrossProfit = stat.Mean(gross, nil)
	}

	if renewalRows != nil {
		s.RenewalAvailable = true
		for _, r := range renewalRows {
			if r.DaysToRenewal < 0 {
				s.ExpiredLicenses++
			}
		}
	}
	return s
}
