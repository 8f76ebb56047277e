package bancas

import (
	"time"
)

// ProfitClass classifica o sinal do lucro bruto
type ProfitClass string

const (
	Positive ProfitClass = "Positive"
	Negative ProfitClass = "Negative"
)

// Row é um registro da seleção com as colunas derivadas
type Row struct {
	Record
	BetValueResult  float64     `json:"betValueResult"`
	NetWorthValue   float64     `json:"netWorthValue"`
	ActiveDebtValue float64     `json:"activeDebtValue"`
	GrossProfit     float64     `json:"grossProfit"`
	ProfitClass     ProfitClass `json:"profitClass"`
	RenewalAt       time.Time   `json:"renewalAt"`
	DaysToRenewal   int         `json:"daysToRenewal"`
}

// SelectionView é recalculada do zero a cada interação; nunca é persistida.
// ProfitErr e RenewalErr marcam a etapa que falhou; as demais colunas continuam válidas.
type SelectionView struct {
	Owners        []string `json:"owners"`
	SimulatedDays int      `json:"simulatedDays"`
	Rows          []Row    `json:"rows"`
	Positive      []Row    `json:"positive"`
	Negative      []Row    `json:"negative"`

	ProfitErr  error `json:"-"`
	RenewalErr error `json:"-"`
}

// Err devolve o primeiro erro de derivação, na ordem das etapas
func (v *SelectionView) Err() error {
	if v.ProfitErr != nil {
		return v.ProfitErr
	}
	return v.RenewalErr
}

// SelectRows concatena os registros de cada dono na ordem da seleção
func SelectRows(records []Record, owners []string) []Row {
	var out []Row
	for _, o := range owners {
		for _, r := range records {
			if r.OwnerName == o {
				out = append(out, Row{Record: r})
			}
		}
	}
	return out
}

// ApplyBetValue calcula apostas/dia × valor da aposta × dias simulados
func ApplyBetValue(rows []Row, simulatedDays int) []Row {
	out := make([]Row, len(rows))
	for i, r := range rows {
		r.BetValueResult = r.BetsPerDay * r.ValuePerBet * float64(simulatedDays)
		out[i] = r
	}
	return out
}

// ApplyGrossProfit converte patrimônio e dívida ativa e classifica o lucro bruto
func ApplyGrossProfit(rows []Row) ([]Row, error) {
	out := make([]Row, len(rows))
	for i, r := range rows {
		nw, err := StripToNumber(r.NetWorth)
		if err != nil {
			return nil, &DerivationError{Row: r.Row, Shop: r.ShopName, Field: ColNetWorth, Value: r.NetWorth, Err: err}
		}
		debt, err := StripToNumber(r.ActiveDebt)
		if err != nil {
			return nil, &DerivationError{Row: r.Row, Shop: r.ShopName, Field: ColActiveDebt, Value: r.ActiveDebt, Err: err}
		}
		r.NetWorthValue = nw
		r.ActiveDebtValue = debt
		r.GrossProfit = nw - debt
		r.ProfitClass = Negative
		if r.GrossProfit >= 0 {
			r.ProfitClass = Positive
		}
		out[i] = r
	}
	return out, nil
}

// ApplyRenewal calcula quantos dias faltam para a renovação da licença
func ApplyRenewal(rows []Row, now time.Time) ([]Row, error) {
	out := make([]Row, len(rows))
	for i, r := range rows {
		at, err := ParseRenewalDate(r.LicenseRenewal, now.Location())
		if err != nil {
			return nil, &DerivationError{Row: r.Row, Shop: r.ShopName, Field: ColRenewal, Value: r.LicenseRenewal, Err: err}
		}
		r.RenewalAt = at
		r.DaysToRenewal = DaysBetween(now, at)
		out[i] = r
	}
	return out, nil
}

// Partition separa as linhas pela classe de lucro; as partes são disjuntas
func Partition(rows []Row) (positive, negative []Row) {
	for _, r := range rows {
		if r.ProfitClass == Positive {
			positive = append(positive, r)
		} else {
			negative = append(negative, r)
		}
	}
	return positive, negative
}

// Derive roda todas as etapas. A view volta sempre preenchida até onde foi possível;
// o erro devolvido é o primeiro DerivationError encontrado.
func Derive(records []Record, owners []string, simulatedDays int, now time.Time) (*SelectionView, error) {
	v := &SelectionView{Owners: owners, SimulatedDays: simulatedDays}
	rows := ApplyBetValue(SelectRows(records, owners), simulatedDays)

	if profit, err := ApplyGrossProfit(rows); err != nil {
		v.ProfitErr = err
	} else {
		rows = profit
		v.Positive, v.Negative = Partition(rows)
	}

	if renewal, err := ApplyRenewal(rows, now); err != nil {
		v.RenewalErr = err
	} else {
		rows = renewal
	}

	v.Rows = rows
	return v, v.Err()
}
