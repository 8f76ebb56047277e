package bancas

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ChartKind identifica cada um dos quatro gráficos do dashboard
type ChartKind string

const (
	ChartBets       ChartKind = "bets"
	ChartSimulation ChartKind = "simulation"
	ChartProfit     ChartKind = "profit"
	ChartRenewal    ChartKind = "renewal"
)

// ChartKinds na ordem de exibição (col1..col4)
var ChartKinds = []ChartKind{ChartBets, ChartSimulation, ChartProfit, ChartRenewal}

// ParseChartKind valida o nome vindo da URL
func ParseChartKind(s string) (ChartKind, bool) {
	for _, k := range ChartKinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// Chart é a projeção consumida por um adaptador de gráfico
type Chart struct {
	Kind    ChartKind `json:"kind"`
	Title   string    `json:"title"`
	ColorBy ColorKey  `json:"colorBy"`
	Series  []Series  `json:"series,omitempty"`
	Error   string    `json:"error,omitempty"`

	err error
}

// Err devolve o erro que impediu o gráfico, se houver.
// Views vindas do cache só carregam a mensagem.
func (c *Chart) Err() error {
	if c.err == nil && c.Error != "" {
		return errors.New(c.Error)
	}
	return c.err
}

func (c *Chart) fail(err error) {
	c.err = err
	c.Error = err.Error()
	c.Series = nil
}

// Dataset é o dado imutável do processo: registros + índice de donos
type Dataset struct {
	Records []Record
	Index   *OwnerIndex
}

// NewDataset monta o índice uma única vez, na subida do serviço
func NewDataset(records []Record) (*Dataset, error) {
	idx, err := BuildIndex(records)
	if err != nil {
		return nil, err
	}
	return &Dataset{Records: records, Index: idx}, nil
}

// View é tudo o que a camada de apresentação precisa para uma interação
type View struct {
	Owners        []string `json:"owners"`
	DaysInput     string   `json:"daysInput"`
	SimulatedDays int      `json:"simulatedDays"`
	Validation    string   `json:"validation,omitempty"`
	ColorBy       ColorKey `json:"colorBy,omitempty"`
	Caption       string   `json:"caption"`
	Markers       []Marker `json:"markers"`
	Charts        []*Chart `json:"charts"`
	Summary       *Summary `json:"summary,omitempty"`
	Rows          []Row    `json:"rows,omitempty"`
}

// Chart devolve o gráfico do tipo pedido
func (v *View) Chart(kind ChartKind) (*Chart, bool) {
	for _, c := range v.Charts {
		if c.Kind == kind {
			return c, true
		}
	}
	return nil, false
}

// Render é a função pura estado -> view, executada por inteiro a cada interação.
// Só falha para donos desconhecidos; erros de linha ficam presos ao gráfico afetado.
func Render(data *Dataset, sel Selection, now time.Time) (*View, error) {
	if err := data.Index.Validate(sel.Owners); err != nil {
		return nil, err
	}

	days, verr := sel.SimulatedDays()
	owners := strings.Join(sel.Owners, ", ")
	v := &View{
		Owners:        sel.Owners,
		DaysInput:     sel.Days,
		SimulatedDays: days,
		Caption:       fmt.Sprintf("Localização das bancas do bicheiro:  %s", owners),
		Markers:       []Marker{},
		Charts:        []*Chart{},
	}
	if sel.Empty() {
		// sem donos o campo de dias nem aparece
		return v, nil
	}
	if verr != nil {
		v.Validation = verr.Message
	}

	key := sel.ColorKey()
	v.ColorBy = key
	v.Markers = data.Index.Markers(sel.Owners)

	// erros de linha ficam em sv.ProfitErr/RenewalErr e bloqueiam só o gráfico afetado
	sv, _ := Derive(data.Records, sel.Owners, days, now)
	v.Rows = sv.Rows

	bets := &Chart{
		Kind:    ChartBets,
		Title:   fmt.Sprintf("Porcentagem de apostas por dia em cada banca (%s)", owners),
		ColorBy: key,
		Series:  []Series{{Name: "apostas", Points: BetShare(sv.Rows, key)}},
	}
	simulation := &Chart{
		Kind:    ChartSimulation,
		Title:   fmt.Sprintf("Lucro de apostas referente a simulação de %s dias (%s)", sel.Days, owners),
		ColorBy: key,
		Series:  []Series{{Name: "resultado", Points: BetValues(sv.Rows, key)}},
	}

	var profitRows, renewalRows []Row
	profit := &Chart{Kind: ChartProfit, Title: "Lucro bruto negativo e positivo", ColorBy: ColorByShop}
	if sv.ProfitErr != nil {
		profit.fail(sv.ProfitErr)
	} else {
		profit.Series = ProfitSeries(sv.Positive, sv.Negative)
		profitRows = sv.Rows
	}

	renewal := &Chart{
		Kind:    ChartRenewal,
		Title:   fmt.Sprintf("Dias restantes para renovação de licença:(%s)", owners),
		ColorBy: key,
	}
	if sv.RenewalErr != nil {
		renewal.fail(sv.RenewalErr)
	} else {
		renewal.Series = []Series{{Name: "dias", Points: RenewalCountdown(sv.Rows, key)}}
		renewalRows = sv.Rows
	}

	v.Charts = []*Chart{bets, simulation, profit, renewal}
	s := Summarize(sv.Rows, profitRows, renewalRows)
	v.Summary = &s
	return v, nil
}
