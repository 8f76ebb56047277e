package charts

import (
	"errors"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/radieske/bancas-dashboard/internal/bancas"
)

// ErrNothingToPlot indica uma seleção sem dados desenháveis
var ErrNothingToPlot = errors.New("nothing to plot")

// Renderer desenha as projeções da view como PNG
type Renderer struct {
	Width  int
	Height int
}

func New() *Renderer { return &Renderer{Width: 640, Height: 420} }

// Render escreve o PNG do gráfico em w.
// Gráfico bloqueado por DerivationError devolve o próprio erro.
func (r *Renderer) Render(w io.Writer, c *bancas.Chart) error {
	if err := c.Err(); err != nil {
		return err
	}

	switch c.Kind {
	case bancas.ChartBets:
		return r.pie(w, c)
	case bancas.ChartSimulation:
		return r.bars(w, c, brl)
	case bancas.ChartProfit:
		return r.scatter(w, c)
	case bancas.ChartRenewal:
		return r.hbars(w, c)
	default:
		return fmt.Errorf("unknown chart kind %q", c.Kind)
	}
}

func firstSeries(c *bancas.Chart) []bancas.Point {
	if len(c.Series) == 0 {
		return nil
	}
	return c.Series[0].Points
}

func (r *Renderer) pie(w io.Writer, c *bancas.Chart) error {
	pts := firstSeries(c)
	pal := newPalette()

	var total float64
	values := make([]chart.Value, 0, len(pts))
	for _, p := range pts {
		if p.Value <= 0 {
			continue
		}
		total += p.Value
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%.1f%%)", p.Shop, p.Share),
			Value: p.Value,
			Style: chart.Style{FillColor: pal.color(p.Group)},
		})
	}
	if total == 0 {
		return ErrNothingToPlot
	}

	pie := chart.PieChart{
		Title:  c.Title,
		Width:  r.Width,
		Height: r.Height,
		Values: values,
	}
	return pie.Render(chart.PNG, w)
}

func (r *Renderer) bars(w io.Writer, c *bancas.Chart, format chart.ValueFormatter) error {
	pts := firstSeries(c)
	if len(pts) == 0 {
		return ErrNothingToPlot
	}
	pal := newPalette()

	vals := make([]float64, len(pts))
	bars := make([]chart.Value, len(pts))
	for i, p := range pts {
		vals[i] = p.Value
		col := pal.color(p.Group)
		bars[i] = chart.Value{
			Label: p.Shop,
			Value: p.Value,
			Style: chart.Style{FillColor: col, StrokeColor: col},
		}
	}
	lo, hi := valueRange(vals)
	bw := barWidth(r.Width, len(bars))

	bc := chart.BarChart{
		Title:        c.Title,
		Width:        r.Width,
		Height:       r.Height,
		BarWidth:     bw,
		BarSpacing:   bw / 2,
		UseBaseValue: true,
		BaseValue:    0,
		Background:   chart.Style{Padding: chart.Box{Top: 40}},
		YAxis: chart.YAxis{
			Range:          &chart.ContinuousRange{Min: lo, Max: hi},
			ValueFormatter: format,
		},
		Bars: bars,
	}
	return bc.Render(chart.PNG, w)
}

func barWidth(width, n int) int {
	bw := (width - 120) / (n * 2)
	switch {
	case bw < 8:
		return 8
	case bw > 60:
		return 60
	}
	return bw
}

func (r *Renderer) scatter(w io.Writer, c *bancas.Chart) error {
	// eixo x categórico: uma posição por banca, na ordem das séries
	var ticks []chart.Tick
	var all []float64
	var series []chart.Series
	x := 0.0
	for _, s := range c.Series {
		if len(s.Points) == 0 {
			continue
		}
		col := positiveColor
		if s.Name == string(bancas.Negative) {
			col = negativeColor
		}
		cs := chart.ContinuousSeries{
			Name: s.Name,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    8,
				DotColor:    col,
			},
		}
		for _, p := range s.Points {
			cs.XValues = append(cs.XValues, x)
			cs.YValues = append(cs.YValues, p.Value)
			ticks = append(ticks, chart.Tick{Value: x, Label: p.Shop})
			all = append(all, p.Value)
			x++
		}
		series = append(series, cs)
	}
	if len(series) == 0 {
		return ErrNothingToPlot
	}
	lo, hi := valueRange(all)

	// o go-chart tira o range dos ticks; as bordas vazias evitam delta zero com uma banca só
	ticks = padTicks(ticks, x)

	ch := chart.Chart{
		Title:      c.Title,
		Width:      r.Width,
		Height:     r.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20}},
		XAxis: chart.XAxis{
			Range: &chart.ContinuousRange{Min: -0.5, Max: x - 0.5},
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Range:          &chart.ContinuousRange{Min: lo, Max: hi},
			ValueFormatter: brl,
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch.Render(chart.PNG, w)
}

// padTicks cerca os ticks categóricos (0..n-1) com rótulos vazios em -0.5 e n-0.5
func padTicks(ticks []chart.Tick, n float64) []chart.Tick {
	out := make([]chart.Tick, 0, len(ticks)+2)
	out = append(out, chart.Tick{Value: -0.5})
	out = append(out, ticks...)
	return append(out, chart.Tick{Value: n - 0.5})
}

// hbars desenha barras horizontais: x = dias, y = banca (primeira linha no topo)
func (r *Renderer) hbars(w io.Writer, c *bancas.Chart) error {
	pts := firstSeries(c)
	if len(pts) == 0 {
		return ErrNothingToPlot
	}
	hs, ticks := newHorizontalBars(pts)
	vals := make([]float64, len(pts))
	for i, p := range pts {
		vals[i] = p.Value
	}
	lo, hi := valueRange(vals)

	ch := chart.Chart{
		Title:      c.Title,
		Width:      r.Width,
		Height:     r.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20}},
		XAxis: chart.XAxis{
			Range:          &chart.ContinuousRange{Min: lo, Max: hi},
			ValueFormatter: days,
		},
		YAxis: chart.YAxis{
			Ticks: padTicks(ticks, float64(len(pts))),
		},
		Series: []chart.Series{hs},
	}
	return ch.Render(chart.PNG, w)
}

// newHorizontalBars põe a primeira banca no topo; os ticks saem de baixo para cima
func newHorizontalBars(pts []bancas.Point) (horizontalBars, []chart.Tick) {
	pal := newPalette()
	n := len(pts)
	hs := horizontalBars{name: "dias"}
	ticks := make([]chart.Tick, n)
	for i, p := range pts {
		y := n - 1 - i
		hs.bars = append(hs.bars, hbar{y: float64(y), value: p.Value, color: pal.color(p.Group)})
		ticks[y] = chart.Tick{Value: float64(y), Label: p.Shop}
	}
	return hs, ticks
}

type hbar struct {
	y     float64
	value float64
	color drawing.Color
}

// horizontalBars é uma série do go-chart que desenha cada valor como barra a partir do zero
type horizontalBars struct {
	name string
	bars []hbar
}

func (h horizontalBars) GetName() string                { return h.name }
func (h horizontalBars) GetYAxis() chart.YAxisType      { return chart.YAxisPrimary }
func (h horizontalBars) GetStyle() chart.Style          { return chart.Style{} }
func (h horizontalBars) Len() int                       { return len(h.bars) }
func (h horizontalBars) GetValues(i int) (x, y float64) { return h.bars[i].value, h.bars[i].y }

func (h horizontalBars) Validate() error {
	if len(h.bars) == 0 {
		return ErrNothingToPlot
	}
	return nil
}

func (h horizontalBars) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, _ chart.Style) {
	x0 := canvasBox.Left + xrange.Translate(0)
	for _, b := range h.bars {
		x1 := canvasBox.Left + xrange.Translate(b.value)
		top := canvasBox.Bottom - yrange.Translate(b.y+0.3)
		bottom := canvasBox.Bottom - yrange.Translate(b.y-0.3)
		left, right := x0, x1
		if right < left {
			left, right = right, left
		}
		chart.Draw.Box(r, chart.Box{Top: top, Left: left, Right: right, Bottom: bottom}, chart.Style{
			FillColor:   b.color,
			StrokeColor: b.color,
			StrokeWidth: 1,
		})
	}
}
