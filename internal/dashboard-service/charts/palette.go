package charts

import (
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// set1 é a paleta qualitativa Set1 (ColorBrewer)
var set1 = []string{"e41a1c", "377eb8", "4daf4a", "984ea3", "ff7f00", "ffff33", "a65628", "f781bf", "999999"}

var (
	positiveColor = drawing.ColorFromHex("2ca02c")
	negativeColor = drawing.ColorFromHex("d62728")
)

// palette atribui cores por grupo na ordem de primeira aparição
type palette struct {
	assigned map[string]drawing.Color
}

func newPalette() *palette { return &palette{assigned: make(map[string]drawing.Color)} }

func (p *palette) color(group string) drawing.Color {
	if c, ok := p.assigned[group]; ok {
		return c
	}
	c := drawing.ColorFromHex(set1[len(p.assigned)%len(set1)])
	p.assigned[group] = c
	return c
}
