package bancas

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Location é o que o mapa precisa de cada banca
type Location struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Address string  `json:"address"`
}

// Marker é um ponto do mapa já associado ao dono
type Marker struct {
	Owner string `json:"owner"`
	Location
}

// OwnerIndex agrupa as localizações por dono, na ordem das linhas de origem.
// Imutável depois de construído.
type OwnerIndex struct {
	byOwner map[string][]Location
	owners  []string
}

// BuildIndex agrupa os registros por dono sem reordenar as linhas de cada grupo
func BuildIndex(records []Record) (*OwnerIndex, error) {
	idx := &OwnerIndex{byOwner: make(map[string][]Location)}
	for _, r := range records {
		lat, lon, err := ParseCoordinates(r.Coordinates)
		if err != nil {
			return nil, &CoordinateParseError{Owner: r.OwnerName, Row: r.Row, Value: r.Coordinates, Err: err}
		}
		if _, ok := idx.byOwner[r.OwnerName]; !ok {
			idx.owners = append(idx.owners, r.OwnerName)
		}
		idx.byOwner[r.OwnerName] = append(idx.byOwner[r.OwnerName], Location{Lat: lat, Lon: lon, Address: r.Address})
	}
	sort.Strings(idx.owners)
	return idx, nil
}

// ParseCoordinates separa "lat, lon" em exatamente dois números
func ParseCoordinates(s string) (lat, lon float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected 2 components, got %d", len(parts))
	}
	if lat, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64); err != nil {
		return 0, 0, fmt.Errorf("latitude: %w", err)
	}
	if lon, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err != nil {
		return 0, 0, fmt.Errorf("longitude: %w", err)
	}
	return lat, lon, nil
}

// Owners devolve os donos em ordem alfabética (opções do multi-select)
func (x *OwnerIndex) Owners() []string {
	out := make([]string, len(x.owners))
	copy(out, x.owners)
	return out
}

// Has indica se o dono existe no índice
func (x *OwnerIndex) Has(owner string) bool {
	_, ok := x.byOwner[owner]
	return ok
}

// Markers monta os pontos do mapa na ordem da seleção
func (x *OwnerIndex) Markers(owners []string) []Marker {
	var out []Marker
	for _, o := range owners {
		for _, l := range x.byOwner[o] {
			out = append(out, Marker{Owner: o, Location: l})
		}
	}
	return out
}

// Validate confere se todos os donos da seleção existem
func (x *OwnerIndex) Validate(owners []string) error {
	for _, o := range owners {
		if !x.Has(o) {
			return fmt.Errorf("%w: %q", ErrUnknownOwner, o)
		}
	}
	return nil
}
