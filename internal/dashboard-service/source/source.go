package source

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/radieske/bancas-dashboard/internal/bancas"
)

var (
	ErrMissingColumn = errors.New("missing required column")
	ErrEmptyOwner    = errors.New("empty owner name")
	ErrEmptySheet    = errors.New("sheet has no header row")
)

// Loader é a origem dos registros de bancas (planilha ou Postgres)
type Loader interface {
	Load(ctx context.Context) ([]bancas.Record, error)
}

// recordFromCells monta um registro a partir das células já indexadas por coluna
func recordFromCells(src string, row int, cell func(col string) string) (bancas.Record, error) {
	r := bancas.Record{
		Row:            row,
		OwnerName:      strings.TrimSpace(cell(bancas.ColOwner)),
		ShopName:       strings.TrimSpace(cell(bancas.ColShop)),
		Coordinates:    strings.TrimSpace(cell(bancas.ColCoordinates)),
		Address:        strings.TrimSpace(cell(bancas.ColAddress)),
		NetWorth:       cell(bancas.ColNetWorth),
		ActiveDebt:     cell(bancas.ColActiveDebt),
		LicenseRenewal: strings.TrimSpace(cell(bancas.ColRenewal)),
	}
	if r.OwnerName == "" {
		return r, &bancas.LoadError{Source: src, Row: row, Column: bancas.ColOwner, Err: ErrEmptyOwner}
	}

	var err error
	if r.BetsPerDay, err = parseQuantity(cell(bancas.ColBetsPerDay)); err != nil {
		return r, &bancas.LoadError{Source: src, Row: row, Column: bancas.ColBetsPerDay, Err: err}
	}
	if r.ValuePerBet, err = parseQuantity(cell(bancas.ColValuePerBet)); err != nil {
		return r, &bancas.LoadError{Source: src, Row: row, Column: bancas.ColValuePerBet, Err: err}
	}
	return r, nil
}

func parseQuantity(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
