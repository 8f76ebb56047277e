package source

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/radieske/bancas-dashboard/internal/bancas"
)

func writeSheet(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow(sheet, cell, &r))
	}

	path := filepath.Join(t.TempDir(), "bancas.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func header() []interface{} {
	out := make([]interface{}, len(bancas.RequiredColumns))
	for i, c := range bancas.RequiredColumns {
		out[i] = c
	}
	return out
}

func TestXLSX_Load(t *testing.T) {
	renewal := time.Date(2025, time.January, 11, 0, 0, 0, 0, time.UTC)
	path := writeSheet(t, [][]interface{}{
		header(),
		{"Carlos", "Banca Sé", "-23.5505, -46.6333", "Praça da Sé, 1", 10, 5, "R$ 1.200,00", "R$ 200,00", renewal},
		{},
		{"Ana", "Banca Luz", "-23.5365, -46.6339", "Rua da Luz, 10", 20, 2.5, "R$ 500,00", "R$ 900,00", "2025-02-01"},
	})

	recs, err := NewXLSX(path, "").Load(context.Background())
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, 2, recs[0].Row)
	assert.Equal(t, "Carlos", recs[0].OwnerName)
	assert.Equal(t, "-23.5505, -46.6333", recs[0].Coordinates)
	assert.Equal(t, 10.0, recs[0].BetsPerDay)
	assert.Equal(t, 5.0, recs[0].ValuePerBet)
	assert.Equal(t, "R$ 1.200,00", recs[0].NetWorth)

	got, err := bancas.ParseRenewalDate(recs[0].LicenseRenewal, time.UTC)
	require.NoError(t, err)
	assert.True(t, renewal.Equal(got), got.String())

	assert.Equal(t, 4, recs[1].Row)
	assert.Equal(t, 2.5, recs[1].ValuePerBet)
	assert.Equal(t, "2025-02-01", recs[1].LicenseRenewal)
}

func TestXLSX_ColumnOrderDoesNotMatter(t *testing.T) {
	h := header()
	h[0], h[1] = h[1], h[0]
	path := writeSheet(t, [][]interface{}{
		h,
		{"Banca Sé", "Carlos", "-23.5505, -46.6333", "Praça da Sé, 1", 10, 5, "1", "0", "2025-01-11"},
	})

	recs, err := NewXLSX(path, "").Load(context.Background())
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Carlos", recs[0].OwnerName)
	assert.Equal(t, "Banca Sé", recs[0].ShopName)
}

func TestXLSX_MissingFile(t *testing.T) {
	_, err := NewXLSX(filepath.Join(t.TempDir(), "nada.xlsx"), "").Load(context.Background())
	var le *bancas.LoadError
	require.True(t, errors.As(err, &le))
}

func TestXLSX_MissingColumn(t *testing.T) {
	h := header()
	path := writeSheet(t, [][]interface{}{h[:len(h)-1]})

	_, err := NewXLSX(path, "").Load(context.Background())
	var le *bancas.LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, bancas.ColRenewal, le.Column)
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestXLSX_BadQuantity(t *testing.T) {
	path := writeSheet(t, [][]interface{}{
		header(),
		{"Carlos", "Banca Sé", "-23.5505, -46.6333", "Praça da Sé, 1", "dez", 5, "1", "0", "2025-01-11"},
	})

	_, err := NewXLSX(path, "").Load(context.Background())
	var le *bancas.LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, 2, le.Row)
	assert.Equal(t, bancas.ColBetsPerDay, le.Column)
}

func TestXLSX_EmptyOwner(t *testing.T) {
	path := writeSheet(t, [][]interface{}{
		header(),
		{"", "Banca Sé", "-23.5505, -46.6333", "Praça da Sé, 1", 1, 5, "1", "0", "2025-01-11"},
	})

	_, err := NewXLSX(path, "").Load(context.Background())
	assert.ErrorIs(t, err, ErrEmptyOwner)
}
