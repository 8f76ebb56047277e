package source

import (
	"context"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/radieske/bancas-dashboard/internal/bancas"
)

// XLSX lê a planilha de bancas; Sheet vazio = primeira aba
type XLSX struct {
	Path  string
	Sheet string
}

// NewXLSX cria o loader de planilha
func NewXLSX(path, sheet string) *XLSX { return &XLSX{Path: path, Sheet: sheet} }

// Load lê a aba inteira; qualquer problema invalida a carga toda
func (x *XLSX) Load(ctx context.Context) ([]bancas.Record, error) {
	f, err := excelize.OpenFile(x.Path)
	if err != nil {
		return nil, &bancas.LoadError{Source: x.Path, Err: err}
	}
	defer f.Close()

	sheet := x.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	// valores brutos: datas chegam como serial do Excel, texto chega como está
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &bancas.LoadError{Source: x.Path, Err: err}
	}
	if len(rows) == 0 {
		return nil, &bancas.LoadError{Source: x.Path, Err: ErrEmptySheet}
	}

	header := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		header[strings.TrimSpace(name)] = i
	}
	for _, col := range bancas.RequiredColumns {
		if _, ok := header[col]; !ok {
			return nil, &bancas.LoadError{Source: x.Path, Column: col, Err: ErrMissingColumn}
		}
	}

	var out []bancas.Record
	for i, cells := range rows[1:] {
		if err := ctx.Err(); err != nil {
			return nil, &bancas.LoadError{Source: x.Path, Err: err}
		}
		if blank(cells) {
			continue
		}
		cell := func(col string) string {
			if j := header[col]; j < len(cells) {
				return cells[j]
			}
			return ""
		}
		r, err := recordFromCells(x.Path, i+2, cell)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
