package bancas

import (
	"errors"
	"fmt"
)

// ErrUnknownOwner indica um dono que não existe no índice carregado
var ErrUnknownOwner = errors.New("unknown owner")

// ErrNoDigits indica um valor monetário sem nenhum dígito após a limpeza
var ErrNoDigits = errors.New("no digits after stripping")

// LoadError é fatal: sem dados carregados não existe dashboard
type LoadError struct {
	Source string // arquivo ou "postgres"
	Row    int    // 0 quando o erro não é de uma linha específica
	Column string
	Err    error
}

func (e *LoadError) Error() string {
	switch {
	case e.Row > 0 && e.Column != "":
		return fmt.Sprintf("load %s: row %d column %q: %v", e.Source, e.Row, e.Column, e.Err)
	case e.Column != "":
		return fmt.Sprintf("load %s: column %q: %v", e.Source, e.Column, e.Err)
	default:
		return fmt.Sprintf("load %s: %v", e.Source, e.Err)
	}
}

func (e *LoadError) Unwrap() error { return e.Err }

// CoordinateParseError é fatal na construção do índice de donos
type CoordinateParseError struct {
	Owner string
	Row   int
	Value string
	Err   error
}

func (e *CoordinateParseError) Error() string {
	return fmt.Sprintf("coordinates of %q (row %d): invalid value %q: %v", e.Owner, e.Row, e.Value, e.Err)
}

func (e *CoordinateParseError) Unwrap() error { return e.Err }

// ValidationError é recuperável e exibida ao usuário (campo de dias simulados)
type ValidationError struct {
	Field   string
	Input   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Field, e.Input, e.Message)
}

// DerivationError bloqueia apenas os gráficos que dependem do campo com problema
type DerivationError struct {
	Row   int
	Shop  string
	Field string
	Value string
	Err   error
}

func (e *DerivationError) Error() string {
	return fmt.Sprintf("derive row %d (%s): %s %q: %v", e.Row, e.Shop, e.Field, e.Value, e.Err)
}

func (e *DerivationError) Unwrap() error { return e.Err }
