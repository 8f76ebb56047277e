package bancas

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// layouts aceitos quando a data vem como texto (planilha exportada ou Postgres)
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"02/01/2006",
}

// ParseRenewalDate interpreta a célula de renovação de licença.
// Números são seriais do Excel; o resultado é uma data "sem fuso" expressa em loc.
func ParseRenewalDate(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	var t time.Time
	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		if math.IsNaN(serial) || math.IsInf(serial, 0) || serial <= 0 {
			return time.Time{}, fmt.Errorf("invalid excel serial %v", serial)
		}
		t, err = excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, err
		}
	} else {
		var perr error
		for _, layout := range dateLayouts {
			if t, perr = time.Parse(layout, raw); perr == nil {
				break
			}
		}
		if perr != nil {
			return time.Time{}, fmt.Errorf("unrecognized date format")
		}
	}

	// a planilha não carrega fuso: reinterpreta o relógio de parede em loc
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc), nil
}

// DaysBetween conta os dias inteiros de from até to, truncando em direção a zero.
// Negativo quando to já passou. Usa segundos Unix para não saturar como time.Duration.
func DaysBetween(from, to time.Time) int {
	secs := to.Unix() - from.Unix()
	nanos := int64(to.Nanosecond() - from.Nanosecond())
	// segundos e nanos com o mesmo sinal antes de truncar
	switch {
	case secs > 0 && nanos < 0:
		secs--
	case secs < 0 && nanos > 0:
		secs++
	}
	return int(secs / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60
