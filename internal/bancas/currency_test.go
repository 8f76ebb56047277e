package bancas

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripToNumber(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"R$ 1.200,00", 120000},
		{"R$ -1.200,50", 120050},
		{"500", 500},
		{"  7 ", 7},
		{"0", 0},
	}
	for _, c := range cases {
		got, err := StripToNumber(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}
}

func TestStripToNumber_NoDigits(t *testing.T) {
	_, err := StripToNumber("R$ -,")
	assert.ErrorIs(t, err, ErrNoDigits)

	_, err = StripToNumber("")
	assert.ErrorIs(t, err, ErrNoDigits)
}

func TestStripToNumber_Idempotent(t *testing.T) {
	for _, in := range []string{"R$ 1.200,00", "R$ 98.765.432,10", "-3", "1"} {
		once, err := StripToNumber(in)
		require.NoError(t, err)
		twice, err := StripToNumber(strconv.FormatFloat(once, 'f', -1, 64))
		require.NoError(t, err)
		assert.Equal(t, once, twice, in)
	}
}
