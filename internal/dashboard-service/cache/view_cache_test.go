package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/radieske/bancas-dashboard/internal/bancas"
)

func TestKey(t *testing.T) {
	day := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	a := Key(bancas.NewSelection([]string{"Ana", "Carlos"}, "3"), day)

	assert.Equal(t, a, Key(bancas.NewSelection([]string{"Ana", "Carlos"}, "3"), day.Add(5*time.Hour)))
	assert.NotEqual(t, a, Key(bancas.NewSelection([]string{"Carlos", "Ana"}, "3"), day))
	assert.NotEqual(t, a, Key(bancas.NewSelection([]string{"Ana", "Carlos"}, "4"), day))
	assert.NotEqual(t, a, Key(bancas.NewSelection([]string{"Ana", "Carlos"}, "3"), day.AddDate(0, 0, 1)))
	assert.Contains(t, a, "dashboard:view:")

	// nomes que só diferem na separação não colidem
	assert.NotEqual(t,
		Key(bancas.NewSelection([]string{"AnaCarlos"}, ""), day),
		Key(bancas.NewSelection([]string{"Ana", "Carlos"}, ""), day))
}
