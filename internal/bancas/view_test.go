package bancas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDataset(t *testing.T, recs []Record) *Dataset {
	t.Helper()
	ds, err := NewDataset(recs)
	require.NoError(t, err)
	return ds
}

func TestRender_EmptySelection(t *testing.T) {
	v, err := Render(testDataset(t, sampleRecords()), NewSelection(nil, "3"), testNow)
	require.NoError(t, err)
	assert.Empty(t, v.Charts)
	assert.Empty(t, v.Markers)
	assert.Nil(t, v.Summary)
}

func TestRender_EmptySelectionHasNoValidation(t *testing.T) {
	v, err := Render(testDataset(t, sampleRecords()), NewSelection(nil, "abc"), testNow)
	require.NoError(t, err)
	assert.Empty(t, v.Validation)
	assert.Equal(t, "abc", v.DaysInput)
}

func TestRender_InvalidDays(t *testing.T) {
	v, err := Render(testDataset(t, sampleRecords()), NewSelection([]string{"Carlos"}, "abc"), testNow)
	require.NoError(t, err)
	assert.Equal(t, 0, v.SimulatedDays)
	assert.Equal(t, DaysValidationMessage, v.Validation)

	sim, ok := v.Chart(ChartSimulation)
	require.True(t, ok)
	for _, p := range sim.Series[0].Points {
		assert.Zero(t, p.Value)
	}
}

func TestRender_ColorKeyPolicy(t *testing.T) {
	ds := testDataset(t, sampleRecords())

	one, err := Render(ds, NewSelection([]string{"Carlos"}, "2"), testNow)
	require.NoError(t, err)
	assert.Equal(t, ColorByShop, one.ColorBy)
	bets, _ := one.Chart(ChartBets)
	assert.Equal(t, "Banca Sé", bets.Series[0].Points[0].Group)

	many, err := Render(ds, NewSelection([]string{"Carlos", "Ana"}, "2"), testNow)
	require.NoError(t, err)
	assert.Equal(t, ColorByOwner, many.ColorBy)
	bets, _ = many.Chart(ChartBets)
	assert.Equal(t, "Carlos", bets.Series[0].Points[0].Group)
	assert.Equal(t, "Ana", bets.Series[0].Points[2].Group)
}

func TestRender_ChartsAndTitles(t *testing.T) {
	v, err := Render(testDataset(t, sampleRecords()), NewSelection([]string{"Carlos", "Ana"}, "3"), testNow)
	require.NoError(t, err)
	require.Len(t, v.Charts, 4)
	assert.Len(t, v.Markers, 3)
	assert.Equal(t, "Localização das bancas do bicheiro:  Carlos, Ana", v.Caption)

	bets, _ := v.Chart(ChartBets)
	assert.Equal(t, "Porcentagem de apostas por dia em cada banca (Carlos, Ana)", bets.Title)
	var share float64
	for _, p := range bets.Series[0].Points {
		share += p.Share
	}
	assert.InDelta(t, 100, share, 1e-9)

	sim, _ := v.Chart(ChartSimulation)
	assert.Equal(t, "Lucro de apostas referente a simulação de 3 dias (Carlos, Ana)", sim.Title)
	assert.Equal(t, 150.0, sim.Series[0].Points[0].Value)

	profit, _ := v.Chart(ChartProfit)
	require.Len(t, profit.Series, 2)
	assert.Equal(t, "Positive", profit.Series[0].Name)
	assert.Len(t, profit.Series[0].Points, 2)
	assert.Len(t, profit.Series[1].Points, 1)

	require.NotNil(t, v.Summary)
	assert.Equal(t, 3, v.Summary.Shops)
	assert.Equal(t, 60.0, v.Summary.TotalBetsPerDay)
	assert.Equal(t, 1, v.Summary.ExpiredLicenses)
	assert.True(t, v.Summary.ProfitAvailable)
	assert.Equal(t, 360000.0, v.Summary.TotalGrossProfit)
}

func TestRender_DerivationErrorOnlyBlocksAffectedChart(t *testing.T) {
	recs := sampleRecords()
	recs[0].NetWorth = "-"

	v, err := Render(testDataset(t, recs), NewSelection([]string{"Carlos"}, "1"), testNow)
	require.NoError(t, err)

	profit, _ := v.Chart(ChartProfit)
	assert.Error(t, profit.Err())
	assert.NotEmpty(t, profit.Error)
	assert.Empty(t, profit.Series)

	for _, k := range []ChartKind{ChartBets, ChartSimulation, ChartRenewal} {
		c, _ := v.Chart(k)
		assert.NoError(t, c.Err(), k)
		assert.NotEmpty(t, c.Series, k)
	}
	assert.False(t, v.Summary.ProfitAvailable)
	assert.True(t, v.Summary.RenewalAvailable)
}

func TestRender_UnknownOwner(t *testing.T) {
	_, err := Render(testDataset(t, sampleRecords()), NewSelection([]string{"Zé"}, ""), testNow)
	assert.ErrorIs(t, err, ErrUnknownOwner)
}

func TestParseChartKind(t *testing.T) {
	k, ok := ParseChartKind("renewal")
	assert.True(t, ok)
	assert.Equal(t, ChartRenewal, k)
	_, ok = ParseChartKind("pizza")
	assert.False(t, ok)
}
