package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ovenreader/internal/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		index int
		line  string
		want  LineKind
	}{
		{0, "anything,,", KindBanner},
		{1, "Program,3,Start,01/01/2020 00:00:00", KindHeader},
		{1, "00:30,1,2,,", KindHeader},
		{2, "Oven,Oven:V5", KindOven},
		{2, "In-weight: 4", KindOven},
		{3, "00:30,1,2,0,0,0,0,0,D,150.0,,", KindStageData},
		{3, "00:30,1,2,,  \r", KindStageData},
		{4, "In-weight: 420", KindInWeight},
		{4, "Out-weight: 110", KindOutWeight},
		{4, " In-weight: 420", KindUnclassified},
		{4, "Time,Step,Stage,T1,", KindUnclassified},
		{4, "", KindUnclassified},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.index, tt.line), "index %d line %q", tt.index, tt.line)
	}
}

func TestExtractTemperatures(t *testing.T) {
	temps, err := ExtractTemperatures([]string{"D", "72.5", "", "88.0", "\n"})
	require.NoError(t, err)
	assert.Equal(t, []float64{72.5, 88.0}, temps)

	temps, err = ExtractTemperatures(nil)
	require.NoError(t, err)
	assert.Empty(t, temps)

	temps, err = ExtractTemperatures([]string{" 101.5", "-3", "\r"})
	require.NoError(t, err)
	assert.Equal(t, []float64{101.5, -3}, temps)

	for _, bad := range []string{"abc", "NaN", "+Inf", "d"} {
		_, err := ExtractTemperatures([]string{"72.5", bad})
		assert.ErrorIs(t, err, ErrMalformedTemperature, bad)
	}
}

func TestExtractWeight(t *testing.T) {
	tests := []struct {
		line   string
		want   int
		wantOK bool
	}{
		{"In-weight: 420", 420, true},
		{"Out-weight:110", 110, true},
		{"In-weight:   7  ", 7, true},
		{"In-weight: abc", 0, false},
		{"In-weight: -5", 0, false},
		{"In-weight: 4.5", 0, false},
		{"In-weight:", 0, false},
		{"In-weight: 99999999999999999999999", 0, false},
	}

	for _, tt := range tests {
		got, ok := ExtractWeight(tt.line).Get()
		assert.Equal(t, tt.wantOK, ok, tt.line)
		assert.Equal(t, tt.want, got, tt.line)
	}
}

func TestCalculateYield(t *testing.T) {
	y, ok := CalculateYield(models.WeightOf(420), models.WeightOf(110)).Get()
	require.True(t, ok)
	assert.InDelta(t, 0.2619, y, 1e-4)

	assert.False(t, CalculateYield(models.Weight{}, models.WeightOf(110)).Valid())
	assert.False(t, CalculateYield(models.WeightOf(420), models.Weight{}).Valid())
	assert.False(t, CalculateYield(models.WeightOf(0), models.WeightOf(110)).Valid())
}

func TestTotalDurationTruncatesOnce(t *testing.T) {
	stages := []models.Stage{
		{Label: "Stage 1", Minutes: 10.4},
		{Label: "Stage 2", Minutes: 10.4},
		{Label: "Stage 3", Minutes: 10.4},
	}
	// Per-stage truncation would give 30
	assert.Equal(t, 31, TotalDuration(stages))
	assert.Equal(t, 0, TotalDuration(nil))
}
