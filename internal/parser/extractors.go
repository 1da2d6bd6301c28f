package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"ovenreader/internal/models"
)

// firstTempField is the index of the first temperature token on a stage-data line
const firstTempField = 8

// Tokens the controller writes between temperatures that carry no reading
var skipTempTokens = map[string]bool{
	"D":  true,
	"":   true,
	"\n": true,
}

// ExtractTemperatures parses the temperature tokens of a stage-data line.
// Marker, empty and newline tokens are dropped; anything else that is not
// a finite number fails the whole parse.
func ExtractTemperatures(tokens []string) ([]float64, error) {
	temps := make([]float64, 0, len(tokens))
	for _, tok := range tokens {
		if skipTempTokens[tok] {
			continue
		}
		trimmed := strings.TrimSpace(tok)
		if trimmed == "" {
			continue
		}
		val, err := strconv.ParseFloat(trimmed, 64)
		if err != nil || math.IsInf(val, 0) || math.IsNaN(val) {
			return nil, fmt.Errorf("%w: %q", ErrMalformedTemperature, tok)
		}
		temps = append(temps, val)
	}
	return temps, nil
}

// temperatureTokens returns fields[8:] or nothing for short lines
func temperatureTokens(fields []string) []string {
	if len(fields) <= firstTempField {
		return nil
	}
	return fields[firstTempField:]
}

// ExtractWeight returns the weight written after the first ':' of a weight
// line. Missing or non-numeric values are reported as not specified.
func ExtractWeight(line string) models.Weight {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return models.Weight{}
	}
	raw := strings.TrimSpace(line[idx+1:])
	if !isDigits(raw) {
		return models.Weight{}
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return models.Weight{}
	}
	return models.WeightOf(val)
}

// CalculateYield divides out-weight by in-weight. Either weight missing,
// or an in-weight of zero, leaves the yield unspecified.
func CalculateYield(in, out models.Weight) models.Yield {
	inVal, inOK := in.Get()
	outVal, outOK := out.Get()
	if !inOK || !outOK || inVal == 0 {
		return models.Yield{}
	}
	return models.YieldOf(float64(outVal) / float64(inVal))
}
