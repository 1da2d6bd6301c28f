package parser

import (
	"fmt"
	"math"
	"strings"
	"time"

	"ovenreader/internal/models"
)

const reportExt = ".txt"

// SplitFileName derives product and lot from a report file name of the
// form <product>_<lot>.txt. Directory components using either slash
// style are dropped first.
func SplitFileName(path string) (name, product, lot string, err error) {
	name = strings.TrimSpace(path[strings.LastIndexAny(path, `/\`)+1:])

	stem := name
	if len(stem) >= len(reportExt) && strings.EqualFold(stem[len(stem)-len(reportExt):], reportExt) {
		stem = stem[:len(stem)-len(reportExt)]
	}

	product, lot, found := strings.Cut(stem, "_")
	if !found || product == "" || lot == "" {
		return name, "", "", fmt.Errorf("%w: %q is not <product>_<lot>%s", ErrMalformedFilename, name, reportExt)
	}
	return name, product, lot, nil
}

// TotalDuration sums the stage minutes and truncates once
func TotalDuration(stages []models.Stage) int {
	var total float64
	for _, s := range stages {
		total += s.Minutes
	}
	return int(math.Floor(total))
}

// EndTime is the start time moved forward by duration minutes
func EndTime(start time.Time, duration int) time.Time {
	return start.Add(time.Duration(duration) * time.Minute)
}

// reportName is the identity a report's file name carries
type reportName struct {
	FileName string
	Product  string
	Lot      string
}

// reportHeader is what the fixed-position lines of a report contribute
type reportHeader struct {
	Program   string
	StartTime time.Time
	Oven      string
}

// assemble derives the totals and builds the record. It is the only way
// a successful parse produces a CookRecord.
func assemble(name reportName, hdr reportHeader, result StageResult, in, out models.Weight) models.CookRecord {
	duration := TotalDuration(result.Stages)

	return models.NewCookRecord(models.CookFields{
		FileName:   name.FileName,
		Product:    name.Product,
		Lot:        name.Lot,
		Oven:       hdr.Oven,
		Program:    hdr.Program,
		StartTime:  hdr.StartTime,
		StartTemps: result.StartTemps,
		EndTime:    EndTime(hdr.StartTime, duration),
		EndTemps:   result.EndTemps,
		Duration:   duration,
		Stages:     result.Stages,
		InWeight:   in,
		OutWeight:  out,
		Yield:      CalculateYield(in, out),
	})
}
