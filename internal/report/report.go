// Package report renders cook records for people and for other tools.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"ovenreader/internal/models"
)

// Format selects a rendering
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

const (
	lineWidth  = 79
	timeLayout = "2006-01-02 15:04:05"
)

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", s)
	}
}

// Write renders rec to w in the given format
func Write(w io.Writer, rec models.CookRecord, format Format) error {
	switch format {
	case FormatJSON:
		return JSON(w, rec)
	case FormatYAML:
		return YAML(w, rec)
	default:
		_, err := io.WriteString(w, Text(rec))
		return err
	}
}

// Text returns the human-readable cook summary
func Text(rec models.CookRecord) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(center("File: "+rec.FileName(), lineWidth))
	b.WriteString("\n")
	b.WriteString(banner("[Cook Info]"))

	fmt.Fprintf(&b, "Product: %s\n", rec.Product())
	fmt.Fprintf(&b, "Lot: %s\n", rec.Lot())
	fmt.Fprintf(&b, "Oven: %s\n", rec.Oven())
	fmt.Fprintf(&b, "Program: %s\n", rec.Program())
	fmt.Fprintf(&b, "Start: %s\n", rec.StartTime().Format(timeLayout))
	fmt.Fprintf(&b, "Starting Temps: %s\n", FormatTemps(rec.StartTemps()))
	fmt.Fprintf(&b, "End: %s\n", rec.EndTime().Format(timeLayout))
	fmt.Fprintf(&b, "Ending Temps: %s\n", FormatTemps(rec.EndTemps()))
	fmt.Fprintf(&b, "Duration: %d minutes [%s]\n", rec.Duration(), ToHours(rec.Duration()))
	fmt.Fprintf(&b, "In-weight: %s\n", rec.InWeight())
	fmt.Fprintf(&b, "Out-weight: %s\n", rec.OutWeight())
	fmt.Fprintf(&b, "Yield: %s\n", rec.Yield())

	b.WriteString(banner("[Stage Info]"))
	b.WriteString("\n")
	for _, s := range rec.Stages() {
		fmt.Fprintf(&b, "%s: %d minutes\n", s.Label, int(s.Minutes))
	}
	return b.String()
}

// ToHours renders minutes as "H hr M min"
func ToHours(minutes int) string {
	return fmt.Sprintf("%d hr %d min", minutes/60, minutes%60)
}

// FormatTemps renders a temperature list as "[72.5, 88]"
func FormatTemps(temps []float64) string {
	parts := make([]string, len(temps))
	for i, t := range temps {
		parts[i] = strconv.FormatFloat(t, 'f', -1, 64)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func banner(title string) string {
	rule := strings.Repeat("=", lineWidth)
	return "\n" + rule + "\n" + center(title, lineWidth) + "\n" + rule + "\n"
}

func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// cookDocument is the machine-readable shape of a record
type cookDocument struct {
	FileName   string        `json:"file_name" yaml:"file_name"`
	Product    string        `json:"product" yaml:"product"`
	Lot        string        `json:"lot" yaml:"lot"`
	Oven       string        `json:"oven" yaml:"oven"`
	Program    string        `json:"program" yaml:"program"`
	StartTime  time.Time     `json:"start_time" yaml:"start_time"`
	StartTemps []float64     `json:"start_temps" yaml:"start_temps"`
	EndTime    time.Time     `json:"end_time" yaml:"end_time"`
	EndTemps   []float64     `json:"end_temps" yaml:"end_temps"`
	Duration   int           `json:"duration_minutes" yaml:"duration_minutes"`
	Stages     []stageEntry  `json:"stages" yaml:"stages"`
	InWeight   models.Weight `json:"in_weight" yaml:"in_weight"`
	OutWeight  models.Weight `json:"out_weight" yaml:"out_weight"`
	Yield      models.Yield  `json:"yield" yaml:"yield"`
}

type stageEntry struct {
	Label   string  `json:"label" yaml:"label"`
	Minutes float64 `json:"minutes" yaml:"minutes"`
}

func document(rec models.CookRecord) cookDocument {
	f := rec.Fields()
	stages := make([]stageEntry, 0, len(f.Stages))
	for _, s := range f.Stages {
		stages = append(stages, stageEntry{Label: s.Label, Minutes: s.Minutes})
	}
	return cookDocument{
		FileName:   f.FileName,
		Product:    f.Product,
		Lot:        f.Lot,
		Oven:       f.Oven,
		Program:    f.Program,
		StartTime:  f.StartTime,
		StartTemps: f.StartTemps,
		EndTime:    f.EndTime,
		EndTemps:   f.EndTemps,
		Duration:   f.Duration,
		Stages:     stages,
		InWeight:   f.InWeight,
		OutWeight:  f.OutWeight,
		Yield:      f.Yield,
	}
}

// JSON writes rec as indented JSON. Unspecified weights and yield are null.
func JSON(w io.Writer, rec models.CookRecord) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(document(rec)); err != nil {
		return fmt.Errorf("encode cook record: %w", err)
	}
	return nil
}

// YAML writes rec as a YAML document. Unspecified weights and yield are null.
func YAML(w io.Writer, rec models.CookRecord) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document(rec)); err != nil {
		return fmt.Errorf("encode cook record: %w", err)
	}
	return enc.Close()
}
