package models

import (
	"encoding/json"
	"strconv"
	"time"
)

// Stage is one labeled interval of a cook. Minutes keeps the fractional
// part; truncation happens once when the record is assembled.
type Stage struct {
	Label   string
	Minutes float64
}

// Weight is an optional integer weight. The zero value is "not specified".
type Weight struct {
	value int
	ok    bool
}

// WeightOf returns a specified weight
func WeightOf(v int) Weight {
	return Weight{value: v, ok: true}
}

// Get returns the weight and whether it was specified
func (w Weight) Get() (int, bool) {
	return w.value, w.ok
}

// Valid reports whether the weight was specified
func (w Weight) Valid() bool {
	return w.ok
}

func (w Weight) String() string {
	if !w.ok {
		return "NA"
	}
	return strconv.Itoa(w.value)
}

func (w Weight) MarshalJSON() ([]byte, error) {
	if !w.ok {
		return []byte("null"), nil
	}
	return json.Marshal(w.value)
}

func (w Weight) MarshalYAML() (interface{}, error) {
	if !w.ok {
		return nil, nil
	}
	return w.value, nil
}

// Yield is an optional out/in weight ratio. The zero value is "not specified".
type Yield struct {
	value float64
	ok    bool
}

// YieldOf returns a specified yield
func YieldOf(v float64) Yield {
	return Yield{value: v, ok: true}
}

// Get returns the ratio and whether it was specified
func (y Yield) Get() (float64, bool) {
	return y.value, y.ok
}

// Valid reports whether the yield was specified
func (y Yield) Valid() bool {
	return y.ok
}

func (y Yield) String() string {
	if !y.ok {
		return "NA"
	}
	return strconv.FormatFloat(y.value, 'f', 4, 64)
}

func (y Yield) MarshalJSON() ([]byte, error) {
	if !y.ok {
		return []byte("null"), nil
	}
	return json.Marshal(y.value)
}

func (y Yield) MarshalYAML() (interface{}, error) {
	if !y.ok {
		return nil, nil
	}
	return y.value, nil
}

// CookFields is the complete field set a CookRecord is built from
type CookFields struct {
	FileName   string
	Product    string
	Lot        string
	Oven       string
	Program    string
	StartTime  time.Time
	StartTemps []float64
	EndTime    time.Time
	EndTemps   []float64
	Duration   int
	Stages     []Stage
	InWeight   Weight
	OutWeight  Weight
	Yield      Yield
}

// CookRecord holds the data of one oven run. It cannot be changed after
// NewCookRecord returns; accessors hand out copies of the slices.
type CookRecord struct {
	f CookFields
}

// NewCookRecord copies fields into a new record
func NewCookRecord(fields CookFields) CookRecord {
	fields.StartTemps = cloneFloats(fields.StartTemps)
	fields.EndTemps = cloneFloats(fields.EndTemps)
	fields.Stages = cloneStages(fields.Stages)
	return CookRecord{f: fields}
}

func (c CookRecord) FileName() string { return c.f.FileName }
func (c CookRecord) Product() string { return c.f.Product }
func (c CookRecord) Lot() string { return c.f.Lot }
func (c CookRecord) Oven() string { return c.f.Oven }
func (c CookRecord) Program() string { return c.f.Program }
func (c CookRecord) StartTime() time.Time { return c.f.StartTime }
func (c CookRecord) EndTime() time.Time { return c.f.EndTime }
func (c CookRecord) Duration() int { return c.f.Duration }
func (c CookRecord) InWeight() Weight { return c.f.InWeight }
func (c CookRecord) OutWeight() Weight { return c.f.OutWeight }
func (c CookRecord) Yield() Yield { return c.f.Yield }
func (c CookRecord) StartTemps() []float64 { return cloneFloats(c.f.StartTemps) }
func (c CookRecord) EndTemps() []float64 { return cloneFloats(c.f.EndTemps) }

// Stages returns the stages in chronological order
func (c CookRecord) Stages() []Stage {
	return cloneStages(c.f.Stages)
}

// StageMinutes looks up a stage by label
func (c CookRecord) StageMinutes(label string) (float64, bool) {
	for _, s := range c.f.Stages {
		if s.Label == label {
			return s.Minutes, true
		}
	}
	return 0, false
}

// Fields returns a copy of the record's field set
func (c CookRecord) Fields() CookFields {
	out := c.f
	out.StartTemps = cloneFloats(c.f.StartTemps)
	out.EndTemps = cloneFloats(c.f.EndTemps)
	out.Stages = cloneStages(c.f.Stages)
	return out
}

func cloneFloats(in []float64) []float64 {
	out := make([]float64, len(in))
	copy(out, in)
	return out
}

func cloneStages(in []Stage) []Stage {
	out := make([]Stage, len(in))
	copy(out, in)
	return out
}
