package parser

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"ovenreader/internal/models"
)

const (
	headerProgramField = 1
	headerStartField   = 3
	ovenIDField        = 1

	// The oven field reads e.g. "Oven:V5"; the id follows a fixed prefix
	ovenPrefixLen = 5

	headerTimeLayout = "1-2-2006 15:04:05"

	maxLineSize = 512 * 1024
)

// Parser turns oven controller reports into cook records. It only holds
// options, so one Parser may serve any number of concurrent callers.
type Parser struct {
	location *time.Location
	logger   *slog.Logger
}

// Option configures a Parser
type Option func(*Parser)

// WithLocation sets the time zone the header timestamp is read in
func WithLocation(loc *time.Location) Option {
	return func(p *Parser) {
		if loc != nil {
			p.location = loc
		}
	}
}

// WithLogger sets the logger used for debug tracing
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New creates a parser
func New(opts ...Option) *Parser {
	p := &Parser{
		location: time.UTC,
		logger:   slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse reads the report at path with default options
func Parse(path string) (models.CookRecord, error) {
	return New().Parse(path)
}

// Parse reads the report at path. The file is closed on every return path.
func (p *Parser) Parse(path string) (models.CookRecord, error) {
	// The file name is checked before touching the file
	if _, _, _, err := SplitFileName(path); err != nil {
		return models.CookRecord{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return models.CookRecord{}, fmt.Errorf("open cook report: %w", err)
	}
	defer f.Close()

	return p.ParseReader(path, f)
}

// ParseReader parses a report read from r. name supplies the file name
// product and lot come from.
func (p *Parser) ParseReader(name string, r io.Reader) (models.CookRecord, error) {
	fileName, product, lot, err := SplitFileName(name)
	if err != nil {
		return models.CookRecord{}, err
	}

	lines, err := ReadLines(r)
	if err != nil {
		return models.CookRecord{}, err
	}

	return p.parseLines(reportName{FileName: fileName, Product: product, Lot: lot}, lines)
}

// ReadLines reads all of r into memory, one entry per line
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, maxLineSize)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	return lines, nil
}

// parseLines scans the report once, top to bottom
func (p *Parser) parseLines(name reportName, lines []string) (models.CookRecord, error) {
	log := p.logger.With("file", name.FileName)

	if len(lines) <= ovenIndex {
		return models.CookRecord{}, fmt.Errorf("%w: expected at least %d lines, got %d", ErrMalformedHeader, ovenIndex+1, len(lines))
	}

	var (
		hdr     reportHeader
		inW     models.Weight
		outW    models.Weight
		machine = NewStateMachine(log)
	)

	for i, line := range lines {
		kind := Classify(i, line)
		log.Debug("line classified", "line", i+1, "kind", kind.String())

		switch kind {
		case KindHeader:
			program, start, err := p.parseHeader(i, line)
			if err != nil {
				return models.CookRecord{}, err
			}
			hdr.Program, hdr.StartTime = program, start

		case KindOven:
			oven, err := parseOven(i, line)
			if err != nil {
				return models.CookRecord{}, err
			}
			hdr.Oven = oven

		case KindStageData:
			ev, err := NewStageEvent(i, line)
			if err != nil {
				return models.CookRecord{}, err
			}
			if err := machine.ProcessEvent(ev); err != nil {
				return models.CookRecord{}, err
			}

		case KindInWeight:
			inW = ExtractWeight(line)

		case KindOutWeight:
			outW = ExtractWeight(line)
		}
	}

	rec := assemble(name, hdr, machine.Finalize(), inW, outW)
	log.Debug("record assembled",
		"stages", len(rec.Stages()),
		"duration", rec.Duration(),
		"yield", rec.Yield().String())
	return rec, nil
}

// parseHeader reads program id and start time from the header line
func (p *Parser) parseHeader(index int, line string) (string, time.Time, error) {
	fields := SplitFields(line)
	if len(fields) <= headerStartField {
		return "", time.Time{}, lineErr(index, ErrMalformedHeader, "expected at least %d fields, got %d", headerStartField+1, len(fields))
	}

	raw := strings.TrimSpace(strings.ReplaceAll(fields[headerStartField], "/", "-"))
	start, err := time.ParseInLocation(headerTimeLayout, raw, p.location)
	if err != nil {
		return "", time.Time{}, lineErr(index, ErrMalformedHeader, "start time %q is not MM/DD/YYYY HH:MM:SS", fields[headerStartField])
	}
	return strings.TrimSpace(fields[headerProgramField]), start, nil
}

// parseOven reads the oven id from the oven line
func parseOven(index int, line string) (string, error) {
	fields := SplitFields(line)
	if len(fields) <= ovenIDField {
		return "", lineErr(index, ErrMalformedHeader, "oven line has no id field")
	}
	field := fields[ovenIDField]
	if len(field) < ovenPrefixLen {
		return "", lineErr(index, ErrMalformedHeader, "oven field %q is shorter than its prefix", field)
	}
	return strings.TrimSpace(field[ovenPrefixLen:]), nil
}
