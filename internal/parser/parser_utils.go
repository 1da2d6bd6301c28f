package parser

import (
	"strings"
)

// LineKind is the semantic category of a raw report line
type LineKind int

const (
	KindBanner LineKind = iota
	KindHeader
	KindOven
	KindStageData
	KindInWeight
	KindOutWeight
	KindUnclassified
)

// String returns a human-readable representation of the line kind
func (k LineKind) String() string {
	switch k {
	case KindBanner:
		return "Banner"
	case KindHeader:
		return "Header"
	case KindOven:
		return "Oven"
	case KindStageData:
		return "StageData"
	case KindInWeight:
		return "InWeight"
	case KindOutWeight:
		return "OutWeight"
	default:
		return "Unclassified"
	}
}

const (
	fieldSep        = ","
	stageDataSuffix = ",,"
	inWeightPrefix  = "In-weight:"
	outWeightPrefix = "Out-weight:"

	// header and oven lines sit at fixed positions
	bannerIndex = 0
	headerIndex = 1
	ovenIndex   = 2
)

// Classify decides which category the line at index (0-based) belongs to.
// Position wins over content for the first three lines.
func Classify(index int, line string) LineKind {
	switch index {
	case bannerIndex:
		return KindBanner
	case headerIndex:
		return KindHeader
	case ovenIndex:
		return KindOven
	}

	switch {
	case IsStageData(line):
		return KindStageData
	case strings.HasPrefix(line, inWeightPrefix):
		return KindInWeight
	case strings.HasPrefix(line, outWeightPrefix):
		return KindOutWeight
	default:
		return KindUnclassified
	}
}

// IsStageData checks if a line carries stage data (trimmed form ends with ",,")
func IsStageData(line string) bool {
	return strings.HasSuffix(strings.TrimSpace(line), stageDataSuffix)
}

// SplitFields splits a report line on the field separator
func SplitFields(line string) []string {
	return strings.Split(line, fieldSep)
}

// isDigits reports whether s is a non-empty run of ASCII decimal digits
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
