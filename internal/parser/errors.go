package parser

import (
	"errors"
	"fmt"
	"io/fs"
)

// Structural failures. A parse that hits any of these returns no record.
var (
	ErrMalformedHeader      = errors.New("malformed header")
	ErrMalformedTemperature = errors.New("malformed temperature")
	ErrMalformedFilename    = errors.New("malformed file name")
	ErrStageTime            = errors.New("invalid stage time")
	ErrMalformedStage       = errors.New("malformed stage marker")
)

// ErrRead wraps failures of the underlying reader that are not path errors
var ErrRead = errors.New("read cook report")

// LineError ties a structural failure to the line it was found on.
// Line is 1-based, matching what an editor shows.
type LineError struct {
	Line   int
	Err    error
	Detail string
}

func (e *LineError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %v: %s", e.Line, e.Err, e.Detail)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

func lineErr(index int, err error, format string, args ...any) error {
	return &LineError{Line: index + 1, Err: err, Detail: fmt.Sprintf(format, args...)}
}

// ErrorKind classifies a parse failure
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindIO
	KindMalformedHeader
	KindMalformedTemperature
	KindMalformedFilename
	KindStageTime
	KindMalformedStage
	KindUnknown
)

// String returns a human-readable representation of the error kind
func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindIO:
		return "IOError"
	case KindMalformedHeader:
		return "MalformedHeaderError"
	case KindMalformedTemperature:
		return "MalformedTemperatureError"
	case KindMalformedFilename:
		return "MalformedFilenameError"
	case KindStageTime:
		return "StageTimeError"
	case KindMalformedStage:
		return "MalformedStageError"
	default:
		return "Unknown"
	}
}

// KindOf reports which kind of failure err is
func KindOf(err error) ErrorKind {
	var pathErr *fs.PathError
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrMalformedHeader):
		return KindMalformedHeader
	case errors.Is(err, ErrMalformedTemperature):
		return KindMalformedTemperature
	case errors.Is(err, ErrMalformedFilename):
		return KindMalformedFilename
	case errors.Is(err, ErrStageTime):
		return KindStageTime
	case errors.Is(err, ErrMalformedStage):
		return KindMalformedStage
	case errors.Is(err, ErrRead), errors.As(err, &pathErr), errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		return KindIO
	default:
		return KindUnknown
	}
}
