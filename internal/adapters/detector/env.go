// Package detector selects the log format from the environment.
package detector

import (
	"os"

	"go.trai.ch/fswatch/internal/core/domain"
	"golang.org/x/term"
)

// LogFormat is the rendering mode of the logger.
type LogFormat int

const (
	// FormatAuto picks a format from the environment.
	FormatAuto LogFormat = iota
	// FormatPretty renders colored, human-readable lines.
	FormatPretty
	// FormatJSON renders one JSON object per line.
	FormatJSON
)

// Format names accepted by ParseLogFormat.
const (
	NameAuto   = "auto"
	NamePretty = "pretty"
	NameJSON   = "json"
)

// ParseLogFormat maps a configured name to a LogFormat. The empty name means auto.
func ParseLogFormat(name string) (LogFormat, error) {
	switch name {
	case NameAuto, "":
		return FormatAuto, nil
	case NamePretty:
		return FormatPretty, nil
	case NameJSON:
		return FormatJSON, nil
	default:
		return FormatAuto, domain.ErrInvalidLogFormat
	}
}

// DetectEnvironment returns the format suited to the process's stderr.
// Interactive terminals get pretty output; pipes and CI get JSON.
func DetectEnvironment() LogFormat {
	return detect(term.IsTerminal(int(os.Stderr.Fd())), os.Getenv("CI"))
}

func detect(isTTY bool, ci string) LogFormat {
	if !isTTY || ci == "true" || ci == "1" {
		return FormatJSON
	}
	return FormatPretty
}

// ResolveFormat applies a configured format on top of auto-detection.
func ResolveFormat(autoDetected, configured LogFormat) LogFormat {
	if configured == FormatAuto {
		return autoDetected
	}
	return configured
}
