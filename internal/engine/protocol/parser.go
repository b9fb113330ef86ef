// Package protocol parses the line protocol spoken by the watcher process.
//
// Each record has the form "<eventKind> - <path>". The kind is matched
// exactly; the path is trimmed of surrounding whitespace.
package protocol

import (
	"fmt"
	"strings"

	"go.trai.ch/fswatch/internal/core/domain"
	"go.trai.ch/fswatch/internal/core/ports"
	"go.trai.ch/zerr"
)

// ViolationPolicy selects how records without a separator are handled.
type ViolationPolicy uint8

const (
	// ReportViolations turns a malformed record into an unknown event with an
	// empty path, so catch-all listeners still see it.
	ReportViolations ViolationPolicy = iota
	// RejectViolations fails the parse with domain.ErrProtocolViolation.
	RejectViolations
)

// Parser converts drained lines into events.
type Parser struct {
	policy ViolationPolicy
	logger ports.Logger
}

// NewParser creates a Parser. The logger receives a warning for every
// malformed record reported under ReportViolations; it may be nil.
func NewParser(policy ViolationPolicy, logger ports.Logger) *Parser {
	return &Parser{policy: policy, logger: logger}
}

// Parse converts lines into events in encounter order. Empty lines are skipped.
// Under RejectViolations the events parsed before the malformed record are
// returned together with the error.
func (p *Parser) Parse(lines []string) ([]domain.Event, error) {
	events := make([]domain.Event, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}

		event, ok := ParseLine(line)
		if !ok {
			if p.policy == RejectViolations {
				return events, zerr.With(zerr.Wrap(domain.ErrProtocolViolation, "record has no kind separator"), "line", line)
			}
			if p.logger != nil {
				p.logger.Warn(fmt.Sprintf("reporting malformed watcher record %q", line))
			}
		}
		events = append(events, event)
	}
	return events, nil
}

// ParseLine parses a single record. For a record without a separator it
// returns an unknown, malformed event carrying the whole line as its kind
// token, and false.
func ParseLine(line string) (domain.Event, bool) {
	token, rawPath, found := strings.Cut(line, domain.RecordSeparator)
	if !found {
		return domain.Event{
			Kind:      domain.UnknownKind(line),
			Line:      line,
			Malformed: true,
		}, false
	}
	return domain.Event{
		Kind: domain.ParseEventKind(token),
		Path: strings.TrimSpace(rawPath),
		Line: line,
	}, true
}

// Format renders an event back into its wire form.
func Format(kind domain.EventKind, path string) string {
	return kind.String() + domain.RecordSeparator + path
}
