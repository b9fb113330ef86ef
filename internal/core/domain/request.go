package domain

import (
	"encoding/json"
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// WatchRequest is the ordered set of paths handed to the watcher process.
// It is immutable once constructed.
type WatchRequest struct {
	paths []string
}

// NewWatchRequest copies the given paths into a request, preserving order.
func NewWatchRequest(paths ...string) WatchRequest {
	return WatchRequest{paths: slices.Clone(paths)}
}

// Paths returns a copy of the configured paths.
func (r WatchRequest) Paths() []string {
	return slices.Clone(r.paths)
}

// Len returns the number of configured paths.
func (r WatchRequest) Len() int {
	return len(r.paths)
}

// Validate rejects requests the watcher process cannot act on.
func (r WatchRequest) Validate() error {
	if len(r.paths) == 0 {
		return ErrEmptyWatchRequest
	}
	for i, p := range r.paths {
		if p == "" {
			return zerr.With(zerr.Wrap(ErrInvalidPath, "path must not be empty"), "index", i)
		}
	}
	return nil
}

// Argument returns the JSON array passed to the watcher process.
func (r WatchRequest) Argument() (string, error) {
	paths := r.paths
	if paths == nil {
		// Encode as [] rather than null.
		paths = []string{}
	}
	data, err := json.Marshal(paths)
	if err != nil {
		return "", zerr.Wrap(err, "failed to encode watch paths")
	}
	return string(data), nil
}

// Fingerprint returns a short stable identifier for the request,
// used to correlate log lines and spans of one session.
func (r WatchRequest) Fingerprint() string {
	digest := xxhash.New()
	for _, p := range r.paths {
		_, _ = digest.WriteString(p)
		_, _ = digest.Write([]byte{0})
	}
	return strconv.FormatUint(digest.Sum64(), 16)
}
