package process

import (
	"bytes"
	"strings"
	"sync"

	"go.trai.ch/fswatch/internal/core/ports"
)

// logWriter forwards complete lines to the logger as warnings.
type logWriter struct {
	logger ports.Logger
	prefix string

	mu  sync.Mutex
	buf []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")
	if strings.TrimSpace(msg) == "" {
		return
	}
	w.logger.Warn(w.prefix + msg)
}
