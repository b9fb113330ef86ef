package tui

import (
	"time"

	"go.trai.ch/fswatch/internal/core/domain"
)

// MsgEvent carries one dispatched event.
type MsgEvent struct {
	Kind domain.EventKind
	Path string
	Time time.Time
}

// MsgSessionEnd is sent when the watch session stopped.
type MsgSessionEnd struct {
	Err error
}
