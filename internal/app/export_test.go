package app

import (
	"context"

	"go.trai.ch/fswatch/internal/core/ports"
)

// NewDisplayWith starts a Display around r.
func NewDisplayWith(ctx context.Context, r ports.Renderer) (*Display, context.Context, error) {
	sessionCtx, cancel := context.WithCancel(ctx)
	return startDisplay(ctx, sessionCtx, cancel, r)
}
