package process

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fswatch/internal/adapters/logger"
	"go.trai.ch/fswatch/internal/core/ports"
)

// NodeID is the unique identifier for the process launcher Graft node.
const NodeID graft.ID = "adapter.process"

// Factory builds launchers that share a logger.
type Factory struct {
	logger ports.Logger
}

// NewFactory creates a Factory.
func NewFactory(logger ports.Logger) *Factory {
	return &Factory{logger: logger}
}

// New creates a Launcher with opts.
func (f *Factory) New(opts Options) *Launcher {
	return NewLauncher(f.logger, opts)
}

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Factory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(log), nil
		},
	})
}
