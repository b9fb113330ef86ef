package fswatch

import "go.trai.ch/fswatch/internal/app"

// FromConfig creates a Watch from an fswatch.yaml file. If path is a
// directory, the nearest fswatch.yaml in it or one of its parents is used.
// Options are applied after the file's settings.
func FromConfig(path string, opts ...Option) (*Watch, error) {
	c, err := components()
	if err != nil {
		return nil, err
	}

	cfg, err := c.App.LoadSession(path)
	if err != nil {
		return nil, err
	}

	s := app.SessionFromConfig(cfg)
	w := Paths(cfg.Request.Paths()...)
	w.settings.process = s.Process
	w.settings.pollInterval = s.Loop.Interval
	w.settings.isolate = s.Loop.Isolate
	w.settings.policy = s.Loop.Policy
	w.settings.logFormat = cfg.LogFormat
	return w.With(opts...), nil
}
