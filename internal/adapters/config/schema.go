package config

// Sessionfile represents the structure of the fswatch.yaml configuration file.
type Sessionfile struct {
	Paths            []string `yaml:"paths"`
	Interpreter      string   `yaml:"interpreter"`
	Script           string   `yaml:"script"`
	PollInterval     string   `yaml:"poll_interval"`
	TerminateGrace   string   `yaml:"terminate_grace"`
	PTY              bool     `yaml:"pty"`
	StrictProtocol   bool     `yaml:"strict_protocol"`
	IsolateListeners bool     `yaml:"isolate_listeners"`
	LogFormat        string   `yaml:"log_format"`
}
