package config

type ServerConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Host/Port are only used by the SSE transport.
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}
