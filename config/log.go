package config

type LogConfig struct {
	LogLevel   string `yaml:"log_level"`
	LogHandler string `yaml:"log_handler"`
}

func (c *LogConfig) applyEnv() {
	envOverride(&c.LogLevel, "LOG_LEVEL")
	envOverride(&c.LogHandler, "LOG_HANDLER")
}
