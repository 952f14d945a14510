package config

import (
	"os"
	"strconv"

	"github.com/habiliai/ddg-mcp/errors"
)

// SearchConfig holds the catalog-wide defaults advertised in tool schemas
// and substituted for absent optional arguments at dispatch time.
type SearchConfig struct {
	Region     string `yaml:"region"`      // DDG region code, e.g. wt-wt, us-en
	SafeSearch string `yaml:"safesearch"`  // on, moderate, off
	MaxResults int    `yaml:"max_results"` // default result cap per call
	ChatModel  string `yaml:"chat_model"`  // default model for ddg-ai-chat
}

func (c *SearchConfig) applyEnv() {
	envOverride(&c.Region, "DDG_REGION")
	envOverride(&c.SafeSearch, "DDG_SAFESEARCH")
	envOverride(&c.ChatModel, "DDG_CHAT_MODEL")
	if v := os.Getenv("DDG_MAX_RESULTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxResults = n
		}
	}
}

func (c *SearchConfig) validate() error {
	switch c.SafeSearch {
	case "on", "moderate", "off":
	default:
		return errors.Wrapf(errors.ErrInvalidConfig, "invalid safesearch level: %s", c.SafeSearch)
	}
	if c.MaxResults <= 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "max_results must be positive: %d", c.MaxResults)
	}
	return nil
}
