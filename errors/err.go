package errors

import (
	"fmt"
)

var (
	ErrMissingArguments = fmt.Errorf("ddgmcp: missing arguments")
	ErrUnknownTool      = fmt.Errorf("ddgmcp: unknown tool")
	ErrMissingParameter = fmt.Errorf("ddgmcp: missing required parameter")
	ErrUnknownPrompt    = fmt.Errorf("ddgmcp: unknown prompt")
	ErrInvalidConfig    = fmt.Errorf("ddgmcp: invalid config")
)
