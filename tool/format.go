package tool

import (
	"strconv"
	"strings"

	"github.com/habiliai/ddg-mcp/errors"
	"github.com/mitchellh/mapstructure"
)

// orElse substitutes a placeholder for fields the provider omitted.
func orElse(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}

func dimension(v int) string {
	if v <= 0 {
		return "N/A"
	}
	return strconv.Itoa(v)
}

// decodeArgs maps the loosely-typed argument mapping onto a per-tool
// request struct. Weak typing absorbs JSON numbers arriving as float64.
func decodeArgs(args map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return errors.WithStack(err)
	}
	if err := dec.Decode(args); err != nil {
		return errors.Wrapf(err, "failed to decode arguments")
	}
	return nil
}

// requireKeywords enforces the one required field shared by every tool.
func requireKeywords(keywords string) (string, error) {
	keywords = strings.TrimSpace(keywords)
	if keywords == "" {
		return "", errors.Wrapf(errors.ErrMissingParameter, "keywords")
	}
	return keywords, nil
}
