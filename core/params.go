package core

import (
	"fmt"
	"strings"
)

const (
	ParamDescription = "description"
	ParamFileName    = "file_name"
)

// Clone returns a fresh map so callers never share state across calls.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for key, value := range p {
		out[key] = value
	}
	return out
}

// String returns the string form of key unchanged. Missing, nil and blank
// values report false.
func (p Params) String(key string) (string, bool) {
	if len(p) == 0 {
		return "", false
	}
	value, ok := p[key]
	if !ok || value == nil {
		return "", false
	}
	text := fmt.Sprint(value)
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	return text, true
}

// Query flattens the params into query string values. Blank keys and nil
// values are dropped.
func (p Params) Query() map[string]string {
	query := map[string]string{}
	for key, value := range p {
		key = strings.TrimSpace(key)
		if key == "" || value == nil {
			continue
		}
		query[key] = fmt.Sprint(value)
	}
	return query
}
