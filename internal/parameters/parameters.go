// Package parameters handles generic configuration Params, a map[string]string that the
// user can set with a configuration string like "ab,max_time=5s,opening=false".
package parameters

import (
	"strconv"
	"strings"
	"time"

	"github.com/janpfeifer/littleGo/internal/generics"
	"github.com/pkg/errors"
)

// Params represent generic configuration parameters.
type Params map[string]string

// ParamTypes are the types GetParamOr and PopParamOr know how to parse.
type ParamTypes interface {
	bool | int | float32 | float64 | string | time.Duration
}

// NewFromConfigString create params from user's configuration string: a comma-separated
// list of keys with optional values ("key" or "key=value"). Empty entries are ignored.
//
// See GetParamOr and PopParamOr to parse values from this map.
func NewFromConfigString(config string) Params {
	params := make(Params)
	for _, part := range strings.Split(config, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, _ := strings.Cut(part, "=") // Only the first '=' separates key from value.
		params[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return params
}

// Keys returns the sorted keys of the params, e.g. to report unused parameters.
func (p Params) Keys() []string {
	keys := make([]string, 0, len(p))
	for key := range generics.SortedKeys(p) {
		keys = append(keys, key)
	}
	return keys
}

// PopParamOr is like GetParamOr, but it also deletes from the params map the retrieved parameter.
func PopParamOr[T ParamTypes](params Params, key string, defaultValue T) (T, error) {
	value, err := GetParamOr(params, key, defaultValue)
	if err != nil {
		return value, err
	}
	delete(params, key)
	return value, nil
}

// GetParamOr attempts to parse a parameter to the given type if the key is present, or returns the defaultValue
// if not.
//
// For bool types, a key without a value is interpreted as true.
func GetParamOr[T ParamTypes](params Params, key string, defaultValue T) (T, error) {
	value, exists := params[key]
	if !exists {
		return defaultValue, nil
	}
	var parsed any
	var err error
	switch any(defaultValue).(type) {
	case string:
		parsed = value
	case int:
		if value == "" {
			return defaultValue, nil
		}
		parsed, err = strconv.Atoi(value)
	case float32:
		if value == "" {
			return defaultValue, nil
		}
		var f64 float64
		f64, err = strconv.ParseFloat(value, 32)
		parsed = float32(f64)
	case float64:
		if value == "" {
			return defaultValue, nil
		}
		parsed, err = strconv.ParseFloat(value, 64)
	case time.Duration:
		if value == "" {
			return defaultValue, nil
		}
		parsed, err = time.ParseDuration(value)
	case bool:
		switch strings.ToLower(value) {
		case "", "true", "1": // Empty value is considered "true"
			parsed = true
		case "false", "0":
			parsed = false
		default:
			err = errors.New("not a bool")
		}
	}
	if err != nil {
		return defaultValue, errors.Wrapf(err, "failed to parse configuration %s=%q to %T", key, value, defaultValue)
	}
	return parsed.(T), nil
}
