// Package coerce turns loosely typed numeric input into numbers. Anything
// that cannot be read as a number becomes zero instead of an error.
package coerce

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

func Float(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return finite(n)
	case float32:
		return finite(float64(n))
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case int32:
		return float64(n)
	case json.Number:
		return parseFloat(string(n))
	case string:
		return parseFloat(n)
	case []byte:
		return parseFloat(string(n))
	default:
		return 0
	}
}

// Int truncates fractional input toward zero, so "2.9" reads as 2.
func Int(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case int32:
		return int(n)
	case string:
		return parseInt(n)
	case json.Number:
		return parseInt(string(n))
	case []byte:
		return parseInt(string(n))
	default:
		return int(Float(v))
	}
}

func String(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(s)
	case json.Number:
		return s.String()
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case bool:
		return strconv.FormatBool(s)
	default:
		return ""
	}
}

func parseFloat(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return finite(f)
}

func parseInt(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return int(parseFloat(s))
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
