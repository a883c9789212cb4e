package usecase

import (
	"fmt"
	"strings"
)

const maxListLimit = 500

func requireText(value, field string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
	}
	return value, nil
}

// resolveLimit applies fallback to an unset limit and rejects values
// outside (0, maxListLimit].
func resolveLimit(limit, fallback int) (int, error) {
	if limit == 0 {
		return fallback, nil
	}
	if limit < 0 || limit > maxListLimit {
		return 0, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, maxListLimit)
	}
	return limit, nil
}
