// internal/service/common.go
package service

import (
	"fmt"

	"github.com/stackboard/stackboard/internal/domain"
)

// invalidInput wraps a validator error in the domain sentinel so
// handlers map it to a 400.
func invalidInput(err error) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
}

// Pagination defaults shared by list operations.
const (
	DefaultPageLimit = 25
	MaxPageLimit     = 100
)

// NormalizePage clamps offset/limit into sane bounds.
func NormalizePage(offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return offset, limit
}
