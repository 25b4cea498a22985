package get_occupancy

import (
	"fmt"
	"strings"
)

// validateRequest проверяет, что день и урок заданы
func validateRequest(req *Request) error {
	req.Day = strings.TrimSpace(req.Day)
	req.Period = strings.TrimSpace(req.Period)

	if req.Day == "" {
		return fmt.Errorf("%w: day is required", ErrInvalidInput)
	}
	if req.Period == "" {
		return fmt.Errorf("%w: period is required", ErrInvalidInput)
	}
	return nil
}
