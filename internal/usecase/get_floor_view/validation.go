package get_floor_view

import (
	"fmt"
	"math"
	"strings"
)

// validateRequest проверяет размеры и нормализует строковые фильтры
func validateRequest(req *Request, maxViewport float64) error {
	if req.Width < 0 || req.Height < 0 || math.IsNaN(req.Width) || math.IsNaN(req.Height) {
		return fmt.Errorf("%w: viewport size must be non-negative", ErrInvalidInput)
	}
	if math.IsInf(req.Width, 0) || math.IsInf(req.Height, 0) {
		return fmt.Errorf("%w: viewport size must be finite", ErrInvalidInput)
	}
	if req.Width > maxViewport || req.Height > maxViewport {
		return fmt.Errorf("%w: viewport %gx%g exceeds %g pixels per side", ErrInvalidInput, req.Width, req.Height, maxViewport)
	}

	if req.Day != nil {
		day := strings.TrimSpace(*req.Day)
		if day == "" {
			return fmt.Errorf("%w: day must not be empty", ErrInvalidInput)
		}
		req.Day = &day
	}
	if req.Period != nil {
		period := strings.TrimSpace(*req.Period)
		if period == "" {
			return fmt.Errorf("%w: period must not be empty", ErrInvalidInput)
		}
		req.Period = &period
	}
	return nil
}
