package solver

import (
	"fmt"

	"github.com/planwise/roomplan/internal/model"
)

// ConfigurationError reports malformed solver input: bad room dimensions,
// an opening that leaves its wall, or overlapping openings. It is raised
// before any placement begins and is fatal to the solve call.
type ConfigurationError struct {
	Reason error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %v", e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return e.Reason }

// MandatoryPlacementFailure reports that the bed, the one fully mandatory
// anchor item, could not be placed on any wall under any fallback. The
// solve aborts and produces no layout.
type MandatoryPlacementFailure struct {
	Kind   model.Kind
	Reason string
}

func (e *MandatoryPlacementFailure) Error() string {
	return fmt.Sprintf("cannot place %s: %s", e.Kind, e.Reason)
}
