// SPDX-License-Identifier: MIT

package basis

import (
	"fmt"

	codatools "github.com/jsuyu/CoDaTools"
)

// SBP failure kinds, in the order ValidateSBP checks them. Each wraps a root
// taxonomy sentinel, so errors.Is matches either one.
var (
	// ErrSBPShape reports an SBP that is not D×(D−1).
	ErrSBPShape = fmt.Errorf("basis: sbp shape: %w", codatools.ErrInvalidDimension)

	// ErrSBPValues reports an entry outside {−1, 0, +1}.
	ErrSBPValues = fmt.Errorf("basis: sbp values: %w", codatools.ErrInvalidParameter)

	// ErrSBPSigns reports a column without a +1 or without a −1.
	ErrSBPSigns = fmt.Errorf("basis: sbp signs: %w", codatools.ErrNotOrthogonal)

	// ErrSBPOrthogonality reports two partitions that are not orthogonal.
	ErrSBPOrthogonality = fmt.Errorf("basis: sbp orthogonality: %w", codatools.ErrNotOrthogonal)
)
