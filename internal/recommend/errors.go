// Movierecs - Item-based Movie Rating Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecs

package recommend

import "errors"

var (
	// ErrUnknownEntity is returned when a user or movie id is not in the loaded data.
	ErrUnknownEntity = errors.New("user or movie id not in database")

	// ErrLengthMismatch is returned by Correlation for sequences of unequal length.
	ErrLengthMismatch = errors.New("predicted and actual ratings differ in length")
)
