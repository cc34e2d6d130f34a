// Movierecs - Item-based Movie Rating Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecs

package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/tomtom215/movierecs/internal/config"
	"github.com/tomtom215/movierecs/internal/models"
)

// writeReport prints report in the requested format.
func writeReport(out io.Writer, report *models.Report, format string) error {
	if format == config.FormatJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	w := bufio.NewWriter(out)
	fmt.Fprintln(w, "Rating predictions: ")
	for _, p := range report.Predictions {
		fmt.Fprintln(w, p.String())
	}
	fmt.Fprintf(w, "Correlation: %v\n", report.Correlation)
	return w.Flush()
}
