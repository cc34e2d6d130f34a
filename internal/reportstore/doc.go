// Movierecs - Item-based Movie Rating Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecs

/*
Package reportstore keeps a history of evaluation report summaries in
BadgerDB so successive runs over the same data can be compared.

Only the summary of a report is persisted; per-probe predictions are
dropped before writing. Entries are keyed by run id:

	report:<run_id> -> JSON(models.Report)

Usage:

	store, err := reportstore.Open("/var/lib/movierecs/reports")
	if err != nil {
	    return err
	}
	defer store.Close()

	previous, err := store.List(ctx, 1)
	...
	err = store.Save(ctx, report)

An empty path opens an in-memory database, which is what the tests use.
*/
package reportstore
