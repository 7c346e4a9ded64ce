//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Copyright (C) 2025 Aaron Mathis aaron.mathis@gmail.com
//
// This file is part of SalesPipe.
//
// SalesPipe is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// SalesPipe is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with SalesPipe. If not, see https://www.gnu.org/licenses/.

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/aaronlmathis/salespipe/aggregate"
)

// Package report renders aggregation results. It offers two distinct
// operations: Display writes human-readable text to a writer and returns
// nothing usable to the caller, while Build returns the formatted report
// text for further processing. Both are pure functions of their inputs;
// Build takes its timestamp explicitly instead of reading a clock.

// Display writes a multi-line, human-readable summary of the result to w.
// Region and customer breakdowns are sorted by name so output is stable.
func Display(w io.Writer, res aggregate.Result) {
	fmt.Fprintln(w, "Sales Dashboard Summary")
	fmt.Fprintln(w, "=======================")
	fmt.Fprintf(w, "Orders:         %d\n", res.OrderCount)
	fmt.Fprintf(w, "Total revenue:  %s\n", res.TotalRevenue.StringFixed(2))
	fmt.Fprintf(w, "Average order:  %s\n", res.AverageOrder.StringFixed(2))
	fmt.Fprintf(w, "Smallest order: %s\n", res.MinOrder.StringFixed(2))
	fmt.Fprintf(w, "Largest order:  %s\n", res.MaxOrder.StringFixed(2))

	fmt.Fprintln(w, "\nRevenue by region:")
	for _, region := range sortedKeys(res.Regions) {
		stats := res.Regions[region]
		fmt.Fprintf(w, "  %-8s %12s  (%d orders)\n", region, stats.Revenue.StringFixed(2), stats.Orders)
	}

	fmt.Fprintln(w, "\nCustomers:")
	for _, id := range sortedKeys(res.Customers) {
		stats := res.Customers[id]
		fmt.Fprintf(w, "  %-12s spend %12s  favorite %s\n", id, stats.TotalSpend.StringFixed(2), stats.FavoriteProduct)
	}
}

// Build returns the exportable report text for the result. The generation
// timestamp is supplied by the caller, never read from an ambient clock.
func Build(res aggregate.Result, generatedAt time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "SALES REPORT\nGenerated at: %s\n\n", generatedAt.Format(time.RFC3339))
	Display(&b, res)
	return b.String()
}

// document is the structured export form of a report.
type document struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Summary     aggregate.Result `json:"summary"`
}

// ExportJSON renders the result as an indented JSON document for callers
// that want to persist or transmit the report.
func ExportJSON(res aggregate.Result, generatedAt time.Time) ([]byte, error) {
	data, err := json.MarshalIndent(document{GeneratedAt: generatedAt, Summary: res}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("report: failed to marshal report: %w", err)
	}
	return data, nil
}

// sortedKeys returns the map's keys in ascending order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
