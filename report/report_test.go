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
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronlmathis/salespipe/aggregate"
)

func sampleResult() aggregate.Result {
	return aggregate.Result{
		TotalRevenue: decimal.NewFromFloat(600.50),
		AverageOrder: decimal.NewFromFloat(150.13),
		MinOrder:     decimal.NewFromFloat(99.99),
		MaxOrder:     decimal.NewFromFloat(300.01),
		OrderCount:   4,
		Regions: map[string]aggregate.RegionStats{
			"North": {Revenue: decimal.NewFromFloat(400.25), Orders: 2},
			"South": {Revenue: decimal.NewFromFloat(200.25), Orders: 2},
		},
		Customers: map[string]aggregate.CustomerStats{
			"CUST-1001": {TotalSpend: decimal.NewFromFloat(600.50), FavoriteProduct: "Phone"},
		},
	}
}

// TestDisplay tests the human-readable rendering.
func TestDisplay(t *testing.T) {
	var out strings.Builder
	Display(&out, sampleResult())

	text := out.String()
	assert.Contains(t, text, "Sales Dashboard Summary")
	assert.Contains(t, text, "Orders:         4")
	assert.Contains(t, text, "Total revenue:  600.50")
	assert.Contains(t, text, "Average order:  150.13")
	assert.Contains(t, text, "Smallest order: 99.99")
	assert.Contains(t, text, "Largest order:  300.01")
	assert.Contains(t, text, "North")
	assert.Contains(t, text, "CUST-1001")
	assert.Contains(t, text, "Phone")

	// Region lines are sorted by name for stable output.
	assert.Less(t, strings.Index(text, "North"), strings.Index(text, "South"))
}

// TestBuild tests the exportable report text with an explicit timestamp.
func TestBuild(t *testing.T) {
	generatedAt := time.Date(2024, 6, 15, 12, 30, 0, 0, time.UTC)
	text := Build(sampleResult(), generatedAt)

	assert.Contains(t, text, "SALES REPORT")
	assert.Contains(t, text, "Generated at: 2024-06-15T12:30:00Z")
	assert.Contains(t, text, "Total revenue:  600.50")

	// The same inputs always produce the same report.
	assert.Equal(t, text, Build(sampleResult(), generatedAt))
}

// TestExportJSON tests the structured export form.
func TestExportJSON(t *testing.T) {
	generatedAt := time.Date(2024, 6, 15, 12, 30, 0, 0, time.UTC)
	data, err := ExportJSON(sampleResult(), generatedAt)
	require.NoError(t, err)

	var doc struct {
		GeneratedAt time.Time        `json:"generated_at"`
		Summary     aggregate.Result `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.True(t, doc.GeneratedAt.Equal(generatedAt))
	assert.Equal(t, 4, doc.Summary.OrderCount)
	assert.True(t, doc.Summary.TotalRevenue.Equal(decimal.NewFromFloat(600.50)))
	require.Contains(t, doc.Summary.Regions, "North")
	assert.Equal(t, 2, doc.Summary.Regions["North"].Orders)
}
