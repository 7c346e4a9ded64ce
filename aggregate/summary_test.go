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

package aggregate

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronlmathis/salespipe"
)

func order(customer, product, region string, quantity int, price float64) salespipe.SalesRecord {
	r := salespipe.SalesRecord{
		CustomerID: customer,
		Product:    product,
		Quantity:   quantity,
		UnitPrice:  decimal.NewFromFloat(price),
		Region:     region,
	}
	r.TotalAmount = r.ComputedTotal()
	return r
}

// TestAggregate_EmptyInput tests the explicit empty-input failure.
func TestAggregate_EmptyInput(t *testing.T) {
	_, err := Aggregate(context.Background(), nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, salespipe.ErrEmptyInput)
}

// TestAggregate_SingleRecord tests the degenerate one-record snapshot.
func TestAggregate_SingleRecord(t *testing.T) {
	records := []salespipe.SalesRecord{
		order("CUST-1001", "Laptop", "North", 2, 100),
	}

	result, err := Aggregate(context.Background(), records, nil)
	require.NoError(t, err)

	total := decimal.NewFromInt(200)
	assert.Equal(t, 1, result.OrderCount)
	assert.True(t, result.TotalRevenue.Equal(total))
	assert.True(t, result.AverageOrder.Equal(total))
	assert.True(t, result.MinOrder.Equal(total))
	assert.True(t, result.MaxOrder.Equal(total))
}

// TestAggregate_Snapshot tests totals, extremes, and partitions.
func TestAggregate_Snapshot(t *testing.T) {
	records := []salespipe.SalesRecord{
		order("CUST-1001", "Laptop", "North", 1, 100), // 100
		order("CUST-1002", "Phone", "South", 2, 50),   // 100
		order("CUST-1001", "Tablet", "North", 1, 300), // 300
		order("CUST-1003", "Phone", "East", 4, 25),    // 100
	}

	result, err := Aggregate(context.Background(), records, nil)
	require.NoError(t, err)

	assert.Equal(t, 4, result.OrderCount)
	assert.True(t, result.TotalRevenue.Equal(decimal.NewFromInt(600)), "got %s", result.TotalRevenue)
	assert.True(t, result.AverageOrder.Equal(decimal.NewFromInt(150)))
	assert.True(t, result.MinOrder.Equal(decimal.NewFromInt(100)))
	assert.True(t, result.MaxOrder.Equal(decimal.NewFromInt(300)))

	// Region partition.
	require.Len(t, result.Regions, 3)
	assert.True(t, result.Regions["North"].Revenue.Equal(decimal.NewFromInt(400)))
	assert.Equal(t, 2, result.Regions["North"].Orders)
	assert.Equal(t, 1, result.Regions["South"].Orders)
	assert.Equal(t, 1, result.Regions["East"].Orders)

	// Customer partition.
	require.Len(t, result.Customers, 3)
	assert.True(t, result.Customers["CUST-1001"].TotalSpend.Equal(decimal.NewFromInt(400)))
	assert.True(t, result.Customers["CUST-1002"].TotalSpend.Equal(decimal.NewFromInt(100)))
}

// TestAggregate_RegionPartitionSumsToTotal tests that the sum over the
// region partition equals the whole.
func TestAggregate_RegionPartitionSumsToTotal(t *testing.T) {
	records := []salespipe.SalesRecord{
		order("a", "Laptop", "North", 1, 19.99),
		order("b", "Phone", "South", 3, 7.77),
		order("c", "Tablet", "East", 2, 123.45),
		order("d", "Monitor", "West", 5, 42.10),
		order("e", "Laptop", "North", 1, 0.01),
	}

	result, err := Aggregate(context.Background(), records, nil)
	require.NoError(t, err)

	sum := decimal.Zero
	for _, stats := range result.Regions {
		sum = sum.Add(stats.Revenue)
	}
	assert.True(t, sum.Equal(result.TotalRevenue),
		"regional revenue %s must sum to total %s", sum, result.TotalRevenue)
}

// TestAggregate_FavoriteProductTieBreak tests first-encountered tie-breaking.
func TestAggregate_FavoriteProductTieBreak(t *testing.T) {
	records := []salespipe.SalesRecord{
		order("CUST-1001", "Phone", "North", 2, 10),
		order("CUST-1001", "Tablet", "North", 2, 10),
	}

	result, err := Aggregate(context.Background(), records, nil)
	require.NoError(t, err)
	assert.Equal(t, "Phone", result.Customers["CUST-1001"].FavoriteProduct,
		"equal quantities resolve to the first-encountered product")
}

// TestAggregate_FavoriteProductByQuantity tests highest-quantity selection.
func TestAggregate_FavoriteProductByQuantity(t *testing.T) {
	records := []salespipe.SalesRecord{
		order("CUST-1001", "Phone", "North", 1, 10),
		order("CUST-1001", "Tablet", "North", 5, 10),
		order("CUST-1001", "Phone", "North", 3, 10),
	}

	result, err := Aggregate(context.Background(), records, nil)
	require.NoError(t, err)
	assert.Equal(t, "Tablet", result.Customers["CUST-1001"].FavoriteProduct,
		"Tablet(5) beats Phone(4)")
}

// TestAggregate_RunningCounter tests caller-owned counter threading.
func TestAggregate_RunningCounter(t *testing.T) {
	batch := []salespipe.SalesRecord{
		order("a", "Laptop", "North", 1, 10),
		order("b", "Phone", "South", 1, 20),
	}

	var counter salespipe.RunningCounter
	_, err := Aggregate(context.Background(), batch, &counter)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counter.Total())

	// A second invocation accumulates into the same caller-owned counter.
	_, err = Aggregate(context.Background(), batch[:1], &counter)
	require.NoError(t, err)
	assert.Equal(t, int64(3), counter.Total())
}

// TestRegionAnalyzer tests explicit accumulator state across calls.
func TestRegionAnalyzer(t *testing.T) {
	first := []salespipe.SalesRecord{
		order("a", "Laptop", "North", 1, 100),
		order("b", "Phone", "South", 1, 50),
	}
	second := []salespipe.SalesRecord{
		order("c", "Tablet", "North", 1, 25),
	}

	analyzer := NewRegionAnalyzer()

	stats := analyzer.AnalyzeRegion(first, "North")
	assert.Equal(t, 1, stats.Orders)
	assert.True(t, stats.Revenue.Equal(decimal.NewFromInt(100)))

	// The accumulator carries over between calls.
	stats = analyzer.AnalyzeRegion(second, "North")
	assert.Equal(t, 2, stats.Orders)
	assert.True(t, stats.Revenue.Equal(decimal.NewFromInt(125)))

	analyzer.AnalyzeRegion(first, "South")
	summary := analyzer.Summary()
	require.Len(t, summary, 2)
	assert.Equal(t, 2, summary["North"].Orders)
	assert.Equal(t, 1, summary["South"].Orders)

	// Summary returns a copy, not the owned accumulator.
	summary["North"] = RegionStats{}
	assert.Equal(t, 2, analyzer.Summary()["North"].Orders)
}
