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
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/aaronlmathis/salespipe"
)

// Package aggregate computes summary statistics over cleaned record
// sequences. Aggregation is a single sequential scan; per-customer favorite
// products resolve ties by first-encountered order, so results are stable
// for a given input ordering.

// RegionStats holds the revenue and order count for one region.
type RegionStats struct {
	Revenue decimal.Decimal `json:"revenue"`
	Orders  int             `json:"orders"`
}

// CustomerStats holds the total spend and favorite product for one customer.
// The favorite product is the product with the highest summed quantity, ties
// broken by the order products were first encountered.
type CustomerStats struct {
	TotalSpend      decimal.Decimal `json:"total_spend"`
	FavoriteProduct string          `json:"favorite_product"`
}

// Result is an immutable snapshot of one aggregation pass.
type Result struct {
	TotalRevenue decimal.Decimal          `json:"total_revenue"`
	AverageOrder decimal.Decimal          `json:"average_order"`
	MinOrder     decimal.Decimal          `json:"min_order"`
	MaxOrder     decimal.Decimal          `json:"max_order"`
	OrderCount   int                      `json:"order_count"`
	Regions      map[string]RegionStats   `json:"regions"`
	Customers    map[string]CustomerStats `json:"customers"`
}

// customerAccum gathers per-customer state during the scan. products holds
// each product's first-encountered position so favorite ties resolve in
// encounter order.
type customerAccum struct {
	spend      decimal.Decimal
	quantities map[string]int
	products   []string
}

// Aggregate computes summary statistics over a cleaned record sequence.
//
// The caller-supplied counter is incremented by the number of records
// aggregated; pass nil to skip counting. Returns ErrEmptyInput when the
// sequence is empty, so callers never have to interpret a zeroed Result.
func Aggregate(ctx context.Context, records []salespipe.SalesRecord, counter *salespipe.RunningCounter) (Result, error) {
	if len(records) == 0 {
		return Result{}, fmt.Errorf("aggregate: no records to aggregate: %w", salespipe.ErrEmptyInput)
	}

	count := NewCount()
	total := NewSum(TotalAmount)
	average := NewAvg(TotalAmount)
	minOrder := NewMin(TotalAmount)
	maxOrder := NewMax(TotalAmount)
	metrics := []Aggregator{count, total, average, minOrder, maxOrder}

	regions := make(map[string]RegionStats)
	customers := make(map[string]*customerAccum)

	for _, record := range records {
		for _, metric := range metrics {
			if err := metric.Add(ctx, record); err != nil {
				return Result{}, err
			}
		}

		stats := regions[record.Region]
		stats.Revenue = stats.Revenue.Add(record.TotalAmount)
		stats.Orders++
		regions[record.Region] = stats

		accum, ok := customers[record.CustomerID]
		if !ok {
			accum = &customerAccum{quantities: make(map[string]int)}
			customers[record.CustomerID] = accum
		}
		accum.spend = accum.spend.Add(record.TotalAmount)
		if _, seen := accum.quantities[record.Product]; !seen {
			accum.products = append(accum.products, record.Product)
		}
		accum.quantities[record.Product] += record.Quantity
	}

	result := Result{
		OrderCount: count.Value(),
		Regions:    regions,
		Customers:  make(map[string]CustomerStats, len(customers)),
	}

	var err error
	if result.TotalRevenue, err = total.Result(); err != nil {
		return Result{}, err
	}
	if result.AverageOrder, err = average.Result(); err != nil {
		return Result{}, err
	}
	if result.MinOrder, err = minOrder.Result(); err != nil {
		return Result{}, err
	}
	if result.MaxOrder, err = maxOrder.Result(); err != nil {
		return Result{}, err
	}

	for id, accum := range customers {
		result.Customers[id] = CustomerStats{
			TotalSpend:      accum.spend,
			FavoriteProduct: favoriteProduct(accum),
		}
	}

	if counter != nil {
		counter.Add(len(records))
	}
	return result, nil
}

// favoriteProduct picks the product with the highest summed quantity.
// Iterating first-encountered order and replacing only on a strictly higher
// quantity keeps the earliest product on ties.
func favoriteProduct(accum *customerAccum) string {
	var favorite string
	best := -1
	for _, product := range accum.products {
		if qty := accum.quantities[product]; qty > best {
			favorite = product
			best = qty
		}
	}
	return favorite
}

// RegionAnalyzer accumulates per-region statistics across successive calls.
// It replaces closure-captured accumulator state with an explicit object the
// caller owns: the accumulator map is a field, and Summary snapshots it.
type RegionAnalyzer struct {
	stats map[string]RegionStats
}

// NewRegionAnalyzer creates an analyzer with an empty accumulator.
func NewRegionAnalyzer() *RegionAnalyzer {
	return &RegionAnalyzer{stats: make(map[string]RegionStats)}
}

// AnalyzeRegion folds the given records for one region into the accumulator
// and returns that region's cumulative stats. Records from other regions are
// ignored, so callers can pass the full cleaned sequence per region.
func (a *RegionAnalyzer) AnalyzeRegion(records []salespipe.SalesRecord, region string) RegionStats {
	stats := a.stats[region]
	for _, record := range records {
		if record.Region != region {
			continue
		}
		stats.Revenue = stats.Revenue.Add(record.TotalAmount)
		stats.Orders++
	}
	a.stats[region] = stats
	return stats
}

// Summary returns a copy of the accumulated per-region statistics.
func (a *RegionAnalyzer) Summary() map[string]RegionStats {
	summary := make(map[string]RegionStats, len(a.stats))
	for region, stats := range a.stats {
		summary[region] = stats
	}
	return summary
}
