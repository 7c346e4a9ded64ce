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

// Aggregator defines the interface for single-metric aggregation.
// Aggregators consume records one at a time and produce a decimal result.
type Aggregator interface {
	// Add processes a record for aggregation.
	Add(ctx context.Context, record salespipe.SalesRecord) error
	// Result returns the aggregated metric value.
	Result() (decimal.Decimal, error)
	// Reset clears the aggregator state for reuse.
	Reset()
}

// Selector extracts the decimal value an aggregator operates on.
type Selector func(record salespipe.SalesRecord) decimal.Decimal

// TotalAmount selects the record's TotalAmount field.
func TotalAmount(record salespipe.SalesRecord) decimal.Decimal {
	return record.TotalAmount
}

// Count counts records.
type Count struct {
	count int64
}

// NewCount creates a count aggregator.
func NewCount() *Count { return &Count{} }

func (c *Count) Add(ctx context.Context, record salespipe.SalesRecord) error {
	c.count++
	return nil
}

func (c *Count) Result() (decimal.Decimal, error) {
	return decimal.NewFromInt(c.count), nil
}

func (c *Count) Reset() { c.count = 0 }

// Value returns the count as an int.
func (c *Count) Value() int { return int(c.count) }

// Sum sums the selected value across records.
type Sum struct {
	selector Selector
	sum      decimal.Decimal
}

// NewSum creates a sum aggregator over the selected value.
func NewSum(selector Selector) *Sum {
	return &Sum{selector: selector}
}

func (s *Sum) Add(ctx context.Context, record salespipe.SalesRecord) error {
	s.sum = s.sum.Add(s.selector(record))
	return nil
}

func (s *Sum) Result() (decimal.Decimal, error) {
	return s.sum, nil
}

func (s *Sum) Reset() { s.sum = decimal.Zero }

// Avg averages the selected value across records, rounded to two decimals.
type Avg struct {
	selector Selector
	sum      decimal.Decimal
	count    int64
}

// NewAvg creates an average aggregator over the selected value.
func NewAvg(selector Selector) *Avg {
	return &Avg{selector: selector}
}

func (a *Avg) Add(ctx context.Context, record salespipe.SalesRecord) error {
	a.sum = a.sum.Add(a.selector(record))
	a.count++
	return nil
}

func (a *Avg) Result() (decimal.Decimal, error) {
	if a.count == 0 {
		return decimal.Zero, fmt.Errorf("aggregate: average of no records: %w", salespipe.ErrEmptyInput)
	}
	return a.sum.Div(decimal.NewFromInt(a.count)).Round(2), nil
}

func (a *Avg) Reset() {
	a.sum = decimal.Zero
	a.count = 0
}

// Min tracks the minimum selected value.
type Min struct {
	selector Selector
	min      decimal.Decimal
	set      bool
}

// NewMin creates a minimum aggregator over the selected value.
func NewMin(selector Selector) *Min {
	return &Min{selector: selector}
}

func (m *Min) Add(ctx context.Context, record salespipe.SalesRecord) error {
	value := m.selector(record)
	if !m.set || value.LessThan(m.min) {
		m.min = value
		m.set = true
	}
	return nil
}

func (m *Min) Result() (decimal.Decimal, error) {
	if !m.set {
		return decimal.Zero, fmt.Errorf("aggregate: minimum of no records: %w", salespipe.ErrEmptyInput)
	}
	return m.min, nil
}

func (m *Min) Reset() {
	m.min = decimal.Zero
	m.set = false
}

// Max tracks the maximum selected value.
type Max struct {
	selector Selector
	max      decimal.Decimal
	set      bool
}

// NewMax creates a maximum aggregator over the selected value.
func NewMax(selector Selector) *Max {
	return &Max{selector: selector}
}

func (m *Max) Add(ctx context.Context, record salespipe.SalesRecord) error {
	value := m.selector(record)
	if !m.set || value.GreaterThan(m.max) {
		m.max = value
		m.set = true
	}
	return nil
}

func (m *Max) Result() (decimal.Decimal, error) {
	if !m.set {
		return decimal.Zero, fmt.Errorf("aggregate: maximum of no records: %w", salespipe.ErrEmptyInput)
	}
	return m.max, nil
}

func (m *Max) Reset() {
	m.max = decimal.Zero
	m.set = false
}
