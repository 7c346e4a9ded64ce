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

package salespipe

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Package salespipe defines the core types and interfaces for the SalesPipe library.
//
// SalesPipe is an interface-driven, in-memory sales analytics pipeline for Go:
// records flow from a generator through cleaning and validation into
// aggregation and reporting, one stage at a time, preserving input order.
//
// This file contains the record type and the primary interfaces for sources,
// sinks, transformation, filtering, and error handling.

// SalesRecord represents a single sales transaction in the pipeline.
// Monetary fields use decimal.Decimal to keep two-decimal rounding exact.
type SalesRecord struct {
	Date        time.Time       `json:"date"`
	CustomerID  string          `json:"customer_id"`
	Product     string          `json:"product"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Region      string          `json:"region"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// ComputedTotal returns Quantity * UnitPrice without modifying the record.
// Cleaning uses it to re-derive TotalAmount after rounding UnitPrice.
func (r SalesRecord) ComputedTotal() decimal.Decimal {
	return r.UnitPrice.Mul(decimal.NewFromInt(int64(r.Quantity)))
}

// DataSource defines the interface for record extraction.
// Implementations stream records from a producer (e.g., the generator or an
// in-memory slice). Read returns io.EOF when no more records are available.
type DataSource interface {
	// Read returns the next record or io.EOF when no more records are available.
	Read(ctx context.Context) (SalesRecord, error)
	// Close releases any resources held by the data source.
	Close() error
}

// DataSink defines the interface for record loading.
// Implementations collect records in memory or render them for export.
type DataSink interface {
	// Write outputs a single record to the sink.
	Write(ctx context.Context, record SalesRecord) error
	// Flush ensures all buffered data is written to the sink.
	Flush() error
	// Close releases any resources held by the data sink.
	Close() error
}

// Transformer defines the interface for record transformation operations.
// Transformers normalize or enrich records as they pass through the pipeline.
type Transformer interface {
	// Transform applies the transformation to a record and returns the result.
	Transform(ctx context.Context, record SalesRecord) (SalesRecord, error)
}

// TransformFunc is a function adapter for the Transformer interface.
// Allows ordinary functions to be used as Transformers.
type TransformFunc func(ctx context.Context, record SalesRecord) (SalesRecord, error)

// Transform implements the Transformer interface for TransformFunc.
func (f TransformFunc) Transform(ctx context.Context, record SalesRecord) (SalesRecord, error) {
	return f(ctx, record)
}

// Filter defines the interface for record filtering.
// Filters determine whether a record should be included in the output.
type Filter interface {
	// ShouldInclude returns true if the record should be included in the output.
	ShouldInclude(ctx context.Context, record SalesRecord) (bool, error)
}

// FilterFunc is a function adapter for the Filter interface.
// Allows ordinary functions to be used as Filters.
type FilterFunc func(ctx context.Context, record SalesRecord) (bool, error)

// ShouldInclude implements the Filter interface for FilterFunc.
func (f FilterFunc) ShouldInclude(ctx context.Context, record SalesRecord) (bool, error) {
	return f(ctx, record)
}

// PredicateFunc is a pure, side-effect-free validation test over one record.
type PredicateFunc func(record SalesRecord) bool

// Named wraps a pure predicate into a Filter carrying a diagnostic name.
// The cleaner applies named predicates in order, keeping a record only when
// every predicate returns true.
func Named(name string, fn PredicateFunc) Filter {
	return &namedFilter{name: name, fn: fn}
}

type namedFilter struct {
	name string
	fn   PredicateFunc
}

func (n *namedFilter) ShouldInclude(ctx context.Context, record SalesRecord) (bool, error) {
	return n.fn(record), nil
}

// String returns the predicate name for logging and error messages.
func (n *namedFilter) String() string { return n.name }

// ErrorStrategy defines how to handle transformation errors in the pipeline.
type ErrorStrategy int

const (
	// FailFast stops processing on the first error encountered.
	FailFast ErrorStrategy = iota
	// SkipErrors continues processing, skipping failed records.
	SkipErrors
	// CollectErrors continues processing, collecting all errors for later inspection.
	CollectErrors
)

// ErrorHandler defines how errors are handled during processing.
// Custom error handlers can be used to log, collect, or transform errors.
type ErrorHandler interface {
	// HandleError processes an error that occurred during transformation.
	// Returning a non-nil error will stop the pipeline; returning nil will continue.
	HandleError(ctx context.Context, record SalesRecord, err error) error
}

// ErrorHandlerFunc is a function adapter for the ErrorHandler interface.
// Allows ordinary functions to be used as error handlers.
type ErrorHandlerFunc func(ctx context.Context, record SalesRecord, err error) error

// HandleError implements the ErrorHandler interface for ErrorHandlerFunc.
func (f ErrorHandlerFunc) HandleError(ctx context.Context, record SalesRecord, err error) error {
	return f(ctx, record, err)
}

// RunningCounter tracks how many records have been processed across
// successive aggregation calls. The caller owns the counter and threads it
// through each invocation; there is no process-wide counter state.
type RunningCounter struct {
	processed int64
}

// Add increments the counter by n records.
func (c *RunningCounter) Add(n int) {
	c.processed += int64(n)
}

// Total returns the cumulative number of records processed.
func (c *RunningCounter) Total() int64 {
	return c.processed
}
