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

package clean

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/aaronlmathis/salespipe"
)

// Package clean turns raw generated records into a validated, normalized
// sequence. Cleaning is a pipeline composition: a fixed normalization
// transformer, the built-in validity and amount-range filters, then every
// caller-supplied predicate in order. Discarded records are dropped entirely,
// so the output is never longer than the input and survivors keep their
// relative order. Cleaning the same sequence twice yields the same result.

// Options configures the built-in range filtering applied before the
// caller's predicates. Fields have documented defaults; use DefaultOptions
// and the setters rather than a zero Options value.
type Options struct {
	// MinAmount is the inclusive lower bound on TotalAmount. Default 0.
	MinAmount decimal.Decimal
	// MaxAmount is the inclusive upper bound on TotalAmount.
	// A zero MaxAmount means unbounded. Default unbounded.
	MaxAmount decimal.Decimal
	// DropInvalid discards records whose normalized TotalAmount is not
	// positive. Default true.
	DropInvalid bool
}

// DefaultOptions returns the documented option defaults.
func DefaultOptions() Options {
	return Options{
		MinAmount:   decimal.Zero,
		DropInvalid: true,
	}
}

// SetMinAmount replaces the lower amount bound.
// Returns ErrInvalidState for a negative bound.
func (o *Options) SetMinAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("clean: min amount must not be negative, got %s: %w",
			amount.StringFixed(2), salespipe.ErrInvalidState)
	}
	o.MinAmount = amount
	return nil
}

// SetMaxAmount replaces the upper amount bound.
// Returns ErrInvalidState for a non-positive bound.
func (o *Options) SetMaxAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("clean: max amount must be positive, got %s: %w",
			amount.StringFixed(2), salespipe.ErrInvalidState)
	}
	o.MaxAmount = amount
	return nil
}

// Normalize returns the fixed built-in normalization transformer: the
// customer id is trimmed and uppercased, UnitPrice is rounded to two
// decimals, and TotalAmount is re-derived from the rounded price so the
// Quantity * UnitPrice invariant holds after cleaning.
func Normalize() salespipe.Transformer {
	return salespipe.TransformFunc(func(ctx context.Context, record salespipe.SalesRecord) (salespipe.SalesRecord, error) {
		record.CustomerID = strings.ToUpper(strings.TrimSpace(record.CustomerID))
		record.UnitPrice = record.UnitPrice.Round(2)
		record.TotalAmount = record.ComputedTotal().Round(2)
		return record, nil
	})
}

// Clean transforms a raw record sequence into a cleaned sequence.
//
// Each record is normalized, then checked against the built-in validity and
// amount-range filters, then against every supplied predicate in order; the
// record survives only if all predicates return true (short-circuiting on
// the first failure). An empty input yields an empty output.
func Clean(ctx context.Context, records []salespipe.SalesRecord, predicates []salespipe.Filter, opts Options) ([]salespipe.SalesRecord, error) {
	sink := salespipe.NewSliceSink()

	builder := salespipe.NewPipeline().
		From(salespipe.NewSliceSource(records)).
		Transform(Normalize())

	if opts.DropInvalid {
		builder.Filter(salespipe.Named("positive_total", func(r salespipe.SalesRecord) bool {
			return r.TotalAmount.IsPositive()
		}))
	}
	builder.Filter(amountRange(opts))
	for _, p := range predicates {
		builder.Filter(p)
	}

	pipeline, err := builder.To(sink).Build()
	if err != nil {
		return nil, err
	}
	if err := pipeline.Execute(ctx); err != nil {
		return nil, err
	}
	return sink.Records(), nil
}

// amountRange keeps records whose TotalAmount falls inside the configured
// bounds. A zero MaxAmount disables the upper bound.
func amountRange(opts Options) salespipe.Filter {
	return salespipe.Named("amount_range", func(r salespipe.SalesRecord) bool {
		if r.TotalAmount.LessThan(opts.MinAmount) {
			return false
		}
		if !opts.MaxAmount.IsZero() && r.TotalAmount.GreaterThan(opts.MaxAmount) {
			return false
		}
		return true
	})
}
