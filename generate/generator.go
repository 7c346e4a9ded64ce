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

package generate

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aaronlmathis/salespipe"
)

// Package generate produces synthetic sales records for the pipeline.
//
// The random source is an explicit dependency of the Generator, never ambient
// package-level state: the same seed, catalog, and date range always yield the
// same record sequence, which keeps tests and demo runs deterministic.

// Catalog holds the fixed value sets each record field is drawn from.
type Catalog struct {
	Products  []string
	Regions   []string
	Customers []string
}

// DefaultCatalog returns the demo product, region, and customer catalog.
func DefaultCatalog() Catalog {
	return Catalog{
		Products:  []string{"Laptop", "Phone", "Tablet", "Monitor", "Headphones"},
		Regions:   []string{"North", "South", "East", "West"},
		Customers: []string{"CUST-1001", "CUST-1002", "CUST-1003", "CUST-1004", "CUST-1005"},
	}
}

// RandomCustomers builds n synthetic customer identifiers with random
// uuid suffixes, for runs that want a wider customer population than the
// default catalog.
func RandomCustomers(n int) []string {
	customers := make([]string, 0, n)
	for i := 0; i < n; i++ {
		customers = append(customers, fmt.Sprintf("CUST-%s", uuid.NewString()[:8]))
	}
	return customers
}

// validate checks that every catalog dimension has at least one value.
func (c Catalog) validate() error {
	if len(c.Products) == 0 {
		return fmt.Errorf("generate: catalog has no products: %w", salespipe.ErrInvalidArgument)
	}
	if len(c.Regions) == 0 {
		return fmt.Errorf("generate: catalog has no regions: %w", salespipe.ErrInvalidArgument)
	}
	if len(c.Customers) == 0 {
		return fmt.Errorf("generate: catalog has no customers: %w", salespipe.ErrInvalidArgument)
	}
	return nil
}

// DateRange bounds the transaction dates of generated records, inclusive.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// DefaultDateRange returns the 30 days ending at end, truncated to days.
func DefaultDateRange(end time.Time) DateRange {
	day := end.Truncate(24 * time.Hour)
	return DateRange{Start: day.AddDate(0, 0, -29), End: day}
}

// Days returns the number of distinct days in the range.
func (d DateRange) Days() int {
	return int(d.End.Sub(d.Start).Hours()/24) + 1
}

// validate checks that the range is non-empty.
func (d DateRange) validate() error {
	if d.End.Before(d.Start) {
		return fmt.Errorf("generate: date range ends before it starts: %w", salespipe.ErrInvalidArgument)
	}
	return nil
}

// Generator produces synthetic SalesRecord sequences from a catalog, a date
// range, and an explicit random source.
type Generator struct {
	rng     *rand.Rand
	catalog Catalog
	dates   DateRange
}

// New creates a Generator seeded with the given value.
func New(seed int64, catalog Catalog, dates DateRange) *Generator {
	return &Generator{
		rng:     rand.New(rand.NewSource(seed)),
		catalog: catalog,
		dates:   dates,
	}
}

// Generate produces count records with each field drawn independently from
// the catalog and date range. The derived TotalAmount is always
// Quantity * UnitPrice at creation time.
//
// Returns ErrInvalidArgument when count is not positive or the catalog or
// date range is malformed.
func (g *Generator) Generate(count int) ([]salespipe.SalesRecord, error) {
	if err := g.check(count); err != nil {
		return nil, err
	}

	records := make([]salespipe.SalesRecord, 0, count)
	for i := 0; i < count; i++ {
		records = append(records, g.next())
	}
	return records, nil
}

// Source returns a DataSource streaming count generated records, so
// generation can feed a pipeline directly without materializing a slice.
func (g *Generator) Source(count int) (salespipe.DataSource, error) {
	if err := g.check(count); err != nil {
		return nil, err
	}
	return &generatorSource{gen: g, remaining: count}, nil
}

// check validates the generation parameters.
func (g *Generator) check(count int) error {
	if count <= 0 {
		return fmt.Errorf("generate: count must be positive, got %d: %w", count, salespipe.ErrInvalidArgument)
	}
	if err := g.catalog.validate(); err != nil {
		return err
	}
	return g.dates.validate()
}

// next draws a single record from the generator's random source.
func (g *Generator) next() salespipe.SalesRecord {
	quantity := g.rng.Intn(10) + 1
	// Unit prices land in [5.00, 500.00), already at two decimals.
	unitPrice := decimal.NewFromFloat(5 + g.rng.Float64()*495).Round(2)

	record := salespipe.SalesRecord{
		Date:       g.dates.Start.AddDate(0, 0, g.rng.Intn(g.dates.Days())),
		CustomerID: g.catalog.Customers[g.rng.Intn(len(g.catalog.Customers))],
		Product:    g.catalog.Products[g.rng.Intn(len(g.catalog.Products))],
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		Region:     g.catalog.Regions[g.rng.Intn(len(g.catalog.Regions))],
	}
	record.TotalAmount = record.ComputedTotal()
	return record
}

// generatorSource streams records from a Generator until count is exhausted.
type generatorSource struct {
	gen       *Generator
	remaining int
}

// Read implements the salespipe.DataSource interface.
func (s *generatorSource) Read(ctx context.Context) (salespipe.SalesRecord, error) {
	if s.remaining <= 0 {
		return salespipe.SalesRecord{}, io.EOF
	}
	s.remaining--
	return s.gen.next(), nil
}

// Close implements the salespipe.DataSource interface.
func (s *generatorSource) Close() error { return nil }
