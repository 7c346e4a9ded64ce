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

package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/aaronlmathis/salespipe"
	"github.com/aaronlmathis/salespipe/aggregate"
	"github.com/aaronlmathis/salespipe/clean"
	"github.com/aaronlmathis/salespipe/generate"
	"github.com/aaronlmathis/salespipe/predicate"
	"github.com/aaronlmathis/salespipe/report"
)

// Package dashboard wires the full demo sequence: generate, clean,
// aggregate, analyze regions, and build the report. Run owns all pipeline
// state for one invocation; nothing survives between calls except what the
// caller keeps from the returned Summary.

// Config holds the dashboard run parameters.
type Config struct {
	// Count is the number of records to generate.
	Count int `mapstructure:"count" validate:"required,gt=0"`
	// Seed seeds the generator's random source; 0 derives a seed from the
	// current time, any other value makes the run reproducible.
	Seed int64 `mapstructure:"seed"`
	// MinAmount is the lower bound on cleaned order totals.
	MinAmount float64 `mapstructure:"min_amount" validate:"gte=0"`
	// MaxAmount is the upper bound on cleaned order totals; 0 means unbounded.
	MaxAmount float64 `mapstructure:"max_amount" validate:"gte=0"`
	// ExportPath, when set, writes the cleaned records to this file.
	ExportPath string `mapstructure:"export_path"`
	// ExportFormat selects the export encoding, "csv" or "jsonl".
	ExportFormat string `mapstructure:"export_format" validate:"omitempty,oneof=csv jsonl"`
}

// DefaultConfig returns the documented configuration defaults.
func DefaultConfig() Config {
	return Config{
		Count:        100,
		ExportFormat: "csv",
	}
}

// Validate checks the configuration against its struct constraints.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("dashboard: invalid config: %w: %w", err, salespipe.ErrInvalidArgument)
	}
	return nil
}

// Summary is the structured result of one dashboard run, returned to the
// caller alongside whatever was printed.
type Summary struct {
	Records     []salespipe.SalesRecord
	Aggregation aggregate.Result
	Regional    map[string]aggregate.RegionStats
	Report      string
	Processed   int64
}

// Run executes the dashboard sequence and returns its structured result.
// Per-stage progress is logged through the supplied logger.
func Run(ctx context.Context, cfg Config, log zerolog.Logger) (*Summary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	catalog := generate.DefaultCatalog()
	gen := generate.New(seed, catalog, generate.DefaultDateRange(time.Now()))

	log.Info().Int("count", cfg.Count).Int64("seed", seed).Msg("generating records")
	records, err := gen.Generate(cfg.Count)
	if err != nil {
		return nil, err
	}

	opts := clean.DefaultOptions()
	if cfg.MinAmount > 0 {
		if err := opts.SetMinAmount(decimal.NewFromFloat(cfg.MinAmount)); err != nil {
			return nil, err
		}
	}
	if cfg.MaxAmount > 0 {
		if err := opts.SetMaxAmount(decimal.NewFromFloat(cfg.MaxAmount)); err != nil {
			return nil, err
		}
	}

	predicates := []salespipe.Filter{
		predicate.MinQuantity(1),
		predicate.RegionIn(catalog.Regions...),
	}

	cleaned, err := clean.Clean(ctx, records, predicates, opts)
	if err != nil {
		return nil, err
	}
	log.Info().
		Int("raw", len(records)).
		Int("cleaned", len(cleaned)).
		Int("dropped", len(records)-len(cleaned)).
		Msg("cleaned records")

	counter := &salespipe.RunningCounter{}
	result, err := aggregate.Aggregate(ctx, cleaned, counter)
	if err != nil {
		return nil, err
	}
	log.Info().
		Int("orders", result.OrderCount).
		Str("total_revenue", result.TotalRevenue.StringFixed(2)).
		Msg("aggregated records")

	analyzer := aggregate.NewRegionAnalyzer()
	for _, region := range catalog.Regions {
		stats := analyzer.AnalyzeRegion(cleaned, region)
		log.Debug().
			Str("region", region).
			Str("revenue", stats.Revenue.StringFixed(2)).
			Int("orders", stats.Orders).
			Msg("analyzed region")
	}

	summary := &Summary{
		Records:     cleaned,
		Aggregation: result,
		Regional:    analyzer.Summary(),
		Report:      report.Build(result, time.Now()),
		Processed:   counter.Total(),
	}

	if cfg.ExportPath != "" {
		if err := exportRecords(ctx, cfg, cleaned); err != nil {
			return nil, err
		}
		log.Info().Str("path", cfg.ExportPath).Str("format", cfg.ExportFormat).Msg("exported records")
	}

	return summary, nil
}

// exportRecords writes the cleaned records to the configured location.
func exportRecords(ctx context.Context, cfg Config, records []salespipe.SalesRecord) error {
	format, err := report.ParseFormat(cfg.ExportFormat)
	if err != nil {
		return err
	}
	sink, err := report.FileLocation{Path: cfg.ExportPath}.NewSink(format)
	if err != nil {
		return err
	}
	return report.WriteRecords(ctx, sink, records)
}
