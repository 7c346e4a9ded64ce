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

// Command dashboard runs the demo sales pipeline: it generates a batch of
// synthetic records, cleans and aggregates them, and prints the summary.
//
// The record count can be given as the first argument; all settings are also
// readable from DASHBOARD_* environment variables (DASHBOARD_COUNT,
// DASHBOARD_SEED, DASHBOARD_MIN_AMOUNT, DASHBOARD_MAX_AMOUNT,
// DASHBOARD_EXPORT_PATH, DASHBOARD_EXPORT_FORMAT).
package main

import (
	"context"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/aaronlmathis/salespipe/dashboard"
	"github.com/aaronlmathis/salespipe/report"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	if len(os.Args) > 1 {
		count, err := strconv.Atoi(os.Args[1])
		if err != nil {
			logger.Fatal().Str("arg", os.Args[1]).Msg("record count must be an integer")
		}
		cfg.Count = count
	}

	summary, err := dashboard.Run(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("dashboard run failed")
	}

	report.Display(os.Stdout, summary.Aggregation)
	logger.Info().Int64("processed", summary.Processed).Msg("done")
}

// loadConfig reads settings from the environment over the documented defaults.
func loadConfig() (dashboard.Config, error) {
	defaults := dashboard.DefaultConfig()

	v := viper.New()
	v.SetEnvPrefix("DASHBOARD")
	v.AutomaticEnv()
	v.SetDefault("count", defaults.Count)
	v.SetDefault("seed", defaults.Seed)
	v.SetDefault("min_amount", defaults.MinAmount)
	v.SetDefault("max_amount", defaults.MaxAmount)
	v.SetDefault("export_path", defaults.ExportPath)
	v.SetDefault("export_format", defaults.ExportFormat)

	var cfg dashboard.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return dashboard.Config{}, err
	}
	return cfg, nil
}
