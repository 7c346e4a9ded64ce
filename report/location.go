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
	"fmt"
	"os"

	"github.com/aaronlmathis/salespipe"
)

// OutputFormat represents a supported record export format.
type OutputFormat int

const (
	FormatCSV OutputFormat = iota
	FormatJSON
)

// ParseFormat maps a format name ("csv", "jsonl") to an OutputFormat.
func ParseFormat(name string) (OutputFormat, error) {
	switch name {
	case "csv":
		return FormatCSV, nil
	case "jsonl":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("report: unknown export format %q: %w", name, salespipe.ErrInvalidArgument)
	}
}

// OutputLocation creates a DataSink for a given format.
type OutputLocation interface {
	NewSink(format OutputFormat) (salespipe.DataSink, error)
}

// FileLocation writes exported records to a local filesystem path.
type FileLocation struct {
	Path string
}

// NewSink instantiates a writer for the file location.
func (f FileLocation) NewSink(format OutputFormat) (salespipe.DataSink, error) {
	file, err := os.Create(f.Path)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatCSV:
		return NewCSVWriter(file), nil
	case FormatJSON:
		return NewJSONWriter(file), nil
	default:
		file.Close()
		return nil, fmt.Errorf("report: unsupported format for FileLocation: %w", salespipe.ErrInvalidArgument)
	}
}
