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
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/aaronlmathis/salespipe"
)

// Record export sinks. Cleaned records can be handed to a JSONWriter or
// CSVWriter for further processing outside the pipeline; both implement
// salespipe.DataSink so they can also terminate a pipeline directly.

// csvHeader is the fixed column order for CSV record export.
var csvHeader = []string{"date", "customer_id", "product", "quantity", "unit_price", "region", "total_amount"}

// JSONWriter implements DataSink for line-delimited JSON record output.
type JSONWriter struct {
	writer io.Writer
	closer io.Closer
}

// NewJSONWriter creates a new writer emitting one JSON object per record.
func NewJSONWriter(w io.WriteCloser) *JSONWriter {
	return &JSONWriter{
		writer: w,
		closer: w,
	}
}

// Write implements the DataSink interface.
func (j *JSONWriter) Write(ctx context.Context, record salespipe.SalesRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("json writer: failed to marshal record: %w", err)
	}

	if _, err := j.writer.Write(data); err != nil {
		return fmt.Errorf("json writer: failed to write record: %w", err)
	}
	if _, err := j.writer.Write([]byte("\n")); err != nil {
		return fmt.Errorf("json writer: failed to write newline: %w", err)
	}
	return nil
}

// Flush implements the DataSink interface.
func (j *JSONWriter) Flush() error {
	if flusher, ok := j.writer.(interface{ Flush() error }); ok {
		return flusher.Flush()
	}
	return nil
}

// Close implements the DataSink interface.
func (j *JSONWriter) Close() error {
	if j.closer != nil {
		return j.closer.Close()
	}
	return nil
}

// CSVWriterOptions configures CSV record output.
type CSVWriterOptions struct {
	Comma       rune
	UseCRLF     bool
	WriteHeader bool
}

// CSVWriterOption is a functional option.
type CSVWriterOption func(*CSVWriterOptions)

// WithComma sets the field delimiter.
func WithComma(delim rune) CSVWriterOption {
	return func(opts *CSVWriterOptions) {
		opts.Comma = delim
	}
}

// WithWriteHeader controls whether the header row is emitted.
func WithWriteHeader(write bool) CSVWriterOption {
	return func(opts *CSVWriterOptions) {
		opts.WriteHeader = write
	}
}

// WithUseCRLF switches row terminators to \r\n.
func WithUseCRLF(useCRLF bool) CSVWriterOption {
	return func(opts *CSVWriterOptions) {
		opts.UseCRLF = useCRLF
	}
}

// CSVWriter implements DataSink for CSV record output with a fixed column
// order matching the SalesRecord fields.
type CSVWriter struct {
	writer      *csv.Writer
	closer      io.Closer
	options     CSVWriterOptions
	wroteHeader bool
	written     int64
}

// NewCSVWriter creates a new CSV record writer.
func NewCSVWriter(w io.WriteCloser, opts ...CSVWriterOption) *CSVWriter {
	options := CSVWriterOptions{
		Comma:       ',',
		WriteHeader: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	cw := csv.NewWriter(w)
	cw.Comma = options.Comma
	cw.UseCRLF = options.UseCRLF

	return &CSVWriter{
		writer:  cw,
		closer:  w,
		options: options,
	}
}

// Write implements the DataSink interface.
func (c *CSVWriter) Write(ctx context.Context, record salespipe.SalesRecord) error {
	if !c.wroteHeader && c.options.WriteHeader {
		if err := c.writer.Write(csvHeader); err != nil {
			return fmt.Errorf("csv writer: failed to write header: %w", err)
		}
		c.wroteHeader = true
	}

	row := []string{
		record.Date.Format("2006-01-02"),
		record.CustomerID,
		record.Product,
		fmt.Sprintf("%d", record.Quantity),
		record.UnitPrice.StringFixed(2),
		record.Region,
		record.TotalAmount.StringFixed(2),
	}
	if err := c.writer.Write(row); err != nil {
		return fmt.Errorf("csv writer: failed to write row: %w", err)
	}
	c.written++
	return nil
}

// Flush implements the DataSink interface.
func (c *CSVWriter) Flush() error {
	c.writer.Flush()
	if err := c.writer.Error(); err != nil {
		return fmt.Errorf("csv writer: flush failed: %w", err)
	}
	return nil
}

// Close implements the DataSink interface.
func (c *CSVWriter) Close() error {
	if err := c.Flush(); err != nil {
		return err
	}
	if c.closer != nil {
		return c.closer.Close()
	}
	return nil
}

// Written returns the number of records written, excluding the header.
func (c *CSVWriter) Written() int64 { return c.written }

// WriteRecords streams a record slice into the given sink and closes it.
func WriteRecords(ctx context.Context, sink salespipe.DataSink, records []salespipe.SalesRecord) error {
	for _, record := range records {
		if err := sink.Write(ctx, record); err != nil {
			sink.Close()
			return err
		}
	}
	if err := sink.Flush(); err != nil {
		sink.Close()
		return err
	}
	return sink.Close()
}
