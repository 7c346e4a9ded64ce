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
	"io"
)

// SliceSource adapts an in-memory record slice into a DataSource.
// The batch operations (cleaning, the dashboard) run their pipelines over
// slices, so this is the most common source in practice.
type SliceSource struct {
	records []SalesRecord
	pos     int
}

// NewSliceSource creates a DataSource that yields the given records in order.
// The slice is not copied; the caller must not mutate it during execution.
func NewSliceSource(records []SalesRecord) *SliceSource {
	return &SliceSource{records: records}
}

// Read implements the DataSource interface.
func (s *SliceSource) Read(ctx context.Context) (SalesRecord, error) {
	if s.pos >= len(s.records) {
		return SalesRecord{}, io.EOF
	}
	record := s.records[s.pos]
	s.pos++
	return record, nil
}

// Close implements the DataSource interface. It is a no-op for slices.
func (s *SliceSource) Close() error { return nil }

// SliceSink collects pipeline output into an in-memory slice, preserving
// arrival order.
type SliceSink struct {
	records []SalesRecord
}

// NewSliceSink creates an empty collecting sink.
func NewSliceSink() *SliceSink {
	return &SliceSink{records: make([]SalesRecord, 0)}
}

// Write implements the DataSink interface.
func (s *SliceSink) Write(ctx context.Context, record SalesRecord) error {
	s.records = append(s.records, record)
	return nil
}

// Flush implements the DataSink interface. It is a no-op for slices.
func (s *SliceSink) Flush() error { return nil }

// Close implements the DataSink interface. It is a no-op for slices.
func (s *SliceSink) Close() error { return nil }

// Records returns the collected records in arrival order.
func (s *SliceSink) Records() []SalesRecord {
	return s.records
}
