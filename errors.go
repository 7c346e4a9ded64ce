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

import "errors"

// Sentinel errors for the pipeline's failure taxonomy. All failures are
// reported synchronously to the immediate caller; callers match them with
// errors.Is after unwrapping.
var (
	// ErrInvalidArgument reports a bad count or parameter supplied to a stage.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptyInput reports aggregation invoked on an empty record sequence.
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidState reports a setter rejecting a value that would leave
	// its owner inconsistent, such as a negative amount bound.
	ErrInvalidState = errors.New("invalid state")
)
