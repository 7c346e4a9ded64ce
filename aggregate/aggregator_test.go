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
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronlmathis/salespipe"
)

func feed(t *testing.T, agg Aggregator, totals ...float64) {
	t.Helper()
	ctx := context.Background()
	for _, total := range totals {
		record := salespipe.SalesRecord{TotalAmount: decimal.NewFromFloat(total)}
		require.NoError(t, agg.Add(ctx, record))
	}
}

// TestCount tests record counting.
func TestCount(t *testing.T) {
	count := NewCount()
	feed(t, count, 1, 2, 3)

	result, err := count.Result()
	require.NoError(t, err)
	assert.True(t, result.Equal(decimal.NewFromInt(3)))
	assert.Equal(t, 3, count.Value())

	count.Reset()
	assert.Equal(t, 0, count.Value())
}

// TestSum tests decimal summation.
func TestSum(t *testing.T) {
	sum := NewSum(TotalAmount)
	feed(t, sum, 10.10, 20.20, 0.03)

	result, err := sum.Result()
	require.NoError(t, err)
	assert.True(t, result.Equal(decimal.NewFromFloat(30.33)), "got %s", result)

	sum.Reset()
	result, err = sum.Result()
	require.NoError(t, err)
	assert.True(t, result.IsZero())
}

// TestAvg tests averaging with two-decimal rounding.
func TestAvg(t *testing.T) {
	avg := NewAvg(TotalAmount)
	feed(t, avg, 10, 20, 25)

	result, err := avg.Result()
	require.NoError(t, err)
	assert.True(t, result.Equal(decimal.NewFromFloat(18.33)), "got %s", result)

	t.Run("empty", func(t *testing.T) {
		_, err := NewAvg(TotalAmount).Result()
		require.Error(t, err)
		assert.ErrorIs(t, err, salespipe.ErrEmptyInput)
	})
}

// TestMinMax tests extreme tracking and empty-state errors.
func TestMinMax(t *testing.T) {
	min := NewMin(TotalAmount)
	max := NewMax(TotalAmount)
	feed(t, min, 5, 1, 9)
	feed(t, max, 5, 1, 9)

	lo, err := min.Result()
	require.NoError(t, err)
	assert.True(t, lo.Equal(decimal.NewFromInt(1)))

	hi, err := max.Result()
	require.NoError(t, err)
	assert.True(t, hi.Equal(decimal.NewFromInt(9)))

	t.Run("empty", func(t *testing.T) {
		_, err := NewMin(TotalAmount).Result()
		assert.ErrorIs(t, err, salespipe.ErrEmptyInput)
		_, err = NewMax(TotalAmount).Result()
		assert.ErrorIs(t, err, salespipe.ErrEmptyInput)
	})

	t.Run("reset", func(t *testing.T) {
		min.Reset()
		_, err := min.Result()
		assert.ErrorIs(t, err, salespipe.ErrEmptyInput)
	})
}
