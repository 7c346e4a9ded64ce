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

package predicate

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aaronlmathis/salespipe"
)

// Package predicate provides reusable, composable validation predicates for
// the cleaner. Each constructor returns a named salespipe.Filter; the cleaner
// applies them in order and keeps a record only when all of them pass.

// MinQuantity keeps records with Quantity >= n.
func MinQuantity(n int) salespipe.Filter {
	return salespipe.Named("min_quantity", func(r salespipe.SalesRecord) bool {
		return r.Quantity >= n
	})
}

// MaxQuantity keeps records with Quantity <= n.
func MaxQuantity(n int) salespipe.Filter {
	return salespipe.Named("max_quantity", func(r salespipe.SalesRecord) bool {
		return r.Quantity <= n
	})
}

// AmountAtLeast keeps records with TotalAmount >= amount.
func AmountAtLeast(amount decimal.Decimal) salespipe.Filter {
	return salespipe.Named("amount_at_least", func(r salespipe.SalesRecord) bool {
		return r.TotalAmount.GreaterThanOrEqual(amount)
	})
}

// AmountBetween keeps records with min <= TotalAmount <= max.
func AmountBetween(min, max decimal.Decimal) salespipe.Filter {
	return salespipe.Named("amount_between", func(r salespipe.SalesRecord) bool {
		return r.TotalAmount.GreaterThanOrEqual(min) && r.TotalAmount.LessThanOrEqual(max)
	})
}

// RegionIn keeps records whose Region is one of the given regions.
func RegionIn(regions ...string) salespipe.Filter {
	set := make(map[string]bool, len(regions))
	for _, region := range regions {
		set[region] = true
	}
	return salespipe.Named("region_in", func(r salespipe.SalesRecord) bool {
		return set[r.Region]
	})
}

// ProductIn keeps records whose Product is one of the given products.
func ProductIn(products ...string) salespipe.Filter {
	set := make(map[string]bool, len(products))
	for _, product := range products {
		set[product] = true
	}
	return salespipe.Named("product_in", func(r salespipe.SalesRecord) bool {
		return set[r.Product]
	})
}

// CustomerPrefix keeps records whose CustomerID starts with the prefix.
func CustomerPrefix(prefix string) salespipe.Filter {
	return salespipe.Named("customer_prefix", func(r salespipe.SalesRecord) bool {
		return strings.HasPrefix(r.CustomerID, prefix)
	})
}

// DateWithin keeps records dated inside [start, end], inclusive.
func DateWithin(start, end time.Time) salespipe.Filter {
	return salespipe.Named("date_within", func(r salespipe.SalesRecord) bool {
		return !r.Date.Before(start) && !r.Date.After(end)
	})
}

// And keeps records that pass all of the provided filters.
func And(filters ...salespipe.Filter) salespipe.Filter {
	return salespipe.FilterFunc(func(ctx context.Context, record salespipe.SalesRecord) (bool, error) {
		for _, filter := range filters {
			include, err := filter.ShouldInclude(ctx, record)
			if err != nil {
				return false, err
			}
			if !include {
				return false, nil
			}
		}
		return true, nil
	})
}

// Or keeps records that pass at least one of the provided filters.
func Or(filters ...salespipe.Filter) salespipe.Filter {
	return salespipe.FilterFunc(func(ctx context.Context, record salespipe.SalesRecord) (bool, error) {
		for _, filter := range filters {
			include, err := filter.ShouldInclude(ctx, record)
			if err != nil {
				return false, err
			}
			if include {
				return true, nil
			}
		}
		return false, nil
	})
}

// Not negates the provided filter.
func Not(filter salespipe.Filter) salespipe.Filter {
	return salespipe.FilterFunc(func(ctx context.Context, record salespipe.SalesRecord) (bool, error) {
		include, err := filter.ShouldInclude(ctx, record)
		if err != nil {
			return false, err
		}
		return !include, nil
	})
}

// Custom wraps a user-provided pure predicate with a name.
func Custom(name string, fn func(salespipe.SalesRecord) bool) salespipe.Filter {
	return salespipe.Named(name, fn)
}
