package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// Window is a relative time range for dashboard statistics.
type Window string

const (
	WindowWeek  Window = "week"  // trailing 7 days
	WindowMonth Window = "month" // current calendar month
	WindowYear  Window = "year"  // current calendar year
	WindowAll   Window = "all"
)

// Summary holds the dashboard statistics for one window.
type Summary struct {
	Total   decimal.Decimal
	Count   int
	Average decimal.Decimal // Total/Count rounded to 2 places, zero when empty
	// TopCategory is the category with the largest summed amount in the
	// window, empty when the window holds no transactions. Ties go to the
	// category seen first in input order.
	TopCategory       Category
	TopCategoryAmount decimal.Decimal
}

// CategoryAmount is an amount aggregated under one category, chart-ready.
type CategoryAmount struct {
	Category Category
	Amount   decimal.Decimal
	Color    string
}

// Breakdown is the per-category partition of a transaction list. Entries
// appear in first-encounter order; categories without transactions are
// omitted.
type Breakdown struct {
	ByCategory []CategoryAmount
	Total      decimal.Decimal
}

// Summarize computes dashboard statistics over the transactions that fall in
// the window. It never mutates its input.
func Summarize(txs []Transaction, w Window, now time.Time) Summary {
	var start time.Time
	switch w {
	case WindowWeek:
		start = now.Add(-7 * 24 * time.Hour)
	case WindowMonth:
		start = StartOfMonth(now)
	case WindowYear:
		start = StartOfYear(now)
	}

	s := Summary{Total: decimal.Zero, Average: decimal.Zero, TopCategoryAmount: decimal.Zero}
	byCategory := make(map[Category]decimal.Decimal)
	var order []Category

	for _, t := range txs {
		if !start.IsZero() && t.Date.Before(start) {
			continue
		}
		s.Total = s.Total.Add(t.Amount)
		s.Count++
		if _, seen := byCategory[t.Category]; !seen {
			order = append(order, t.Category)
		}
		byCategory[t.Category] = byCategory[t.Category].Add(t.Amount)
	}

	if s.Count > 0 {
		s.Average = s.Total.DivRound(decimal.NewFromInt(int64(s.Count)), 2)
	}
	for i, c := range order {
		if sum := byCategory[c]; i == 0 || sum.Cmp(s.TopCategoryAmount) > 0 {
			s.TopCategory = c
			s.TopCategoryAmount = sum
		}
	}
	return s
}

// GroupByCategory partitions the list by category and sums each bucket. The
// caller chooses what to feed in; the function applies no window of its own.
func GroupByCategory(txs []Transaction) Breakdown {
	b := Breakdown{Total: decimal.Zero}
	index := make(map[Category]int)

	for _, t := range txs {
		i, seen := index[t.Category]
		if !seen {
			i = len(b.ByCategory)
			index[t.Category] = i
			b.ByCategory = append(b.ByCategory, CategoryAmount{
				Category: t.Category,
				Amount:   decimal.Zero,
				Color:    t.Category.Color(),
			})
		}
		b.ByCategory[i].Amount = b.ByCategory[i].Amount.Add(t.Amount)
		b.Total = b.Total.Add(t.Amount)
	}
	return b
}

// Percent returns the category's share of the breakdown total in the range
// 0-100, rounded to one decimal place. A zero total yields zero.
func (b Breakdown) Percent(c Category) decimal.Decimal {
	if b.Total.IsZero() {
		return decimal.Zero
	}
	for _, e := range b.ByCategory {
		if e.Category == c {
			return e.Amount.Mul(decimal.NewFromInt(100)).DivRound(b.Total, 1)
		}
	}
	return decimal.Zero
}
