package core

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AllCategories is the category selector that keeps every transaction.
const AllCategories = "All"

type (
	SortField string
	SortOrder string
	DateRange string
)

const (
	SortByDate        SortField = "date"
	SortByAmount      SortField = "amount"
	SortByDescription SortField = "description"
	SortByCategory    SortField = "category"
)

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

const (
	RangeAll       DateRange = "all"
	RangeToday     DateRange = "today"
	RangeLast7Days DateRange = "last7days"
	RangeThisMonth DateRange = "thisMonth"
	RangeThisYear  DateRange = "thisYear"
	RangeCustom    DateRange = "custom"
)

// Query describes one filtered, sorted view of the transaction list. String
// fields carry raw user input: unparseable amounts and custom dates degrade
// to "no bound" instead of failing, so a half-typed filter never breaks the
// list.
type Query struct {
	Category    string // "" or "All" keeps every category
	Search      string // case-insensitive substring of description or category
	DateRange   DateRange
	CustomStart string // used when DateRange is custom
	CustomEnd   string
	MinAmount   string // "" means 0
	MaxAmount   string // "" means unbounded
	SortBy      SortField
	SortOrder   SortOrder
}

// Apply runs the filter stages in fixed order (category, search, date range,
// amount range) and then sorts. It is a pure function of its inputs: the
// given slice is never mutated and the current time comes in as now.
func (q Query) Apply(txs []Transaction, now time.Time) []Transaction {
	out := make([]Transaction, 0, len(txs))
	out = append(out, txs...)

	if q.Category != "" && q.Category != AllCategories {
		out = keep(out, func(t Transaction) bool {
			return t.Category == Category(q.Category)
		})
	}

	if term := strings.ToLower(strings.TrimSpace(q.Search)); term != "" {
		out = keep(out, func(t Transaction) bool {
			return strings.Contains(strings.ToLower(t.Description), term) ||
				strings.Contains(strings.ToLower(string(t.Category)), term)
		})
	}

	out = q.filterByDate(out, now)
	out = q.filterByAmount(out)

	q.sortStable(out)
	return out
}

func keep(txs []Transaction, pred func(Transaction) bool) []Transaction {
	out := txs[:0]
	for _, t := range txs {
		if pred(t) {
			out = append(out, t)
		}
	}
	return out
}

func (q Query) filterByDate(txs []Transaction, now time.Time) []Transaction {
	var start time.Time
	end := time.Time{}

	switch q.DateRange {
	case RangeToday:
		start = StartOfDay(now)
	case RangeLast7Days:
		start = now.Add(-7 * 24 * time.Hour)
	case RangeThisMonth:
		start = StartOfMonth(now)
	case RangeThisYear:
		start = StartOfYear(now)
	case RangeCustom:
		s, _, ok := parseLenientDate(q.CustomStart)
		if !ok {
			// Without a usable start the custom range filters nothing,
			// matching the permissive behavior for malformed input.
			return txs
		}
		start = s
		if e, dateOnly, ok := parseLenientDate(q.CustomEnd); ok {
			if dateOnly {
				// A date-only upper bound covers that whole day.
				e = e.AddDate(0, 0, 1).Add(-time.Nanosecond)
			}
			end = e
		}
	default:
		return txs
	}

	return keep(txs, func(t Transaction) bool {
		if t.Date.Before(start) {
			return false
		}
		if !end.IsZero() && t.Date.After(end) {
			return false
		}
		return true
	})
}

func (q Query) filterByAmount(txs []Transaction) []Transaction {
	min := decimal.Zero
	if v, err := ParseAmount(q.MinAmount); err == nil {
		min = v
	}
	max, maxErr := ParseAmount(q.MaxAmount)
	hasMax := maxErr == nil

	if min.IsZero() && !hasMax {
		return txs
	}
	return keep(txs, func(t Transaction) bool {
		if t.Amount.Cmp(min) < 0 {
			return false
		}
		if hasMax && t.Amount.Cmp(max) > 0 {
			return false
		}
		return true
	})
}

// sortStable orders the slice by the requested key. Equal keys retain the
// relative order produced by the filter stages.
func (q Query) sortStable(txs []Transaction) {
	field := q.SortBy
	if field == "" {
		field = SortByDate
	}
	order := q.SortOrder
	if order == "" {
		order = Descending
	}

	less := func(a, b Transaction) bool {
		switch field {
		case SortByAmount:
			return a.Amount.Cmp(b.Amount) < 0
		case SortByDescription:
			return strings.ToLower(a.Description) < strings.ToLower(b.Description)
		case SortByCategory:
			return strings.ToLower(string(a.Category)) < strings.ToLower(string(b.Category))
		default:
			return a.Date.Before(b.Date)
		}
	}

	sort.SliceStable(txs, func(i, j int) bool {
		if order == Ascending {
			return less(txs[i], txs[j])
		}
		return less(txs[j], txs[i])
	})
}

// parseLenientDate accepts RFC3339 timestamps and plain dates. The dateOnly
// result tells the caller whether the input carried a time of day.
func parseLenientDate(s string) (t time.Time, dateOnly bool, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, false, true
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t, false, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true, true
	}
	return time.Time{}, false, false
}

// StartOfDay returns midnight of now's calendar day in now's location.
func StartOfDay(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// StartOfMonth returns midnight of the first day of now's month.
func StartOfMonth(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

// StartOfYear returns midnight of January 1 of now's year.
func StartOfYear(now time.Time) time.Time {
	return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
}
