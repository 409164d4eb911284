package ledger

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestFilter_Matches(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		period Period
		want   bool
	}{
		{"zero filter matches anything", Filter{}, Period{Month: 3, Year: 2024}, true},
		{"zero filter matches unperiod", Filter{}, Period{}, true},
		{"month only, matching", Filter{Month: 3}, Period{Month: 3, Year: 1999}, true},
		{"month only, other month", Filter{Month: 3}, Period{Month: 4, Year: 2024}, false},
		{"year only, matching", Filter{Year: 2024}, Period{Month: 12, Year: 2024}, true},
		{"year only, other year", Filter{Year: 2024}, Period{Month: 12, Year: 2023}, false},
		{"both set, both match", Filter{Month: 3, Year: 2024}, Period{Month: 3, Year: 2024}, true},
		{"both set, month differs", Filter{Month: 3, Year: 2024}, Period{Month: 4, Year: 2024}, false},
		{"both set, year differs", Filter{Month: 3, Year: 2024}, Period{Month: 3, Year: 2023}, false},
		{"month filter excludes unperiod", Filter{Month: 3}, Period{}, false},
		{"year filter excludes unperiod", Filter{Year: 2024}, Period{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(tt.period))
		})
	}
}

func TestFilter_Label(t *testing.T) {
	tests := []struct {
		filter Filter
		want   string
	}{
		{Filter{}, "All Time"},
		{Filter{Year: 2024}, "Year 2024"},
		{Filter{Month: 3}, "All 03 months"},
		{Filter{Month: 3, Year: 2024}, "03/2024"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Label())
		})
	}
}

func TestFilterRecords(t *testing.T) {
	expenses := []Expense{
		{Amount: d("10"), Category: "Groceries", Period: Period{Month: 1, Year: 2024}},
		{Amount: d("20"), Category: "Housing", Period: Period{Month: 2, Year: 2024}},
		{Amount: d("30"), Category: "Groceries", Period: Period{Month: 1, Year: 2025}},
	}

	t.Run("preserves insertion order", func(t *testing.T) {
		got := FilterRecords(expenses, Filter{Month: 1})
		assert.Equal(t, 2, len(got))
		assert.Equal(t, "10", got[0].Amount.String())
		assert.Equal(t, "30", got[1].Amount.String())
	})

	t.Run("zero filter returns everything", func(t *testing.T) {
		got := FilterRecords(expenses, Filter{})
		assert.Equal(t, 3, len(got))
	})

	t.Run("no matches yields empty", func(t *testing.T) {
		got := FilterRecords(expenses, Filter{Year: 1999})
		assert.Equal(t, 0, len(got))
	})

	t.Run("does not mutate the source", func(t *testing.T) {
		_ = FilterRecords(expenses, Filter{Month: 2})
		assert.Equal(t, "10", expenses[0].Amount.String())
		assert.Equal(t, 3, len(expenses))
	})
}
