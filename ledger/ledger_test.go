package ledger

import (
	"testing"
	"time"

	"github.com/carlmjohnson/be"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Category
		wantErr bool
	}{
		{name: "exact income", input: "Income", want: CategoryIncome},
		{name: "lowercase paid", input: "paid", want: CategoryPaid},
		{name: "uppercase income", input: "INCOME", want: CategoryIncome},
		{name: "padded", input: "  Paid ", want: CategoryPaid},
		{name: "unknown", input: "Transfer", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if tt.wantErr {
				be.Nonzero(t, err)
				return
			}

			be.NilErr(t, err)
			be.Equal(t, tt.want, got)
		})
	}
}

func TestLedgerTotals(t *testing.T) {
	l := New()

	l.Add(100, CategoryIncome, "salary", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	l.Add(40, CategoryPaid, "groceries", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
	l.Add(25.50, CategoryPaid, "gas", time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC))
	l.Add(10, CategoryIncome, "refund", time.Date(2024, 2, 21, 0, 0, 0, 0, time.UTC))

	be.Equal(t, 110.0, l.Income())
	be.Equal(t, 65.50, l.Paid())
	be.Equal(t, l.Income()-l.Paid(), l.TotalSaving())
}

func TestLedgerTotalsOrderIndependent(t *testing.T) {
	forward := New()
	backward := New()

	amounts := []struct {
		amount   float64
		category Category
	}{
		{100, CategoryIncome},
		{40, CategoryPaid},
		{12.34, CategoryIncome},
		{0.66, CategoryPaid},
	}

	for _, a := range amounts {
		forward.AddNow(a.amount, a.category, "x")
	}
	for i := len(amounts) - 1; i >= 0; i-- {
		backward.AddNow(amounts[i].amount, amounts[i].category, "x")
	}

	be.Equal(t, forward.Income(), backward.Income())
	be.Equal(t, forward.Paid(), backward.Paid())
	be.Equal(t, forward.TotalSaving(), backward.TotalSaving())
}

func TestLedgerPermissiveAdd(t *testing.T) {
	// Zero and negative amounts are accepted as-is; the entry form is the
	// validation boundary, not the ledger.
	l := New()

	l.AddNow(0, CategoryIncome, "nothing")
	l.AddNow(-5, CategoryPaid, "correction")

	be.Equal(t, 0.0, l.Income())
	be.Equal(t, -5.0, l.Paid())
	be.Equal(t, 5.0, l.TotalSaving())
}

func TestLedgerAddDefaultsDateToNow(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	l := New(WithClock(fixedClock(now)))

	l.AddNow(10, CategoryIncome, "tip")

	ts := l.Transactions()
	be.Equal(t, 1, len(ts))
	be.Equal(t, now, ts[0].Date)
}

func TestMonthlyTransactionsFiltersByYearAndMonth(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	l := New(WithClock(fixedClock(now)))

	l.Add(100, CategoryIncome, "salary", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	l.Add(40, CategoryPaid, "groceries", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
	l.Add(999, CategoryIncome, "last month", time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC))
	l.Add(999, CategoryIncome, "last year same month", time.Date(2023, 3, 10, 0, 0, 0, 0, time.UTC))

	monthly := l.MonthlyTransactions()
	be.Equal(t, 2, len(monthly))
	be.Equal(t, "salary", monthly[0].Description)
	be.Equal(t, "groceries", monthly[1].Description)

	be.Equal(t, 60.0, l.MonthlyTotal())
}

func TestEndToEndScenario(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	l := New(WithClock(fixedClock(now)))

	l.Add(100.00, CategoryIncome, "salary", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	l.Add(40.00, CategoryPaid, "groceries", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))

	be.Equal(t, 100.00, l.Income())
	be.Equal(t, 40.00, l.Paid())
	be.Equal(t, 60.00, l.TotalSaving())
	be.Equal(t, 60.00, l.MonthlyTotal())
}

func TestMonthlyRange(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		expected string
	}{
		{
			name:     "leap year february",
			now:      time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
			expected: "2/1 - 2/29",
		},
		{
			name:     "non-leap february",
			now:      time.Date(2023, 2, 15, 0, 0, 0, 0, time.UTC),
			expected: "2/1 - 2/28",
		},
		{
			name:     "december rolls into next year",
			now:      time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC),
			expected: "12/1 - 12/31",
		},
		{
			name:     "thirty day month",
			now:      time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			expected: "4/1 - 4/30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(WithClock(fixedClock(tt.now)))
			be.Equal(t, tt.expected, l.MonthlyRange())
		})
	}
}

func TestTodayDate(t *testing.T) {
	l := New(WithClock(fixedClock(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))))
	be.Equal(t, "March 05, 2024", l.TodayDate())
}

func TestDisplay(t *testing.T) {
	be.Equal(t, "$12.50", Display(12.50))
	be.Equal(t, "$0.00", Display(0))
	be.Equal(t, "-$3.25", Display(-3.25))
}

func TestSignedDisplay(t *testing.T) {
	tests := []struct {
		name     string
		t        Transaction
		expected string
	}{
		{
			name:     "income gets plus",
			t:        Transaction{Amount: 100, Category: CategoryIncome},
			expected: "+$100.00",
		},
		{
			name:     "paid gets minus",
			t:        Transaction{Amount: 40.5, Category: CategoryPaid},
			expected: "-$40.50",
		},
		{
			name:     "negative amount displays by magnitude",
			t:        Transaction{Amount: -5, Category: CategoryPaid},
			expected: "-$5.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be.Equal(t, tt.expected, SignedDisplay(tt.t))
		})
	}
}
