package ledger

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Category classifies a transaction as money coming in or going out.
type Category string

const (
	CategoryIncome Category = "Income"
	CategoryPaid   Category = "Paid"
)

// ParseCategory normalizes user-supplied text ("income", "PAID", ...) into a
// Category. Anything outside the two known values is an error.
func ParseCategory(s string) (Category, error) {
	switch Category(titleCaser.String(strings.ToLower(strings.TrimSpace(s)))) {
	case CategoryIncome:
		return CategoryIncome, nil
	case CategoryPaid:
		return CategoryPaid, nil
	}

	return "", fmt.Errorf("unknown category: %q", s)
}

// Transaction is one recorded income or paid event. Transactions are
// immutable once added to a ledger.
type Transaction struct {
	Amount      float64
	Category    Category
	Description string
	Date        time.Time
}

// Ledger owns the ordered transaction sequence and every derived aggregate.
// Derived values are recomputed on every read against the current clock,
// never cached.
type Ledger struct {
	transactions []Transaction
	now          func() time.Time
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock replaces the wall clock used for month-relative reads.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

func New(opts ...Option) *Ledger {
	l := &Ledger{now: time.Now}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Add appends a transaction. The ledger is deliberately permissive: any
// amount and any category value are accepted, validation belongs to the
// input layer. A zero date means "now".
func (l *Ledger) Add(amount float64, category Category, description string, date time.Time) {
	if date.IsZero() {
		date = l.now()
	}

	l.transactions = append(l.transactions, Transaction{
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        date,
	})
}

// AddNow appends a transaction dated at the current clock time.
func (l *Ledger) AddNow(amount float64, category Category, description string) {
	l.Add(amount, category, description, time.Time{})
}

// Transactions returns a copy of the full sequence in insertion order.
func (l *Ledger) Transactions() []Transaction {
	ts := make([]Transaction, len(l.transactions))
	copy(ts, l.transactions)
	return ts
}

func (l *Ledger) Len() int {
	return len(l.transactions)
}

// Income is the sum of amounts over all Income transactions.
func (l *Ledger) Income() float64 {
	return sumCategory(l.transactions, CategoryIncome)
}

// Paid is the sum of amounts over all Paid transactions.
func (l *Ledger) Paid() float64 {
	return sumCategory(l.transactions, CategoryPaid)
}

// TotalSaving is income minus paid over the whole ledger.
func (l *Ledger) TotalSaving() float64 {
	return l.Income() - l.Paid()
}

// MonthlyTransactions returns the transactions whose date falls in the
// current calendar month and year, in insertion order.
func (l *Ledger) MonthlyTransactions() []Transaction {
	now := l.now()

	var monthly []Transaction
	for _, t := range l.transactions {
		if t.Date.Month() == now.Month() && t.Date.Year() == now.Year() {
			monthly = append(monthly, t)
		}
	}

	return monthly
}

// MonthlyTotal is income minus paid over the current month only.
func (l *Ledger) MonthlyTotal() float64 {
	monthly := l.MonthlyTransactions()
	return sumCategory(monthly, CategoryIncome) - sumCategory(monthly, CategoryPaid)
}

// MonthlyRange describes the first and last day of the current month, e.g.
// "2/1 - 2/29". The last day is the first day of the next month minus one
// day, which handles month length and leap years without a table.
func (l *Ledger) MonthlyRange() string {
	now := l.now()

	firstOfNextMonth := time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, now.Location())
	lastDay := firstOfNextMonth.AddDate(0, 0, -1).Day()

	return fmt.Sprintf("%d/1 - %d/%d", int(now.Month()), int(now.Month()), lastDay)
}

// Year reports the current calendar year.
func (l *Ledger) Year() int {
	return l.now().Year()
}

// TodayDate renders the current date for the account header, e.g.
// "March 15, 2024".
func (l *Ledger) TodayDate() string {
	return l.now().Format("January 02, 2006")
}

func sumCategory(ts []Transaction, c Category) float64 {
	var sum float64
	for _, t := range ts {
		if t.Category == c {
			sum += t.Amount
		}
	}

	return sum
}

// Display renders an amount as dollars with two decimal places.
func Display(amount float64) string {
	return asMoney(amount).Display()
}

// SignedDisplay renders a transaction amount with its category sign, "+" for
// income and "-" for paid, e.g. "+$100.00".
func SignedDisplay(t Transaction) string {
	sign := "-"
	if t.Category == CategoryIncome {
		sign = "+"
	}

	return sign + asMoney(t.Amount).Absolute().Display()
}

func asMoney(amount float64) *money.Money {
	return money.New(int64(math.Round(amount*100)), "USD")
}
