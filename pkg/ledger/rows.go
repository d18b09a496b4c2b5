package ledger

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
)

// GenericRow holds pre-aggregated data for the non-cash tables. Cells
// carries display strings keyed by column key; Amounts carries the
// numeric values for subtotal computation, keyed the same way.
type GenericRow struct {
	Cells   map[string]string
	Amounts map[string]decimal.Decimal
}

// FormatMoney renders an amount with comma thousands grouping and two
// decimals, e.g. "12,345.67".
func FormatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	dot := strings.IndexByte(s, '.')
	intPart, fracPart := s[:dot], s[dot:]

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	b.WriteString(fracPart)
	return b.String()
}

// FormatSignedMoney is FormatMoney with an explicit leading sign, used
// for variance columns.
func FormatSignedMoney(d decimal.Decimal) string {
	if d.IsNegative() {
		return FormatMoney(d)
	}
	return "+" + FormatMoney(d)
}

// GenerateBudgetRows builds income-statement rows: revenue accounts
// first, then expenses, each with current/YTD/budget/variance figures.
func GenerateBudgetRows(accounts []GLAccount, periodStart time.Time,
	rng *rand.Rand, numRows int) []GenericRow {

	revenues := RevenueAccounts(accounts)
	expenses := ExpenseAccounts(accounts)

	selected := make([]GLAccount, 0, numRows)
	for i := 0; i < len(revenues) && i < 5; i++ {
		selected = append(selected, revenues[i])
	}
	for i := 0; i < len(expenses) && len(selected) < numRows; i++ {
		selected = append(selected, expenses[i])
	}

	month := int(periodStart.Month())
	rows := make([]GenericRow, 0, len(selected))
	for _, acct := range selected {
		current := roundDec(500 + rng.Float64()*14500)
		ytdActual := current.Mul(decimal.NewFromFloat(2.5 + rng.Float64()*1.5)).Round(2)
		ytdBudget := ytdActual.Mul(decimal.NewFromFloat(0.85 + rng.Float64()*0.30)).Round(2)
		annualBudget := ytdBudget.Mul(decimal.NewFromInt(12)).
			Div(decimal.NewFromInt(int64(month))).Round(2)
		variance := ytdBudget.Sub(ytdActual)

		rows = append(rows, GenericRow{
			Cells: map[string]string{
				"account":       acct.Code + " " + acct.Name,
				"current":       FormatMoney(current),
				"ytd_actual":    FormatMoney(ytdActual),
				"ytd_budget":    FormatMoney(ytdBudget),
				"annual_budget": FormatMoney(annualBudget),
				"variance":      FormatSignedMoney(variance),
			},
			Amounts: map[string]decimal.Decimal{
				"current":       current,
				"ytd_actual":    ytdActual,
				"ytd_budget":    ytdBudget,
				"annual_budget": annualBudget,
				"variance":      variance,
			},
		})
	}
	return rows
}

// GenerateUnpaidRows builds open-payables rows.
func GenerateUnpaidRows(accounts []GLAccount, periodEnd time.Time,
	rng *rand.Rand, fake *gofakeit.Faker, numRows int) []GenericRow {

	expenses := ExpenseAccounts(accounts)
	if len(expenses) == 0 {
		expenses = accounts
	}

	terms := []int{15, 30, 45, 60}
	rows := make([]GenericRow, 0, numRows)
	for i := 0; i < numRows; i++ {
		invoiceDate := periodEnd.AddDate(0, 0, -(5 + rng.Intn(55)))
		dueDate := invoiceDate.AddDate(0, 0, terms[rng.Intn(len(terms))])
		acct := expenses[rng.Intn(len(expenses))]
		amount := roundDec(500 + rng.Float64()*24500)

		rows = append(rows, GenericRow{
			Cells: map[string]string{
				"date":        invoiceDate.Format("01/02/06"),
				"vendor":      fake.Company(),
				"invoice_num": fmt.Sprintf("INV-%d", 10000+rng.Intn(90000)),
				"due_date":    dueDate.Format("01/02/06"),
				"gl_code":     acct.Code,
				"description": "Invoice from " + fake.Company(),
				"amount":      FormatMoney(amount),
			},
			Amounts: map[string]decimal.Decimal{"amount": amount},
		})
	}
	return rows
}

// GenerateAgingRows builds receivables-aging rows. Each unit's total
// is distributed across the aging buckets so buckets sum to the total.
func GenerateAgingRows(rng *rand.Rand, fake *gofakeit.Faker, numRows int) []GenericRow {
	letters := []string{"A", "B", "C", "D"}

	rows := make([]GenericRow, 0, numRows)
	for i := 0; i < numRows; i++ {
		total := rng.Float64() * 15000
		current := total * rng.Float64() * 0.5
		remaining := total - current
		d30 := remaining * rng.Float64() * 0.4
		remaining -= d30
		d60 := remaining * rng.Float64() * 0.5
		remaining -= d60
		d90 := remaining * rng.Float64() * 0.6
		d90p := remaining - d90

		cTotal := roundDec(total)
		cCur, c30, c60, c90 := roundDec(current), roundDec(d30), roundDec(d60), roundDec(d90)
		c90p := roundDec(d90p)

		rows = append(rows, GenericRow{
			Cells: map[string]string{
				"unit":         fmt.Sprintf("%d%s", 1+rng.Intn(29), letters[rng.Intn(len(letters))]),
				"owner":        fake.Name(),
				"current":      FormatMoney(cCur),
				"days_30":      FormatMoney(c30),
				"days_60":      FormatMoney(c60),
				"days_90":      FormatMoney(c90),
				"days_90_plus": FormatMoney(c90p),
				"total":        FormatMoney(cTotal),
			},
			Amounts: map[string]decimal.Decimal{
				"current": cCur, "days_30": c30, "days_60": c60,
				"days_90": c90, "days_90_plus": c90p, "total": cTotal,
			},
		})
	}
	return rows
}

// GenerateGLRows builds general-ledger detail rows with a running
// balance for one randomly chosen account.
func GenerateGLRows(accounts []GLAccount, periodStart, periodEnd time.Time,
	rng *rand.Rand, fake *gofakeit.Faker, numRows int) []GenericRow {

	balance := roundDec(10000 + rng.Float64()*40000)
	acct := accounts[rng.Intn(len(accounts))]

	current := periodStart
	rows := make([]GenericRow, 0, numRows)
	for i := 0; i < numRows; i++ {
		current = current.AddDate(0, 0, rng.Intn(3))
		if current.After(periodEnd) {
			current = periodEnd
		}

		isDebit := rng.Float64() > 0.5
		amount := roundDec(100 + rng.Float64()*4900)

		debit, credit := decimal.Zero, decimal.Zero
		prefix := "DEP"
		if isDebit {
			debit = amount
			balance = balance.Add(amount)
			prefix = "CHK"
		} else {
			credit = amount
			balance = balance.Sub(amount)
		}

		rows = append(rows, GenericRow{
			Cells: map[string]string{
				"date":        current.Format("01/02/06"),
				"reference":   fmt.Sprintf("%s%d", prefix, 1000+rng.Intn(9000)),
				"description": fake.Sentence(4),
				"debit":       FormatMoney(debit),
				"credit":      FormatMoney(credit),
				"balance":     FormatMoney(balance),
				"gl_code":     acct.Code,
			},
			Amounts: map[string]decimal.Decimal{
				"debit": debit, "credit": credit, "balance": balance,
			},
		})
	}
	return rows
}
