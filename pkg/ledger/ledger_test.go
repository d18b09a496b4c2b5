package ledger

import (
	"math/rand"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatGLCodeMasks(t *testing.T) {
	cases := []struct {
		mask string
		want string
	}{
		{"NNNN", "6015"},
		{"NNNNN", "06015"},
		{"NN-NNNN-NN", "01-6015-00"},
		{"NNNNNN", "016015"},
	}
	for _, tc := range cases {
		got, err := FormatGLCode(6015, tc.mask, FundOperating)
		require.NoError(t, err, tc.mask)
		assert.Equal(t, tc.want, got)
		assert.True(t, ValidateGLCode(got, tc.mask), "%s should validate %s", got, tc.mask)
	}

	_, err := FormatGLCode(6015, "BOGUS", FundOperating)
	assert.Error(t, err)
}

func TestChartOfAccountsMaskConsistency(t *testing.T) {
	for _, mask := range GLMasks {
		accounts, err := BuildChartOfAccounts(mask, FundOperating)
		require.NoError(t, err, mask)
		require.Len(t, accounts, 19)

		for _, a := range accounts {
			assert.True(t, ValidateGLCode(a.Code, mask), "%s under %s", a.Code, mask)
		}
		assert.Len(t, RevenueAccounts(accounts), 5)
		assert.Len(t, ExpenseAccounts(accounts), 11)
	}
}

func TestReserveAccountsUseReserveFund(t *testing.T) {
	accounts, err := BuildChartOfAccounts("NN-NNNN-NN", FundOperating)
	require.NoError(t, err)

	for _, a := range FilterByCategory(accounts, CategoryReserve) {
		assert.Equal(t, FundReserve, a.Fund)
		assert.Contains(t, a.Code, "02-")
	}
}

func TestGenerateMonthlyLedgerSplit(t *testing.T) {
	accounts, err := BuildChartOfAccounts("NNNN", FundOperating)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	txns := GenerateMonthlyLedger(accounts, start, end, rng, 50, "CONDO")
	require.Len(t, txns, 50)

	disbursements := 0
	for i, txn := range txns {
		assert.True(t, txn.Amount.IsPositive(), "txn %d", i)
		assert.NotEmpty(t, txn.GLCode)
		if i > 0 {
			assert.False(t, txn.Date.Before(txns[i-1].Date), "sorted by date")
		}
		if txn.Disbursement {
			disbursements++
			assert.NotEmpty(t, txn.InvoiceNumber)
			assert.NotEmpty(t, txn.VendorCode)
			assert.True(t, txn.CheckDate.After(txn.InvoiceDate))
			assert.Equal(t, 0, txn.Shares, "condo disbursement carries no shares")
		} else {
			assert.NotEmpty(t, txn.UnitID)
			assert.NotEmpty(t, txn.Status)
		}
	}
	assert.Equal(t, 35, disbursements, "70%% of 50")
}

func TestSharesOnlyForCoops(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		assert.Zero(t, Shares("CONDO", rng))
		assert.Zero(t, Shares("HOA", rng))
		s := Shares("COOP", rng)
		assert.GreaterOrEqual(t, s, 50)
		assert.Less(t, s, 500)
	}
}

func TestPaymentStatusTracksBalance(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	assert.Equal(t, "Prepaid", PaymentStatus(decimal.NewFromInt(-100), rng))
	for i := 0; i < 50; i++ {
		s := PaymentStatus(decimal.NewFromInt(2500), rng)
		assert.Contains(t, []string{"Delinquent", "Past Due", "Legal"}, s)
	}
}

func TestFormatMoneyGrouping(t *testing.T) {
	cases := map[float64]string{
		0:          "0.00",
		5.5:        "5.50",
		999.99:     "999.99",
		1000:       "1,000.00",
		1234567.89: "1,234,567.89",
		-12345.6:   "-12,345.60",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatMoney(decimal.NewFromFloat(in)), "%v", in)
	}

	assert.Equal(t, "+1,500.00", FormatSignedMoney(decimal.NewFromInt(1500)))
	assert.Equal(t, "-1,500.00", FormatSignedMoney(decimal.NewFromInt(-1500)))
}

func TestAgingBucketsSumToTotal(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	fake := gofakeit.New(9)

	rows := GenerateAgingRows(rng, fake, 20)
	require.Len(t, rows, 20)

	for i, r := range rows {
		sum := r.Amounts["current"].Add(r.Amounts["days_30"]).
			Add(r.Amounts["days_60"]).Add(r.Amounts["days_90"]).
			Add(r.Amounts["days_90_plus"])
		diff := sum.Sub(r.Amounts["total"]).Abs()
		assert.True(t, diff.LessThanOrEqual(decimal.NewFromFloat(0.05)),
			"row %d buckets sum %s vs total %s", i, sum, r.Amounts["total"])
	}
}

func TestGLRowsKeepRunningBalance(t *testing.T) {
	accounts, err := BuildChartOfAccounts("NNNN", FundOperating)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	fake := gofakeit.New(7)
	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC)

	rows := GenerateGLRows(accounts, start, end, rng, fake, 30)
	require.Len(t, rows, 30)

	for i := 1; i < len(rows); i++ {
		prev := rows[i-1].Amounts["balance"]
		expected := prev.Add(rows[i].Amounts["debit"]).Sub(rows[i].Amounts["credit"])
		assert.True(t, expected.Equal(rows[i].Amounts["balance"]), "row %d", i)
	}
}

func TestBudgetVarianceIsBudgetMinusActual(t *testing.T) {
	accounts, err := BuildChartOfAccounts("NNNN", FundOperating)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(3))
	rows := GenerateBudgetRows(accounts, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), rng, 12)
	require.NotEmpty(t, rows)

	for i, r := range rows {
		want := r.Amounts["ytd_budget"].Sub(r.Amounts["ytd_actual"])
		assert.True(t, want.Equal(r.Amounts["variance"]), "row %d", i)
	}
}

func TestTrainValSplitIsCompanyLevel(t *testing.T) {
	train, val := TrainValSplit(0.2, 42)
	assert.Len(t, val, 2)
	assert.Len(t, train, 8)

	seen := map[string]bool{}
	for _, c := range append(train, val...) {
		assert.False(t, seen[c.Name], "company %s appears twice", c.Name)
		seen[c.Name] = true
	}
}

func TestTemplateHeaderLineCount(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	c := ManagementCompanies[0]
	for i := 0; i < 50; i++ {
		lines := TemplateHeaderLines(c, "432 Park Avenue", rng)
		assert.GreaterOrEqual(t, len(lines), 1)
		assert.LessOrEqual(t, len(lines), 6)
		assert.Equal(t, "432 PARK AVENUE", lines[0])
	}
}
