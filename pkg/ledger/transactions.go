package ledger

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
)

// CashTransaction is one disbursement or receipt. Amounts are decimal
// so subtotals never re-parse formatted strings.
type CashTransaction struct {
	TxnID        string
	Date         time.Time
	Vendor       string
	GLCode       string
	GLName       string
	Description  string
	Amount       decimal.Decimal
	CheckNumber  string
	Disbursement bool

	// Disbursement detail
	InvoiceNumber string
	InvoiceDate   time.Time
	CheckDate     time.Time
	VendorCode    string
	PONumber      string
	Remarks       string

	// Receipt detail
	AccountCode    string
	UnitID         string
	OpeningBalance decimal.Decimal
	BaseCharge     decimal.Decimal
	Shares         int // 0 for non-co-op properties
	Status         string
}

var vendorCodePrefixes = []string{"V", "O", "P", "S", "C", "M", "A", "B"}

var noteContentTemplates = []string{
	"* %s includes prior period adjustments",
	"See attached schedule for detail",
	"** Amount reflects %d%% discount applied",
	"Note: Prepaid amounts shown as credits",
	"Amounts subject to final reconciliation",
	"* Includes %s late fees",
	"Per board resolution",
	"--- Continued ---",
	"* See footnote %d",
	"Reclassified per audit",
	"Adjusted for accrual",
	"* Estimated amount",
	"",
}

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// InvoiceNumber generates a realistic invoice reference.
func InvoiceNumber(rng *rand.Rand) string {
	switch rng.Intn(5) {
	case 0:
		return fmt.Sprintf("INV-%d", 10000+rng.Intn(90000))
	case 1:
		return fmt.Sprintf("%d", 100000+rng.Intn(900000))
	case 2:
		return fmt.Sprintf("%c%d", 'A'+rune(rng.Intn(26)), 1000+rng.Intn(9000))
	case 3:
		return fmt.Sprintf("INV%d-%d", 2024+rng.Intn(2), 100+rng.Intn(900))
	default:
		return fmt.Sprintf("%02d-%d", 1+rng.Intn(12), 10000+rng.Intn(90000))
	}
}

// VendorCode derives a stable 4-character code from a vendor name.
func VendorCode(vendorName string, rng *rand.Rand) string {
	prefix := vendorCodePrefixes[rng.Intn(len(vendorCodePrefixes))]
	h := fnv.New32a()
	h.Write([]byte(vendorName))
	return fmt.Sprintf("%s%03d", prefix, h.Sum32()%999)
}

// PONumber generates a purchase order reference 30% of the time,
// otherwise "".
func PONumber(rng *rand.Rand) string {
	if rng.Float64() < 0.30 {
		return fmt.Sprintf("PO-%d", 1000+rng.Intn(9000))
	}
	return ""
}

// UnitID generates an apartment or unit identifier.
func UnitID(rng *rand.Rand) string {
	switch rng.Intn(4) {
	case 0:
		return fmt.Sprintf("%d%c", 1+rng.Intn(29), 'A'+rune(rng.Intn(6)))
	case 1:
		return fmt.Sprintf("%d", 100+rng.Intn(900))
	case 2:
		return fmt.Sprintf("%dF-%02d", 1+rng.Intn(4), 1+rng.Intn(9))
	default:
		return fmt.Sprintf("PH%d", 1+rng.Intn(4))
	}
}

// AccountCode generates a tenant account code tied to a unit.
func AccountCode(unitID string, rng *rand.Rand) string {
	switch rng.Intn(3) {
	case 0:
		return fmt.Sprintf("A%s%d", strings.ReplaceAll(unitID, "-", ""), rng.Intn(10))
	case 1:
		return fmt.Sprintf("%d-%s", 100+rng.Intn(900), unitID)
	default:
		return fmt.Sprintf("T%d", 10000+rng.Intn(90000))
	}
}

// Shares generates co-op shares; zero for any other property type.
func Shares(propertyType string, rng *rand.Rand) int {
	if propertyType == "COOP" {
		return 50 + rng.Intn(450)
	}
	return 0
}

// BaseCharge generates a monthly maintenance amount.
func BaseCharge(rng *rand.Rand) decimal.Decimal {
	return roundDec(500 + rng.Float64()*3000)
}

// OpeningBalance generates a balance: 80% small positive, 15%
// delinquent, 5% prepaid (negative).
func OpeningBalance(rng *rand.Rand) decimal.Decimal {
	r := rng.Float64()
	switch {
	case r < 0.80:
		return roundDec(rng.Float64() * 500)
	case r < 0.95:
		return roundDec(500 + rng.Float64()*4500)
	default:
		return roundDec(-1000 + rng.Float64()*1000)
	}
}

// PaymentStatus derives a status consistent with the opening balance.
func PaymentStatus(openingBalance decimal.Decimal, rng *rand.Rand) string {
	pick := func(options ...string) string { return options[rng.Intn(len(options))] }
	switch {
	case openingBalance.IsNegative():
		return "Prepaid"
	case openingBalance.GreaterThan(decimal.NewFromInt(1000)):
		return pick("Delinquent", "Past Due", "Legal")
	case openingBalance.IsPositive():
		return pick("Open", "Pending", "Current")
	default:
		return pick("Current", "Paid", "Active")
	}
}

// NoteContent generates footnote text for NOTE rows. May be empty, a
// deliberate separator-row case.
func NoteContent(glName string, rng *rand.Rand) string {
	tpl := noteContentTemplates[rng.Intn(len(noteContentTemplates))]
	switch tpl {
	case "":
		return ""
	case "* %s includes prior period adjustments":
		category := "Account"
		if glName != "" {
			category = strings.Fields(glName)[0]
		}
		return fmt.Sprintf(tpl, category)
	case "** Amount reflects %d%% discount applied":
		return fmt.Sprintf(tpl, 2+rng.Intn(13))
	case "* Includes %s late fees":
		return fmt.Sprintf(tpl, monthNames[rng.Intn(12)])
	case "* See footnote %d":
		return fmt.Sprintf(tpl, 1+rng.Intn(4))
	default:
		return tpl
	}
}

var expenseAmountRanges = map[string][2]float64{
	"ADMIN":            {500, 5000},
	"LEGAL":            {1000, 15000},
	"INSURANCE":        {2000, 20000},
	"UTILITIES":        {200, 3000},
	"MAINTENANCE":      {100, 5000},
	"CONTRACTS":        {500, 8000},
	"RESERVE_TRANSFER": {1000, 10000},
}

var revenueAmountRanges = map[string][2]float64{
	"ASSESSMENTS": {500, 5000},
	"FEES":        {25, 500},
	"INTEREST":    {10, 200},
	"ANCILLARY":   {50, 500},
	"OTHER":       {25, 1000},
}

// lognormalAmount draws a clamped log-normal amount for a subcategory
// range. Log-normal mirrors how real expense sizes cluster.
func lognormalAmount(rng *rand.Rand, min, max, std float64) decimal.Decimal {
	mean := math.Log((min + max) / 2)
	amount := math.Exp(rng.NormFloat64()*std + mean)
	if amount < min {
		amount = min
	}
	if amount > max {
		amount = max
	}
	return roundDec(amount)
}

// ExpenseAmount draws a realistic disbursement amount.
func ExpenseAmount(subcategory string, rng *rand.Rand) decimal.Decimal {
	r, ok := expenseAmountRanges[subcategory]
	if !ok {
		r = [2]float64{100, 5000}
	}
	return lognormalAmount(rng, r[0], r[1], 0.5)
}

// RevenueAmount draws a realistic receipt amount.
func RevenueAmount(subcategory string, rng *rand.Rand) decimal.Decimal {
	r, ok := revenueAmountRanges[subcategory]
	if !ok {
		r = [2]float64{100, 2000}
	}
	return lognormalAmount(rng, r[0], r[1], 0.4)
}

func expenseDescription(accountName, vendor string) string {
	options := []string{
		"Payment to " + vendor,
		accountName,
		"Invoice payment - " + vendor,
		vendor + " services",
	}
	h := fnv.New32a()
	h.Write([]byte(vendor))
	return options[h.Sum32()%uint32(len(options))]
}

func revenueDescription(accountName string) string {
	switch {
	case strings.Contains(accountName, "Assessment"):
		return "Monthly assessment"
	case strings.Contains(accountName, "Late"):
		return "Late fee charge"
	case strings.Contains(accountName, "Interest"):
		return "Interest earned"
	case strings.Contains(accountName, "Parking"):
		return "Parking fee"
	default:
		return "Miscellaneous income"
	}
}

// GenerateMonthlyLedger produces a month of cash activity: 70%
// disbursements against expense accounts, 30% receipts against revenue
// accounts, sorted by date.
func GenerateMonthlyLedger(accounts []GLAccount, start, end time.Time,
	rng *rand.Rand, numTransactions int, propertyType string) []CashTransaction {

	fake := gofakeit.New(rng.Int63())

	expenses := ExpenseAccounts(accounts)
	revenues := RevenueAccounts(accounts)

	var txns []CashTransaction
	numExpenses := int(float64(numTransactions) * 0.7)

	for i := 0; i < numExpenses && len(expenses) > 0; i++ {
		invoiceDate := randomDate(start, end, rng)
		checkDate := invoiceDate.AddDate(0, 0, 5+rng.Intn(25))
		acct := expenses[rng.Intn(len(expenses))]
		vendor := fake.Company()

		remarks := ""
		switch rng.Intn(7) {
		case 3:
			remarks = "Approved by board"
		case 4:
			remarks = "Monthly recurring"
		case 5:
			remarks = "See attached invoice"
		case 6:
			remarks = "PO approved " + invoiceDate.Format("01/02")
		}

		txns = append(txns, CashTransaction{
			TxnID:         fmt.Sprintf("JE-%06d", i+1),
			Date:          invoiceDate,
			Vendor:        vendor,
			GLCode:        acct.Code,
			GLName:        acct.Name,
			Description:   expenseDescription(acct.Name, vendor),
			Amount:        ExpenseAmount(acct.Subcategory, rng),
			CheckNumber:   fmt.Sprintf("%d", 1000+rng.Intn(9000)),
			Disbursement:  true,
			InvoiceNumber: InvoiceNumber(rng),
			InvoiceDate:   invoiceDate,
			CheckDate:     checkDate,
			VendorCode:    VendorCode(vendor, rng),
			PONumber:      PONumber(rng),
			Remarks:       remarks,
		})
	}

	for i := numExpenses; i < numTransactions && len(revenues) > 0; i++ {
		txnDate := randomDate(start, end, rng)
		acct := revenues[rng.Intn(len(revenues))]

		unitID := UnitID(rng)
		opening := OpeningBalance(rng)

		txns = append(txns, CashTransaction{
			TxnID:          fmt.Sprintf("JE-%06d", i+1),
			Date:           txnDate,
			Vendor:         fake.Name(),
			GLCode:         acct.Code,
			GLName:         acct.Name,
			Description:    revenueDescription(acct.Name),
			Amount:         RevenueAmount(acct.Subcategory, rng),
			CheckNumber:    fmt.Sprintf("R%d", 10000+rng.Intn(90000)),
			Disbursement:   false,
			AccountCode:    AccountCode(unitID, rng),
			UnitID:         unitID,
			OpeningBalance: opening,
			BaseCharge:     BaseCharge(rng),
			Shares:         Shares(propertyType, rng),
			Status:         PaymentStatus(opening, rng),
		})
	}

	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date.Before(txns[j].Date)
	})
	return txns
}

func randomDate(start, end time.Time, rng *rand.Rand) time.Time {
	days := int(end.Sub(start).Hours() / 24)
	if days < 1 {
		days = 1
	}
	return start.AddDate(0, 0, rng.Intn(days+1))
}

func roundDec(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}
