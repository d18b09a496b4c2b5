// Package ledger generates the synthetic financial content that fills
// the rendered tables: a CIRA chart of accounts, balanced monthly cash
// activity, and pre-aggregated rows for budget, payables, aging, and
// general-ledger detail tables.
package ledger

import (
	"fmt"
	"regexp"
)

// GLCategory classifies a general-ledger account.
type GLCategory string

const (
	CategoryRevenue GLCategory = "REVENUE"
	CategoryExpense GLCategory = "EXPENSE"
	CategoryReserve GLCategory = "RESERVE"
)

// FundCode is a standard CIRA fund prefix.
type FundCode string

const (
	FundOperating         FundCode = "01"
	FundReserve           FundCode = "02"
	FundSpecialAssessment FundCode = "03"
	FundPayroll           FundCode = "04"
)

// GLAccount is one general-ledger account, formatted for one GL mask.
type GLAccount struct {
	Code        string // formatted per mask, e.g. "01-6015-00"
	Name        string
	Category    GLCategory
	Subcategory string
	Fund        FundCode
	BaseCode    int
}

// Account code ranges follow CIRA convention: revenue 4000-4999,
// expenses 6000-9000, reserves 3000-3199.
type accountDef struct {
	base int
	name string
	sub  string
}

var revenueAccounts = []accountDef{
	{4010, "Assessment Income", "ASSESSMENTS"},
	{4020, "Late Charges", "FEES"},
	{4100, "Interest Income", "INTEREST"},
	{4110, "Parking Income", "ANCILLARY"},
	{4190, "Other Income", "OTHER"},
}

var expenseAccounts = []accountDef{
	{6010, "Management Fees", "ADMIN"},
	{6015, "Legal Fees", "LEGAL"},
	{6020, "Accounting Fees", "ADMIN"},
	{6100, "Insurance", "INSURANCE"},
	{6200, "Electricity", "UTILITIES"},
	{6210, "Gas", "UTILITIES"},
	{6220, "Water & Sewer", "UTILITIES"},
	{6300, "General Maintenance", "MAINTENANCE"},
	{6310, "Landscaping", "MAINTENANCE"},
	{6400, "Janitorial Services", "CONTRACTS"},
	{6500, "Reserve Allocation", "RESERVE_TRANSFER"},
}

var reserveAccounts = []accountDef{
	{3010, "Roof Reserve", "BUILDING"},
	{3020, "Elevator Reserve", "BUILDING"},
	{3030, "Painting Reserve", "BUILDING"},
}

// GLMasks lists the supported GL code formats.
var GLMasks = []string{"NNNN", "NNNNN", "NN-NNNN-NN", "NNNNNN"}

// FormatGLCode renders a base code under one of the supported masks.
func FormatGLCode(baseCode int, mask string, fund FundCode) (string, error) {
	switch mask {
	case "NNNN":
		return fmt.Sprintf("%04d", baseCode), nil
	case "NNNNN":
		return fmt.Sprintf("%05d", baseCode), nil
	case "NN-NNNN-NN":
		return fmt.Sprintf("%s-%04d-00", fund, baseCode), nil
	case "NNNNNN":
		return fmt.Sprintf("%s%04d", fund, baseCode), nil
	default:
		return "", fmt.Errorf("unknown GL mask: %q", mask)
	}
}

// MaskPattern returns the validation regexp for a mask.
func MaskPattern(mask string) (*regexp.Regexp, error) {
	switch mask {
	case "NNNN":
		return regexp.MustCompile(`^\d{4}$`), nil
	case "NNNNN":
		return regexp.MustCompile(`^\d{5}$`), nil
	case "NN-NNNN-NN":
		return regexp.MustCompile(`^\d{2}-\d{4}-\d{2}$`), nil
	case "NNNNNN":
		return regexp.MustCompile(`^\d{6}$`), nil
	default:
		return nil, fmt.Errorf("unknown GL mask: %q", mask)
	}
}

// ValidateGLCode reports whether a formatted code matches its mask.
func ValidateGLCode(code, mask string) bool {
	p, err := MaskPattern(mask)
	if err != nil {
		return false
	}
	return p.MatchString(code)
}

// BuildChartOfAccounts builds the fixed account set for one GL mask.
// Revenue and expense accounts use the given operating fund; reserve
// accounts always use the reserve fund.
func BuildChartOfAccounts(glMask string, fund FundCode) ([]GLAccount, error) {
	var accounts []GLAccount

	add := func(defs []accountDef, cat GLCategory, f FundCode) error {
		for _, d := range defs {
			code, err := FormatGLCode(d.base, glMask, f)
			if err != nil {
				return err
			}
			accounts = append(accounts, GLAccount{
				Code: code, Name: d.name, Category: cat,
				Subcategory: d.sub, Fund: f, BaseCode: d.base,
			})
		}
		return nil
	}

	if err := add(revenueAccounts, CategoryRevenue, fund); err != nil {
		return nil, err
	}
	if err := add(expenseAccounts, CategoryExpense, fund); err != nil {
		return nil, err
	}
	if err := add(reserveAccounts, CategoryReserve, FundReserve); err != nil {
		return nil, err
	}
	return accounts, nil
}

// FilterByCategory returns the accounts of one category.
func FilterByCategory(accounts []GLAccount, cat GLCategory) []GLAccount {
	var out []GLAccount
	for _, a := range accounts {
		if a.Category == cat {
			out = append(out, a)
		}
	}
	return out
}

// ExpenseAccounts returns the expense accounts.
func ExpenseAccounts(accounts []GLAccount) []GLAccount {
	return FilterByCategory(accounts, CategoryExpense)
}

// RevenueAccounts returns the revenue accounts.
func RevenueAccounts(accounts []GLAccount) []GLAccount {
	return FilterByCategory(accounts, CategoryRevenue)
}
