package template

import (
	"fmt"
	"math"
)

// Column ratios must sum to 1.0 within this tolerance or the template
// is rejected at construction.
const (
	RatioSumMin = 0.98
	RatioSumMax = 1.02
)

// validate enforces the column-ratio invariant. A violating template
// fails construction; it never renders.
func validate(t *TableTemplate) (*TableTemplate, error) {
	if len(t.Columns) == 0 {
		return nil, fmt.Errorf("template %s/%s has no columns", t.VendorSystem, t.Type)
	}
	var sum float64
	for _, c := range t.Columns {
		sum += c.WidthRatio
	}
	if sum < RatioSumMin || sum > RatioSumMax {
		return nil, fmt.Errorf("template %s/%s column widths sum to %.3f, expected ~1.0",
			t.VendorSystem, t.Type, sum)
	}
	if math.IsNaN(sum) {
		return nil, fmt.Errorf("template %s/%s has NaN column width", t.VendorSystem, t.Type)
	}
	return t, nil
}

// Get returns the template for a table type under a vendor's
// conventions. Unknown table types fall back to the CASH_OUT template.
func Get(tableType TableType, vendor string) (*TableTemplate, error) {
	switch tableType {
	case CashOut:
		return cashOutTemplate(vendor)
	case CashIn:
		return cashInTemplate(vendor)
	case Budget:
		return budgetTemplate(vendor)
	case Unpaid:
		return unpaidTemplate(vendor)
	case Aging:
		return agingTemplate(vendor)
	case GL:
		return glTemplate(vendor)
	default:
		return cashOutTemplate(vendor)
	}
}

func cashOutTemplate(vendor string) (*TableTemplate, error) {
	switch {
	case vendor == "AKAM_NEW":
		return validate(&TableTemplate{
			VendorSystem: vendor,
			Type:         CashOut,
			TitleOptions: []string{
				"Schedule B - Statement of Paid Bills",
				"Cash Disbursements",
				"Paid Items",
				"Check Register",
				"Disbursement Journal",
			},
			Columns: []ColumnSpec{
				{"Invoice Date", SemDate, 0.07, AlignLeft},
				{"Check Date", SemDate, 0.06, AlignLeft},
				{"VEND", SemVendorCode, 0.04, AlignCenter},
				{"Vendor", SemVendor, 0.13, AlignLeft},
				{"Invoice #", SemInvoiceNum, 0.08, AlignLeft},
				{"P/O", SemOther, 0.05, AlignCenter},
				{"GL Code", SemAccount, 0.07, AlignLeft},
				{"Description", SemOther, 0.13, AlignLeft},
				{"Check #", SemCheckNum, 0.06, AlignCenter},
				{"Amount", SemAmount, 0.11, AlignRight},
				{"Balance", SemBalance, 0.10, AlignRight},
				{"Remarks", SemOther, 0.10, AlignLeft},
			},
			SupportsSubtotal: true,
			RowCountMin:      15, RowCountMax: 60,
			HasGridLines: true,
			FontName:     "Helvetica", FontSize: 8, HeaderFontSize: 9,
			RowHeight: 13,
		})
	case vendor == "AKAM_OLD" || vendor == "MDS" || vendor == "LINDENWOOD":
		return validate(&TableTemplate{
			VendorSystem: vendor,
			Type:         CashOut,
			TitleOptions: []string{
				"Statement of Disbursements",
				"Schedule B - Statement of Paid Bills",
				"Check Register",
			},
			Columns: []ColumnSpec{
				{"Date", SemDate, 0.07, AlignLeft},
				{"CK NO", SemCheckNum, 0.06, AlignCenter},
				{"VEND", SemVendorCode, 0.04, AlignCenter},
				{"Paid To", SemVendor, 0.14, AlignLeft},
				{"Invoice #", SemInvoiceNum, 0.08, AlignLeft},
				{"P/O", SemOther, 0.08, AlignCenter},
				{"G/L", SemAccount, 0.10, AlignLeft},
				{"Expense Type", SemOther, 0.06, AlignLeft},
				{"Amount", SemAmount, 0.12, AlignRight},
				{"Balance", SemBalance, 0.10, AlignRight},
				{"Remarks", SemOther, 0.15, AlignLeft},
			},
			SupportsSubtotal: true,
			RowCountMin:      20, RowCountMax: 80,
			HasGridLines: true,
			FontName:     "Courier", FontSize: 8, HeaderFontSize: 9,
			RowHeight: 12,
		})
	default:
		return validate(&TableTemplate{
			VendorSystem: vendor,
			Type:         CashOut,
			TitleOptions: []string{
				"Cash Disbursements",
				"Check Register",
				"Payment Register",
			},
			Columns: []ColumnSpec{
				{"Date", SemDate, 0.08, AlignLeft},
				{"Check #", SemCheckNum, 0.07, AlignCenter},
				{"Vendor", SemVendor, 0.16, AlignLeft},
				{"Invoice #", SemInvoiceNum, 0.09, AlignLeft},
				{"GL Code", SemAccount, 0.09, AlignLeft},
				{"Description", SemOther, 0.14, AlignLeft},
				{"P/O", SemOther, 0.07, AlignCenter},
				{"Amount", SemAmount, 0.12, AlignRight},
				{"Balance", SemBalance, 0.10, AlignRight},
				{"Remarks", SemOther, 0.08, AlignLeft},
			},
			SupportsSubtotal: true,
			RowCountMin:      15, RowCountMax: 60,
			HasGridLines: true,
			FontName:     "Helvetica", FontSize: 9, HeaderFontSize: 10,
			RowHeight: 14,
		})
	}
}

func cashInTemplate(vendor string) (*TableTemplate, error) {
	switch {
	case vendor == "AKAM_NEW":
		return validate(&TableTemplate{
			VendorSystem: vendor,
			Type:         CashIn,
			TitleOptions: []string{
				"Schedule D - Collection Status",
				"Cash Receipts",
				"Deposits",
				"Revenue Receipts",
				"Collection Report",
			},
			Columns: []ColumnSpec{
				{"Date", SemDate, 0.06, AlignLeft},
				{"Acct No", SemUnitCode, 0.06, AlignLeft},
				{"Unit", SemUnitCode, 0.04, AlignCenter},
				{"Owner", SemVendor, 0.12, AlignLeft},
				{"Open Bal", SemBalance, 0.08, AlignRight},
				{"Base Charge", SemAmount, 0.08, AlignRight},
				{"Shares", SemAmount, 0.08, AlignRight},
				{"GL Code", SemAccount, 0.10, AlignLeft},
				{"Receipt #", SemCheckNum, 0.06, AlignCenter},
				{"Amount", SemAmount, 0.10, AlignRight},
				{"Balance", SemBalance, 0.10, AlignRight},
				{"Status", SemStatus, 0.06, AlignCenter},
				{"Description", SemOther, 0.06, AlignLeft},
			},
			SupportsSubtotal: true,
			RowCountMin:      10, RowCountMax: 40,
			HasGridLines: true,
			FontName:     "Helvetica", FontSize: 8, HeaderFontSize: 9,
			RowHeight: 13,
		})
	case vendor == "COOP" || vendor == "LINDENWOOD":
		return validate(&TableTemplate{
			VendorSystem: vendor,
			Type:         CashIn,
			TitleOptions: []string{
				"Collection Status",
				"Shareholder Receipts",
				"Maintenance Collection",
				"Schedule D - Collection Status",
			},
			Columns: []ColumnSpec{
				{"Date", SemDate, 0.06, AlignLeft},
				{"Acct", SemUnitCode, 0.06, AlignLeft},
				{"Apt", SemUnitCode, 0.05, AlignCenter},
				{"Resident", SemVendor, 0.14, AlignLeft},
				{"Shares", SemAmount, 0.06, AlignRight},
				{"Open Bal", SemBalance, 0.09, AlignRight},
				{"Base Charge", SemAmount, 0.09, AlignRight},
				{"Receipt #", SemCheckNum, 0.06, AlignCenter},
				{"Paid", SemAmount, 0.11, AlignRight},
				{"Close Bal", SemBalance, 0.11, AlignRight},
				{"Status", SemStatus, 0.09, AlignCenter},
				{"Charges", SemOther, 0.08, AlignLeft},
			},
			SupportsSubtotal: true,
			RowCountMin:      10, RowCountMax: 50,
			HasGridLines: true,
			FontName:     "Helvetica", FontSize: 8, HeaderFontSize: 9,
			RowHeight: 13,
		})
	default:
		return validate(&TableTemplate{
			VendorSystem: vendor,
			Type:         CashIn,
			TitleOptions: []string{
				"Cash Receipts",
				"Deposits",
				"Collection Report",
			},
			Columns: []ColumnSpec{
				{"Date", SemDate, 0.07, AlignLeft},
				{"Acct", SemUnitCode, 0.05, AlignLeft},
				{"Unit", SemUnitCode, 0.05, AlignCenter},
				{"Owner", SemVendor, 0.14, AlignLeft},
				{"Open Bal", SemBalance, 0.09, AlignRight},
				{"Base Charge", SemAmount, 0.09, AlignRight},
				{"GL Code", SemAccount, 0.10, AlignLeft},
				{"Receipt #", SemCheckNum, 0.07, AlignCenter},
				{"Amount", SemAmount, 0.12, AlignRight},
				{"Balance", SemBalance, 0.12, AlignRight},
				{"Status", SemStatus, 0.10, AlignCenter},
			},
			SupportsSubtotal: true,
			RowCountMin:      10, RowCountMax: 40,
			HasGridLines: true,
			FontName:     "Helvetica", FontSize: 9, HeaderFontSize: 10,
			RowHeight: 14,
		})
	}
}

func budgetTemplate(vendor string) (*TableTemplate, error) {
	return validate(&TableTemplate{
		VendorSystem: vendor,
		Type:         Budget,
		TitleOptions: []string{
			"Income Statement",
			"Budget vs Actual",
			"Statement of Revenue and Expenses",
			"Operating Budget Comparison",
			"Financial Summary",
		},
		Columns: []ColumnSpec{
			{"Account", SemAccount, 0.30, AlignLeft},
			{"Current", SemAmount, 0.14, AlignRight},
			{"YTD Actual", SemAmount, 0.14, AlignRight},
			{"YTD Budget", SemAmount, 0.14, AlignRight},
			{"Annual Budget", SemAmount, 0.14, AlignRight},
			{"Variance", SemAmount, 0.14, AlignRight},
		},
		SupportsSubtotal: true,
		RowCountMin:      20, RowCountMax: 80,
		HasGridLines: true,
		FontName:     "Helvetica", FontSize: 9, HeaderFontSize: 10,
		RowHeight: 14,
	})
}

func unpaidTemplate(vendor string) (*TableTemplate, error) {
	return validate(&TableTemplate{
		VendorSystem: vendor,
		Type:         Unpaid,
		TitleOptions: []string{
			"Unpaid Bills",
			"Open Payables",
			"Accounts Payable Aging",
			"Outstanding Invoices",
			"Bills Due",
		},
		Columns: []ColumnSpec{
			{"Date", SemDate, 0.10, AlignLeft},
			{"Vendor", SemVendor, 0.22, AlignLeft},
			{"Invoice #", SemInvoiceNum, 0.10, AlignLeft},
			{"Due Date", SemDate, 0.10, AlignLeft},
			{"GL Code", SemAccount, 0.12, AlignLeft},
			{"Description", SemOther, 0.18, AlignLeft},
			{"Amount", SemAmount, 0.18, AlignRight},
		},
		SupportsSubtotal: true,
		RowCountMin:      10, RowCountMax: 40,
		HasGridLines: true,
		FontName:     "Helvetica", FontSize: 9, HeaderFontSize: 10,
		RowHeight: 14,
	})
}

func agingTemplate(vendor string) (*TableTemplate, error) {
	return validate(&TableTemplate{
		VendorSystem: vendor,
		Type:         Aging,
		TitleOptions: []string{
			"Aged Receivables",
			"Arrears Report",
			"Collection Status by Age",
			"Receivables Aging Summary",
			"Owner Aging Report",
		},
		Columns: []ColumnSpec{
			{"Unit", SemVendor, 0.08, AlignLeft},
			{"Owner", SemVendor, 0.18, AlignLeft},
			{"Current", SemAmount, 0.12, AlignRight},
			{"30 Days", SemAmount, 0.12, AlignRight},
			{"60 Days", SemAmount, 0.12, AlignRight},
			{"90 Days", SemAmount, 0.12, AlignRight},
			{"90+ Days", SemAmount, 0.12, AlignRight},
			{"Total", SemAmount, 0.14, AlignRight},
		},
		SupportsSubtotal: true,
		RowCountMin:      15, RowCountMax: 60,
		HasGridLines: true,
		FontName:     "Helvetica", FontSize: 9, HeaderFontSize: 10,
		RowHeight: 14,
	})
}

func glTemplate(vendor string) (*TableTemplate, error) {
	return validate(&TableTemplate{
		VendorSystem: vendor,
		Type:         GL,
		TitleOptions: []string{
			"General Ledger",
			"GL Detail",
			"Account Activity",
			"Transaction Detail",
			"Ledger Activity Report",
		},
		Columns: []ColumnSpec{
			{"Date", SemDate, 0.10, AlignLeft},
			{"Reference", SemCheckNum, 0.10, AlignLeft},
			{"Description", SemOther, 0.25, AlignLeft},
			{"Debit", SemAmount, 0.13, AlignRight},
			{"Credit", SemAmount, 0.13, AlignRight},
			{"Balance", SemBalance, 0.14, AlignRight},
			{"GL Code", SemAccount, 0.15, AlignLeft},
		},
		SupportsSubtotal: true,
		RowCountMin:      20, RowCountMax: 100,
		HasGridLines: true,
		FontName:     "Helvetica", FontSize: 9, HeaderFontSize: 10,
		RowHeight: 14,
	})
}
