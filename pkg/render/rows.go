package render

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finrender/cirasynth/pkg/ledger"
	"github.com/finrender/cirasynth/pkg/template"
)

const (
	// noteRowProb interleaves freeform NOTE rows between body rows.
	noteRowProb = 0.05
	// subtotalProb appends a subtotal to transaction-backed tables.
	// Pre-aggregated generic rows always get one.
	subtotalProb = 0.3
)

const dateLayout = "01/02/06"

// prepareCashRows converts transactions to display rows per the
// template's column semantics, interleaving NOTE rows and optionally
// appending a subtotal carrying a recognized keyword.
func prepareCashRows(rc RenderContext, tpl *template.TableTemplate,
	txns []ledger.CashTransaction) ([][]string, []template.RowType) {

	var rows [][]string
	var types []template.RowType
	running := decimal.Zero

	for _, txn := range txns {
		running = running.Add(txn.Amount)
		rows = append(rows, cashRow(tpl, txn, running))
		types = append(types, template.RowBody)

		if rc.Rng.Float64() < noteRowProb {
			note := ledger.NoteContent(txn.GLName, rc.Rng)
			if note != "" {
				rows = append(rows, noteRow(tpl, note))
				types = append(types, template.RowNote)
			}
		}
	}

	if tpl.SupportsSubtotal && len(txns) > 0 && rc.Rng.Float64() < subtotalProb {
		total := decimal.Zero
		for _, t := range txns {
			total = total.Add(t.Amount)
		}
		rows = append(rows, subtotalRow(tpl, rc.Choose.SubtotalKeyword(), total, running))
		types = append(types, template.RowSubtotal)
	}

	return rows, types
}

func cashRow(tpl *template.TableTemplate, txn ledger.CashTransaction,
	running decimal.Decimal) []string {

	row := make([]string, 0, tpl.NCols())
	for _, spec := range tpl.Columns {
		row = append(row, cashCell(spec, txn, running))
	}
	return row
}

func cashCell(spec template.ColumnSpec, txn ledger.CashTransaction,
	running decimal.Decimal) string {

	switch spec.Semantic {
	case template.SemDate:
		switch {
		case strings.Contains(spec.Name, "Invoice") && !txn.InvoiceDate.IsZero():
			return txn.InvoiceDate.Format(dateLayout)
		case strings.Contains(spec.Name, "Check") && !txn.CheckDate.IsZero():
			return txn.CheckDate.Format(dateLayout)
		default:
			return txn.Date.Format(dateLayout)
		}
	case template.SemVendor:
		if strings.Contains(spec.Name, "Unit") {
			return txn.UnitID
		}
		return txn.Vendor
	case template.SemVendorCode:
		return txn.VendorCode
	case template.SemUnitCode:
		if strings.Contains(spec.Name, "Acct") || strings.Contains(spec.Name, "Account") {
			return txn.AccountCode
		}
		return txn.UnitID
	case template.SemAccount:
		return txn.GLCode
	case template.SemAmount:
		switch {
		case strings.Contains(spec.Name, "Base") && !txn.BaseCharge.IsZero():
			return ledger.FormatMoney(txn.BaseCharge)
		case strings.Contains(spec.Name, "Shares"):
			if txn.Shares == 0 {
				return ""
			}
			return decimal.NewFromInt(int64(txn.Shares)).String()
		default:
			return ledger.FormatMoney(txn.Amount)
		}
	case template.SemBalance:
		switch {
		case strings.Contains(spec.Name, "Open"):
			return ledger.FormatMoney(txn.OpeningBalance)
		case strings.Contains(spec.Name, "Close") || strings.Contains(spec.Name, "Balance"):
			return ledger.FormatMoney(txn.OpeningBalance.Add(txn.Amount))
		default:
			return ledger.FormatMoney(running)
		}
	case template.SemInvoiceNum:
		return txn.InvoiceNumber
	case template.SemCheckNum:
		return txn.CheckNumber
	case template.SemStatus:
		return txn.Status
	default:
		switch {
		case strings.Contains(spec.Name, "Description"),
			strings.Contains(spec.Name, "Expense"),
			strings.Contains(spec.Name, "Charges"):
			return txn.Description
		case strings.Contains(spec.Name, "Remarks"), strings.Contains(spec.Name, "Notes"):
			return txn.Remarks
		case strings.Contains(spec.Name, "P/O"), strings.Contains(spec.Name, "P.O."):
			return txn.PONumber
		default:
			return ""
		}
	}
}

// noteRow places footnote text in the first description-like column.
func noteRow(tpl *template.TableTemplate, note string) []string {
	row := make([]string, tpl.NCols())
	for i, spec := range tpl.Columns {
		if strings.Contains(spec.Name, "Description") || spec.Semantic == template.SemOther {
			row[i] = note
			break
		}
	}
	return row
}

func subtotalRow(tpl *template.TableTemplate, keyword string,
	total, running decimal.Decimal) []string {

	row := make([]string, 0, tpl.NCols())
	for _, spec := range tpl.Columns {
		switch spec.Semantic {
		case template.SemAmount:
			row = append(row, ledger.FormatMoney(total))
		case template.SemBalance:
			row = append(row, ledger.FormatMoney(running))
		case template.SemVendor:
			row = append(row, keyword)
		default:
			row = append(row, "")
		}
	}
	return row
}

// columnKeys maps canonical column names to GenericRow cell keys.
var columnKeys = map[string]string{
	"Account":       "account",
	"Current":       "current",
	"YTD Actual":    "ytd_actual",
	"YTD Budget":    "ytd_budget",
	"Annual Budget": "annual_budget",
	"Variance":      "variance",
	"Date":          "date",
	"Vendor":        "vendor",
	"Invoice #":     "invoice_num",
	"Due Date":      "due_date",
	"GL Code":       "gl_code",
	"Description":   "description",
	"Amount":        "amount",
	"Unit":          "unit",
	"Owner":         "owner",
	"30 Days":       "days_30",
	"60 Days":       "days_60",
	"90 Days":       "days_90",
	"90+ Days":      "days_90_plus",
	"Total":         "total",
	"Reference":     "reference",
	"Debit":         "debit",
	"Credit":        "credit",
	"Balance":       "balance",
}

func columnKey(name string) string {
	if k, ok := columnKeys[name]; ok {
		return k
	}
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

// prepareGenericRows converts pre-aggregated rows and always appends a
// subtotal when the template supports one: amount columns sum, the
// leading account or vendor column carries the keyword.
func prepareGenericRows(rc RenderContext, tpl *template.TableTemplate,
	data []ledger.GenericRow) ([][]string, []template.RowType) {

	if len(data) == 0 {
		return nil, nil
	}

	rows := make([][]string, 0, len(data)+1)
	types := make([]template.RowType, 0, len(data)+1)

	for _, item := range data {
		row := make([]string, 0, tpl.NCols())
		for _, spec := range tpl.Columns {
			row = append(row, item.Cells[columnKey(spec.Name)])
		}
		rows = append(rows, row)
		types = append(types, template.RowBody)
	}

	if tpl.SupportsSubtotal {
		keyword := rc.Choose.SubtotalKeyword()
		row := make([]string, 0, tpl.NCols())
		for _, spec := range tpl.Columns {
			switch {
			case spec.Semantic == template.SemAmount:
				key := columnKey(spec.Name)
				total := decimal.Zero
				for _, item := range data {
					total = total.Add(item.Amounts[key])
				}
				if spec.Name == "Variance" {
					row = append(row, ledger.FormatSignedMoney(total))
				} else {
					row = append(row, ledger.FormatMoney(total))
				}
			case spec.Semantic == template.SemAccount, spec.Name == "Account",
				spec.Semantic == template.SemVendor:
				row = append(row, keyword)
			default:
				row = append(row, "")
			}
		}
		rows = append(rows, row)
		types = append(types, template.RowSubtotal)
	}

	return rows, types
}

// isSubtotalRow detects the keyword vocabulary in any cell.
func isSubtotalRow(row []string) bool {
	for _, cell := range row {
		if cell == "" {
			continue
		}
		if strings.Contains(strings.ToUpper(cell), "TOTAL") {
			return true
		}
	}
	return false
}
