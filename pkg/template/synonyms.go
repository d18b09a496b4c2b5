package template

import "math/rand"

// Column header synonym pools. A header draw picks uniformly from the
// pool matching the template's canonical column name; disjoint draws
// may repeat.
var (
	dateSynonyms        = []string{"Date", "Trans Date", "Transaction Date", "Posting Date", "Post Date"}
	vendorSynonyms      = []string{"Vendor", "Payee", "Paid To", "Name", "Description"}
	checkSynonyms       = []string{"Check #", "Check No", "Chk #", "Reference", "Ref #", "CK NO"}
	amountSynonyms      = []string{"Amount", "Paid", "Total", "Payment", "Total Amount"}
	glCodeSynonyms      = []string{"GL Code", "Account #", "Acct #", "GL #", "Account", "G/L"}
	descriptionSynonyms = []string{"Description", "Memo", "Notes", "Detail", "Expense Type"}
	invoiceSynonyms     = []string{"Invoice #", "Inv #", "Invoice No", "INV", "Invoice Number", "Invoice"}
	vendorCodeSynonyms  = []string{"VEND", "Vendor Code", "V/C", "VCode", "Vnd"}
	poSynonyms          = []string{"P/O", "PO #", "Purchase Order", "P.O.", "PO No"}
	remarksSynonyms     = []string{"Remarks", "Notes", "Comments", "Memo", "Remarks/Notes"}
	payeeSynonyms       = []string{"Paid To", "Payee Name", "Payee", "Pay To"}
	unitSynonyms        = []string{"Unit", "Apt", "Unit #", "Apartment", "Suite", "Unit ID"}
	tenantCodeSynonyms  = []string{"Account", "Tenant Code", "Acct", "Tenant ID", "Account Code", "Acct No"}
	openingBalSynonyms  = []string{"Opening Balance", "Open Bal", "Beg Balance", "Beginning Bal", "Prior Bal"}
	closingBalSynonyms  = []string{"Closing Balance", "Close Bal", "End Balance", "Ending Bal", "Balance"}
	baseChargeSynonyms  = []string{"Base Charge", "Base Rent", "Maint Fee", "HOA Fee", "Base", "Maintenance"}
	sharesSynonyms      = []string{"Shares", "Share Amt", "Co-op Shares", "Ownership %", "Shrs"}
	statusSynonyms      = []string{"Status", "Paid Status", "State", "Payment Status", "Pmt Status"}
	checkDateSynonyms   = []string{"Check Date", "Chk Date", "Payment Date", "Paid Date"}
	invoiceDateSynonyms = []string{"Invoice Date", "Inv Date", "Bill Date", "Date"}
	dueDateSynonyms     = []string{"Due Date", "Due", "Pay By", "Due By"}
	referenceSynonyms   = []string{"Reference", "Ref #", "Ref", "Trans #", "Txn #"}
	paidSynonyms        = []string{"Paid", "Payment", "Received", "Amt Paid"}
)

// SubtotalKeywords is the closed vocabulary a subtotal row must carry
// so downstream row-type classification can key on it.
var SubtotalKeywords = []string{"TOTAL", "TOTALS", "GRAND TOTAL", "SUBTOTAL", "TOTAL:"}

// Chooser wraps the document random source for the draws the templates
// own: header synonyms, titles, subtotal keywords. Tests construct one
// from a fixed seed to pin choices.
type Chooser struct {
	rng *rand.Rand
}

// NewChooser wraps a random source.
func NewChooser(rng *rand.Rand) *Chooser {
	return &Chooser{rng: rng}
}

// Pick returns a uniform choice from options. Empty input yields "".
func (c *Chooser) Pick(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[c.rng.Intn(len(options))]
}

// Float64 exposes a uniform [0,1) draw for probability gates.
func (c *Chooser) Float64() float64 { return c.rng.Float64() }

// Intn exposes a uniform integer draw.
func (c *Chooser) Intn(n int) int { return c.rng.Intn(n) }

// Title picks one of the template's title options.
func (c *Chooser) Title(t *TableTemplate) string {
	return c.Pick(t.TitleOptions)
}

// SubtotalKeyword picks from the closed subtotal vocabulary.
func (c *Chooser) SubtotalKeyword() string {
	return c.Pick(SubtotalKeywords)
}

// Headers returns the template's column headers with synonyms applied.
// Each column draws independently from the pool matching its canonical
// name; names with no pool pass through unchanged.
func (c *Chooser) Headers(t *TableTemplate) []string {
	headers := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		headers[i] = c.headerSynonym(col.Name)
	}
	return headers
}

func (c *Chooser) headerSynonym(name string) string {
	switch name {
	case "Date", "Invoice Date":
		return c.Pick(invoiceDateSynonyms)
	case "Check Date":
		return c.Pick(checkDateSynonyms)
	case "Due Date":
		return c.Pick(dueDateSynonyms)
	case "Vendor", "Owner", "Resident":
		return c.Pick(vendorSynonyms)
	case "Paid To":
		return c.Pick(payeeSynonyms)
	case "VEND":
		return c.Pick(vendorCodeSynonyms)
	case "Check #", "Receipt #", "CK NO":
		return c.Pick(checkSynonyms)
	case "Invoice #":
		return c.Pick(invoiceSynonyms)
	case "P/O":
		return c.Pick(poSynonyms)
	case "Reference":
		return c.Pick(referenceSynonyms)
	case "Amount":
		return c.Pick(amountSynonyms)
	case "Balance", "Close Bal":
		return c.Pick(closingBalSynonyms)
	case "Open Bal":
		return c.Pick(openingBalSynonyms)
	case "Base Charge":
		return c.Pick(baseChargeSynonyms)
	case "Shares":
		return c.Pick(sharesSynonyms)
	case "Paid":
		return c.Pick(paidSynonyms)
	case "GL Code", "G/L":
		return c.Pick(glCodeSynonyms)
	case "Acct No", "Acct":
		return c.Pick(tenantCodeSynonyms)
	case "Unit", "Apt":
		return c.Pick(unitSynonyms)
	case "Description", "Expense Type", "Charges":
		return c.Pick(descriptionSynonyms)
	case "Remarks":
		return c.Pick(remarksSynonyms)
	case "Status":
		return c.Pick(statusSynonyms)
	default:
		return name
	}
}

// SuperHeaderGroup is one spanning cell of a super-header row covering
// a contiguous run of columns.
type SuperHeaderGroup struct {
	Label    string
	StartCol int
	EndCol   int // inclusive
}

// SuperHeaders derives a grouping row for a template by bucketing
// contiguous columns of related semantics. Nil when the template has
// too few columns to group usefully.
func SuperHeaders(t *TableTemplate) []SuperHeaderGroup {
	if len(t.Columns) < 4 {
		return nil
	}
	var groups []SuperHeaderGroup
	start := 0
	label := superGroupLabel(t.Columns[0].Semantic)
	for i := 1; i < len(t.Columns); i++ {
		l := superGroupLabel(t.Columns[i].Semantic)
		if l != label {
			groups = append(groups, SuperHeaderGroup{Label: label, StartCol: start, EndCol: i - 1})
			start, label = i, l
		}
	}
	groups = append(groups, SuperHeaderGroup{Label: label, StartCol: start, EndCol: len(t.Columns) - 1})
	return groups
}

func superGroupLabel(s SemanticType) string {
	switch s {
	case SemDate:
		return "Dates"
	case SemAmount, SemBalance:
		return "Amounts"
	case SemVendor, SemVendorCode, SemUnitCode:
		return "Payee"
	case SemAccount:
		return "Account"
	case SemInvoiceNum, SemCheckNum:
		return "References"
	default:
		return "Detail"
	}
}
