package domain

// RefKind identifies the business document a journal entry originated from.
type RefKind string

const (
	RefNone          RefKind = ""
	RefPurchaseOrder RefKind = "PURCHASE_ORDER"
	RefSalesOrder    RefKind = "SALES_ORDER"
	RefGRN           RefKind = "GRN"
	RefProduction    RefKind = "PRODUCTION"
	RefExpense       RefKind = "EXPENSE"
	RefSalary        RefKind = "SALARY"
	RefManual        RefKind = "MANUAL"
)

// DocumentRef is a typed link from a journal entry back to the originating
// business document. The zero value means the entry has no document link.
type DocumentRef struct {
	Kind RefKind `json:"kind,omitempty"`
	ID   string  `json:"id,omitempty"`
}

// IsZero reports whether the reference links to nothing.
func (r DocumentRef) IsZero() bool {
	return r.Kind == RefNone && r.ID == ""
}

func PurchaseOrderRef(id string) DocumentRef { return DocumentRef{Kind: RefPurchaseOrder, ID: id} }
func SalesOrderRef(id string) DocumentRef    { return DocumentRef{Kind: RefSalesOrder, ID: id} }
func GRNRef(id string) DocumentRef           { return DocumentRef{Kind: RefGRN, ID: id} }
func ProductionRef(id string) DocumentRef    { return DocumentRef{Kind: RefProduction, ID: id} }
func ExpenseRef(id string) DocumentRef       { return DocumentRef{Kind: RefExpense, ID: id} }
func SalaryRef(id string) DocumentRef        { return DocumentRef{Kind: RefSalary, ID: id} }
