package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseBillRequest records a vendor bill against a purchase order.
type PurchaseBillRequest struct {
	SupplierID      string          `json:"supplierID" binding:"required"`
	PurchaseOrderID string          `json:"purchaseOrderID"`
	BillNumber      string          `json:"billNumber" binding:"required"`
	BillDate        time.Time       `json:"billDate" binding:"required" time_format:"2006-01-02"`
	BasicAmount     decimal.Decimal `json:"basicAmount" binding:"required"`
	CGSTAmount      decimal.Decimal `json:"cgstAmount"`
	SGSTAmount      decimal.Decimal `json:"sgstAmount"`
	IGSTAmount      decimal.Decimal `json:"igstAmount"`
	Narration       string          `json:"narration"`
}

// SalesInvoiceRequest records an invoice raised on a customer.
type SalesInvoiceRequest struct {
	CustomerID   string          `json:"customerID" binding:"required"`
	SalesOrderID string          `json:"salesOrderID"`
	InvoiceDate  time.Time       `json:"invoiceDate" binding:"required" time_format:"2006-01-02"`
	BasicAmount  decimal.Decimal `json:"basicAmount" binding:"required"`
	CGSTAmount   decimal.Decimal `json:"cgstAmount"`
	SGSTAmount   decimal.Decimal `json:"sgstAmount"`
	IGSTAmount   decimal.Decimal `json:"igstAmount"`
	Narration    string          `json:"narration"`
}

// PaymentMadeRequest records money paid out to a supplier.
type PaymentMadeRequest struct {
	SupplierID      string          `json:"supplierID" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	PaymentDate     time.Time       `json:"paymentDate" binding:"required" time_format:"2006-01-02"`
	Mode            string          `json:"mode" binding:"required,oneof=CASH BANK"`
	ReferenceNumber string          `json:"referenceNumber"`
	IsAdvance       bool            `json:"isAdvance"`
	Narration       string          `json:"narration"`
}

// PaymentReceivedRequest records money received from a customer.
type PaymentReceivedRequest struct {
	CustomerID      string          `json:"customerID" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	ReceiptDate     time.Time       `json:"receiptDate" binding:"required" time_format:"2006-01-02"`
	Mode            string          `json:"mode" binding:"required,oneof=CASH BANK"`
	ReferenceNumber string          `json:"referenceNumber"`
	IsAdvance       bool            `json:"isAdvance"`
	Narration       string          `json:"narration"`
}

// ExpenseRequest records a factory expense paid in cash or from bank.
type ExpenseRequest struct {
	ExpenseID          string          `json:"expenseID"`
	ExpenseAccountCode string          `json:"expenseAccountCode" binding:"required"`
	Amount             decimal.Decimal `json:"amount" binding:"required"`
	ExpenseDate        time.Time       `json:"expenseDate" binding:"required" time_format:"2006-01-02"`
	Mode               string          `json:"mode" binding:"required,oneof=CASH BANK"`
	Narration          string          `json:"narration"`
}

// SalaryRequest records a salary or wage payment.
type SalaryRequest struct {
	SalaryRecordID string          `json:"salaryRecordID"`
	EmployeeName   string          `json:"employeeName" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	PaymentDate    time.Time       `json:"paymentDate" binding:"required" time_format:"2006-01-02"`
	Mode           string          `json:"mode" binding:"required,oneof=CASH BANK"`
	IsWages        bool            `json:"isWages"`
}

// ProductionCostRequest allocates material, labor and overhead cost into
// work-in-progress for a production run.
type ProductionCostRequest struct {
	ProductionID   string          `json:"productionID" binding:"required"`
	ProductionDate time.Time       `json:"productionDate" binding:"required" time_format:"2006-01-02"`
	MaterialCost   decimal.Decimal `json:"materialCost"`
	LaborCost      decimal.Decimal `json:"laborCost"`
	OverheadCost   decimal.Decimal `json:"overheadCost"`
	Narration      string          `json:"narration"`
}

// ProductionCompletionRequest moves finished cost from WIP to finished goods.
type ProductionCompletionRequest struct {
	ProductionID   string          `json:"productionID" binding:"required"`
	CompletionDate time.Time       `json:"completionDate" binding:"required" time_format:"2006-01-02"`
	FinishedCost   decimal.Decimal `json:"finishedCost" binding:"required"`
	Narration      string          `json:"narration"`
}

// DispatchCOGSRequest books cost of goods sold when finished goods ship.
type DispatchCOGSRequest struct {
	SalesOrderID string          `json:"salesOrderID" binding:"required"`
	DispatchDate time.Time       `json:"dispatchDate" binding:"required" time_format:"2006-01-02"`
	CostAmount   decimal.Decimal `json:"costAmount" binding:"required"`
	Narration    string          `json:"narration"`
}
