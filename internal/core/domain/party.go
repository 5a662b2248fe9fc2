package domain

// PartyType distinguishes the two kinds of trading party a voucher can name.
type PartyType string

const (
	PartySupplier PartyType = "SUPPLIER"
	PartyCustomer PartyType = "CUSTOMER"
)

// Supplier is a vendor the factory buys from. Its ledger account is created
// on first use under Sundry Creditors with code SUP_{id}.
type Supplier struct {
	SupplierID    string `json:"supplierID"`
	Name          string `json:"name"`
	GSTIN         string `json:"gstin,omitempty"`
	ContactPerson string `json:"contactPerson,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	Address       string `json:"address,omitempty"`
	IsActive      bool   `json:"isActive"`
	AuditFields
}

// Customer is a buyer. Its ledger account is created on first use under
// Sundry Debtors with code CUS_{id}.
type Customer struct {
	CustomerID    string `json:"customerID"`
	Name          string `json:"name"`
	GSTIN         string `json:"gstin,omitempty"`
	ContactPerson string `json:"contactPerson,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	Address       string `json:"address,omitempty"`
	IsActive      bool   `json:"isActive"`
	AuditFields
}
