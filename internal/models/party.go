package models

// Supplier maps to the suppliers table.
type Supplier struct {
	SupplierID    string `db:"supplier_id"`
	Name          string `db:"name"`
	GSTIN         string `db:"gstin"`          // nullable
	ContactPerson string `db:"contact_person"` // nullable
	Phone         string `db:"phone"`          // nullable
	Email         string `db:"email"`          // nullable
	Address       string `db:"address"`        // nullable
	IsActive      bool   `db:"is_active"`
	AuditFields
}

// Customer maps to the customers table.
type Customer struct {
	CustomerID    string `db:"customer_id"`
	Name          string `db:"name"`
	GSTIN         string `db:"gstin"`          // nullable
	ContactPerson string `db:"contact_person"` // nullable
	Phone         string `db:"phone"`          // nullable
	Email         string `db:"email"`          // nullable
	Address       string `db:"address"`        // nullable
	IsActive      bool   `db:"is_active"`
	AuditFields
}
