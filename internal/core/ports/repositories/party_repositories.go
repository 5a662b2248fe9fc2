package repositories

import (
	"context"

	"github.com/karkhana/factory_ledger_app/internal/core/domain"
)

// SupplierRepository defines persistence operations for suppliers.
type SupplierRepository interface {
	SaveSupplier(ctx context.Context, supplier domain.Supplier) error
	FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context, limit, offset int) ([]domain.Supplier, error)
	UpdateSupplier(ctx context.Context, supplier domain.Supplier) error
}

// CustomerRepository defines persistence operations for customers.
type CustomerRepository interface {
	SaveCustomer(ctx context.Context, customer domain.Customer) error
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, limit, offset int) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer domain.Customer) error
}

// PartyRepository combines supplier and customer persistence.
type PartyRepository interface {
	SupplierRepository
	CustomerRepository
}
