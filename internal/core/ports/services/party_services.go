package services

import (
	"context"

	"github.com/karkhana/factory_ledger_app/internal/core/domain"
	"github.com/karkhana/factory_ledger_app/internal/dto"
)

// PartySvcFacade manages suppliers and customers.
type PartySvcFacade interface {
	CreateSupplier(ctx context.Context, req dto.CreatePartyRequest, creatorUserID string) (*domain.Supplier, error)
	GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context, limit, offset int) ([]domain.Supplier, error)
	UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdatePartyRequest, userID string) (*domain.Supplier, error)

	CreateCustomer(ctx context.Context, req dto.CreatePartyRequest, creatorUserID string) (*domain.Customer, error)
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, limit, offset int) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, customerID string, req dto.UpdatePartyRequest, userID string) (*domain.Customer, error)
}
