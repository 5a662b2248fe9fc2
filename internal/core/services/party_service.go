package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/karkhana/factory_ledger_app/internal/core/domain"
	portsrepo "github.com/karkhana/factory_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/karkhana/factory_ledger_app/internal/core/ports/services"
	"github.com/karkhana/factory_ledger_app/internal/dto"
)

// partyService manages suppliers and customers.
type partyService struct {
	BaseService
	partyRepo portsrepo.PartyRepository
}

// NewPartyService creates a new party service.
func NewPartyService(partyRepo portsrepo.PartyRepository) portssvc.PartySvcFacade {
	return &partyService{partyRepo: partyRepo}
}

var _ portssvc.PartySvcFacade = (*partyService)(nil)

func (s *partyService) CreateSupplier(ctx context.Context, req dto.CreatePartyRequest, creatorUserID string) (*domain.Supplier, error) {
	now := time.Now()
	supplier := domain.Supplier{
		SupplierID:    uuid.NewString(),
		Name:          req.Name,
		GSTIN:         req.GSTIN,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := s.partyRepo.SaveSupplier(ctx, supplier); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "supplier created", slog.String("supplier_id", supplier.SupplierID))
	return &supplier, nil
}

func (s *partyService) GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	return s.partyRepo.FindSupplierByID(ctx, supplierID)
}

func (s *partyService) ListSuppliers(ctx context.Context, limit, offset int) ([]domain.Supplier, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.partyRepo.ListSuppliers(ctx, limit, offset)
}

func (s *partyService) UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdatePartyRequest, userID string) (*domain.Supplier, error) {
	supplier, err := s.partyRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	applyPartyUpdate(req, &supplier.Name, &supplier.GSTIN, &supplier.ContactPerson, &supplier.Phone, &supplier.Email, &supplier.Address, &supplier.IsActive)
	supplier.LastUpdatedAt = time.Now()
	supplier.LastUpdatedBy = userID

	if err := s.partyRepo.UpdateSupplier(ctx, *supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *partyService) CreateCustomer(ctx context.Context, req dto.CreatePartyRequest, creatorUserID string) (*domain.Customer, error) {
	now := time.Now()
	customer := domain.Customer{
		CustomerID:    uuid.NewString(),
		Name:          req.Name,
		GSTIN:         req.GSTIN,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := s.partyRepo.SaveCustomer(ctx, customer); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "customer created", slog.String("customer_id", customer.CustomerID))
	return &customer, nil
}

func (s *partyService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	return s.partyRepo.FindCustomerByID(ctx, customerID)
}

func (s *partyService) ListCustomers(ctx context.Context, limit, offset int) ([]domain.Customer, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.partyRepo.ListCustomers(ctx, limit, offset)
}

func (s *partyService) UpdateCustomer(ctx context.Context, customerID string, req dto.UpdatePartyRequest, userID string) (*domain.Customer, error) {
	customer, err := s.partyRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	applyPartyUpdate(req, &customer.Name, &customer.GSTIN, &customer.ContactPerson, &customer.Phone, &customer.Email, &customer.Address, &customer.IsActive)
	customer.LastUpdatedAt = time.Now()
	customer.LastUpdatedBy = userID

	if err := s.partyRepo.UpdateCustomer(ctx, *customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func applyPartyUpdate(req dto.UpdatePartyRequest, name, gstin, contact, phone, email, address *string, isActive *bool) {
	if req.Name != nil {
		*name = *req.Name
	}
	if req.GSTIN != nil {
		*gstin = *req.GSTIN
	}
	if req.ContactPerson != nil {
		*contact = *req.ContactPerson
	}
	if req.Phone != nil {
		*phone = *req.Phone
	}
	if req.Email != nil {
		*email = *req.Email
	}
	if req.Address != nil {
		*address = *req.Address
	}
	if req.IsActive != nil {
		*isActive = *req.IsActive
	}
}
