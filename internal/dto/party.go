package dto

import (
	"github.com/karkhana/factory_ledger_app/internal/core/domain"
)

// CreatePartyRequest defines the data to create a supplier or customer.
type CreatePartyRequest struct {
	Name          string `json:"name" binding:"required"`
	GSTIN         string `json:"gstin" binding:"omitempty,gstin"`
	ContactPerson string `json:"contactPerson"`
	Phone         string `json:"phone"`
	Email         string `json:"email" binding:"omitempty,email"`
	Address       string `json:"address"`
}

// UpdatePartyRequest defines the data allowed for updating a supplier or
// customer. Pointers distinguish zero-value updates from fields not provided.
type UpdatePartyRequest struct {
	Name          *string `json:"name"`
	GSTIN         *string `json:"gstin" binding:"omitempty,gstin"`
	ContactPerson *string `json:"contactPerson"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Address       *string `json:"address"`
	IsActive      *bool   `json:"isActive"`
}

// PartyResponse defines the data returned for a supplier or customer.
type PartyResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	GSTIN         string `json:"gstin,omitempty"`
	ContactPerson string `json:"contactPerson,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	Address       string `json:"address,omitempty"`
	IsActive      bool   `json:"isActive"`
}

// ToSupplierResponse converts a domain.Supplier to its response DTO.
func ToSupplierResponse(s *domain.Supplier) PartyResponse {
	return PartyResponse{
		ID:            s.SupplierID,
		Name:          s.Name,
		GSTIN:         s.GSTIN,
		ContactPerson: s.ContactPerson,
		Phone:         s.Phone,
		Email:         s.Email,
		Address:       s.Address,
		IsActive:      s.IsActive,
	}
}

// ToCustomerResponse converts a domain.Customer to its response DTO.
func ToCustomerResponse(c *domain.Customer) PartyResponse {
	return PartyResponse{
		ID:            c.CustomerID,
		Name:          c.Name,
		GSTIN:         c.GSTIN,
		ContactPerson: c.ContactPerson,
		Phone:         c.Phone,
		Email:         c.Email,
		Address:       c.Address,
		IsActive:      c.IsActive,
	}
}
