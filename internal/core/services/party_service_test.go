package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/karkhana/factory_ledger_app/internal/apperrors"
	"github.com/karkhana/factory_ledger_app/internal/core/domain"
	"github.com/karkhana/factory_ledger_app/internal/core/services"
	"github.com/karkhana/factory_ledger_app/internal/dto"
)

func TestCreateSupplier_Persists(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockPartyRepository)
	svc := services.NewPartyService(mockRepo)

	mockRepo.On("SaveSupplier", ctx, mock.MatchedBy(func(s domain.Supplier) bool {
		return s.Name == "Acme Alloys" && s.IsActive && s.SupplierID != ""
	})).Return(nil).Once()

	supplier, err := svc.CreateSupplier(ctx, dto.CreatePartyRequest{Name: "Acme Alloys"}, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Acme Alloys", supplier.Name)
	mockRepo.AssertExpectations(t)
}

func TestUpdateSupplier_AppliesOnlyProvidedFields(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockPartyRepository)
	svc := services.NewPartyService(mockRepo)

	existing := &domain.Supplier{
		SupplierID: "acme",
		Name:       "Acme Alloys",
		Phone:      "9000000000",
		IsActive:   true,
	}
	phone := "9111111111"

	mockRepo.On("FindSupplierByID", ctx, "acme").Return(existing, nil).Once()
	mockRepo.On("UpdateSupplier", ctx, mock.MatchedBy(func(s domain.Supplier) bool {
		return s.Phone == "9111111111" && s.Name == "Acme Alloys" && s.LastUpdatedBy == "user-1"
	})).Return(nil).Once()

	supplier, err := svc.UpdateSupplier(ctx, "acme", dto.UpdatePartyRequest{Phone: &phone}, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "9111111111", supplier.Phone)
	mockRepo.AssertExpectations(t)
}

func TestUpdateCustomer_NotFound(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockPartyRepository)
	svc := services.NewPartyService(mockRepo)

	mockRepo.On("FindCustomerByID", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, err := svc.UpdateCustomer(ctx, "ghost", dto.UpdatePartyRequest{}, "user-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	mockRepo.AssertNotCalled(t, "UpdateCustomer", mock.Anything, mock.Anything)
}
