package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/karkhana/factory_ledger_app/internal/core/services"
)

func TestNextVoucherNumber_Format(t *testing.T) {
	ctx := context.Background()
	mockSeq := new(MockSequenceRepository)
	svc := services.NewNumberingService(mockSeq)

	mockSeq.On("NextSequence", ctx, "PUR", 2025).Return(int64(1), nil).Once()

	number, err := svc.NextVoucherNumber(ctx, "PUR", time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))
	assert.NoError(t, err)
	assert.Equal(t, "PUR-2025-0001", number)
	mockSeq.AssertExpectations(t)
}

func TestNextVoucherNumber_PadsToFourDigits(t *testing.T) {
	ctx := context.Background()
	mockSeq := new(MockSequenceRepository)
	svc := services.NewNumberingService(mockSeq)

	mockSeq.On("NextSequence", ctx, "JOU", 2025).Return(int64(123), nil).Once()

	number, err := svc.NextVoucherNumber(ctx, "JOU", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.NoError(t, err)
	assert.Equal(t, "JOU-2025-0123", number)
}

func TestNextVoucherNumber_GrowsPastFourDigits(t *testing.T) {
	ctx := context.Background()
	mockSeq := new(MockSequenceRepository)
	svc := services.NewNumberingService(mockSeq)

	mockSeq.On("NextSequence", ctx, "SAL", 2025).Return(int64(10001), nil).Once()

	number, err := svc.NextVoucherNumber(ctx, "SAL", time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC))
	assert.NoError(t, err)
	assert.Equal(t, "SAL-2025-10001", number)
}

func TestNextVoucherNumber_YearFromTransactionDate(t *testing.T) {
	// The series key is the calendar year of the voucher date, so the
	// sequence restarts when the year rolls over.
	ctx := context.Background()
	mockSeq := new(MockSequenceRepository)
	svc := services.NewNumberingService(mockSeq)

	mockSeq.On("NextSequence", ctx, "PAY", 2024).Return(int64(99), nil).Once()
	mockSeq.On("NextSequence", ctx, "PAY", 2025).Return(int64(1), nil).Once()

	lastOfYear, err := svc.NextVoucherNumber(ctx, "PAY", time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC))
	assert.NoError(t, err)
	assert.Equal(t, "PAY-2024-0099", lastOfYear)

	firstOfYear, err := svc.NextVoucherNumber(ctx, "PAY", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.NoError(t, err)
	assert.Equal(t, "PAY-2025-0001", firstOfYear)
	mockSeq.AssertExpectations(t)
}

func TestNextVoucherNumber_SequenceError(t *testing.T) {
	ctx := context.Background()
	mockSeq := new(MockSequenceRepository)
	svc := services.NewNumberingService(mockSeq)

	mockSeq.On("NextSequence", ctx, "PUR", 2025).Return(int64(0), errors.New("connection lost")).Once()

	_, err := svc.NextVoucherNumber(ctx, "PUR", time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))
	assert.Error(t, err)
}
