package services

import (
	"context"
	"fmt"
	"time"

	portsrepo "github.com/karkhana/factory_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/karkhana/factory_ledger_app/internal/core/ports/services"
)

// numberingService allocates voucher numbers from the per-type, per-year
// sequence table.
type numberingService struct {
	BaseService
	sequenceRepo portsrepo.SequenceRepository
}

// NewNumberingService creates a new voucher numbering service.
func NewNumberingService(sequenceRepo portsrepo.SequenceRepository) portssvc.VoucherNumberingSvc {
	return &numberingService{sequenceRepo: sequenceRepo}
}

var _ portssvc.VoucherNumberingSvc = (*numberingService)(nil)

// NextVoucherNumber returns the next number in the {CODE}-{YYYY}-{0001..}
// series, using the calendar year of onDate. The series restarts at 0001 each
// year per voucher type.
func (s *numberingService) NextVoucherNumber(ctx context.Context, typeCode string, onDate time.Time) (string, error) {
	year := onDate.Year()
	next, err := s.sequenceRepo.NextSequence(ctx, typeCode, year)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%d-%04d", typeCode, year, next), nil
}
