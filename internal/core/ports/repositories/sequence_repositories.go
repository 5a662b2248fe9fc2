package repositories

import "context"

// SequenceRepository provides atomic per-(type, year) voucher sequence
// allocation. Implementations must guarantee two concurrent calls never
// return the same number.
type SequenceRepository interface {
	// NextSequence increments and returns the sequence counter for the
	// given voucher type code and calendar year, starting at 1.
	NextSequence(ctx context.Context, typeCode string, year int) (int64, error)
}
