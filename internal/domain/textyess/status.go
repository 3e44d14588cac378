package textyess

// ---------------------------------------------------------------------------
// FinancialStatus represents TextYess's order-payment lifecycle enum
// ---------------------------------------------------------------------------

// FinancialStatus represents TextYess's coarse order-payment lifecycle state
type FinancialStatus string

const (
	// FinancialStatusCreated indicates the order exists but is unpaid
	FinancialStatusCreated FinancialStatus = "created"
	// FinancialStatusPaid indicates payment was received
	FinancialStatusPaid FinancialStatus = "paid"
	// FinancialStatusRefunded indicates the order was refunded
	FinancialStatusRefunded FinancialStatus = "refunded"
	// FinancialStatusVoided indicates the order was canceled
	FinancialStatusVoided FinancialStatus = "voided"
)

// IsValid returns true if the status is valid
func (s FinancialStatus) IsValid() bool {
	switch s {
	case FinancialStatusCreated, FinancialStatusPaid, FinancialStatusRefunded, FinancialStatusVoided:
		return true
	default:
		return false
	}
}

// String returns the string representation of FinancialStatus
func (s FinancialStatus) String() string {
	return string(s)
}

// Platform order lifecycle states as reported by the host platform.
const (
	OrderStateNew            = "new"
	OrderStatePendingPayment = "pending_payment"
	OrderStateProcessing     = "processing"
	OrderStateComplete       = "complete"
	OrderStateClosed         = "closed"
	OrderStateCanceled       = "canceled"
)

// MapOrderState maps a platform order state to a TextYess financial status.
// Unrecognized states map to "created"; the mapping never fails.
// Note: "closed" maps to "refunded" unconditionally, without distinguishing
// a full refund from a partial one.
func MapOrderState(state string) FinancialStatus {
	switch state {
	case OrderStateNew, OrderStatePendingPayment:
		return FinancialStatusCreated
	case OrderStateProcessing, OrderStateComplete:
		return FinancialStatusPaid
	case OrderStateClosed:
		return FinancialStatusRefunded
	case OrderStateCanceled:
		return FinancialStatusVoided
	default:
		return FinancialStatusCreated
	}
}
