package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/krikodium/hermanascaradonti/internal/model"
)

// ErrInvalidTransition is returned when an approval is recorded against an
// entry already in a terminal state. The entry is left unmodified.
var ErrInvalidTransition = errors.New("approval status transition not allowed")

// ApprovalKind selects which sign-off an approver is recording.
type ApprovalKind string

const (
	ApproveAsFede    ApprovalKind = "fede"
	ApproveAsSisters ApprovalKind = "sisters"
	Reject           ApprovalKind = "reject"
)

// NeedsApproval decides whether a general-cash entry enters the approval
// workflow. Only outflows gate: an entry needs approval iff its
// requires-approval flag is set and either expense meets its currency's
// threshold (inclusive). Income amounts are never considered.
func NeedsApproval(e *model.GeneralCashEntry) bool {
	if !e.RequiresApproval {
		return false
	}

	expenseARS := deref(e.ExpenseARS)
	expenseUSD := deref(e.ExpenseUSD)

	return expenseARS.GreaterThanOrEqual(e.ApprovalThresholdARS) ||
		expenseUSD.GreaterThanOrEqual(e.ApprovalThresholdUSD)
}

// RecordApproval transitions the entry out of PENDING. APPROVED and REJECTED
// are terminal: a second sign-off fails with ErrInvalidTransition. When the
// entry carries a linked payment/receipt order, its status and approver
// metadata are mirrored from the entry.
func RecordApproval(e *model.GeneralCashEntry, approver string, kind ApprovalKind, now time.Time) error {
	if e.ApprovalStatus.Terminal() {
		return fmt.Errorf("%w: entry is already %s", ErrInvalidTransition, e.ApprovalStatus)
	}

	var next model.ApprovalStatus
	switch kind {
	case ApproveAsFede:
		next = model.ApprovalApprovedByFede
	case ApproveAsSisters:
		next = model.ApprovalApprovedBySisters
	case Reject:
		next = model.ApprovalRejected
	default:
		return fmt.Errorf("%w: unknown approval kind %q", ErrInvalidTransition, kind)
	}

	e.ApprovalStatus = next
	e.UpdatedBy = &approver

	if order := e.PaymentOrder.Order; order != nil {
		order.Status = next
		order.ApprovedBy = &approver
		order.ApprovedAt = &now
	}
	return nil
}
