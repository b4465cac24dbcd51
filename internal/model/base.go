package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Currency is one of the two ledger currencies. Every monetary column is
// tracked per currency; there is no conversion anywhere in the system.
type Currency string

const (
	CurrencyARS Currency = "ARS"
	CurrencyUSD Currency = "USD"
)

// PaymentMethod of a cash movement.
type PaymentMethod string

const (
	PaymentEfectivo      PaymentMethod = "efectivo"
	PaymentTransferencia PaymentMethod = "transferencia"
	PaymentTarjeta       PaymentMethod = "tarjeta"
)

// ApprovalStatus is the state of a gated entry in the two-party approval
// workflow. PENDING is the only non-terminal state.
type ApprovalStatus string

const (
	ApprovalPending           ApprovalStatus = "pending"
	ApprovalApprovedByFede    ApprovalStatus = "approved_by_fede"
	ApprovalApprovedBySisters ApprovalStatus = "approved_by_sisters"
	ApprovalRejected          ApprovalStatus = "rejected"
)

// Terminal reports whether the status admits no further transitions.
func (s ApprovalStatus) Terminal() bool {
	return s == ApprovalApprovedByFede || s == ApprovalApprovedBySisters || s == ApprovalRejected
}

// Approved reports whether the status is one of the approved variants.
func (s ApprovalStatus) Approved() bool {
	return s == ApprovalApprovedByFede || s == ApprovalApprovedBySisters
}

// jsonbValue marshals an embedded document for a jsonb column.
func jsonbValue(v interface{}) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal jsonb: %w", err)
	}
	return b, nil
}

// jsonbScan unmarshals a jsonb column into dst.
func jsonbScan(src, dst interface{}) error {
	switch s := src.(type) {
	case []byte:
		return json.Unmarshal(s, dst)
	case string:
		return json.Unmarshal([]byte(s), dst)
	case nil:
		return nil
	default:
		return fmt.Errorf("unsupported jsonb source type %T", src)
	}
}
