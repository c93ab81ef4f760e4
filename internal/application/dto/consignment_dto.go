package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateConsignmentRequest registro de una consignación de efectivo.
type CreateConsignmentRequest struct {
	MembershipID string          `json:"membership_id"`
	Date         time.Time       `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
	BankRef      string          `json:"bank_ref"`
	Notes        string          `json:"notes"`
}

// ConsignmentResponse consignación para respuestas HTTP.
type ConsignmentResponse struct {
	ID           string          `json:"id"`
	CompanyID    string          `json:"company_id"`
	MembershipID string          `json:"membership_id"`
	Date         time.Time       `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
	BankRef      string          `json:"bank_ref"`
	Status       string          `json:"status"`
	Notes        string          `json:"notes"`
}
