package Models

import "time"

const (
	PaymentModeCash = "Cash"
	PaymentModeUPI  = "UPI"
	PaymentModeBank = "Bank"

	PaymentStatusPaid    = "Paid"
	PaymentStatusPending = "Pending"
)

type Payment struct {
	Owned
	SessionID *uint      `json:"session_id" gorm:"default:null"`
	ClientID  uint       `json:"client_id" gorm:"not null;index"`
	Amount    float64    `json:"amount"`
	Mode      string     `json:"mode" gorm:"size:16"`
	Status    string     `json:"status" gorm:"size:16;default:Pending"`
	PaidAt    *time.Time `json:"paid_at" gorm:"default:null"`
}
