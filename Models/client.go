package Models

import (
	"time"

	"gorm.io/gorm"
)

type Client struct {
	Owned
	Name        string        `json:"name" gorm:"not null"`
	Phone       string        `json:"phone"`
	Email       string        `json:"email"`
	Photo       string        `json:"photo"`
	BaseFee     float64       `json:"base_fee"`
	Notes       []HealingNote `json:"notes" gorm:"foreignKey:ClientID"`
	ProtocolIDs UintList      `json:"protocol_ids" gorm:"type:text"`
}

// HealingNote entries are append-only. They are created through AddHealingNote
// and never edited or removed individually.
type HealingNote struct {
	gorm.Model
	ClientID  uint      `json:"client_id"`
	Timestamp time.Time `json:"timestamp"`
	Text      string    `json:"text" gorm:"not null"`
}
