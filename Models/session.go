package Models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

const (
	SessionTypeHealing   = "healing"
	SessionTypeNurturing = "nurturing"

	SessionStatusScheduled = "scheduled"
	SessionStatusCompleted = "completed"
)

// ScheduleSlot is one {date range, time range} sub-booking of a multi-day
// session. Dates are "2006-01-02" strings, times are opaque strings such as
// "14:00" and are never validated against the dates.
type ScheduleSlot struct {
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
	FromTime string `json:"from_time"`
	ToTime   string `json:"to_time"`
}

type ScheduleSlots []ScheduleSlot

// Attachment is the canonical persisted shape of a file reference. URL is
// derived from Path at read time and is never written to the database.
type Attachment struct {
	Path         string `json:"path"`
	OriginalName string `json:"original_name,omitempty"`
	MimeType     string `json:"mime_type,omitempty"`
	Size         int64  `json:"size,omitempty"`
	URL          string `json:"url,omitempty"`
}

type Attachments []Attachment

// UintList stores an id list as a JSON text column.
type UintList []uint

type Session struct {
	Owned
	Type          string        `json:"type" gorm:"size:32"`
	ClientID      *uint         `json:"client_id" gorm:"default:null"`
	ProtocolIDs   UintList      `json:"protocol_ids" gorm:"type:text"`
	ScheduledDate string        `json:"scheduled_date" gorm:"size:16;index"`
	StartTime     string        `json:"start_time" gorm:"size:16"`
	EndTime       string        `json:"end_time" gorm:"size:16"`
	ScheduleSlots ScheduleSlots `json:"schedule_slots" gorm:"type:text"`
	Status        string        `json:"status" gorm:"size:64;default:scheduled"`
	Notes         string        `json:"notes"`
	Fee           float64       `json:"fee"`
	Attachments   Attachments   `json:"attachments" gorm:"type:text"`
	SelfSession   bool          `json:"self_session"`
	ReminderSent  bool          `json:"reminder_sent"`
}

func (s ScheduleSlots) Value() (driver.Value, error) {
	if s == nil {
		s = ScheduleSlots{}
	}
	return json.Marshal(s)
}

func (s *ScheduleSlots) Scan(value interface{}) error {
	return scanJSON(value, s)
}

// Value strips the derived URL so only the storage-relative path is persisted.
func (a Attachments) Value() (driver.Value, error) {
	stored := make(Attachments, len(a))
	for i, att := range a {
		att.URL = ""
		stored[i] = att
	}
	return json.Marshal(stored)
}

func (a *Attachments) Scan(value interface{}) error {
	return scanJSON(value, a)
}

func (l UintList) Value() (driver.Value, error) {
	if l == nil {
		l = UintList{}
	}
	return json.Marshal(l)
}

func (l *UintList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

func scanJSON(value interface{}, out interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, out)
	case string:
		return json.Unmarshal([]byte(v), out)
	default:
		return fmt.Errorf("unsupported column type %T", value)
	}
}
