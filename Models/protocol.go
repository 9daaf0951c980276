package Models

import (
	"database/sql/driver"
	"encoding/json"
)

// StringList stores a keyword set as a JSON text column.
type StringList []string

type Protocol struct {
	Owned
	Name        string      `json:"name" gorm:"not null"`
	Notes       string      `json:"notes"`
	Keywords    StringList  `json:"keywords" gorm:"type:text"`
	Attachments Attachments `json:"attachments" gorm:"type:text"`
}

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	return scanJSON(value, l)
}
