package Models

const (
	NurturingStatusPlanned    = "Planned"
	NurturingStatusRegistered = "Registered"
	NurturingStatusAttended   = "Attended"
)

// NurturingSession is a standalone workshop/event record. It shares the
// unified agenda with healing Sessions but is not tied to a client.
type NurturingSession struct {
	Owned
	Name                   string        `json:"name" gorm:"not null"`
	Date                   string        `json:"date" gorm:"size:16;index"`
	ScheduleSlots          ScheduleSlots `json:"schedule_slots" gorm:"type:text"`
	Coordinator            string        `json:"coordinator"`
	PaymentDetails         string        `json:"payment_details"`
	Status                 string        `json:"status" gorm:"size:32;default:Planned"`
	RecordingAvailableTill string        `json:"recording_available_till" gorm:"size:16"`
	Attachments            Attachments   `json:"attachments" gorm:"type:text"`
}
