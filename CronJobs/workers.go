package CronJobs

import (
	"HealingRays/FirebaseMessaging"
	"HealingRays/Models"
	"fmt"
	"log"
	"time"

	"github.com/go-co-op/gocron"
	"gorm.io/gorm"
)

// SessionReminder pushes a notification to the practitioner's devices for
// sessions starting roughly three hours out.
type SessionReminder struct {
	DB *gorm.DB
}

func NewSessionReminder(db *gorm.DB) *SessionReminder {
	return &SessionReminder{
		DB: db,
	}
}

// StartReminderCron starts the cron job that sweeps for upcoming sessions.
func (sr *SessionReminder) StartReminderCron() *gocron.Scheduler {
	scheduler := gocron.NewScheduler(time.Local)

	scheduler.Every(1).Minutes().Do(func() {
		if err := sr.SendSessionReminders(); err != nil {
			log.Printf("Error sending session reminders: %v", err)
		}
	})

	scheduler.StartAsync()
	log.Println("Session reminder cron job started")

	return scheduler
}

func (sr *SessionReminder) SendSessionReminders() error {
	now := time.Now()

	startWindow := now.Add(2*time.Hour + 53*time.Minute)
	endWindow := now.Add(3*time.Hour + 7*time.Minute)

	var sessions []Models.Session

	result := sr.DB.Model(&Models.Session{}).
		Where("active = ? AND status = ? AND reminder_sent = ? AND scheduled_date IN ?",
			true,
			Models.SessionStatusScheduled,
			false,
			[]string{startWindow.Format("2006-01-02"), endWindow.Format("2006-01-02")}).
		Find(&sessions)

	if result.Error != nil {
		return fmt.Errorf("failed to query upcoming sessions: %w", result.Error)
	}

	for _, session := range sessions {
		startAt, err := parseSessionStart(session.ScheduledDate, session.StartTime)
		if err != nil {
			// Times are free-form strings; skip ones that don't parse
			continue
		}
		if startAt.Before(startWindow) || startAt.After(endWindow) {
			continue
		}

		tokens, err := Models.GetFCMsByID(session.UserID)
		if err != nil || len(tokens) == 0 {
			continue
		}

		title := "Upcoming healing session"
		body := fmt.Sprintf("You have a session at %s (in 3 hours).", session.StartTime)
		if session.ClientID != nil {
			var client Models.Client
			if err := sr.DB.First(&client, *session.ClientID).Error; err == nil {
				body = fmt.Sprintf("You have a session with %s at %s (in 3 hours).", client.Name, session.StartTime)
			}
		}

		if err := FirebaseMessaging.SendMessage(Models.NotificationRequest{
			Tokens: tokens,
			Title:  title,
			Body:   body,
		}); err != nil {
			log.Printf("Failed to send reminder for session %d: %v", session.ID, err)
			continue
		}

		if err := sr.DB.Model(&Models.Session{}).Where("id = ?", session.ID).
			Update("reminder_sent", true).Error; err != nil {
			log.Printf("Failed to mark reminder sent for session %d: %v", session.ID, err)
			continue
		}

		log.Printf("Reminder sent for session %d at %s %s", session.ID, session.ScheduledDate, session.StartTime)
	}

	return nil
}

func parseSessionStart(date, startTime string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", date+" "+startTime, time.Local)
}
