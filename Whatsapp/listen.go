package Whatsapp

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"HealingRays/Models"

	whatsapp_chatbot_golang "github.com/green-api/whatsapp-chatbot-golang"
)

// Listen starts the WhatsApp bot when green-api credentials are configured.
// Texting "agenda" returns the day's schedule of the practitioner the
// instance belongs to.
func Listen() {
	instanceID := os.Getenv("GREEN_API_INSTANCE_ID")
	apiToken := os.Getenv("GREEN_API_TOKEN")
	if instanceID == "" || apiToken == "" {
		log.Println("Green API credentials not set, WhatsApp bot disabled")
		return
	}

	bot := whatsapp_chatbot_golang.NewBot(instanceID, apiToken)

	bot.SetStartScene(StartScene{})

	bot.StartReceivingNotifications()
}

type StartScene struct {
}

func (s StartScene) Start(bot *whatsapp_chatbot_golang.Bot) {
	bot.IncomingMessageHandler(func(message *whatsapp_chatbot_golang.Notification) {
		text, _ := message.Text()
		switch strings.ToLower(strings.TrimSpace(text)) {
		case "agenda", "today":
			message.AnswerWithText(todayAgenda())
		default:
			message.AnswerWithText("Send \"agenda\" to get today's schedule.")
		}
	})
}

func todayAgenda() string {
	userID, err := strconv.ParseUint(os.Getenv("WHATSAPP_USER_ID"), 10, 32)
	if err != nil || userID == 0 {
		return "No practitioner is linked to this number."
	}

	today := time.Now().Format("2006-01-02")

	var sessions []Models.Session
	if err := Models.DB.Model(&Models.Session{}).Scopes(Models.ActiveOwnedBy(uint(userID))).
		Where("scheduled_date = ?", today).
		Order("start_time asc").
		Find(&sessions).Error; err != nil {
		log.Println(err)
		return "Couldn't load today's agenda."
	}

	var nurturing []Models.NurturingSession
	if err := Models.DB.Model(&Models.NurturingSession{}).Scopes(Models.ActiveOwnedBy(uint(userID))).
		Where("date = ?", today).
		Find(&nurturing).Error; err != nil {
		log.Println(err)
		return "Couldn't load today's agenda."
	}

	if len(sessions) == 0 && len(nurturing) == 0 {
		return "Nothing scheduled today."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Agenda for %s:\n", today)
	for _, session := range sessions {
		fmt.Fprintf(&b, "- %s-%s %s session (%s)\n", session.StartTime, session.EndTime, session.Type, session.Status)
	}
	for _, event := range nurturing {
		fmt.Fprintf(&b, "- %s (%s)\n", event.Name, event.Status)
	}
	return b.String()
}
