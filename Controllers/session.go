package Controllers

import (
	"log"
	"net/http"
	"time"

	"HealingRays/Models"
	"HealingRays/SSE"
	"HealingRays/Scheduling"
	"HealingRays/Storage"

	"github.com/gin-gonic/gin"
)

type sessionInput struct {
	Type          string                `json:"type"`
	ClientID      *uint                 `json:"client_id"`
	ProtocolIDs   Models.UintList       `json:"protocol_ids"`
	ScheduledDate string                `json:"scheduled_date"`
	StartTime     string                `json:"start_time"`
	EndTime       string                `json:"end_time"`
	ScheduleSlots []Models.ScheduleSlot `json:"schedule_slots"`
	Status        string                `json:"status"`
	Notes         string                `json:"notes"`
	Fee           *float64              `json:"fee"`
	Attachments   []interface{}         `json:"attachments"`
	SelfSession   bool                  `json:"self_session"`

	// Present only on a recurring request
	DaysOfWeek []int  `json:"daysOfWeek"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	RecStart   string `json:"startTime"`
	RecEnd     string `json:"endTime"`
}

// CreateSession creates one session, or materializes a recurring batch when
// daysOfWeek + startDate + endDate are present.
func CreateSession(c *gin.Context) {
	userID, ok := practitionerID(c)
	if !ok {
		return
	}

	var input sessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if len(input.DaysOfWeek) > 0 || (input.StartDate != "" && input.EndDate != "") {
		createRecurringSessions(c, input, userID)
		return
	}

	slots := Scheduling.NormalizeSlots(input.ScheduleSlots)
	primary := Scheduling.ApplyPrimary(slots, Scheduling.Primary{
		ScheduledDate: input.ScheduledDate,
		StartTime:     input.StartTime,
		EndTime:       input.EndTime,
	})

	if primary.ScheduledDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "scheduled_date is required"})
		return
	}

	session := Models.Session{
		Owned:         Models.Owned{UserID: userID, Active: true},
		Type:          input.Type,
		ClientID:      input.ClientID,
		ProtocolIDs:   input.ProtocolIDs,
		ScheduledDate: primary.ScheduledDate,
		StartTime:     primary.StartTime,
		EndTime:       primary.EndTime,
		ScheduleSlots: slots,
		Status:        input.Status,
		Notes:         input.Notes,
		Attachments:   Scheduling.NormalizeAttachments(input.Attachments, Storage.PathFromURL),
		SelfSession:   input.SelfSession,
	}
	if session.Type == "" {
		session.Type = Models.SessionTypeHealing
	}
	if session.Status == "" {
		session.Status = Models.SessionStatusScheduled
	}

	// Quick-schedule default: omitted fee falls back to the client's base fee
	if input.Fee != nil {
		session.Fee = *input.Fee
	} else if input.ClientID != nil {
		var client Models.Client
		if err := Models.DB.Scopes(Models.ActiveOwnedBy(userID)).
			Where("id = ?", *input.ClientID).First(&client).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
			return
		}
		session.Fee = client.BaseFee
	}

	if err := Models.DB.Create(&session).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	SSE.Broadcaster.Broadcast("refresh")
	c.JSON(http.StatusOK, session)
}

// createRecurringSessions expands the request into concrete sessions and
// inserts them as one batch; any failed day rolls back the whole batch.
func createRecurringSessions(c *gin.Context, input sessionInput, userID uint) {
	request := Scheduling.RecurringRequest{
		Type:        input.Type,
		ClientID:    input.ClientID,
		ProtocolIDs: input.ProtocolIDs,
		DaysOfWeek:  input.DaysOfWeek,
		StartTime:   input.RecStart,
		EndTime:     input.RecEnd,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Notes:       input.Notes,
		SelfSession: input.SelfSession,
	}
	if request.Type == "" {
		request.Type = Models.SessionTypeHealing
	}
	if input.Fee != nil {
		request.Fee = *input.Fee
	} else if input.ClientID != nil {
		var client Models.Client
		if err := Models.DB.Scopes(Models.ActiveOwnedBy(userID)).
			Where("id = ?", *input.ClientID).First(&client).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
			return
		}
		request.Fee = client.BaseFee
	}

	sessions, err := Scheduling.ExpandRecurring(request, userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(sessions) == 0 {
		c.JSON(http.StatusOK, []Models.Session{})
		return
	}

	tx := Models.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&sessions).Error; err != nil {
		tx.Rollback()
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create recurring sessions"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
		return
	}

	SSE.Broadcaster.Broadcast("refresh")
	c.JSON(http.StatusOK, sessions)
}

// FetchSessions lists the practitioner's sessions inside a date window,
// defaulting to the next 30 days. Multi-day records are located by their
// primary date only.
func FetchSessions(c *gin.Context) {
	userID, ok := practitionerID(c)
	if !ok {
		return
	}

	start := c.Query("start")
	end := c.Query("end")
	if start == "" || end == "" {
		now := time.Now()
		start = now.Format("2006-01-02")
		end = now.AddDate(0, 0, 30).Format("2006-01-02")
	}

	var sessions []Models.Session
	if err := Models.DB.Model(&Models.Session{}).Scopes(Models.ActiveOwnedBy(userID)).
		Where("scheduled_date BETWEEN ? AND ?", start, end).
		Order("scheduled_date asc, start_time asc").
		Find(&sessions).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	for i := range sessions {
		sessions[i].Attachments = resolveAttachmentURLs(sessions[i].Attachments)
	}
	c.JSON(http.StatusOK, sessions)
}

func FetchClientSessions(c *gin.Context) {
	userID, ok := practitionerID(c)
	if !ok {
		return
	}

	var sessions []Models.Session
	if err := Models.DB.Model(&Models.Session{}).Scopes(Models.ActiveOwnedBy(userID)).
		Where("client_id = ?", c.Param("id")).
		Order("scheduled_date desc").
		Find(&sessions).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	for i := range sessions {
		sessions[i].Attachments = resolveAttachmentURLs(sessions[i].Attachments)
	}
	c.JSON(http.StatusOK, sessions)
}

// UpdateSession applies partial-update semantics. When slots arrive they are
// re-normalized, and any primary field the caller left unset is re-derived
// from the first valid slot.
func UpdateSession(c *gin.Context) {
	userID, ok := practitionerID(c)
	if !ok {
		return
	}

	var input struct {
		Type          *string                `json:"type"`
		ClientID      *uint                  `json:"client_id"`
		ProtocolIDs   *Models.UintList       `json:"protocol_ids"`
		ScheduledDate *string                `json:"scheduled_date"`
		StartTime     *string                `json:"start_time"`
		EndTime       *string                `json:"end_time"`
		ScheduleSlots *[]Models.ScheduleSlot `json:"schedule_slots"`
		Status        *string                `json:"status"`
		Notes         *string                `json:"notes"`
		Fee           *float64               `json:"fee"`
		Attachments   *[]interface{}         `json:"attachments"`
		SelfSession   *bool                  `json:"self_session"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if input.Type != nil {
		updates["type"] = *input.Type
	}
	if input.ClientID != nil {
		updates["client_id"] = *input.ClientID
	}
	if input.ProtocolIDs != nil {
		updates["protocol_ids"] = *input.ProtocolIDs
	}
	if input.ScheduledDate != nil {
		updates["scheduled_date"] = *input.ScheduledDate
	}
	if input.StartTime != nil {
		updates["start_time"] = *input.StartTime
	}
	if input.EndTime != nil {
		updates["end_time"] = *input.EndTime
	}
	if input.Status != nil {
		updates["status"] = *input.Status
	}
	if input.Notes != nil {
		updates["notes"] = *input.Notes
	}
	if input.Fee != nil {
		updates["fee"] = *input.Fee
	}
	if input.Attachments != nil {
		updates["attachments"] = Scheduling.NormalizeAttachments(*input.Attachments, Storage.PathFromURL)
	}
	if input.SelfSession != nil {
		updates["self_session"] = *input.SelfSession
	}

	if input.ScheduleSlots != nil {
		slots := Scheduling.NormalizeSlots(*input.ScheduleSlots)
		updates["schedule_slots"] = slots

		primary := Scheduling.Primary{}
		if input.ScheduledDate != nil {
			primary.ScheduledDate = *input.ScheduledDate
		}
		if input.StartTime != nil {
			primary.StartTime = *input.StartTime
		}
		if input.EndTime != nil {
			primary.EndTime = *input.EndTime
		}
		primary = Scheduling.ApplyPrimary(slots, primary)
		if primary.ScheduledDate != "" {
			updates["scheduled_date"] = primary.ScheduledDate
		}
		if primary.StartTime != "" {
			updates["start_time"] = primary.StartTime
		}
		if primary.EndTime != "" {
			updates["end_time"] = primary.EndTime
		}
	}

	if len(updates) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "Nothing to update"})
		return
	}

	result := Models.DB.Model(&Models.Session{}).
		Where("id = ? AND user_id = ? AND active = ?", c.Param("id"), userID, true).
		Updates(updates)
	if result.Error != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}

	SSE.Broadcaster.Broadcast("refresh")
	c.JSON(http.StatusOK, gin.H{"message": "Session updated successfully"})
}

func DeleteSession(c *gin.Context) {
	userID, ok := practitionerID(c)
	if !ok {
		return
	}

	result := Models.DB.Model(&Models.Session{}).
		Where("id = ? AND user_id = ?", c.Param("id"), userID).
		Update("active", false)
	if result.Error != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}

	SSE.Broadcaster.Broadcast("refresh")
	c.JSON(http.StatusOK, gin.H{"message": "Session deleted successfully"})
}
