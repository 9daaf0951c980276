package Controllers

import (
	"net/http"

	"HealingRays/Models"
	"HealingRays/SSE"
	"HealingRays/Scheduling"
	"HealingRays/Storage"

	"github.com/gin-gonic/gin"
)

func FetchNurturingSessions(c *gin.Context) {
	userID, ok := practitionerID(c)
	if !ok {
		return
	}

	query := Models.DB.Model(&Models.NurturingSession{}).Scopes(Models.ActiveOwnedBy(userID))
	if start, end := c.Query("start"), c.Query("end"); start != "" && end != "" {
		query = query.Where("date BETWEEN ? AND ?", start, end)
	}

	var sessions []Models.NurturingSession
	if err := query.Order("date asc").Find(&sessions).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	for i := range sessions {
		sessions[i].Attachments = resolveAttachmentURLs(sessions[i].Attachments)
	}
	c.JSON(http.StatusOK, sessions)
}

func CreateNurturingSession(c *gin.Context) {
	userID, ok := practitionerID(c)
	if !ok {
		return
	}

	var input struct {
		Name                   string                `json:"name" binding:"required"`
		Date                   string                `json:"date"`
		ScheduleSlots          []Models.ScheduleSlot `json:"schedule_slots"`
		Coordinator            string                `json:"coordinator"`
		PaymentDetails         string                `json:"payment_details"`
		Status                 string                `json:"status"`
		RecordingAvailableTill string                `json:"recording_available_till"`
		Attachments            []interface{}         `json:"attachments"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	slots := Scheduling.NormalizeSlots(input.ScheduleSlots)
	primary := Scheduling.ApplyPrimary(slots, Scheduling.Primary{ScheduledDate: input.Date})
	if primary.ScheduledDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}

	session := Models.NurturingSession{
		Owned:                  Models.Owned{UserID: userID, Active: true},
		Name:                   input.Name,
		Date:                   primary.ScheduledDate,
		ScheduleSlots:          slots,
		Coordinator:            input.Coordinator,
		PaymentDetails:         input.PaymentDetails,
		Status:                 input.Status,
		RecordingAvailableTill: input.RecordingAvailableTill,
		Attachments:            Scheduling.NormalizeAttachments(input.Attachments, Storage.PathFromURL),
	}
	if session.Status == "" {
		session.Status = Models.NurturingStatusPlanned
	}

	if err := Models.DB.Create(&session).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	SSE.Broadcaster.Broadcast("refresh")
	c.JSON(http.StatusOK, session)
}

func UpdateNurturingSession(c *gin.Context) {
	userID, ok := practitionerID(c)
	if !ok {
		return
	}

	var input struct {
		Name                   *string                `json:"name"`
		Date                   *string                `json:"date"`
		ScheduleSlots          *[]Models.ScheduleSlot `json:"schedule_slots"`
		Coordinator            *string                `json:"coordinator"`
		PaymentDetails         *string                `json:"payment_details"`
		Status                 *string                `json:"status"`
		RecordingAvailableTill *string                `json:"recording_available_till"`
		Attachments            *[]interface{}         `json:"attachments"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Date != nil {
		updates["date"] = *input.Date
	}
	if input.Coordinator != nil {
		updates["coordinator"] = *input.Coordinator
	}
	if input.PaymentDetails != nil {
		updates["payment_details"] = *input.PaymentDetails
	}
	if input.Status != nil {
		updates["status"] = *input.Status
	}
	if input.RecordingAvailableTill != nil {
		updates["recording_available_till"] = *input.RecordingAvailableTill
	}
	if input.Attachments != nil {
		updates["attachments"] = Scheduling.NormalizeAttachments(*input.Attachments, Storage.PathFromURL)
	}
	if input.ScheduleSlots != nil {
		slots := Scheduling.NormalizeSlots(*input.ScheduleSlots)
		updates["schedule_slots"] = slots
		primary := Scheduling.Primary{}
		if input.Date != nil {
			primary.ScheduledDate = *input.Date
		}
		if primary = Scheduling.ApplyPrimary(slots, primary); primary.ScheduledDate != "" {
			updates["date"] = primary.ScheduledDate
		}
	}
	if len(updates) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "Nothing to update"})
		return
	}

	result := Models.DB.Model(&Models.NurturingSession{}).
		Where("id = ? AND user_id = ? AND active = ?", c.Param("id"), userID, true).
		Updates(updates)
	if result.Error != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Nurturing session not found"})
		return
	}

	SSE.Broadcaster.Broadcast("refresh")
	c.JSON(http.StatusOK, gin.H{"message": "Nurturing session updated successfully"})
}

func DeleteNurturingSession(c *gin.Context) {
	userID, ok := practitionerID(c)
	if !ok {
		return
	}

	result := Models.DB.Model(&Models.NurturingSession{}).
		Where("id = ? AND user_id = ?", c.Param("id"), userID).
		Update("active", false)
	if result.Error != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Nurturing session not found"})
		return
	}

	SSE.Broadcaster.Broadcast("refresh")
	c.JSON(http.StatusOK, gin.H{"message": "Nurturing session deleted successfully"})
}
