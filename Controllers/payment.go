package Controllers

import (
	"net/http"
	"time"

	"HealingRays/Models"
	"HealingRays/Scheduling"

	"github.com/gin-gonic/gin"
)

func FetchPayments(c *gin.Context) {
	userID, ok := practitionerID(c)
	if !ok {
		return
	}

	var payments []Models.Payment
	if err := Models.DB.Model(&Models.Payment{}).Scopes(Models.ActiveOwnedBy(userID)).
		Order("created_at desc").Find(&payments).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, payments)
}

func FetchClientPayments(c *gin.Context) {
	userID, ok := practitionerID(c)
	if !ok {
		return
	}

	var payments []Models.Payment
	if err := Models.DB.Model(&Models.Payment{}).Scopes(Models.ActiveOwnedBy(userID)).
		Where("client_id = ?", c.Param("id")).
		Order("created_at desc").Find(&payments).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, payments)
}

func CreatePayment(c *gin.Context) {
	userID, ok := practitionerID(c)
	if !ok {
		return
	}

	var input struct {
		SessionID *uint      `json:"session_id"`
		ClientID  uint       `json:"client_id" binding:"required"`
		Amount    float64    `json:"amount"`
		Mode      string     `json:"mode"`
		Status    string     `json:"status"`
		PaidAt    *time.Time `json:"paid_at"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	// The client reference must resolve inside the caller's own records.
	var client Models.Client
	if err := Models.DB.Scopes(Models.ActiveOwnedBy(userID)).
		Where("id = ?", input.ClientID).First(&client).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	payment := Models.Payment{
		Owned:     Models.Owned{UserID: userID, Active: true},
		SessionID: input.SessionID,
		ClientID:  input.ClientID,
		Amount:    input.Amount,
		Mode:      input.Mode,
		Status:    input.Status,
		PaidAt:    input.PaidAt,
	}
	if payment.Status == "" {
		payment.Status = Models.PaymentStatusPending
	}
	if payment.Status == Models.PaymentStatusPaid && payment.PaidAt == nil {
		now := time.Now()
		payment.PaidAt = &now
	}

	if err := Models.DB.Create(&payment).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, payment)
}

func UpdatePayment(c *gin.Context) {
	userID, ok := practitionerID(c)
	if !ok {
		return
	}

	var input struct {
		SessionID *uint      `json:"session_id"`
		Amount    *float64   `json:"amount"`
		Mode      *string    `json:"mode"`
		Status    *string    `json:"status"`
		PaidAt    *time.Time `json:"paid_at"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if input.SessionID != nil {
		updates["session_id"] = *input.SessionID
	}
	if input.Amount != nil {
		updates["amount"] = *input.Amount
	}
	if input.Mode != nil {
		updates["mode"] = *input.Mode
	}
	if input.Status != nil {
		updates["status"] = *input.Status
		if *input.Status == Models.PaymentStatusPaid && input.PaidAt == nil {
			updates["paid_at"] = time.Now()
		}
	}
	if input.PaidAt != nil {
		updates["paid_at"] = *input.PaidAt
	}
	if len(updates) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "Nothing to update"})
		return
	}

	result := Models.DB.Model(&Models.Payment{}).
		Where("id = ? AND user_id = ? AND active = ?", c.Param("id"), userID, true).
		Updates(updates)
	if result.Error != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment updated successfully"})
}

func DeletePayment(c *gin.Context) {
	userID, ok := practitionerID(c)
	if !ok {
		return
	}

	result := Models.DB.Model(&Models.Payment{}).
		Where("id = ? AND user_id = ?", c.Param("id"), userID).
		Update("active", false)
	if result.Error != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment deleted successfully"})
}

// FetchDuesSummary recomputes per-client billed vs paid totals from the
// source rows on every call. It is a read-only report.
func FetchDuesSummary(c *gin.Context) {
	userID, ok := practitionerID(c)
	if !ok {
		return
	}

	var sessions []Models.Session
	if err := Models.DB.Model(&Models.Session{}).Scopes(Models.ActiveOwnedBy(userID)).
		Where("status = ?", Models.SessionStatusCompleted).
		Find(&sessions).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var payments []Models.Payment
	if err := Models.DB.Model(&Models.Payment{}).Scopes(Models.ActiveOwnedBy(userID)).
		Find(&payments).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	names, err := clientNames(userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, Scheduling.ComputeDues(sessions, payments, names))
}
