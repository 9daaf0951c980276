package Controllers

import (
	"net/http"
	"strings"
	"time"

	"HealingRays/Models"

	"github.com/gin-gonic/gin"
)

func FetchClients(c *gin.Context) {
	userID, ok := practitionerID(c)
	if !ok {
		return
	}

	query := Models.DB.Model(&Models.Client{}).Scopes(Models.ActiveOwnedBy(userID)).Preload("Notes")

	if search := c.Query("search"); search != "" {
		term := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(phone) LIKE ? OR LOWER(email) LIKE ?", term, term, term)
	}

	var clients []Models.Client
	if err := query.Find(&clients).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, clients)
}

func FetchClient(c *gin.Context) {
	userID, ok := practitionerID(c)
	if !ok {
		return
	}

	var client Models.Client
	if err := Models.DB.Scopes(Models.ActiveOwnedBy(userID)).Preload("Notes").
		Where("id = ?", c.Param("id")).First(&client).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	c.JSON(http.StatusOK, client)
}

func CreateClient(c *gin.Context) {
	userID, ok := practitionerID(c)
	if !ok {
		return
	}

	var input struct {
		Name        string          `json:"name" binding:"required"`
		Phone       string          `json:"phone"`
		Email       string          `json:"email"`
		Photo       string          `json:"photo"`
		BaseFee     float64         `json:"base_fee"`
		ProtocolIDs Models.UintList `json:"protocol_ids"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	client := Models.Client{
		Owned:       Models.Owned{UserID: userID, Active: true},
		Name:        input.Name,
		Phone:       input.Phone,
		Email:       input.Email,
		Photo:       input.Photo,
		BaseFee:     input.BaseFee,
		ProtocolIDs: input.ProtocolIDs,
	}

	if err := Models.DB.Create(&client).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, client)
}

// UpdateClient applies partial-update semantics: only fields present in the
// body override, everything omitted keeps its prior value. Healing notes are
// excluded here, they only grow through AddHealingNote.
func UpdateClient(c *gin.Context) {
	userID, ok := practitionerID(c)
	if !ok {
		return
	}

	var input struct {
		Name        *string          `json:"name"`
		Phone       *string          `json:"phone"`
		Email       *string          `json:"email"`
		Photo       *string          `json:"photo"`
		BaseFee     *float64         `json:"base_fee"`
		ProtocolIDs *Models.UintList `json:"protocol_ids"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.Email != nil {
		updates["email"] = *input.Email
	}
	if input.Photo != nil {
		updates["photo"] = *input.Photo
	}
	if input.BaseFee != nil {
		updates["base_fee"] = *input.BaseFee
	}
	if input.ProtocolIDs != nil {
		updates["protocol_ids"] = *input.ProtocolIDs
	}
	if len(updates) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "Nothing to update"})
		return
	}

	// The ownership filter rides in the same UPDATE, not a separate check.
	result := Models.DB.Model(&Models.Client{}).
		Where("id = ? AND user_id = ? AND active = ?", c.Param("id"), userID, true).
		Updates(updates)
	if result.Error != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client updated successfully"})
}

func AddHealingNote(c *gin.Context) {
	userID, ok := practitionerID(c)
	if !ok {
		return
	}

	var input struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var client Models.Client
	if err := Models.DB.Scopes(Models.ActiveOwnedBy(userID)).
		Where("id = ?", c.Param("id")).First(&client).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	note := Models.HealingNote{ClientID: client.ID, Timestamp: time.Now(), Text: input.Text}
	if err := Models.DB.Create(&note).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, note)
}

func DeleteClient(c *gin.Context) {
	userID, ok := practitionerID(c)
	if !ok {
		return
	}

	result := Models.DB.Model(&Models.Client{}).
		Where("id = ? AND user_id = ?", c.Param("id"), userID).
		Update("active", false)
	if result.Error != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client deleted successfully"})
}
