package Controllers

import (
	"net/http"

	"HealingRays/Models"
	"HealingRays/Scheduling"
	"HealingRays/Storage"

	"github.com/gin-gonic/gin"
)

func FetchProtocols(c *gin.Context) {
	userID, ok := practitionerID(c)
	if !ok {
		return
	}

	var protocols []Models.Protocol
	if err := Models.DB.Model(&Models.Protocol{}).Scopes(Models.ActiveOwnedBy(userID)).Find(&protocols).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	for i := range protocols {
		protocols[i].Attachments = resolveAttachmentURLs(protocols[i].Attachments)
	}
	c.JSON(http.StatusOK, protocols)
}

func CreateProtocol(c *gin.Context) {
	userID, ok := practitionerID(c)
	if !ok {
		return
	}

	var input struct {
		Name        string            `json:"name" binding:"required"`
		Notes       string            `json:"notes"`
		Keywords    Models.StringList `json:"keywords"`
		Attachments []interface{}     `json:"attachments"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	protocol := Models.Protocol{
		Owned:       Models.Owned{UserID: userID, Active: true},
		Name:        input.Name,
		Notes:       input.Notes,
		Keywords:    input.Keywords,
		Attachments: Scheduling.NormalizeAttachments(input.Attachments, Storage.PathFromURL),
	}
	if err := Models.DB.Create(&protocol).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, protocol)
}

func UpdateProtocol(c *gin.Context) {
	userID, ok := practitionerID(c)
	if !ok {
		return
	}

	var input struct {
		Name        *string            `json:"name"`
		Notes       *string            `json:"notes"`
		Keywords    *Models.StringList `json:"keywords"`
		Attachments *[]interface{}     `json:"attachments"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Notes != nil {
		updates["notes"] = *input.Notes
	}
	if input.Keywords != nil {
		updates["keywords"] = *input.Keywords
	}
	if input.Attachments != nil {
		updates["attachments"] = Scheduling.NormalizeAttachments(*input.Attachments, Storage.PathFromURL)
	}
	if len(updates) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "Nothing to update"})
		return
	}

	result := Models.DB.Model(&Models.Protocol{}).
		Where("id = ? AND user_id = ? AND active = ?", c.Param("id"), userID, true).
		Updates(updates)
	if result.Error != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Protocol not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Protocol updated successfully"})
}

func DeleteProtocol(c *gin.Context) {
	userID, ok := practitionerID(c)
	if !ok {
		return
	}

	result := Models.DB.Model(&Models.Protocol{}).
		Where("id = ? AND user_id = ?", c.Param("id"), userID).
		Update("active", false)
	if result.Error != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Protocol not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Protocol deleted successfully"})
}
