package Controllers

import (
	"net/http"

	"HealingRays/Models"
	"HealingRays/Storage"

	"github.com/gin-gonic/gin"
)

// practitionerID returns the owner id installed by the SetPractitioner
// middleware. Every ownership filter derives from this value, never from the
// request body or path.
func practitionerID(c *gin.Context) (uint, bool) {
	value, exists := c.Get("practitionerID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	id, ok := value.(uint)
	if !ok || id == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return id, true
}

// resolveAttachmentURLs fills the derived url on each attachment before the
// record leaves the API.
func resolveAttachmentURLs(attachments Models.Attachments) Models.Attachments {
	for i := range attachments {
		attachments[i].URL = Storage.SignedURL(attachments[i].Path)
	}
	return attachments
}

// clientNames maps every client of the practitioner (soft-deleted included,
// so historical records keep a readable name) to its display name.
func clientNames(userID uint) (map[uint]string, error) {
	var clients []Models.Client
	if err := Models.DB.Model(&Models.Client{}).Scopes(Models.OwnedBy(userID)).Find(&clients).Error; err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(clients))
	for _, client := range clients {
		names[client.ID] = client.Name
	}
	return names, nil
}
