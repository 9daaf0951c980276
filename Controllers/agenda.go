package Controllers

import (
	"net/http"
	"time"

	"HealingRays/Models"
	"HealingRays/Scheduling"

	"github.com/gin-gonic/gin"
)

// FetchAgenda merges healing sessions and nurturing sessions inside a date
// window into one sorted list. When the type filter restricts to one kind the
// other kind is never fetched. The default window is today through +7 days.
func FetchAgenda(c *gin.Context) {
	userID, ok := practitionerID(c)
	if !ok {
		return
	}

	start := c.Query("start")
	end := c.Query("end")
	if start == "" {
		start = time.Now().Format("2006-01-02")
	}
	if end == "" {
		from, ok := Scheduling.ParseDate(start)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date"})
			return
		}
		end = from.AddDate(0, 0, 7).Format("2006-01-02")
	}

	kind := c.Query("type")
	if kind == "" {
		kind = "all"
	}

	var sessions []Models.Session
	if kind == "all" || kind == Models.SessionTypeHealing {
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
	}

	var nurturing []Models.NurturingSession
	if kind == "all" || kind == Models.SessionTypeNurturing {
		if err := Models.DB.Model(&Models.NurturingSession{}).Scopes(Models.ActiveOwnedBy(userID)).
			Where("date BETWEEN ? AND ?", start, end).
			Order("date asc").
			Find(&nurturing).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		for i := range nurturing {
			nurturing[i].Attachments = resolveAttachmentURLs(nurturing[i].Attachments)
		}
	}

	names, err := clientNames(userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	agenda := Scheduling.MergeAgenda(sessions, nurturing, names, Scheduling.AgendaFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
	})
	c.JSON(http.StatusOK, agenda)
}
