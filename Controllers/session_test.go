package Controllers

import (
	"net/http"
	"testing"

	"HealingRays/Models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSessionDerivesPrimaryFromSlots(t *testing.T) {
	setupTestDB(t)

	w := invoke(t, CreateSession, 1, http.MethodPost, "/api/protected/CreateSession", gin.H{
		"schedule_slots": []gin.H{
			{"from_date": "2024-05-01", "to_date": "2024-05-01", "from_time": "10:00", "to_time": "11:00"},
			{"from_date": "2024-05-02", "to_date": "garbage", "from_time": "10:00", "to_time": "11:00"},
		},
		"fee": 300,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var session Models.Session
	decodeJSON(t, w, &session)
	assert.Equal(t, "2024-05-01", session.ScheduledDate)
	assert.Equal(t, "10:00", session.StartTime)
	assert.Equal(t, "11:00", session.EndTime)
	assert.Len(t, session.ScheduleSlots, 1)
	assert.Equal(t, Models.SessionTypeHealing, session.Type)
	assert.Equal(t, Models.SessionStatusScheduled, session.Status)
	assert.Equal(t, float64(300), session.Fee)
}

func TestCreateSessionRequiresDate(t *testing.T) {
	setupTestDB(t)

	w := invoke(t, CreateSession, 1, http.MethodPost, "/api/protected/CreateSession", gin.H{
		"notes": "no date anywhere",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateSessionFeeDefaultsToClientBaseFee(t *testing.T) {
	setupTestDB(t)
	client := seedClient(t, 1, "Amira", 900)

	w := invoke(t, CreateSession, 1, http.MethodPost, "/api/protected/CreateSession", gin.H{
		"client_id":      client.ID,
		"scheduled_date": "2024-05-01",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var session Models.Session
	decodeJSON(t, w, &session)
	assert.Equal(t, float64(900), session.Fee)

	// the base-fee lookup goes through the ownership filter too
	w = invoke(t, CreateSession, 2, http.MethodPost, "/api/protected/CreateSession", gin.H{
		"client_id":      client.ID,
		"scheduled_date": "2024-05-01",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateRecurringSessions(t *testing.T) {
	setupTestDB(t)

	// 2024-01-01 is a Monday
	w := invoke(t, CreateSession, 1, http.MethodPost, "/api/protected/CreateSession", gin.H{
		"daysOfWeek": []int{1, 3},
		"startDate":  "2024-01-01",
		"endDate":    "2024-01-07",
		"startTime":  "10:00",
		"endTime":    "11:00",
		"fee":        400,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var batch []Models.Session
	decodeJSON(t, w, &batch)
	require.Len(t, batch, 2)
	assert.Equal(t, "2024-01-01", batch[0].ScheduledDate)
	assert.Equal(t, "2024-01-03", batch[1].ScheduledDate)

	var count int64
	Models.DB.Model(&Models.Session{}).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestCreateRecurringSessionsEmptyBatch(t *testing.T) {
	setupTestDB(t)

	w := invoke(t, CreateSession, 1, http.MethodPost, "/api/protected/CreateSession", gin.H{
		"daysOfWeek": []int{6},
		"startDate":  "2024-01-01", // Monday
		"endDate":    "2024-01-05", // Friday
		"startTime":  "10:00",
		"endTime":    "11:00",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var batch []Models.Session
	decodeJSON(t, w, &batch)
	assert.Empty(t, batch)

	var count int64
	Models.DB.Model(&Models.Session{}).Count(&count)
	assert.Zero(t, count)
}

func TestFetchSessionsWindowAndOrder(t *testing.T) {
	setupTestDB(t)
	seed := func(date, start string) {
		require.NoError(t, Models.DB.Create(&Models.Session{
			Owned:         Models.Owned{UserID: 1, Active: true},
			Type:          Models.SessionTypeHealing,
			ScheduledDate: date,
			StartTime:     start,
			Status:        Models.SessionStatusScheduled,
		}).Error)
	}
	seed("2024-05-03", "09:00")
	seed("2024-05-01", "14:00")
	seed("2024-05-01", "08:00")
	seed("2024-07-01", "08:00") // outside the window

	w := invoke(t, FetchSessions, 1, http.MethodGet, "/api/protected/FetchSessions?start=2024-05-01&end=2024-05-31", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var sessions []Models.Session
	decodeJSON(t, w, &sessions)
	require.Len(t, sessions, 3)
	assert.Equal(t, "08:00", sessions[0].StartTime)
	assert.Equal(t, "14:00", sessions[1].StartTime)
	assert.Equal(t, "2024-05-03", sessions[2].ScheduledDate)
}

func TestUpdateSessionReDerivesPrimaryFromSlots(t *testing.T) {
	setupTestDB(t)
	session := Models.Session{
		Owned:         Models.Owned{UserID: 1, Active: true},
		Type:          Models.SessionTypeHealing,
		ScheduledDate: "2024-05-01",
		StartTime:     "10:00",
		EndTime:       "11:00",
		Status:        Models.SessionStatusScheduled,
	}
	require.NoError(t, Models.DB.Create(&session).Error)

	w := invoke(t, UpdateSession, 1, http.MethodPatch, "/api/protected/UpdateSession", gin.H{
		"schedule_slots": []gin.H{
			{"from_date": "2024-06-10", "to_date": "2024-06-10", "from_time": "15:00", "to_time": "16:00"},
		},
	}, idParam(session.ID))
	require.Equal(t, http.StatusOK, w.Code)

	var updated Models.Session
	require.NoError(t, Models.DB.First(&updated, session.ID).Error)
	assert.Equal(t, "2024-06-10", updated.ScheduledDate)
	assert.Equal(t, "15:00", updated.StartTime)
	assert.Equal(t, "16:00", updated.EndTime)
	assert.Equal(t, Models.SessionStatusScheduled, updated.Status)
}

func TestSessionOwnershipIsolation(t *testing.T) {
	setupTestDB(t)
	theirs := Models.Session{
		Owned:         Models.Owned{UserID: 2, Active: true},
		ScheduledDate: "2024-05-01",
		Status:        Models.SessionStatusScheduled,
	}
	require.NoError(t, Models.DB.Create(&theirs).Error)

	w := invoke(t, UpdateSession, 1, http.MethodPatch, "/api/protected/UpdateSession", gin.H{
		"status": Models.SessionStatusCompleted,
	}, idParam(theirs.ID))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = invoke(t, DeleteSession, 1, http.MethodDelete, "/api/protected/DeleteSession", nil, idParam(theirs.ID))
	assert.Equal(t, http.StatusNotFound, w.Code)

	var untouched Models.Session
	require.NoError(t, Models.DB.First(&untouched, theirs.ID).Error)
	assert.Equal(t, Models.SessionStatusScheduled, untouched.Status)
	assert.True(t, untouched.Active)
}

func TestDeleteSessionSoftDelete(t *testing.T) {
	setupTestDB(t)
	session := Models.Session{
		Owned:         Models.Owned{UserID: 1, Active: true},
		ScheduledDate: "2024-05-01",
		Status:        Models.SessionStatusScheduled,
	}
	require.NoError(t, Models.DB.Create(&session).Error)

	w := invoke(t, DeleteSession, 1, http.MethodDelete, "/api/protected/DeleteSession", nil, idParam(session.ID))
	require.Equal(t, http.StatusOK, w.Code)

	w = invoke(t, FetchSessions, 1, http.MethodGet, "/api/protected/FetchSessions?start=2024-05-01&end=2024-05-31", nil)
	var sessions []Models.Session
	decodeJSON(t, w, &sessions)
	assert.Empty(t, sessions)
}
