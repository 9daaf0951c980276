package Controllers

import (
	"net/http"
	"testing"

	"HealingRays/Models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateNurturingSessionDateFromSlots(t *testing.T) {
	setupTestDB(t)

	w := invoke(t, CreateNurturingSession, 1, http.MethodPost, "/api/protected/CreateNurturingSession", gin.H{
		"name": "Sound bath",
		"schedule_slots": []gin.H{
			{"from_date": "2024-03-10", "to_date": "2024-03-11", "from_time": "18:00", "to_time": "20:00"},
		},
		"coordinator": "Noor",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var session Models.NurturingSession
	decodeJSON(t, w, &session)
	assert.Equal(t, "2024-03-10", session.Date)
	assert.Equal(t, Models.NurturingStatusPlanned, session.Status)
	assert.Len(t, session.ScheduleSlots, 1)
}

func TestCreateNurturingSessionRequiresDate(t *testing.T) {
	setupTestDB(t)

	w := invoke(t, CreateNurturingSession, 1, http.MethodPost, "/api/protected/CreateNurturingSession", gin.H{
		"name": "Dateless retreat",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateNurturingSessionPartial(t *testing.T) {
	setupTestDB(t)
	session := Models.NurturingSession{
		Owned:       Models.Owned{UserID: 1, Active: true},
		Name:        "Sound bath",
		Date:        "2024-03-10",
		Coordinator: "Noor",
		Status:      Models.NurturingStatusPlanned,
	}
	require.NoError(t, Models.DB.Create(&session).Error)

	w := invoke(t, UpdateNurturingSession, 1, http.MethodPatch, "/api/protected/UpdateNurturingSession", gin.H{
		"status": Models.NurturingStatusAttended,
	}, idParam(session.ID))
	require.Equal(t, http.StatusOK, w.Code)

	var updated Models.NurturingSession
	require.NoError(t, Models.DB.First(&updated, session.ID).Error)
	assert.Equal(t, Models.NurturingStatusAttended, updated.Status)
	assert.Equal(t, "Noor", updated.Coordinator)
}

func TestNurturingSessionOwnershipIsolation(t *testing.T) {
	setupTestDB(t)
	theirs := Models.NurturingSession{
		Owned:  Models.Owned{UserID: 2, Active: true},
		Name:   "Private retreat",
		Date:   "2024-03-10",
		Status: Models.NurturingStatusPlanned,
	}
	require.NoError(t, Models.DB.Create(&theirs).Error)

	w := invoke(t, UpdateNurturingSession, 1, http.MethodPatch, "/api/protected/UpdateNurturingSession", gin.H{
		"name": "Hijacked",
	}, idParam(theirs.ID))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = invoke(t, DeleteNurturingSession, 1, http.MethodDelete, "/api/protected/DeleteNurturingSession", nil, idParam(theirs.ID))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = invoke(t, FetchNurturingSessions, 1, http.MethodGet, "/api/protected/FetchNurturingSessions", nil)
	var sessions []Models.NurturingSession
	decodeJSON(t, w, &sessions)
	assert.Empty(t, sessions)
}
