package Controllers

import (
	"net/http"
	"testing"

	"HealingRays/Models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProtocolNormalizesAttachments(t *testing.T) {
	setupTestDB(t)

	w := invoke(t, CreateProtocol, 1, http.MethodPost, "/api/protected/CreateProtocol", gin.H{
		"name":     "Grounding breath",
		"keywords": []string{"breath", "anxiety"},
		"attachments": []interface{}{
			"docs/steps.pdf",
			gin.H{"path": "docs/audio.mp3", "original_name": "guided.mp3"},
			gin.H{"original_name": "pathless, dropped"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var protocol Models.Protocol
	decodeJSON(t, w, &protocol)
	assert.Equal(t, Models.StringList{"breath", "anxiety"}, protocol.Keywords)
	require.Len(t, protocol.Attachments, 2)
	assert.Equal(t, "docs/steps.pdf", protocol.Attachments[0].Path)
	assert.Equal(t, "guided.mp3", protocol.Attachments[1].OriginalName)
}

func TestProtocolSoftDeleteAndIsolation(t *testing.T) {
	setupTestDB(t)
	protocol := Models.Protocol{
		Owned: Models.Owned{UserID: 1, Active: true},
		Name:  "Grounding breath",
	}
	require.NoError(t, Models.DB.Create(&protocol).Error)

	w := invoke(t, UpdateProtocol, 2, http.MethodPatch, "/api/protected/UpdateProtocol", gin.H{"name": "Hijacked"}, idParam(protocol.ID))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = invoke(t, DeleteProtocol, 1, http.MethodDelete, "/api/protected/DeleteProtocol", nil, idParam(protocol.ID))
	require.Equal(t, http.StatusOK, w.Code)

	w = invoke(t, FetchProtocols, 1, http.MethodGet, "/api/protected/FetchProtocols", nil)
	var protocols []Models.Protocol
	decodeJSON(t, w, &protocols)
	assert.Empty(t, protocols)
}
