package Controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"

	"HealingRays/Models"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// setupTestDB points the package-level handle at a fresh in-memory database
// for the duration of one test.
func setupTestDB(t *testing.T) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	Models.Migrate(db)
	Models.DB = db
	t.Cleanup(func() { Models.DB = nil })
}

// invoke runs a handler against a synthetic request. userID 0 leaves the
// practitioner unset, simulating a request that skipped the middleware.
func invoke(t *testing.T, handler gin.HandlerFunc, userID uint, method, target string, body interface{}, params ...gin.Param) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var payload *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		payload = bytes.NewReader(raw)
	} else {
		payload = bytes.NewReader(nil)
	}

	c.Request = httptest.NewRequest(method, target, payload)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params
	if userID != 0 {
		c.Set("practitionerID", userID)
	}

	handler(c)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func seedClient(t *testing.T, userID uint, name string, baseFee float64) Models.Client {
	t.Helper()
	client := Models.Client{
		Owned:   Models.Owned{UserID: userID, Active: true},
		Name:    name,
		BaseFee: baseFee,
	}
	require.NoError(t, Models.DB.Create(&client).Error)
	return client
}

func idParam(id uint) gin.Param {
	return gin.Param{Key: "id", Value: strconv.FormatUint(uint64(id), 10)}
}
