package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/landy-api/pkg/errors"
)

func testContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestErrorCarriesDetails(t *testing.T) {
	c, w := testContext()
	Error(c, appErrors.WithDetails(appErrors.ErrValidation, "invalid rent increase", "new rent must be higher", "effective date too early"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	var env struct {
		Error appErrors.Error `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Len(t, env.Error.Details, 2)
}

func TestErrorHidesUntypedErrors(t *testing.T) {
	c, w := testContext()
	Error(c, assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}

func TestJSONWithMeta(t *testing.T) {
	c, w := testContext()
	JSON(c, http.StatusOK, []string{"ground14"}, map[string]interface{}{"version": "2026-1"})

	assert.JSONEq(t, `{"data":["ground14"],"meta":{"version":"2026-1"}}`, w.Body.String())
}

func TestAttachment(t *testing.T) {
	c, w := testContext()
	Attachment(c, "compliance-report-20260501.pdf", "application/pdf", []byte("%PDF-1.3"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="compliance-report-20260501.pdf"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "8", w.Header().Get("Content-Length"))
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
}
