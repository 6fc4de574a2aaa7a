package invites

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"ekoclub-backend/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func TestCreateInviteCode_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "invite_codes" (.+) RETURNING "id"`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow("123e4567-e89b-12d3-a456-426614174000"))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/invite-codes", func(c *gin.Context) {
		c.Set("user_id", "423e4567-e89b-12d3-a456-426614174000")
		CreateInviteCode(c)
	})

	inviteData := map[string]interface{}{
		"role":         "MEMBER",
		"validityDays": 30,
	}
	jsonData, _ := json.Marshal(inviteData)

	req, _ := http.NewRequest(http.MethodPost, "/invite-codes", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Invite code created successfully", respBody["message"])
	code, ok := respBody["code"].(string)
	assert.True(t, ok)
	assert.Len(t, code, 8)
}

func TestCreateInviteCode_WithRecipientEmail(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "invite_codes" (.+) RETURNING "id"`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow("123e4567-e89b-12d3-a456-426614174000"))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/invite-codes", CreateInviteCode)

	inviteData := map[string]interface{}{
		"role":  "MEMBER",
		"email": "folake.adeyemi@example.com",
	}
	jsonData, _ := json.Marshal(inviteData)

	req, _ := http.NewRequest(http.MethodPost, "/invite-codes", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Invite code created successfully", respBody["message"])
	assert.NotEmpty(t, respBody["code"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateInviteCode_InvalidRecipientEmail(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.POST("/invite-codes", CreateInviteCode)

	inviteData := map[string]interface{}{
		"role":  "MEMBER",
		"email": "not-an-email",
	}
	jsonData, _ := json.Marshal(inviteData)

	req, _ := http.NewRequest(http.MethodPost, "/invite-codes", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Invalid email format", respBody["error"])
}

func TestValidateInviteCode_Valid(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "invite_codes" WHERE code = \$1`).
		WillReturnRows(mock.NewRows([]string{"id", "code", "role", "expires_at", "used"}).
			AddRow("123e4567-e89b-12d3-a456-426614174000", "AB12CD34", "MEMBER", time.Now().AddDate(0, 0, 7), false))

	r := testutils.SetupTestRouter()
	r.GET("/invite-codes/validate/:code", ValidateInviteCode)

	req, _ := http.NewRequest(http.MethodGet, "/invite-codes/validate/AB12CD34", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, true, respBody["valid"])
	assert.Equal(t, "MEMBER", respBody["role"])
}

func TestValidateInviteCode_AlreadyUsed(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "invite_codes" WHERE code = \$1`).
		WillReturnRows(mock.NewRows([]string{"id", "code", "role", "expires_at", "used"}).
			AddRow("123e4567-e89b-12d3-a456-426614174000", "AB12CD34", "MEMBER", time.Now().AddDate(0, 0, 7), true))

	r := testutils.SetupTestRouter()
	r.GET("/invite-codes/validate/:code", ValidateInviteCode)

	req, _ := http.NewRequest(http.MethodGet, "/invite-codes/validate/AB12CD34", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, false, respBody["valid"])
}

func TestValidateInviteCode_Expired(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "invite_codes" WHERE code = \$1`).
		WillReturnRows(mock.NewRows([]string{"id", "code", "role", "expires_at", "used"}).
			AddRow("123e4567-e89b-12d3-a456-426614174000", "AB12CD34", "MEMBER", time.Now().AddDate(0, 0, -1), false))

	r := testutils.SetupTestRouter()
	r.GET("/invite-codes/validate/:code", ValidateInviteCode)

	req, _ := http.NewRequest(http.MethodGet, "/invite-codes/validate/AB12CD34", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, false, respBody["valid"])
}

func TestValidateInviteCode_Unknown(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "invite_codes" WHERE code = \$1`).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.GET("/invite-codes/validate/:code", ValidateInviteCode)

	req, _ := http.NewRequest(http.MethodGet, "/invite-codes/validate/NOPE1234", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Invalid invite code", respBody["error"])
}
