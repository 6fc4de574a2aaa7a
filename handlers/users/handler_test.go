package users

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

	"ekoclub-backend/models"
	"ekoclub-backend/testutils"

	"github.com/DATA-DOG/go-sqlmock"
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

func TestGetAllUsers_PasswordIsNeverReturned(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Now()
	rows := mock.NewRows([]string{"id", "user_name", "email", "password", "role", "enable", "created_at"}).
		AddRow("123e4567-e89b-12d3-a456-426614174000", "folake", "folake.adeyemi@example.com", "$2a$10$hash", "MEMBER", true, now).
		AddRow("223e4567-e89b-12d3-a456-426614174000", "babajide", "babajide.okonkwo@example.com", "$2a$10$hash", "ADMIN", true, now)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(rows)

	r := testutils.SetupTestRouter()
	r.GET("/users", GetAllUsers)

	req, _ := http.NewRequest(http.MethodGet, "/users", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var users []models.User
	json.Unmarshal(resp.Body.Bytes(), &users)
	assert.Len(t, users, 2)
	for _, user := range users {
		assert.Empty(t, user.Password)
	}
}

func TestGetUserByID_NotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.GET("/users/:id", GetUserByID)

	req, _ := http.NewRequest(http.MethodGet, "/users/123e4567-e89b-12d3-a456-426614174000", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "User not found", respBody["error"])
}

func TestCreateUser_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnError(gorm.ErrRecordNotFound)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users" (.+) RETURNING "id"`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow("123e4567-e89b-12d3-a456-426614174000"))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/users", CreateUser)

	userData := map[string]string{
		"username": "folake",
		"email":    "folake.adeyemi@example.com",
		"role":     "MEMBER",
		"chapter":  "Atlanta",
	}
	jsonData, _ := json.Marshal(userData)

	req, _ := http.NewRequest(http.MethodPost, "/users", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "User created successfully", respBody["message"])
	assert.Equal(t, "folake.adeyemi@example.com", respBody["email"])
}

func TestCreateUser_EmailAlreadyUsed(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(mock.NewRows([]string{"id", "email"}).
			AddRow("123e4567-e89b-12d3-a456-426614174000", "folake.adeyemi@example.com"))

	r := testutils.SetupTestRouter()
	r.POST("/users", CreateUser)

	userData := map[string]string{
		"username": "folake",
		"email":    "folake.adeyemi@example.com",
	}
	jsonData, _ := json.Marshal(userData)

	req, _ := http.NewRequest(http.MethodPost, "/users", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusConflict, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "This email is already used", respBody["error"])
}

func TestUpdateUser_DisableAccount(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WillReturnRows(mock.NewRows([]string{"id", "email", "enable"}).
			AddRow("123e4567-e89b-12d3-a456-426614174000", "folake.adeyemi@example.com", true))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.PUT("/users/:id", UpdateUser)

	jsonData, _ := json.Marshal(map[string]interface{}{"enable": false})

	req, _ := http.NewRequest(http.MethodPut, "/users/123e4567-e89b-12d3-a456-426614174000", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "User updated successfully", respBody["message"])
}

func TestDeleteUser_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow("123e4567-e89b-12d3-a456-426614174000"))

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "users"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.DELETE("/users/:id", DeleteUser)

	req, _ := http.NewRequest(http.MethodDelete, "/users/123e4567-e89b-12d3-a456-426614174000", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "User deleted successfully", respBody["message"])
}
