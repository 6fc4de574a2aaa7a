package donations

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

	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func TestCreateDonation_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "payments" (.+) RETURNING "id"`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow("123e4567-e89b-12d3-a456-426614174000"))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/donations", CreateDonation)

	donationData := map[string]interface{}{
		"name":                 "Babajide Okonkwo",
		"email":                "babajide.okonkwo@example.com",
		"amount":               100.0,
		"paymentMethod":        "flutterwave",
		"transactionReference": "FLW-654321",
	}
	jsonData, _ := json.Marshal(donationData)

	req, _ := http.NewRequest(http.MethodPost, "/donations", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Donation recorded successfully", respBody["message"])
	assert.NotNil(t, respBody["id"])
}

func TestCreateDonation_MissingAmount(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.POST("/donations", CreateDonation)

	donationData := map[string]interface{}{
		"name":          "Babajide Okonkwo",
		"email":         "babajide.okonkwo@example.com",
		"paymentMethod": "flutterwave",
	}
	jsonData, _ := json.Marshal(donationData)

	req, _ := http.NewRequest(http.MethodPost, "/donations", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Contains(t, respBody["error"], "Field validation for 'Amount' failed")
}

func TestCreateDonation_UnsupportedPaymentMethod(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.POST("/donations", CreateDonation)

	donationData := map[string]interface{}{
		"name":                 "Babajide Okonkwo",
		"email":                "babajide.okonkwo@example.com",
		"amount":               100.0,
		"paymentMethod":        "cash",
		"transactionReference": "REF_x",
	}
	jsonData, _ := json.Marshal(donationData)

	req, _ := http.NewRequest(http.MethodPost, "/donations", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Unsupported payment method", respBody["error"])
}

func TestGetAllDonations_FilterByType(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Now()
	rows := mock.NewRows([]string{"id", "name", "email", "amount", "donation_type", "created_at"}).
		AddRow("123e4567-e89b-12d3-a456-426614174000", "Folake Adeyemi", "folake.adeyemi@example.com", 25.0, "recurring", now)

	mock.ExpectQuery(`SELECT \* FROM "payments" WHERE donation_type = \$1`).
		WithArgs("recurring").
		WillReturnRows(rows)

	r := testutils.SetupTestRouter()
	r.GET("/donations", GetAllDonations)

	req, _ := http.NewRequest(http.MethodGet, "/donations?donationType=recurring", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var donations []models.Payment
	json.Unmarshal(resp.Body.Bytes(), &donations)
	assert.Len(t, donations, 1)
	assert.Equal(t, models.DonationRecurring, donations[0].DonationType)
}
