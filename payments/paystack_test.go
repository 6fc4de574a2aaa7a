package payments

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ekoclub-backend/models"

	"github.com/stretchr/testify/assert"
)

func testSubscription(method models.PaymentMethod) *models.Subscription {
	return &models.Subscription{
		ID:            "123e4567-e89b-12d3-a456-426614174000",
		Name:          "Folake Adeyemi",
		Email:         "folake.adeyemi@example.com",
		Amount:        25.0,
		Currency:      "USD",
		PaymentMethod: method,
		PaymentToken:  "AUTH_abc123",
		Status:        models.SubscriptionActive,
	}
}

func TestPaystackCharge_Success(t *testing.T) {
	var received paystackChargeRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transaction/charge_authorization", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_xyz", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  true,
			"message": "Charge attempted",
			"data": map[string]interface{}{
				"status":    "success",
				"reference": "PSK_ref_001",
			},
		})
	}))
	defer server.Close()

	gateway := &PaystackGateway{secretKey: "sk_test_xyz", baseURL: server.URL, client: server.Client()}

	reference, err := gateway.Charge(testSubscription(models.MethodPaystack))

	assert.NoError(t, err)
	assert.Equal(t, "PSK_ref_001", reference)
	// 25.00 USD travels as 2500 minor units.
	assert.Equal(t, int64(2500), received.Amount)
	assert.Equal(t, "AUTH_abc123", received.AuthorizationCode)
	assert.Equal(t, "folake.adeyemi@example.com", received.Email)
}

func TestPaystackCharge_DeclinedSurfacesTheGatewayMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  false,
			"message": "Insufficient funds",
		})
	}))
	defer server.Close()

	gateway := &PaystackGateway{secretKey: "sk_test_xyz", baseURL: server.URL, client: server.Client()}

	reference, err := gateway.Charge(testSubscription(models.MethodPaystack))

	assert.Error(t, err)
	assert.Equal(t, "Insufficient funds", err.Error())
	assert.Empty(t, reference)
}

func TestPaystackCharge_PendingStatusIsNotASuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  true,
			"message": "Charge attempted",
			"data": map[string]interface{}{
				"status": "pending",
			},
		})
	}))
	defer server.Close()

	gateway := &PaystackGateway{secretKey: "sk_test_xyz", baseURL: server.URL, client: server.Client()}

	_, err := gateway.Charge(testSubscription(models.MethodPaystack))

	assert.Error(t, err)
}

func TestPaystackCharge_MissingSecretKey(t *testing.T) {
	gateway := &PaystackGateway{}

	_, err := gateway.Charge(testSubscription(models.MethodPaystack))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "PAYSTACK_SECRET_KEY")
}
