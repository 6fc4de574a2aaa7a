package payments

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ekoclub-backend/models"

	"github.com/stretchr/testify/assert"
)

func paypalTestServer(t *testing.T, captureStatus int, captured *paypalCaptureRequest) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		username, password, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "client_id_test", username)
		assert.Equal(t, "client_secret_test", password)

		json.NewEncoder(w).Encode(map[string]interface{}{"access_token": "A21AAtoken"})
	})
	mux.HandleFunc("/v1/billing/subscriptions/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer A21AAtoken", r.Header.Get("Authorization"))
		assert.True(t, strings.HasSuffix(r.URL.Path, "/capture"))
		if captured != nil {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(captured))
		}
		w.WriteHeader(captureStatus)
	})
	return httptest.NewServer(mux)
}

func TestPaypalCharge_Success(t *testing.T) {
	var captured paypalCaptureRequest
	server := paypalTestServer(t, http.StatusCreated, &captured)
	defer server.Close()

	gateway := &PaypalGateway{
		clientID:     "client_id_test",
		clientSecret: "client_secret_test",
		baseURL:      server.URL,
		client:       server.Client(),
	}

	sub := testSubscription(models.MethodPaypal)
	reference, err := gateway.Charge(sub)

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(reference, "ECI-REC-"))
	assert.True(t, strings.HasSuffix(reference, sub.ID))
	assert.Equal(t, "OUTSTANDING_BALANCE", captured.CaptureType)
	assert.Equal(t, "USD", captured.Amount.CurrencyCode)
	assert.Equal(t, "25.00", captured.Amount.Value)
}

func TestPaypalCharge_CaptureRejected(t *testing.T) {
	server := paypalTestServer(t, http.StatusUnprocessableEntity, nil)
	defer server.Close()

	gateway := &PaypalGateway{
		clientID:     "client_id_test",
		clientSecret: "client_secret_test",
		baseURL:      server.URL,
		client:       server.Client(),
	}

	_, err := gateway.Charge(testSubscription(models.MethodPaypal))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "PayPal capture failed with status 422")
}

func TestPaypalCharge_TokenExchangeFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	gateway := &PaypalGateway{
		clientID:     "client_id_test",
		clientSecret: "client_secret_test",
		baseURL:      server.URL,
		client:       server.Client(),
	}

	_, err := gateway.Charge(testSubscription(models.MethodPaypal))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "token exchange failed")
}

func TestPaypalCharge_EmptyAccessToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{})
	}))
	defer server.Close()

	gateway := &PaypalGateway{
		clientID:     "client_id_test",
		clientSecret: "client_secret_test",
		baseURL:      server.URL,
		client:       server.Client(),
	}

	_, err := gateway.Charge(testSubscription(models.MethodPaypal))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "empty access token")
}

func TestPaypalCharge_MissingCredentials(t *testing.T) {
	gateway := &PaypalGateway{clientID: "client_id_test"}

	_, err := gateway.Charge(testSubscription(models.MethodPaypal))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "PAYPAL_CLIENT_ID or PAYPAL_CLIENT_SECRET")
}
