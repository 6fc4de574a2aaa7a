package payments

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"net/http"

	"ekoclub-backend/models"
)

const paystackBaseURL = "https://api.paystack.co"

// PaystackGateway charges a stored authorization code through the Paystack
// charge_authorization endpoint. Amounts are sent in minor units.
type PaystackGateway struct {
	secretKey string
	baseURL   string
	client    *http.Client
}

func NewPaystackGateway(secretKey string) *PaystackGateway {
	return &PaystackGateway{
		secretKey: secretKey,
		baseURL:   paystackBaseURL,
		client:    http.DefaultClient,
	}
}

type paystackChargeRequest struct {
	AuthorizationCode string `json:"authorization_code"`
	Email             string `json:"email"`
	Amount            int64  `json:"amount"`
	Currency          string `json:"currency"`
}

type paystackChargeResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Status    string `json:"status"`
		Reference string `json:"reference"`
	} `json:"data"`
}

func (g *PaystackGateway) Charge(sub *models.Subscription) (string, error) {
	if g.secretKey == "" {
		return "", fmt.Errorf("PAYSTACK_SECRET_KEY is not configured")
	}

	payload := paystackChargeRequest{
		AuthorizationCode: sub.PaymentToken,
		Email:             sub.Email,
		Amount:            int64(math.Round(sub.Amount * 100)),
		Currency:          sub.Currency,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, g.baseURL+"/transaction/charge_authorization", bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+g.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var chargeResp paystackChargeResponse
	if err := json.NewDecoder(resp.Body).Decode(&chargeResp); err != nil {
		return "", fmt.Errorf("invalid Paystack response: %v", err)
	}

	if !chargeResp.Status || chargeResp.Data.Status != "success" {
		message := chargeResp.Message
		if message == "" {
			message = fmt.Sprintf("Paystack charge failed with status %d", resp.StatusCode)
		}
		return "", fmt.Errorf("%s", message)
	}

	reference := chargeResp.Data.Reference
	if reference == "" {
		reference = synthesizeReference(sub.ID)
	}
	return reference, nil
}
