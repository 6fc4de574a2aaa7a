package payments

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"ekoclub-backend/models"
)

const flutterwaveBaseURL = "https://api.flutterwave.com"

// FlutterwaveGateway charges a stored card token through the Flutterwave
// tokenized-charges endpoint.
type FlutterwaveGateway struct {
	secretKey string
	baseURL   string
	client    *http.Client
}

func NewFlutterwaveGateway(secretKey string) *FlutterwaveGateway {
	return &FlutterwaveGateway{
		secretKey: secretKey,
		baseURL:   flutterwaveBaseURL,
		client:    http.DefaultClient,
	}
}

type flutterwaveChargeRequest struct {
	Token    string  `json:"token"`
	Email    string  `json:"email"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	TxRef    string  `json:"tx_ref"`
}

type flutterwaveChargeResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		ID     int64  `json:"id"`
		Status string `json:"status"`
	} `json:"data"`
}

func (g *FlutterwaveGateway) Charge(sub *models.Subscription) (string, error) {
	if g.secretKey == "" {
		return "", fmt.Errorf("FLUTTERWAVE_SECRET_KEY is not configured")
	}

	payload := flutterwaveChargeRequest{
		Token:    sub.PaymentToken,
		Email:    sub.Email,
		Amount:   sub.Amount,
		Currency: sub.Currency,
		TxRef:    synthesizeReference(sub.ID),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, g.baseURL+"/v3/tokenized-charges", bytes.NewBuffer(body))
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

	var chargeResp flutterwaveChargeResponse
	if err := json.NewDecoder(resp.Body).Decode(&chargeResp); err != nil {
		return "", fmt.Errorf("invalid Flutterwave response: %v", err)
	}

	if chargeResp.Data.Status != "success" {
		message := chargeResp.Message
		if message == "" {
			message = fmt.Sprintf("Flutterwave charge failed with status %d", resp.StatusCode)
		}
		return "", fmt.Errorf("%s", message)
	}

	// Flutterwave sometimes omits the numeric transaction id on tokenized
	// charges, in which case the synthesized reference is stored instead.
	if chargeResp.Data.ID == 0 {
		return synthesizeReference(sub.ID), nil
	}
	return strconv.FormatInt(chargeResp.Data.ID, 10), nil
}
