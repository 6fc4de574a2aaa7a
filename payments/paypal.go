package payments

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"ekoclub-backend/models"
)

const paypalBaseURL = "https://api-m.paypal.com"

// PaypalGateway captures the outstanding balance of a PayPal billing
// subscription. Each charge is two round trips: a client-credentials token
// exchange, then the capture call. Success is keyed off the HTTP status of
// the capture; PayPal's capture body is not parsed for a reference, so the
// stored reference is always synthesized.
type PaypalGateway struct {
	clientID     string
	clientSecret string
	baseURL      string
	client       *http.Client
}

func NewPaypalGateway(clientID, clientSecret string) *PaypalGateway {
	return &PaypalGateway{
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      paypalBaseURL,
		client:       http.DefaultClient,
	}
}

type paypalTokenResponse struct {
	AccessToken string `json:"access_token"`
}

type paypalCaptureRequest struct {
	Note        string              `json:"note"`
	CaptureType string              `json:"capture_type"`
	Amount      paypalCaptureAmount `json:"amount"`
}

type paypalCaptureAmount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

func (g *PaypalGateway) getAccessToken() (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequest(http.MethodPost, g.baseURL+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	credentials := base64.StdEncoding.EncodeToString([]byte(g.clientID + ":" + g.clientSecret))
	req.Header.Set("Authorization", "Basic "+credentials)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("PayPal token exchange failed with status %d", resp.StatusCode)
	}

	var tokenResp paypalTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", fmt.Errorf("invalid PayPal token response: %v", err)
	}
	if tokenResp.AccessToken == "" {
		return "", fmt.Errorf("empty access token in PayPal response")
	}
	return tokenResp.AccessToken, nil
}

func (g *PaypalGateway) Charge(sub *models.Subscription) (string, error) {
	if g.clientID == "" || g.clientSecret == "" {
		return "", fmt.Errorf("PAYPAL_CLIENT_ID or PAYPAL_CLIENT_SECRET is not configured")
	}

	accessToken, err := g.getAccessToken()
	if err != nil {
		return "", err
	}

	payload := paypalCaptureRequest{
		Note:        "Eko Club International recurring donation",
		CaptureType: "OUTSTANDING_BALANCE",
		Amount: paypalCaptureAmount{
			CurrencyCode: sub.Currency,
			Value:        fmt.Sprintf("%.2f", sub.Amount),
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	captureURL := fmt.Sprintf("%s/v1/billing/subscriptions/%s/capture", g.baseURL, sub.PaymentToken)
	req, err := http.NewRequest(http.MethodPost, captureURL, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("PayPal capture failed with status %d", resp.StatusCode)
	}

	return synthesizeReference(sub.ID), nil
}
