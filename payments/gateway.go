package payments

import (
	"fmt"
	"time"

	"ekoclub-backend/models"
)

// Gateway charges one billing period of a subscription through a payment
// provider, using the token stored on the subscription. It returns the
// provider transaction reference (or a synthesized one) on success, and an
// error carrying the provider message on failure. One synchronous round trip
// per attempt: no retry, no webhook confirmation.
type Gateway interface {
	Charge(sub *models.Subscription) (string, error)
}

// Gateways maps a stored payment method to its adapter.
type Gateways map[models.PaymentMethod]Gateway

// NewGateways builds one adapter per supported provider from the injected
// configuration.
func NewGateways(cfg Config) Gateways {
	return Gateways{
		models.MethodPaystack:    NewPaystackGateway(cfg.PaystackSecretKey),
		models.MethodFlutterwave: NewFlutterwaveGateway(cfg.FlutterwaveSecretKey),
		models.MethodPaypal:      NewPaypalGateway(cfg.PaypalClientID, cfg.PaypalClientSecret),
	}
}

// synthesizeReference builds a fallback transaction reference when the
// provider does not supply one.
func synthesizeReference(subscriptionID string) string {
	return fmt.Sprintf("ECI-REC-%d-%s", time.Now().Unix(), subscriptionID)
}
