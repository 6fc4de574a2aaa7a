package payments

import (
	"os"
)

// Config holds the gateway secrets. It is loaded once at process start and
// injected into the adapters, instead of each charge reading the environment.
type Config struct {
	PaystackSecretKey    string
	FlutterwaveSecretKey string
	PaypalClientID       string
	PaypalClientSecret   string
}

func LoadConfig() Config {
	return Config{
		PaystackSecretKey:    os.Getenv("PAYSTACK_SECRET_KEY"),
		FlutterwaveSecretKey: os.Getenv("FLUTTERWAVE_SECRET_KEY"),
		PaypalClientID:       os.Getenv("PAYPAL_CLIENT_ID"),
		PaypalClientSecret:   os.Getenv("PAYPAL_CLIENT_SECRET"),
	}
}

// MissingSecrets lists the environment variables that are not set. A missing
// secret does not prevent startup: charges for that provider fail per item
// while the other providers keep working.
func (c Config) MissingSecrets() []string {
	var missing []string
	if c.PaystackSecretKey == "" {
		missing = append(missing, "PAYSTACK_SECRET_KEY")
	}
	if c.FlutterwaveSecretKey == "" {
		missing = append(missing, "FLUTTERWAVE_SECRET_KEY")
	}
	if c.PaypalClientID == "" {
		missing = append(missing, "PAYPAL_CLIENT_ID")
	}
	if c.PaypalClientSecret == "" {
		missing = append(missing, "PAYPAL_CLIENT_SECRET")
	}
	return missing
}
