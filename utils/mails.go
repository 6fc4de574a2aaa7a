package utils

import (
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// SendMail sends an HTML email through the configured SMTP relay.
// Failures are logged, not returned: mail delivery must never block the
// request that triggered it.
func SendMail(email string, subject string, htmlBody string) {
	sender := os.Getenv("SMTP_SENDER")
	if sender == "" {
		sender = "no-reply@ekoclub.org"
	}

	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}

	m := gomail.NewMessage()
	m.SetHeader("From", sender)
	m.SetHeader("To", email)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(
		os.Getenv("SMTP_HOST"),
		port,
		os.Getenv("SMTP_USER"),
		os.Getenv("SMTP_PASS"),
	)

	if err := d.DialAndSend(m); err != nil {
		LogError(err, "Failed to send email to "+email)
		return
	}

	LogSuccess("Email sent to " + email)
}
