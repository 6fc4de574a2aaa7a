package payments

import (
	"fmt"
	"time"

	"ekoclub-backend/db"
	"ekoclub-backend/models"
	"ekoclub-backend/utils"

	"gorm.io/gorm"
)

// BillingDetail is the per-subscription outcome of one sweep.
type BillingDetail struct {
	SubscriptionID       string `json:"subscriptionId"`
	Status               string `json:"status"`
	TransactionReference string `json:"transactionReference,omitempty"`
	Error                string `json:"error,omitempty"`
}

// BillingReport aggregates one sweep. It is returned to the caller and not
// persisted; processed + failed equals the number of due subscriptions
// scanned.
type BillingReport struct {
	Processed int             `json:"processed"`
	Failed    int             `json:"failed"`
	Details   []BillingDetail `json:"details"`
}

// Processor runs one billing sweep over the due subscriptions. Items are
// handled sequentially; a failure on one never aborts the rest.
type Processor struct {
	gateways Gateways
	now      func() time.Time
}

// Default is the processor wired at startup, reading the global DB like the
// rest of the handlers.
var Default *Processor

// Init builds the default processor from the injected gateway configuration.
func Init(cfg Config) {
	Default = NewProcessor(NewGateways(cfg))
}

func NewProcessor(gateways Gateways) *Processor {
	return &Processor{
		gateways: gateways,
		now:      time.Now,
	}
}

// Run scans subscriptions with status active and nextBillingDate in the past
// and attempts to charge each one. A failure to load the due subscriptions
// aborts the whole sweep; everything after that is isolated per item.
func (p *Processor) Run() (*BillingReport, error) {
	now := p.now()

	var due []models.Subscription
	err := db.DB.Where("status = ? AND next_billing_date <= ?", models.SubscriptionActive, now).
		Find(&due).Error
	if err != nil {
		return nil, err
	}

	report := &BillingReport{Details: []BillingDetail{}}

	for i := range due {
		sub := &due[i]

		reference, err := p.chargeOne(sub, now)
		if err != nil {
			utils.LogError(err, "Recurring charge failed for subscription "+sub.ID)
			report.Failed++
			report.Details = append(report.Details, BillingDetail{
				SubscriptionID: sub.ID,
				Status:         "failed",
				Error:          err.Error(),
			})
			continue
		}

		report.Processed++
		report.Details = append(report.Details, BillingDetail{
			SubscriptionID:       sub.ID,
			Status:               "success",
			TransactionReference: reference,
		})
	}

	utils.LogSuccess(fmt.Sprintf("Billing sweep finished: %d processed, %d failed", report.Processed, report.Failed))
	return report, nil
}

// chargeOne dispatches to the gateway for the stored payment method and, on
// success, records the payment and advances the billing dates in a single
// transaction so a crash cannot separate the two writes.
func (p *Processor) chargeOne(sub *models.Subscription, now time.Time) (string, error) {
	gateway, ok := p.gateways[sub.PaymentMethod]
	if !ok {
		return "", fmt.Errorf("unsupported payment method: %s", sub.PaymentMethod)
	}

	reference, err := gateway.Charge(sub)
	if err != nil {
		return "", err
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		payment := models.Payment{
			Name:                 sub.Name,
			Email:                sub.Email,
			Amount:               sub.Amount,
			Currency:             sub.Currency,
			PaymentMethod:        sub.PaymentMethod,
			TransactionReference: reference,
			Status:               "success",
			DonationType:         models.DonationRecurring,
			SubscriptionID:       &sub.ID,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		return tx.Model(&models.Subscription{}).Where("id = ?", sub.ID).Updates(map[string]interface{}{
			"last_billing_date": now,
			"next_billing_date": now.AddDate(0, 1, 0),
		}).Error
	})
	if err != nil {
		return "", fmt.Errorf("charge succeeded but recording it failed: %v", err)
	}

	return reference, nil
}
