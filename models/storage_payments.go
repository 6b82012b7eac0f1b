package models

import "log/slog"

func (db *Database) CreatePayment(payment *Payment) (*Payment, error) {
	if payment.PublicId == "" {
		payment.PublicId = NewPublicId()
	}
	if payment.Status == "" {
		payment.Status = PaymentStatusSucceeded
	}
	result := db.GormDB.Create(payment)
	if result.Error != nil {
		slog.Error("failed to create payment",
			"payerEmail", payment.PayerEmail,
			"policyId", payment.PolicyId,
			"error", result.Error)
		return nil, result.Error
	}
	slog.Info("payment recorded",
		"paymentId", payment.PublicId,
		"payerEmail", payment.PayerEmail,
		"policyId", payment.PolicyId,
		"amountCents", payment.AmountCents)
	return payment, nil
}

func (db *Database) GetPaymentsForPayer(email string) ([]Payment, error) {
	var payments []Payment
	err := db.GormDB.Where("payer_email = ?", email).
		Order("created_at desc").Find(&payments).Error
	if err != nil {
		slog.Error("error fetching payments for payer", "email", email, "error", err)
		return nil, err
	}
	return payments, nil
}

func (db *Database) ListPayments() ([]Payment, error) {
	var payments []Payment
	if err := db.GormDB.Order("created_at desc").Find(&payments).Error; err != nil {
		slog.Error("error listing payments", "error", err)
		return nil, err
	}
	return payments, nil
}
