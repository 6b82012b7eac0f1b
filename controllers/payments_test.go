package controllers

import (
	"net/http"
	"testing"

	"github.com/MdRakibHossen917/life-nest-company-server/models"
	"github.com/stretchr/testify/assert"
)

func TestCreatePaymentIntent(t *testing.T) {
	teardownSuite, db, r, gateway := setupSuite(t)
	defer teardownSuite(t)

	policy, err := db.CreatePolicy(&models.Policy{Title: "Term Life", BasePremiumCents: 2500})
	assert.NoError(t, err)

	w := doRequest(r, "POST", "/payments/create-intent", "jane-token", map[string]any{"policyId": policy.PublicId})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, gateway.createdIntents)
	body := decodeBody(t, w)
	assert.Equal(t, "pi_test_secret", body["clientSecret"])

	// unknown policy never reaches the gateway
	w = doRequest(r, "POST", "/payments/create-intent", "jane-token", map[string]any{"policyId": models.NewPublicId()})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 1, gateway.createdIntents)
}

func TestRecordPaymentBumpsPurchaseCount(t *testing.T) {
	teardownSuite, db, r, _ := setupSuite(t)
	defer teardownSuite(t)

	policy, err := db.CreatePolicy(&models.Policy{Title: "Term Life", BasePremiumCents: 2500})
	assert.NoError(t, err)

	w := doRequest(r, "POST", "/payments", "jane-token", map[string]any{
		"policyId":      policy.PublicId,
		"transactionId": "pi_test",
		"amount":        2500,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	insertedId, _ := body["insertedId"].(string)
	assert.True(t, models.IsPublicId(insertedId))

	payments, err := db.GetPaymentsForPayer("jane@example.com")
	assert.NoError(t, err)
	assert.Len(t, payments, 1)
	assert.Equal(t, int64(2500), payments[0].AmountCents)

	fetched, err := db.GetPolicy(policy.PublicId)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), fetched.PurchaseCount)
}
