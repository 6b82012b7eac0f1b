package controllers

import (
	"net/http"
	"strconv"

	"github.com/MdRakibHossen917/life-nest-company-server/apierror"
	"github.com/MdRakibHossen917/life-nest-company-server/models"
	"github.com/MdRakibHossen917/life-nest-company-server/segment"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// CreatePaymentIntent asks the payment gateway for an intent covering the
// policy's base premium. The client confirms the intent with the gateway
// directly and then records the completed payment via RecordPayment.
func (ctrl *Controller) CreatePaymentIntent(c *gin.Context) {
	type IntentRequest struct {
		PolicyId string `json:"policyId"`
	}
	var request IntentRequest
	if err := c.BindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error binding JSON"})
		return
	}
	if !models.IsPublicId(request.PolicyId) {
		apierror.Respond(c, apierror.New(apierror.NotFound, "Policy not found"))
		return
	}

	policy, err := ctrl.DB.GetPolicy(request.PolicyId)
	if err != nil {
		apierror.Respond(c, apierror.Wrap(apierror.Unavailable, "Error fetching policy", err))
		return
	}
	if policy == nil {
		apierror.Respond(c, apierror.New(apierror.NotFound, "Policy not found"))
		return
	}

	currency := ctrl.Config.GetString("payment_currency")
	intent, err := ctrl.Payments.CreateIntent(policy.BasePremiumCents, currency, principalEmail(c))
	if err != nil {
		apierror.Respond(c, apierror.Wrap(apierror.Unavailable, "Payment gateway error", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "clientSecret": intent.ClientSecret, "intentId": intent.Id})
}

// RecordPayment stores a gateway-confirmed payment and bumps the policy's
// purchase counter. The two writes are independent, so they are dispatched
// concurrently.
func (ctrl *Controller) RecordPayment(c *gin.Context) {
	type PaymentRequest struct {
		PolicyId      string `json:"policyId"`
		ApplicationId string `json:"applicationId"`
		TransactionId string `json:"transactionId"`
		AmountCents   int64  `json:"amount"`
	}
	var request PaymentRequest
	if err := c.BindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error binding JSON"})
		return
	}

	payment := &models.Payment{
		PolicyId:         request.PolicyId,
		ApplicationId:    request.ApplicationId,
		PayerEmail:       principalEmail(c),
		AmountCents:      request.AmountCents,
		Currency:         ctrl.Config.GetString("payment_currency"),
		ProviderIntentId: request.TransactionId,
	}

	var eg errgroup.Group
	eg.Go(func() error {
		_, err := ctrl.DB.CreatePayment(payment)
		return err
	})
	eg.Go(func() error {
		return ctrl.DB.IncrementPolicyPurchases(request.PolicyId)
	})
	if err := eg.Wait(); err != nil {
		apierror.Respond(c, apierror.Wrap(apierror.Unavailable, "Failed to record payment", err))
		return
	}

	segment.Track(payment.PayerEmail, "Payment Recorded", map[string]string{
		"policyId":    payment.PolicyId,
		"amountCents": strconv.FormatInt(payment.AmountCents, 10),
	})
	c.JSON(http.StatusOK, gin.H{"success": true, "insertedId": payment.PublicId})
}

func (ctrl *Controller) GetMyPayments(c *gin.Context) {
	payments, err := ctrl.DB.GetPaymentsForPayer(principalEmail(c))
	if err != nil {
		apierror.Respond(c, apierror.Wrap(apierror.Unavailable, "Error fetching payments", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "payments": payments})
}

func (ctrl *Controller) ListTransactions(c *gin.Context) {
	payments, err := ctrl.DB.ListPayments()
	if err != nil {
		apierror.Respond(c, apierror.Wrap(apierror.Unavailable, "Error listing payments", err))
		return
	}
	totalCents := lo.SumBy(payments, func(p models.Payment) int64 { return p.AmountCents })
	c.JSON(http.StatusOK, gin.H{"success": true, "payments": payments, "totalAmount": totalCents})
}
