package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/arsh077/Khurak-new-application/database"
	"github.com/arsh077/Khurak-new-application/logger"
	"github.com/arsh077/Khurak-new-application/middleware"
	"github.com/arsh077/Khurak-new-application/models"
	"github.com/arsh077/Khurak-new-application/payment"
)

type otpRequest struct {
	Phone string `json:"phone" binding:"required"`
}

// RequestOTP pretends to send a code. The demo gateway accepts only the
// fixed code, so nothing is actually delivered.
func RequestOTP(c *gin.Context) {
	var req otpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Phone) < 4 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid phone number"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sent": true})
}

type verifyOTPRequest struct {
	Phone string `json:"phone" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

// VerifyOTP checks the submitted code.
func VerifyOTP(c *gin.Context) {
	var req verifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := payment.VerifyOTP(req.Code); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid otp"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"verified": true})
}

// GetPlans lists the purchasable plans and prices.
func GetPlans(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"plans": []gin.H{
			{"plan": models.PlanMonthly, "price": payment.MonthlyPrice},
			{"plan": models.PlanLifetime, "price": payment.LifetimePrice},
		},
	})
}

type captureRequest struct {
	Phone  string               `json:"phone" binding:"required"`
	Code   string               `json:"code" binding:"required"`
	Method models.PaymentMethod `json:"method" binding:"required"`
	Plan   models.Plan          `json:"plan" binding:"required"`
}

// CapturePayment runs the simulated purchase: OTP check, capture,
// record persistence.
func CapturePayment(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req captureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := payment.VerifyOTP(req.Code); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid otp"})
		return
	}

	record, err := payment.Capture(userID, req.Phone, req.Method, req.Plan, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := database.DB.Create(&record).Error; err != nil {
		logger.Error("failed to save payment", zap.Uint("user", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record payment"})
		return
	}

	logger.Info("payment captured",
		zap.Uint("user", userID),
		zap.String("plan", string(req.Plan)),
		zap.Int("amount", record.AmountPaid))
	c.JSON(http.StatusCreated, record)
}

// RefundEligibility reports what a refund request would credit today.
// It is informational; no money moves and IsRefunded never flips.
func RefundEligibility(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var record models.PaymentRecord
	if err := database.DB.Where("user_id = ?", userID).
		Order("payment_date desc").First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no payment on record"})
			return
		}
		logger.Error("failed to load payment", zap.Uint("user", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load payment"})
		return
	}

	eligibility := payment.RefundEligibility(record, time.Now())
	c.JSON(http.StatusOK, gin.H{
		"transaction_id": record.TransactionID,
		"eligibility":    eligibility,
		"refund_amount":  payment.RefundAmount(record, eligibility),
	})
}
