// Package payment simulates the subscription purchase flow (OTP, plan
// selection, capture) and holds the pure refund-eligibility rule. No real
// gateway is involved: the OTP is a fixed demo code and captures always
// succeed after validation.
package payment

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/arsh077/Khurak-new-application/models"
)

var (
	ErrInvalidOTP   = errors.New("payment: invalid otp")
	ErrInvalidPhone = errors.New("payment: invalid phone number")
	ErrUnknownPlan  = errors.New("payment: unknown plan")
)

// DemoOTP is the only accepted code; there is no delivery channel.
const DemoOTP = "1234"

// Plan prices in rupees.
const (
	MonthlyPrice  = 399
	LifetimePrice = 3999
)

// refundWindowDays is the full-refund window for any plan.
const refundWindowDays = 7

// Eligibility classifies a refund request.
type Eligibility string

const (
	RefundFull            Eligibility = "full"
	RefundPartialLifetime Eligibility = "partial_lifetime"
	RefundNone            Eligibility = "none"
)

// VerifyOTP checks the submitted code against the demo code.
func VerifyOTP(code string) error {
	if code != DemoOTP {
		return ErrInvalidOTP
	}
	return nil
}

// Amount returns the price of a plan.
func Amount(plan models.Plan) (int, error) {
	switch plan {
	case models.PlanMonthly:
		return MonthlyPrice, nil
	case models.PlanLifetime:
		return LifetimePrice, nil
	default:
		return 0, ErrUnknownPlan
	}
}

// LoginID derives the warrior login id from the phone's last four digits
// and the plan, e.g. WARRIOR_1234_MTH.
func LoginID(phone string, plan models.Plan) (string, error) {
	if len(phone) < 4 {
		return "", ErrInvalidPhone
	}
	suffix := "LFT"
	if plan == models.PlanMonthly {
		suffix = "MTH"
	}
	return fmt.Sprintf("WARRIOR_%s_%s", phone[len(phone)-4:], suffix), nil
}

// Capture simulates a successful payment and returns the record to
// persist. IsRefunded starts false and never transitions.
func Capture(userID uint, phone string, method models.PaymentMethod, plan models.Plan, now time.Time) (models.PaymentRecord, error) {
	amount, err := Amount(plan)
	if err != nil {
		return models.PaymentRecord{}, err
	}
	loginID, err := LoginID(phone, plan)
	if err != nil {
		return models.PaymentRecord{}, err
	}
	switch method {
	case models.MethodRazorpay, models.MethodPhonePe, models.MethodGPay:
	default:
		return models.PaymentRecord{}, fmt.Errorf("payment: unknown method %q", method)
	}
	return models.PaymentRecord{
		UserID:        userID,
		TransactionID: uuid.NewString(),
		LoginID:       loginID,
		PaymentDate:   now.UnixMilli(),
		AmountPaid:    amount,
		Method:        method,
		Plan:          plan,
		IsRefunded:    false,
	}, nil
}

// RefundEligibility applies the refund policy: 100% within 7 days of
// payment on any plan; 50% anytime on the lifetime plan; otherwise none.
// daysSince uses whole elapsed days (floor).
func RefundEligibility(rec models.PaymentRecord, now time.Time) Eligibility {
	daysSince := (now.UnixMilli() - rec.PaymentDate) / 86400000
	if daysSince <= refundWindowDays {
		return RefundFull
	}
	if rec.Plan == models.PlanLifetime {
		return RefundPartialLifetime
	}
	return RefundNone
}

// RefundAmount returns the rupee amount a request of the given
// eligibility would credit.
func RefundAmount(rec models.PaymentRecord, e Eligibility) int {
	switch e {
	case RefundFull:
		return rec.AmountPaid
	case RefundPartialLifetime:
		return rec.AmountPaid / 2
	default:
		return 0
	}
}
