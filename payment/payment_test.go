package payment

import (
	"errors"
	"testing"
	"time"

	"github.com/arsh077/Khurak-new-application/models"
)

func recordAgedDays(plan models.Plan, days int, now time.Time) models.PaymentRecord {
	return models.PaymentRecord{
		Plan:        plan,
		AmountPaid:  3999,
		PaymentDate: now.AddDate(0, 0, -days).UnixMilli(),
	}
}

func TestRefundEligibility(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name string
		plan models.Plan
		days int
		want Eligibility
	}{
		{"monthly within window", models.PlanMonthly, 6, RefundFull},
		{"monthly outside window", models.PlanMonthly, 8, RefundNone},
		{"lifetime within window", models.PlanLifetime, 6, RefundFull},
		{"lifetime outside window", models.PlanLifetime, 8, RefundPartialLifetime},
		{"lifetime ancient", models.PlanLifetime, 400, RefundPartialLifetime},
		{"monthly same day", models.PlanMonthly, 0, RefundFull},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := recordAgedDays(tc.plan, tc.days, now)
			if got := RefundEligibility(rec, now); got != tc.want {
				t.Errorf("RefundEligibility = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestRefundAmount(t *testing.T) {
	rec := models.PaymentRecord{AmountPaid: 3999}
	if got := RefundAmount(rec, RefundFull); got != 3999 {
		t.Errorf("full refund = %d, want 3999", got)
	}
	if got := RefundAmount(rec, RefundPartialLifetime); got != 1999 {
		t.Errorf("partial refund = %d, want 1999", got)
	}
	if got := RefundAmount(rec, RefundNone); got != 0 {
		t.Errorf("none refund = %d, want 0", got)
	}
}

func TestVerifyOTP(t *testing.T) {
	if err := VerifyOTP("1234"); err != nil {
		t.Errorf("demo code rejected: %v", err)
	}
	if err := VerifyOTP("0000"); !errors.Is(err, ErrInvalidOTP) {
		t.Errorf("err = %v, want ErrInvalidOTP", err)
	}
}

func TestLoginID(t *testing.T) {
	id, err := LoginID("9876543210", models.PlanMonthly)
	if err != nil {
		t.Fatalf("LoginID: %v", err)
	}
	if id != "WARRIOR_3210_MTH" {
		t.Errorf("LoginID = %q, want WARRIOR_3210_MTH", id)
	}
	id, _ = LoginID("9876543210", models.PlanLifetime)
	if id != "WARRIOR_3210_LFT" {
		t.Errorf("LoginID = %q, want WARRIOR_3210_LFT", id)
	}
	if _, err := LoginID("91", models.PlanMonthly); !errors.Is(err, ErrInvalidPhone) {
		t.Errorf("short phone err = %v, want ErrInvalidPhone", err)
	}
}

func TestCapture(t *testing.T) {
	now := time.Now()
	rec, err := Capture(7, "9876543210", models.MethodGPay, models.PlanLifetime, now)
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if rec.AmountPaid != LifetimePrice {
		t.Errorf("AmountPaid = %d, want %d", rec.AmountPaid, LifetimePrice)
	}
	if rec.TransactionID == "" {
		t.Error("TransactionID empty")
	}
	if rec.IsRefunded {
		t.Error("IsRefunded = true at capture")
	}
	if rec.PaymentDate != now.UnixMilli() {
		t.Errorf("PaymentDate = %d, want %d", rec.PaymentDate, now.UnixMilli())
	}

	if _, err := Capture(7, "9876543210", "paypal", models.PlanMonthly, now); err == nil {
		t.Error("unknown method accepted")
	}
	if _, err := Capture(7, "9876543210", models.MethodGPay, "weekly", now); !errors.Is(err, ErrUnknownPlan) {
		t.Errorf("unknown plan err = %v, want ErrUnknownPlan", err)
	}
}
