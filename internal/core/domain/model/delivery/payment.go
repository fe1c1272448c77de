package delivery

import (
	"fmt"

	"mtaani/internal/pkg/errs"
)

// PaymentMethod is how the customer pays for a delivery.
type PaymentMethod int

const (
	// PaymentMethodUnknown catches uninitialized values. Always invalid.
	PaymentMethodUnknown PaymentMethod = iota
	// PaymentCash is paid to the rider on delivery.
	PaymentCash
	// PaymentCard is a card charge handled by the payments layer.
	PaymentCard
	// PaymentMobileMoney is a mobile wallet transfer.
	PaymentMobileMoney
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentCash:        "cash",
		PaymentCard:        "card",
		PaymentMobileMoney: "mobile_money",
	}
}

// PaymentMethodFromString parses a persisted payment-method label.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, label := range getPaymentMethodStrings() {
		if label == s {
			return method, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentMethod", fmt.Errorf("%q is not a known payment method", s))
}

// String returns the persisted label of the payment method.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the method is one of the defined values.
func (m PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentMethod", fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// PaymentStatus tracks whether the fare has been settled. Capture itself is
// an external concern; the engine only flips pending to paid on delivery.
type PaymentStatus int

const (
	// PaymentStatusUnknown catches uninitialized values. Always invalid.
	PaymentStatusUnknown PaymentStatus = iota
	// PaymentPending means the fare has not been settled yet.
	PaymentPending
	// PaymentPaid means the fare was settled (set on delivery).
	PaymentPaid
	// PaymentFailed means settlement failed downstream.
	PaymentFailed
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentPending: "pending",
		PaymentPaid:    "paid",
		PaymentFailed:  "failed",
	}
}

// PaymentStatusFromString parses a persisted payment-status label.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, label := range getPaymentStatusStrings() {
		if label == s {
			return status, nil
		}
	}
	return PaymentStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentStatus", fmt.Errorf("%q is not a known payment status", s))
}

// String returns the persisted label of the payment status.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the status is one of the defined values.
func (s PaymentStatus) Validate() error {
	if _, ok := getPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentStatus", fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}
