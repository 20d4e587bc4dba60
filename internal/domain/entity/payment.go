package entity

import (
	"time"
)

type Payment struct {
	ID         string `json:"id" firestore:"id"`
	PropertyID string `json:"property_id" firestore:"propertyId"`
	PayerID    string `json:"payer_id" firestore:"payerId"`
	Amount     int64  `json:"amount" firestore:"amount"`
	Method     string `json:"payment_method" firestore:"paymentMethod"`

	PayerName  string `json:"payer_name,omitempty" firestore:"payerName,omitempty"`
	PayerPhone string `json:"payer_phone,omitempty" firestore:"payerPhone,omitempty"`

	Status PaymentStatus `json:"status" firestore:"status"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// Payment methods. There is no gateway callback; an admin confirms
// receipt off-band and approves the payment by hand.
const (
	PaymentMethodCBE      = "cbe"
	PaymentMethodTelebirr = "telebirr"
)
