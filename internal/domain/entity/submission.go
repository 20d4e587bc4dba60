package entity

import (
	"time"
)

// GuestSubmission is a property proposal from an unauthenticated
// visitor. On approval it is materialized into a Listing and keeps a
// back-reference to it.
type GuestSubmission struct {
	ID          string         `json:"id" firestore:"id"`
	Title       string         `json:"title" firestore:"title"`
	Description string         `json:"description" firestore:"description"`
	Price       int64          `json:"price" firestore:"price"`
	Currency    string         `json:"currency" firestore:"currency"`
	Type        string         `json:"type" firestore:"type"`
	Bedrooms    int            `json:"bedrooms,omitempty" firestore:"bedrooms,omitempty"`
	Bathrooms   int            `json:"bathrooms,omitempty" firestore:"bathrooms,omitempty"`
	Size        float64        `json:"size" firestore:"size"`
	Features    []string       `json:"features" firestore:"features"`
	Images      []ListingImage `json:"images" firestore:"images"`
	City        string         `json:"city" firestore:"city"`
	Area        string         `json:"area" firestore:"area"`

	GuestName     string `json:"guest_name" firestore:"guestName"`
	GuestPhone    string `json:"guest_phone" firestore:"guestPhone"`
	GuestWhatsapp string `json:"guest_whatsapp" firestore:"guestWhatsapp"`

	Status          ReviewStatus `json:"property_status" firestore:"propertyStatus"`
	RejectionReason string       `json:"rejection_reason,omitempty" firestore:"rejectionReason,omitempty"`
	PropertyID      string       `json:"property_id,omitempty" firestore:"propertyId,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
