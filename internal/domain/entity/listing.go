package entity

import (
	"time"
)

type ListingImage struct {
	ID           string `json:"id" firestore:"id"`
	URL          string `json:"url" firestore:"url"`
	DisplayOrder int    `json:"display_order" firestore:"displayOrder"`
}

type Listing struct {
	ID          string         `json:"id" firestore:"id"`
	OwnerID     string         `json:"owner_id" firestore:"ownerId"`
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

	City string `json:"city" firestore:"city"`
	Area string `json:"area" firestore:"area"`

	PhoneNumber    string `json:"phone_number" firestore:"phoneNumber"`
	WhatsappNumber string `json:"whatsapp_number" firestore:"whatsappNumber"`

	// Source records how the listing entered the system: created from
	// a broker/advertiser account, or materialized from an approved
	// guest submission.
	Source string `json:"source" firestore:"source"`

	Status     ListingStatus `json:"status" firestore:"status"`
	IsPremium  bool          `json:"is_premium" firestore:"isPremium"`
	IsFeatured bool          `json:"is_featured" firestore:"isFeatured"`

	Views     int       `json:"views" firestore:"views"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// Currencies accepted on a listing.
const (
	CurrencyETB = "ETB"
	CurrencyUSD = "USD"
)

const (
	SourceBroker = "broker"
	SourceGuest  = "guest"
)

// Property types: sale/rent variants of house, apartment, villa and
// shop, plus bare land.
var ListingTypes = []string{
	"house_sale", "house_rent",
	"apartment_sale", "apartment_rent",
	"villa_sale", "villa_rent",
	"shop_sale", "shop_rent",
	"land",
}

func IsValidListingType(t string) bool {
	for _, v := range ListingTypes {
		if v == t {
			return true
		}
	}
	return false
}
