package entity

import "strings"

// Listing fees in whole birr. Collection is manual (bank transfer or
// Telebirr, confirmed by an admin), so these amounts are quotes only.
const (
	rentListingFee   = 25
	saleListingFee   = 50
	premiumSurcharge = 100
)

// ComputeListingFee returns the listing fee for a property type.
// Rentals pay the reduced base fee; sales and land pay the full one.
func ComputeListingFee(propertyType string, premium bool) int64 {
	fee := int64(saleListingFee)
	if strings.Contains(propertyType, "rent") {
		fee = rentListingFee
	}
	if premium {
		fee += premiumSurcharge
	}
	return fee
}
