package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeListingFee(t *testing.T) {
	tests := []struct {
		propertyType string
		premium      bool
		want         int64
	}{
		{"house_rent", false, 25},
		{"apartment_rent", false, 25},
		{"house_sale", false, 50},
		{"villa_sale", false, 50},
		{"land", false, 50},
		{"house_rent", true, 125},
		{"shop_sale", true, 150},
		{"land", true, 150},
	}

	for _, tt := range tests {
		got := ComputeListingFee(tt.propertyType, tt.premium)
		assert.Equal(t, tt.want, got, "type=%s premium=%v", tt.propertyType, tt.premium)
	}
}
