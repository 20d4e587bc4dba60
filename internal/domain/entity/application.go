package entity

import (
	"time"
)

// RoleApplication is a request to upgrade a User's role to broker or
// advertiser. Approval flips the user's role; deleting an application
// cascades to the user account and every listing that user owns.
type RoleApplication struct {
	ID     string `json:"id" firestore:"id"`
	UserID string `json:"user_id" firestore:"userId"`
	Type   string `json:"type" firestore:"type"`

	FullName      string `json:"full_name" firestore:"fullName"`
	Phone         string `json:"phone" firestore:"phone"`
	BusinessName  string `json:"business_name" firestore:"businessName"`
	LicenseNumber string `json:"license_number,omitempty" firestore:"licenseNumber,omitempty"`
	City          string `json:"city" firestore:"city"`

	Status          ReviewStatus `json:"status" firestore:"status"`
	RejectionReason string       `json:"rejection_reason,omitempty" firestore:"rejectionReason,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

const (
	ApplicationTypeBroker     = "broker"
	ApplicationTypeAdvertiser = "advertiser"
)

// GrantedRole maps the application type to the role an approval grants.
func (a *RoleApplication) GrantedRole() string {
	if a.Type == ApplicationTypeAdvertiser {
		return RoleAdvertiser
	}
	return RoleBroker
}
