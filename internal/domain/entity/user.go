package entity

import (
	"time"
)

type User struct {
	ID       string `json:"id" firestore:"id"`
	Email    string `json:"email" firestore:"email"`
	Username string `json:"username" firestore:"username"`
	Phone    string `json:"phone" firestore:"phone"`
	Role     string `json:"role" firestore:"role"`

	// BrokerStatus mirrors the user's role application status so
	// dashboards don't have to join against the applications
	// collection.
	BrokerStatus ReviewStatus `json:"broker_status,omitempty" firestore:"brokerStatus,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

const (
	RoleAdmin      = "admin"
	RoleBroker     = "broker"
	RoleAdvertiser = "advertiser"
	RoleUser       = "user"
)

// MainAdminUsername is the bootstrap admin account. It can never be
// edited, demoted or deleted, not even by another admin.
const MainAdminUsername = "admin"

func (u *User) IsMainAdmin() bool {
	return u.Username == MainAdminUsername
}
