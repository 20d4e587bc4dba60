package entity

import (
	"fmt"

	"ethiohomes/pkg/errors"
)

// ListingStatus is the lifecycle state of a property listing.
type ListingStatus string

const (
	ListingStatusPendingPayment ListingStatus = "pending_payment"
	ListingStatusPending        ListingStatus = "pending"
	ListingStatusApproved       ListingStatus = "approved"
	ListingStatusRejected       ListingStatus = "rejected"
	ListingStatusSold           ListingStatus = "sold"
)

// ReviewStatus is shared by guest submissions and role applications.
type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusRejected ReviewStatus = "rejected"
)

// PaymentStatus is the lifecycle state of a listing payment.
type PaymentStatus string

const (
	PaymentStatusAwaiting PaymentStatus = "awaiting_payment"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusRejected PaymentStatus = "rejected"
)

// Actions that move a record between statuses. Every state change in
// the review workflow goes through one of these; nothing writes a
// status string directly.
type StatusAction string

const (
	ActionApprove  StatusAction = "approve"
	ActionReject   StatusAction = "reject"
	ActionMarkSold StatusAction = "mark_sold"
)

var listingTransitions = map[ListingStatus]map[StatusAction]ListingStatus{
	ListingStatusPendingPayment: {
		ActionApprove: ListingStatusApproved,
		ActionReject:  ListingStatusRejected,
	},
	ListingStatusPending: {
		ActionApprove: ListingStatusApproved,
		ActionReject:  ListingStatusRejected,
	},
	ListingStatusApproved: {
		ActionMarkSold: ListingStatusSold,
	},
}

var reviewTransitions = map[ReviewStatus]map[StatusAction]ReviewStatus{
	ReviewStatusPending: {
		ActionApprove: ReviewStatusApproved,
		ActionReject:  ReviewStatusRejected,
	},
}

var paymentTransitions = map[PaymentStatus]map[StatusAction]PaymentStatus{
	PaymentStatusAwaiting: {
		ActionApprove: PaymentStatusApproved,
		ActionReject:  PaymentStatusRejected,
	},
}

// Transition returns the status that applying action to s yields, or a
// CONFLICT error when no such edge exists. Rejected, sold and approved
// records never move back to pending; resubmission means a new record.
func (s ListingStatus) Transition(action StatusAction) (ListingStatus, error) {
	if next, ok := listingTransitions[s][action]; ok {
		return next, nil
	}
	return "", errors.Conflict(
		fmt.Sprintf("cannot %s a listing with status %q", action, s), nil)
}

func (s ReviewStatus) Transition(action StatusAction) (ReviewStatus, error) {
	if next, ok := reviewTransitions[s][action]; ok {
		return next, nil
	}
	return "", errors.Conflict(
		fmt.Sprintf("cannot %s a record with status %q", action, s), nil)
}

func (s PaymentStatus) Transition(action StatusAction) (PaymentStatus, error) {
	if next, ok := paymentTransitions[s][action]; ok {
		return next, nil
	}
	return "", errors.Conflict(
		fmt.Sprintf("cannot %s a payment with status %q", action, s), nil)
}

// Editable reports whether the owner may still modify the listing.
// Approved and terminal listings are admin territory only.
func (s ListingStatus) Editable() bool {
	return s == ListingStatusPendingPayment || s == ListingStatusPending
}

func (s ListingStatus) Terminal() bool {
	return s == ListingStatusRejected || s == ListingStatusSold
}
