package models

import (
	"time"
)

type ResourceRequest struct {
	ID             int       `json:"id"`
	ResourceID     int       `json:"resourceId"`
	ResourceTitle  string    `json:"resourceTitle"`
	RequesterID    int       `json:"requesterId"`
	RequesterName  string    `json:"requesterName"`
	OwnerID        int       `json:"ownerId"`
	OwnerName      string    `json:"ownerName"`
	Message        string    `json:"message"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
	PaymentType    string    `json:"paymentType"`
	PaymentDetails string    `json:"paymentDetails"`
	Status         string    `json:"status"`
	Version        int       `json:"version"`
	CreatedAt      time.Time `json:"createdAt"`
}

type PaymentType string

const (
	PaymentTypeMoney  PaymentType = "money"
	PaymentTypeBarter PaymentType = "barter"
)

func ValidPaymentType(paymentType string) bool {
	return paymentType == string(PaymentTypeMoney) || paymentType == string(PaymentTypeBarter)
}

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusApproved  RequestStatus = "approved"
	RequestStatusRejected  RequestStatus = "rejected"
	RequestStatusCancelled RequestStatus = "cancelled"
)

func ValidRequestStatus(status string) bool {
	switch RequestStatus(status) {
	case RequestStatusPending, RequestStatusApproved, RequestStatusRejected, RequestStatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether a request may move from one status to
// another. Writing the current status back is an idempotent no-op.
// Approved, rejected and cancelled are terminal.
func CanTransition(from, to RequestStatus) bool {
	if from == to {
		return true
	}
	if from != RequestStatusPending {
		return false
	}
	switch to {
	case RequestStatusApproved, RequestStatusRejected, RequestStatusCancelled:
		return true
	}
	return false
}

type CreateResourceRequestInput struct {
	ResourceID     int    `json:"resourceId"`
	Message        string `json:"message"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
	PaymentType    string `json:"paymentType"`
	PaymentDetails string `json:"paymentDetails"`
}

type UpdateRequestStatusInput struct {
	Status string `json:"status"`
}

// ParseRequestDate accepts RFC 3339 timestamps and bare calendar dates,
// which is what the date pickers on the client send.
func ParseRequestDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
