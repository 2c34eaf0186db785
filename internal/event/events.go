package event

import (
	"time"

	"github.com/google/uuid"
)

type CustomerEventPayload struct {
	CustomerID    uuid.UUID `json:"customerId"`
	GivenName     string    `json:"givenName"`
	MiddleName    string    `json:"middleName,omitempty"`
	FamilyName    string    `json:"familyName"`
	EmailAddress  string    `json:"emailAddress"`
	ContactNumber string    `json:"contactNumber"`
	CreateDate    time.Time `json:"createDate"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type CustomerCreatedEvent struct {
	Timestamp time.Time            `json:"timestamp"`
	Payload   CustomerEventPayload `json:"payload"`
}

type CustomerUpdatedEvent struct {
	Timestamp time.Time            `json:"timestamp"`
	Payload   CustomerEventPayload `json:"payload"`
}

type CustomerDeletedEvent struct {
	Timestamp  time.Time `json:"timestamp"`
	CustomerID uuid.UUID `json:"customerId"`
}
