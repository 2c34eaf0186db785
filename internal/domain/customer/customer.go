package customer

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	ID            uuid.UUID `json:"id"`
	GivenName     string    `json:"givenName"`
	MiddleName    string    `json:"middleName,omitempty"`
	FamilyName    string    `json:"familyName"`
	EmailAddress  string    `json:"emailAddress"`
	ContactNumber string    `json:"contactNumber"`
	CreateDate    time.Time `json:"createDate"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func NewCustomer(givenName, middleName, familyName, emailAddress, contactNumber string) *Customer {
	return &Customer{
		GivenName:     givenName,
		MiddleName:    middleName,
		FamilyName:    familyName,
		EmailAddress:  NormalizeEmail(emailAddress),
		ContactNumber: contactNumber,
	}
}

// NormalizeEmail returns the canonical form used for uniqueness comparison
// and storage: surrounding whitespace removed, letters lower-cased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ApplyUpdate overwrites every mutable field from the replacement record.
// The identifier and creation timestamp are never touched.
func (c *Customer) ApplyUpdate(replacement *Customer) {
	c.GivenName = replacement.GivenName
	c.MiddleName = replacement.MiddleName
	c.FamilyName = replacement.FamilyName
	c.EmailAddress = replacement.EmailAddress
	c.ContactNumber = replacement.ContactNumber
	c.UpdatedAt = time.Now()
}
