package dto

import (
	"customer-service/internal/domain/customer"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	emailPattern   = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)+$`)
	contactPattern = regexp.MustCompile(`^\+?[1-9][0-9]{6,14}$`)
)

const maxMiddleNameLength = 50

type CustomerRequest struct {
	GivenName     string `json:"givenName"`
	MiddleName    string `json:"middleName,omitempty"`
	FamilyName    string `json:"familyName"`
	EmailAddress  string `json:"emailAddress"`
	ContactNumber string `json:"contactNumber"`
}

// Validate checks every field and aggregates all complaints into a single
// comma-joined message, so a request with several bad fields gets one 400
// describing them all.
func (r *CustomerRequest) Validate() error {
	var complaints []string

	if strings.TrimSpace(r.GivenName) == "" {
		complaints = append(complaints, "givenName: Given name is required")
	}
	if len(r.MiddleName) > maxMiddleNameLength {
		complaints = append(complaints, fmt.Sprintf("middleName: Middle name must be at most %d characters", maxMiddleNameLength))
	}
	if strings.TrimSpace(r.FamilyName) == "" {
		complaints = append(complaints, "familyName: Family name is required")
	}
	if strings.TrimSpace(r.EmailAddress) == "" {
		complaints = append(complaints, "emailAddress: Email address is required")
	} else if !emailPattern.MatchString(strings.TrimSpace(r.EmailAddress)) {
		complaints = append(complaints, "emailAddress: Email address must be valid")
	}
	if err := ValidateContactNumber(r.ContactNumber); err != nil {
		complaints = append(complaints, err.Error())
	}

	if len(complaints) > 0 {
		return fmt.Errorf("%s", strings.Join(complaints, ", "))
	}
	return nil
}

// ValidateContactNumber is shared with the contact PATCH endpoint, which takes
// the number as a query parameter instead of a body field.
func ValidateContactNumber(contactNumber string) error {
	if strings.TrimSpace(contactNumber) == "" {
		return fmt.Errorf("contactNumber: Contact number is required")
	}
	if !contactPattern.MatchString(contactNumber) {
		return fmt.Errorf("contactNumber: Contact number must be 7 to 15 digits, optionally starting with +")
	}
	return nil
}

// ToEntity maps the wire shape to a domain customer. Identifiers are never
// copied from the request body; they are storage-assigned or path-supplied.
func (r *CustomerRequest) ToEntity() *customer.Customer {
	return customer.NewCustomer(r.GivenName, r.MiddleName, r.FamilyName, r.EmailAddress, r.ContactNumber)
}

type CustomerResponse struct {
	ID            string    `json:"id"`
	GivenName     string    `json:"givenName"`
	MiddleName    string    `json:"middleName,omitempty"`
	FamilyName    string    `json:"familyName"`
	EmailAddress  string    `json:"emailAddress"`
	ContactNumber string    `json:"contactNumber"`
	CreateDate    time.Time `json:"createDate"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func NewCustomerResponse(cust *customer.Customer) CustomerResponse {
	if cust == nil {
		return CustomerResponse{}
	}

	return CustomerResponse{
		ID:            cust.ID.String(),
		GivenName:     cust.GivenName,
		MiddleName:    cust.MiddleName,
		FamilyName:    cust.FamilyName,
		EmailAddress:  cust.EmailAddress,
		ContactNumber: cust.ContactNumber,
		CreateDate:    cust.CreateDate,
		UpdatedAt:     cust.UpdatedAt,
	}
}

// ErrorResponse is the uniform failure body rendered for every entry point.
type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
}
