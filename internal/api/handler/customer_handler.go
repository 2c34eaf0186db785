package handler

import (
	"customer-service/internal/api/handler/dto"
	"customer-service/internal/domain/customer"
	"customer-service/internal/pkg/apperrors"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// allowedMethods is the complete fixed set of operations the /customers
// resource supports, advertised by the OPTIONS capability probe.
const allowedMethods = "GET, POST, PUT, PATCH, DELETE, HEAD, OPTIONS"

type CustomerHandler struct {
	service customer.CustomerService
	logger  *slog.Logger
}

func NewCustomerHandler(s customer.CustomerService, l *slog.Logger) *CustomerHandler {
	if s == nil {
		panic("customer service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &CustomerHandler{
		service: s,
		logger:  l.With("component", "CustomerHandler"),
	}
}

func getCustomerIDFromURL(r *http.Request) (uuid.UUID, error) {
	idStr := chi.URLParam(r, "customerID")
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%w: customerID not found in URL path", apperrors.ErrInvalidArgument)
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid customerID format in URL path: %s", apperrors.ErrInvalidArgument, idStr)
	}
	return id, nil
}

// ListCustomers handles GET /customers
// @Summary List all customers
// @Description Retrieves all customers, empty array when none exist.
// @Tags Customers
// @Produce json
// @Success 200 {array} dto.CustomerResponse "List of customers"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /customers [get]
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Received list customers request")

	customers, err := h.service.ListCustomers(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to list customers", slog.Any("error", err))
		respondError(w, r, err)
		return
	}

	resp := make([]dto.CustomerResponse, len(customers))
	for i, cust := range customers {
		resp[i] = dto.NewCustomerResponse(cust)
	}

	h.logger.InfoContext(r.Context(), "Customers listed successfully", slog.Int("count", len(resp)))
	respondJSON(w, http.StatusOK, resp)
}

// GetCustomer handles GET /customers/{customerID}
// @Summary Retrieve customer details
// @Description Retrieves details for a specific customer by their ID.
// @Tags Customers
// @Produce json
// @Param customerID path string true "Customer ID (UUID)"
// @Success 200 {object} dto.CustomerResponse "Customer details retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid customer ID format"
// @Failure 404 "Customer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /customers/{customerID} [get]
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromURL(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get customer ID from URL", slog.Any("error", err))
		respondError(w, r, err)
		return
	}

	h.logger.DebugContext(r.Context(), "Received get customer request")

	domainCustomer, err := h.service.GetCustomer(r.Context(), customerID)
	if err != nil {
		if errors.Is(err, customer.ErrNotFound) {
			h.logger.InfoContext(r.Context(), "Customer not found", slog.String("customerID", customerID.String()))
			w.WriteHeader(http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(r.Context(), "Service failed to get customer", slog.Any("error", err))
		respondError(w, r, err)
		return
	}

	resp := dto.NewCustomerResponse(domainCustomer)
	h.logger.InfoContext(r.Context(), "Customer retrieved successfully")
	respondJSON(w, http.StatusOK, resp)
}

// SearchCustomerByEmail handles GET /customers/search?email=
// @Summary Find customer by email address
// @Description Retrieves the customer owning the given email address. The lookup uses the normalized (trimmed, lower-cased) form.
// @Tags Customers
// @Produce json
// @Param email query string true "Email address to search for"
// @Success 200 {object} dto.CustomerResponse "Customer details retrieved"
// @Failure 400 {object} dto.ErrorResponse "Missing email query parameter"
// @Failure 404 "No customer owns this email address"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /customers/search [get]
func (h *CustomerHandler) SearchCustomerByEmail(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Received search customer by email request")

	email := r.URL.Query().Get("email")
	if strings.TrimSpace(email) == "" {
		h.logger.WarnContext(r.Context(), "Missing email query parameter")
		respondError(w, r, fmt.Errorf("%w: missing required query parameter 'email'", apperrors.ErrInvalidArgument))
		return
	}

	domainCustomer, err := h.service.GetCustomerByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, customer.ErrNotFound) {
			h.logger.InfoContext(r.Context(), "Customer not found for email")
			w.WriteHeader(http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(r.Context(), "Service failed to find customer by email", slog.Any("error", err))
		respondError(w, r, err)
		return
	}

	resp := dto.NewCustomerResponse(domainCustomer)
	h.logger.InfoContext(r.Context(), "Customer found successfully by email", slog.String("customerID", resp.ID))
	respondJSON(w, http.StatusOK, resp)
}

// CreateCustomer handles POST /customers
// @Summary Create a new customer
// @Description Creates a customer; the email address is normalized and must be unique across all customers.
// @Tags Customers
// @Accept json
// @Produce json
// @Param request body dto.CustomerRequest true "Customer creation request"
// @Success 201 {object} dto.CustomerResponse "Customer successfully created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload"
// @Failure 409 {object} dto.ErrorResponse "Email address already in use"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /customers [post]
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Received create customer request")

	var req dto.CustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, r, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		h.logger.WarnContext(r.Context(), "Request validation failed", slog.Any("error", err))
		respondError(w, r, fmt.Errorf("%w: %v", apperrors.ErrValidation, err))
		return
	}
	h.logger.DebugContext(r.Context(), "Request validation passed")

	createdCustomer, err := h.service.CreateCustomer(r.Context(), req.ToEntity())
	if err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, customer.ErrDuplicateEmail) {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "Service failed to create customer", slog.Any("error", err))
		respondError(w, r, err)
		return
	}

	resp := dto.NewCustomerResponse(createdCustomer)
	h.logger.InfoContext(r.Context(), "Customer created successfully", slog.String("customerID", resp.ID))
	w.Header().Set("Location", "/customers/"+resp.ID)
	respondJSON(w, http.StatusCreated, resp)
}

// UpdateCustomer handles PUT /customers/{customerID}
// @Summary Replace an existing customer
// @Description Full-record replace of all mutable fields; the identifier never changes.
// @Tags Customers
// @Accept json
// @Produce json
// @Param customerID path string true "Customer ID (UUID)"
// @Param request body dto.CustomerRequest true "Replacement payload"
// @Success 200 {object} dto.CustomerResponse "Customer successfully updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid customer ID or request payload"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Failure 409 {object} dto.ErrorResponse "Email address already owned by another customer"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /customers/{customerID} [put]
func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromURL(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get customer ID from URL", slog.Any("error", err))
		respondError(w, r, err)
		return
	}

	h.logger.DebugContext(r.Context(), "Received update customer request")

	var req dto.CustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, r, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		h.logger.WarnContext(r.Context(), "Request validation failed", slog.Any("error", err))
		respondError(w, r, fmt.Errorf("%w: %v", apperrors.ErrValidation, err))
		return
	}
	h.logger.DebugContext(r.Context(), "Request validation passed")

	updatedCustomer, err := h.service.UpdateCustomer(r.Context(), customerID, req.ToEntity())
	if err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, customer.ErrNotFound) && !errors.Is(err, customer.ErrDuplicateEmail) {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "Service failed to update customer", slog.Any("error", err))
		respondError(w, r, err)
		return
	}

	resp := dto.NewCustomerResponse(updatedCustomer)
	h.logger.InfoContext(r.Context(), "Customer updated successfully", slog.String("customerID", resp.ID))
	respondJSON(w, http.StatusOK, resp)
}

// UpdateContactNumber handles PATCH /customers/{customerID}/contact?contactNumber=
// @Summary Partially update a customer's contact number
// @Description Changes only the contact number, leaving every other field untouched, by delegating to the full update.
// @Tags Customers
// @Produce json
// @Param customerID path string true "Customer ID (UUID)"
// @Param contactNumber query string true "New contact number (7 to 15 digits, optionally starting with +)"
// @Success 200 {object} dto.CustomerResponse "Contact number updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid customer ID or contact number"
// @Failure 404 "Customer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /customers/{customerID}/contact [patch]
func (h *CustomerHandler) UpdateContactNumber(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromURL(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get customer ID from URL", slog.Any("error", err))
		respondError(w, r, err)
		return
	}

	h.logger.DebugContext(r.Context(), "Received update contact number request")

	contactNumber := r.URL.Query().Get("contactNumber")
	if err := dto.ValidateContactNumber(contactNumber); err != nil {
		h.logger.WarnContext(r.Context(), "Contact number validation failed", slog.Any("error", err))
		respondError(w, r, fmt.Errorf("%w: %v", apperrors.ErrValidation, err))
		return
	}

	existing, err := h.service.GetCustomer(r.Context(), customerID)
	if err != nil {
		if errors.Is(err, customer.ErrNotFound) {
			h.logger.InfoContext(r.Context(), "Customer not found for contact update", slog.String("customerID", customerID.String()))
			w.WriteHeader(http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(r.Context(), "Service failed to fetch customer for contact update", slog.Any("error", err))
		respondError(w, r, err)
		return
	}

	replacement := *existing
	replacement.ContactNumber = contactNumber

	updatedCustomer, err := h.service.UpdateCustomer(r.Context(), customerID, &replacement)
	if err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, customer.ErrNotFound) {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "Service failed to update contact number", slog.Any("error", err))
		respondError(w, r, err)
		return
	}

	resp := dto.NewCustomerResponse(updatedCustomer)
	h.logger.InfoContext(r.Context(), "Contact number updated successfully", slog.String("customerID", resp.ID))
	respondJSON(w, http.StatusOK, resp)
}

// DeleteCustomer handles DELETE /customers/{customerID}
// @Summary Delete a customer
// @Description Permanently removes a customer record.
// @Tags Customers
// @Produce json
// @Param customerID path string true "Customer ID (UUID)"
// @Success 204 "Customer successfully deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid customer ID"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /customers/{customerID} [delete]
func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromURL(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get customer ID from URL", slog.Any("error", err))
		respondError(w, r, err)
		return
	}

	h.logger.DebugContext(r.Context(), "Received delete customer request")

	if err := h.service.DeleteCustomer(r.Context(), customerID); err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, customer.ErrNotFound) {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "Service failed to delete customer", slog.Any("error", err))
		respondError(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Customer deleted successfully")
	respondJSON(w, http.StatusNoContent, nil)
}

// CheckCustomerExists handles HEAD /customers/{customerID}
// @Summary Check if a customer exists by ID
// @Description Existence probe; responds with status only, no body either way.
// @Tags Customers
// @Param customerID path string true "Customer ID (UUID)"
// @Success 200 "Customer exists"
// @Failure 400 "Invalid customer ID"
// @Failure 404 "Customer not found"
// @Router /customers/{customerID} [head]
func (h *CustomerHandler) CheckCustomerExists(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromURL(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get customer ID from URL", slog.Any("error", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	exists, err := h.service.ExistsByID(r.Context(), customerID)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to check customer existence", slog.Any("error", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if !exists {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// CustomerOptions handles OPTIONS /customers
// @Summary List all allowed HTTP methods for /customers
// @Description Capability probe; advertises the fixed set of supported operations in the Allow header.
// @Tags Customers
// @Success 200 "Allow header lists supported methods"
// @Router /customers [options]
func (h *CustomerHandler) CustomerOptions(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Received capability probe")
	w.Header().Set("Allow", allowedMethods)
	w.WriteHeader(http.StatusOK)
}
