package handler_test

import (
	"bytes"
	"context"
	"customer-service/internal/api/handler"
	"customer-service/internal/api/handler/dto"
	"customer-service/internal/domain/customer"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCustomerService struct {
	mock.Mock
}

func (_m *MockCustomerService) ListCustomers(ctx context.Context) ([]*customer.Customer, error) {
	ret := _m.Called(ctx)

	var r0 []*customer.Customer
	if rf, ok := ret.Get(0).(func(context.Context) []*customer.Customer); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*customer.Customer)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *MockCustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	ret := _m.Called(ctx, id)

	var r0 *customer.Customer
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *customer.Customer); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*customer.Customer)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *MockCustomerService) GetCustomerByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	ret := _m.Called(ctx, email)

	var r0 *customer.Customer
	if rf, ok := ret.Get(0).(func(context.Context, string) *customer.Customer); ok {
		r0 = rf(ctx, email)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*customer.Customer)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, email)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *MockCustomerService) CreateCustomer(ctx context.Context, candidate *customer.Customer) (*customer.Customer, error) {
	ret := _m.Called(ctx, candidate)

	var r0 *customer.Customer
	if rf, ok := ret.Get(0).(func(context.Context, *customer.Customer) *customer.Customer); ok {
		r0 = rf(ctx, candidate)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*customer.Customer)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *customer.Customer) error); ok {
		r1 = rf(ctx, candidate)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *MockCustomerService) UpdateCustomer(ctx context.Context, id uuid.UUID, replacement *customer.Customer) (*customer.Customer, error) {
	ret := _m.Called(ctx, id, replacement)

	var r0 *customer.Customer
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, *customer.Customer) *customer.Customer); ok {
		r0 = rf(ctx, id, replacement)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*customer.Customer)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, *customer.Customer) error); ok {
		r1 = rf(ctx, id, replacement)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *MockCustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *MockCustomerService) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	ret := _m.Called(ctx, id)

	var r0 bool
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) bool); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Bool(0)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func newTestHandler() (*MockCustomerService, *handler.CustomerHandler) {
	mockService := new(MockCustomerService)
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	return mockService, handler.NewCustomerHandler(mockService, logger)
}

func requestWithID(method, target, id string, body []byte) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("customerID", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decodeErrorResponse(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	err := json.Unmarshal(rec.Body.Bytes(), &resp)
	assert.NoError(t, err)
	return resp
}

func sampleCustomer() *customer.Customer {
	now := time.Now()
	return &customer.Customer{
		ID:            uuid.New(),
		GivenName:     "Jane",
		MiddleName:    "Q",
		FamilyName:    "Doe",
		EmailAddress:  "jane.doe@example.com",
		ContactNumber: "+6281234567",
		CreateDate:    now,
		UpdatedAt:     now,
	}
}

func TestListCustomers(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockService, h := newTestHandler()
		customers := []*customer.Customer{sampleCustomer(), sampleCustomer()}
		mockService.On("ListCustomers", mock.Anything).Return(customers, nil)

		req := httptest.NewRequest(http.MethodGet, "/customers", nil)
		rec := httptest.NewRecorder()

		h.ListCustomers(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp []dto.CustomerResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp, 2)
		mockService.AssertExpectations(t)
	})

	t.Run("empty store serializes as empty array", func(t *testing.T) {
		mockService, h := newTestHandler()
		mockService.On("ListCustomers", mock.Anything).Return([]*customer.Customer{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/customers", nil)
		rec := httptest.NewRecorder()

		h.ListCustomers(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
		mockService.AssertExpectations(t)
	})

	t.Run("service failure", func(t *testing.T) {
		mockService, h := newTestHandler()
		mockService.On("ListCustomers", mock.Anything).Return(nil, errors.New("boom"))

		req := httptest.NewRequest(http.MethodGet, "/customers", nil)
		rec := httptest.NewRecorder()

		h.ListCustomers(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		resp := decodeErrorResponse(t, rec)
		assert.Equal(t, http.StatusInternalServerError, resp.Status)
		assert.Equal(t, "Internal Server Error", resp.Error)
		assert.Equal(t, "Something went wrong", resp.Message)
		assert.Equal(t, "/customers", resp.Path)
		assert.False(t, resp.Timestamp.IsZero())
		mockService.AssertExpectations(t)
	})
}

func TestCreateCustomer(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockService, h := newTestHandler()
		reqBody := dto.CustomerRequest{
			GivenName:     "Jane",
			FamilyName:    "Doe",
			EmailAddress:  "  Jane.Doe@Example.COM ",
			ContactNumber: "+6281234567",
		}
		reqBodyBytes, _ := json.Marshal(reqBody)

		created := sampleCustomer()
		mockService.On("CreateCustomer", mock.Anything, mock.MatchedBy(func(c *customer.Customer) bool {
			return c.ID == uuid.Nil && c.EmailAddress == "jane.doe@example.com"
		})).Return(created, nil)

		req := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewReader(reqBodyBytes))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		h.CreateCustomer(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "/customers/"+created.ID.String(), rec.Header().Get("Location"))
		var resp dto.CustomerResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, created.ID.String(), resp.ID)
		assert.Equal(t, "jane.doe@example.com", resp.EmailAddress)
		mockService.AssertExpectations(t)
	})

	t.Run("invalid payload", func(t *testing.T) {
		mockService, h := newTestHandler()
		req := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		h.CreateCustomer(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeErrorResponse(t, rec)
		assert.Equal(t, http.StatusBadRequest, resp.Status)
		assert.Equal(t, "Bad Request", resp.Error)
		assert.Contains(t, resp.Message, "givenName: Given name is required")
		assert.Contains(t, resp.Message, "emailAddress: Email address is required")
		mockService.AssertNotCalled(t, "CreateCustomer")
	})

	t.Run("malformed email", func(t *testing.T) {
		mockService, h := newTestHandler()
		reqBody := dto.CustomerRequest{
			GivenName:     "Jane",
			FamilyName:    "Doe",
			EmailAddress:  "not-an-email",
			ContactNumber: "+6281234567",
		}
		reqBodyBytes, _ := json.Marshal(reqBody)

		req := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewReader(reqBodyBytes))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		h.CreateCustomer(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeErrorResponse(t, rec)
		assert.Contains(t, resp.Message, "emailAddress: Email address must be valid")
		mockService.AssertNotCalled(t, "CreateCustomer")
	})

	t.Run("malformed JSON body", func(t *testing.T) {
		mockService, h := newTestHandler()
		req := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewReader([]byte(`{not json`)))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		h.CreateCustomer(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "CreateCustomer")
	})

	t.Run("duplicate email", func(t *testing.T) {
		mockService, h := newTestHandler()
		reqBody := dto.CustomerRequest{
			GivenName:     "Jane",
			FamilyName:    "Doe",
			EmailAddress:  "taken@example.com",
			ContactNumber: "+6281234567",
		}
		reqBodyBytes, _ := json.Marshal(reqBody)

		mockService.On("CreateCustomer", mock.Anything, mock.AnythingOfType("*customer.Customer")).
			Return(nil, customer.ErrDuplicateEmail)

		req := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewReader(reqBodyBytes))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		h.CreateCustomer(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		resp := decodeErrorResponse(t, rec)
		assert.Equal(t, http.StatusConflict, resp.Status)
		assert.Equal(t, "Conflict", resp.Error)
		assert.Contains(t, resp.Message, "email address already in use")
		assert.Equal(t, "/customers", resp.Path)
		mockService.AssertExpectations(t)
	})
}

func TestGetCustomer(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockService, h := newTestHandler()
		cust := sampleCustomer()
		mockService.On("GetCustomer", mock.Anything, cust.ID).Return(cust, nil)

		req := requestWithID(http.MethodGet, "/customers/"+cust.ID.String(), cust.ID.String(), nil)
		rec := httptest.NewRecorder()

		h.GetCustomer(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp dto.CustomerResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, cust.ID.String(), resp.ID)
		mockService.AssertExpectations(t)
	})

	t.Run("invalid customer ID", func(t *testing.T) {
		mockService, h := newTestHandler()

		req := requestWithID(http.MethodGet, "/customers/abc", "abc", nil)
		rec := httptest.NewRecorder()

		h.GetCustomer(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "GetCustomer")
	})

	t.Run("customer not found responds without body", func(t *testing.T) {
		mockService, h := newTestHandler()
		id := uuid.New()
		mockService.On("GetCustomer", mock.Anything, id).Return(nil, customer.ErrNotFound)

		req := requestWithID(http.MethodGet, "/customers/"+id.String(), id.String(), nil)
		rec := httptest.NewRecorder()

		h.GetCustomer(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, rec.Body.String())
		mockService.AssertExpectations(t)
	})
}

func TestSearchCustomerByEmail(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockService, h := newTestHandler()
		cust := sampleCustomer()
		mockService.On("GetCustomerByEmail", mock.Anything, "jane.doe@example.com").Return(cust, nil)

		req := httptest.NewRequest(http.MethodGet, "/customers/search?email=jane.doe@example.com", nil)
		rec := httptest.NewRecorder()

		h.SearchCustomerByEmail(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp dto.CustomerResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, cust.EmailAddress, resp.EmailAddress)
		mockService.AssertExpectations(t)
	})

	t.Run("missing email parameter", func(t *testing.T) {
		mockService, h := newTestHandler()

		req := httptest.NewRequest(http.MethodGet, "/customers/search", nil)
		rec := httptest.NewRecorder()

		h.SearchCustomerByEmail(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeErrorResponse(t, rec)
		assert.Contains(t, resp.Message, "missing required query parameter 'email'")
		mockService.AssertNotCalled(t, "GetCustomerByEmail")
	})

	t.Run("no owner responds without body", func(t *testing.T) {
		mockService, h := newTestHandler()
		mockService.On("GetCustomerByEmail", mock.Anything, "nobody@example.com").Return(nil, customer.ErrNotFound)

		req := httptest.NewRequest(http.MethodGet, "/customers/search?email=nobody@example.com", nil)
		rec := httptest.NewRecorder()

		h.SearchCustomerByEmail(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, rec.Body.String())
		mockService.AssertExpectations(t)
	})
}

func TestUpdateCustomer(t *testing.T) {
	reqBody := dto.CustomerRequest{
		GivenName:     "Janet",
		FamilyName:    "Smith",
		EmailAddress:  "janet.smith@example.com",
		ContactNumber: "+6289876543",
	}
	reqBodyBytes, _ := json.Marshal(reqBody)

	t.Run("success", func(t *testing.T) {
		mockService, h := newTestHandler()
		updated := sampleCustomer()
		updated.GivenName = "Janet"
		updated.EmailAddress = "janet.smith@example.com"

		mockService.On("UpdateCustomer", mock.Anything, updated.ID, mock.MatchedBy(func(c *customer.Customer) bool {
			return c.GivenName == "Janet" && c.EmailAddress == "janet.smith@example.com"
		})).Return(updated, nil)

		req := requestWithID(http.MethodPut, "/customers/"+updated.ID.String(), updated.ID.String(), reqBodyBytes)
		rec := httptest.NewRecorder()

		h.UpdateCustomer(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp dto.CustomerResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, updated.ID.String(), resp.ID)
		assert.Equal(t, "Janet", resp.GivenName)
		mockService.AssertExpectations(t)
	})

	t.Run("customer not found responds with error body", func(t *testing.T) {
		mockService, h := newTestHandler()
		id := uuid.New()
		mockService.On("UpdateCustomer", mock.Anything, id, mock.AnythingOfType("*customer.Customer")).
			Return(nil, customer.ErrNotFound)

		req := requestWithID(http.MethodPut, "/customers/"+id.String(), id.String(), reqBodyBytes)
		rec := httptest.NewRecorder()

		h.UpdateCustomer(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		resp := decodeErrorResponse(t, rec)
		assert.Equal(t, http.StatusNotFound, resp.Status)
		assert.Equal(t, "Not Found", resp.Error)
		assert.Contains(t, resp.Message, "customer not found")
		mockService.AssertExpectations(t)
	})

	t.Run("email owned by another customer", func(t *testing.T) {
		mockService, h := newTestHandler()
		id := uuid.New()
		mockService.On("UpdateCustomer", mock.Anything, id, mock.AnythingOfType("*customer.Customer")).
			Return(nil, customer.ErrDuplicateEmail)

		req := requestWithID(http.MethodPut, "/customers/"+id.String(), id.String(), reqBodyBytes)
		rec := httptest.NewRecorder()

		h.UpdateCustomer(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		resp := decodeErrorResponse(t, rec)
		assert.Contains(t, resp.Message, "email address already in use")
		mockService.AssertExpectations(t)
	})

	t.Run("invalid payload", func(t *testing.T) {
		mockService, h := newTestHandler()
		id := uuid.New()

		req := requestWithID(http.MethodPut, "/customers/"+id.String(), id.String(), []byte(`{}`))
		rec := httptest.NewRecorder()

		h.UpdateCustomer(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "UpdateCustomer")
	})
}

func TestUpdateContactNumber(t *testing.T) {
	t.Run("success delegates to full update with only contact changed", func(t *testing.T) {
		mockService, h := newTestHandler()
		existing := sampleCustomer()
		updated := *existing
		updated.ContactNumber = "+6289999999"

		mockService.On("GetCustomer", mock.Anything, existing.ID).Return(existing, nil)
		mockService.On("UpdateCustomer", mock.Anything, existing.ID, mock.MatchedBy(func(c *customer.Customer) bool {
			return c.ContactNumber == "+6289999999" &&
				c.GivenName == existing.GivenName &&
				c.EmailAddress == existing.EmailAddress
		})).Return(&updated, nil)

		target := "/customers/" + existing.ID.String() + "/contact?contactNumber=%2B6289999999"
		req := requestWithID(http.MethodPatch, target, existing.ID.String(), nil)
		rec := httptest.NewRecorder()

		h.UpdateContactNumber(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp dto.CustomerResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "+6289999999", resp.ContactNumber)
		mockService.AssertExpectations(t)
	})

	t.Run("invalid contact number", func(t *testing.T) {
		mockService, h := newTestHandler()
		id := uuid.New()

		target := "/customers/" + id.String() + "/contact?contactNumber=abc"
		req := requestWithID(http.MethodPatch, target, id.String(), nil)
		rec := httptest.NewRecorder()

		h.UpdateContactNumber(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeErrorResponse(t, rec)
		assert.Contains(t, resp.Message, "contactNumber: Contact number must be 7 to 15 digits")
		mockService.AssertNotCalled(t, "GetCustomer")
		mockService.AssertNotCalled(t, "UpdateCustomer")
	})

	t.Run("customer not found responds without body", func(t *testing.T) {
		mockService, h := newTestHandler()
		id := uuid.New()
		mockService.On("GetCustomer", mock.Anything, id).Return(nil, customer.ErrNotFound)

		target := "/customers/" + id.String() + "/contact?contactNumber=%2B6289999999"
		req := requestWithID(http.MethodPatch, target, id.String(), nil)
		rec := httptest.NewRecorder()

		h.UpdateContactNumber(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, rec.Body.String())
		mockService.AssertNotCalled(t, "UpdateCustomer")
		mockService.AssertExpectations(t)
	})
}

func TestDeleteCustomer(t *testing.T) {
	t.Run("success responds no content", func(t *testing.T) {
		mockService, h := newTestHandler()
		id := uuid.New()
		mockService.On("DeleteCustomer", mock.Anything, id).Return(nil)

		req := requestWithID(http.MethodDelete, "/customers/"+id.String(), id.String(), nil)
		rec := httptest.NewRecorder()

		h.DeleteCustomer(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
		mockService.AssertExpectations(t)
	})

	t.Run("customer not found responds with error body", func(t *testing.T) {
		mockService, h := newTestHandler()
		id := uuid.New()
		mockService.On("DeleteCustomer", mock.Anything, id).Return(customer.ErrNotFound)

		req := requestWithID(http.MethodDelete, "/customers/"+id.String(), id.String(), nil)
		rec := httptest.NewRecorder()

		h.DeleteCustomer(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		resp := decodeErrorResponse(t, rec)
		assert.Equal(t, http.StatusNotFound, resp.Status)
		assert.Contains(t, resp.Message, "customer not found")
		mockService.AssertExpectations(t)
	})

	t.Run("invalid customer ID", func(t *testing.T) {
		mockService, h := newTestHandler()

		req := requestWithID(http.MethodDelete, "/customers/abc", "abc", nil)
		rec := httptest.NewRecorder()

		h.DeleteCustomer(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "DeleteCustomer")
	})
}

func TestCheckCustomerExists(t *testing.T) {
	t.Run("exists", func(t *testing.T) {
		mockService, h := newTestHandler()
		id := uuid.New()
		mockService.On("ExistsByID", mock.Anything, id).Return(true, nil)

		req := requestWithID(http.MethodHead, "/customers/"+id.String(), id.String(), nil)
		rec := httptest.NewRecorder()

		h.CheckCustomerExists(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Body.String())
		mockService.AssertExpectations(t)
	})

	t.Run("does not exist", func(t *testing.T) {
		mockService, h := newTestHandler()
		id := uuid.New()
		mockService.On("ExistsByID", mock.Anything, id).Return(false, nil)

		req := requestWithID(http.MethodHead, "/customers/"+id.String(), id.String(), nil)
		rec := httptest.NewRecorder()

		h.CheckCustomerExists(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, rec.Body.String())
		mockService.AssertExpectations(t)
	})

	t.Run("invalid customer ID", func(t *testing.T) {
		mockService, h := newTestHandler()

		req := requestWithID(http.MethodHead, "/customers/abc", "abc", nil)
		rec := httptest.NewRecorder()

		h.CheckCustomerExists(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, rec.Body.String())
		mockService.AssertNotCalled(t, "ExistsByID")
	})

	t.Run("service failure", func(t *testing.T) {
		mockService, h := newTestHandler()
		id := uuid.New()
		mockService.On("ExistsByID", mock.Anything, id).Return(false, errors.New("boom"))

		req := requestWithID(http.MethodHead, "/customers/"+id.String(), id.String(), nil)
		rec := httptest.NewRecorder()

		h.CheckCustomerExists(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Empty(t, rec.Body.String())
		mockService.AssertExpectations(t)
	})
}

func TestCustomerOptions(t *testing.T) {
	_, h := newTestHandler()

	req := httptest.NewRequest(http.MethodOptions, "/customers", nil)
	rec := httptest.NewRecorder()

	h.CustomerOptions(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "GET, POST, PUT, PATCH, DELETE, HEAD, OPTIONS", rec.Header().Get("Allow"))
	assert.Empty(t, rec.Body.String())
}
