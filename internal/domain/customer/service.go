package customer

import (
	"context"
	"customer-service/internal/event"
	"customer-service/internal/pkg/apperrors"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
)

const customerNotFound = "Customer not found by repository"

type CustomerService interface {
	ListCustomers(ctx context.Context) ([]*Customer, error)
	GetCustomer(ctx context.Context, id uuid.UUID) (*Customer, error)
	GetCustomerByEmail(ctx context.Context, email string) (*Customer, error)
	CreateCustomer(ctx context.Context, candidate *Customer) (*Customer, error)
	UpdateCustomer(ctx context.Context, id uuid.UUID, replacement *Customer) (*Customer, error)
	DeleteCustomer(ctx context.Context, id uuid.UUID) error
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

var _ CustomerService = (*customerService)(nil)

type customerService struct {
	repo   CustomerRepository
	pub    event.EventPublisher
	logger *slog.Logger
}

func NewCustomerService(repo CustomerRepository, eventPublisher event.EventPublisher, logger *slog.Logger) CustomerService {
	if repo == nil {
		panic("customer repository cannot be nil")
	}

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCustomerService, using default stderr handler")
	}

	if eventPublisher == nil {
		logger.Warn("Warning: No event publisher provided to NewCustomerService, events will be dropped")
		eventPublisher = event.NoopEventPublisher{}
	}

	return &customerService{
		repo:   repo,
		pub:    eventPublisher,
		logger: logger.With(slog.String("component", "customerService")),
	}
}

func newCustomerEventPayload(cust *Customer) event.CustomerEventPayload {
	if cust == nil {
		return event.CustomerEventPayload{}
	}
	return event.CustomerEventPayload{
		CustomerID:    cust.ID,
		GivenName:     cust.GivenName,
		MiddleName:    cust.MiddleName,
		FamilyName:    cust.FamilyName,
		EmailAddress:  cust.EmailAddress,
		ContactNumber: cust.ContactNumber,
		CreateDate:    cust.CreateDate,
		UpdatedAt:     cust.UpdatedAt,
	}
}

func (s *customerService) publishCustomerUpdatedEvent(ctx context.Context, cust *Customer) {
	if cust == nil {
		s.logger.ErrorContext(ctx, "Attempted to publish update event for nil customer")
		return
	}
	updatedEvent := event.CustomerUpdatedEvent{
		Timestamp: time.Now(),
		Payload:   newCustomerEventPayload(cust),
	}

	if err := s.pub.PublishCustomerUpdated(ctx, updatedEvent); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish customer update event", slog.Any("error", err))
	} else {
		s.logger.InfoContext(ctx, "Successfully published customer update event")
	}
}

func (s *customerService) ListCustomers(ctx context.Context) ([]*Customer, error) {
	s.logger.InfoContext(ctx, "Attempting to list all customers")

	customers, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error listing customers", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	s.logger.InfoContext(ctx, "Successfully retrieved customers", slog.Int("count", len(customers)))
	return customers, nil
}

func (s *customerService) GetCustomer(ctx context.Context, id uuid.UUID) (*Customer, error) {
	logCtx := s.logger.With(slog.String("customerID", id.String()))
	logCtx.InfoContext(ctx, "Attempting to get customer by ID")

	cust, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, apperrors.ErrNotFound) {
			logCtx.WarnContext(ctx, customerNotFound)
			return nil, ErrNotFound
		}
		logCtx.ErrorContext(ctx, "Repository error finding customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to get customer %s: %w", id, err)
	}

	logCtx.InfoContext(ctx, "Successfully retrieved customer")
	return cust, nil
}

func (s *customerService) GetCustomerByEmail(ctx context.Context, email string) (*Customer, error) {
	normalized := NormalizeEmail(email)
	logCtx := s.logger.With(slog.String("email", normalized))
	logCtx.InfoContext(ctx, "Attempting to get customer by email")

	cust, err := s.repo.FindByEmail(ctx, normalized)
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, apperrors.ErrNotFound) {
			logCtx.WarnContext(ctx, "Customer not found by repository for this email")
			return nil, ErrNotFound
		}
		logCtx.ErrorContext(ctx, "Repository error finding customer by email", slog.Any("error", err))
		return nil, fmt.Errorf("failed to get customer by email: %w", err)
	}

	logCtx.InfoContext(ctx, "Successfully retrieved customer by email")
	return cust, nil
}

func (s *customerService) CreateCustomer(ctx context.Context, candidate *Customer) (*Customer, error) {
	if candidate == nil {
		return nil, fmt.Errorf("%w: customer cannot be nil", apperrors.ErrInvalidArgument)
	}

	candidate.EmailAddress = NormalizeEmail(candidate.EmailAddress)
	logCtx := s.logger.With(slog.String("email", candidate.EmailAddress))
	logCtx.InfoContext(ctx, "Attempting to create new customer")

	taken, err := s.repo.ExistsByEmail(ctx, candidate.EmailAddress)
	if err != nil {
		logCtx.ErrorContext(ctx, "Repository error checking email uniqueness", slog.Any("error", err))
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if taken {
		logCtx.WarnContext(ctx, "Email address already in use")
		return nil, fmt.Errorf("%w: %s", ErrDuplicateEmail, candidate.EmailAddress)
	}

	if err := s.repo.Save(ctx, candidate); err != nil {
		// The unique index is the authoritative backstop for writers racing
		// past the existence check above.
		if errors.Is(err, apperrors.ErrAlreadyExists) {
			logCtx.WarnContext(ctx, "Unique constraint rejected concurrent duplicate email")
			return nil, fmt.Errorf("%w: %s", ErrDuplicateEmail, candidate.EmailAddress)
		}
		logCtx.ErrorContext(ctx, "Repository failed to save new customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to save new customer: %w", err)
	}

	logCtx = logCtx.With(slog.String("customerID", candidate.ID.String()))
	logCtx.InfoContext(ctx, "Successfully saved new customer, publishing creation event")
	createdEvent := event.CustomerCreatedEvent{
		Timestamp: time.Now(),
		Payload:   newCustomerEventPayload(candidate),
	}
	if pubErr := s.pub.PublishCustomerCreated(ctx, createdEvent); pubErr != nil {
		logCtx.ErrorContext(ctx, "Customer created, but FAILED to publish creation event", slog.Any("error", pubErr))
	} else {
		logCtx.InfoContext(ctx, "Successfully published customer creation event")
	}

	logCtx.InfoContext(ctx, "Successfully created new customer")
	return candidate, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, id uuid.UUID, replacement *Customer) (*Customer, error) {
	if replacement == nil {
		return nil, fmt.Errorf("%w: customer cannot be nil", apperrors.ErrInvalidArgument)
	}

	replacement.EmailAddress = NormalizeEmail(replacement.EmailAddress)
	logCtx := s.logger.With(slog.String("customerID", id.String()), slog.String("email", replacement.EmailAddress))
	logCtx.InfoContext(ctx, "Attempting to update customer")

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, apperrors.ErrNotFound) {
			logCtx.WarnContext(ctx, "Customer not found by repository for update")
			return nil, ErrNotFound
		}
		logCtx.ErrorContext(ctx, "Repository error finding customer for update", slog.Any("error", err))
		return nil, fmt.Errorf("cannot find customer %s to update: %w", id, err)
	}

	// Unchanged-email updates skip the duplicate check entirely, so a customer
	// can always re-submit their own current email.
	if existing.EmailAddress != replacement.EmailAddress {
		taken, checkErr := s.repo.ExistsByEmail(ctx, replacement.EmailAddress)
		if checkErr != nil {
			logCtx.ErrorContext(ctx, "Repository error checking email uniqueness", slog.Any("error", checkErr))
			return nil, fmt.Errorf("failed to check email uniqueness: %w", checkErr)
		}
		if taken {
			logCtx.WarnContext(ctx, "Email address already owned by another customer")
			return nil, fmt.Errorf("%w: %s", ErrDuplicateEmail, replacement.EmailAddress)
		}
	}

	existing.ApplyUpdate(replacement)

	if err := s.repo.Save(ctx, existing); err != nil {
		if errors.Is(err, apperrors.ErrAlreadyExists) {
			logCtx.WarnContext(ctx, "Unique constraint rejected concurrent duplicate email")
			return nil, fmt.Errorf("%w: %s", ErrDuplicateEmail, replacement.EmailAddress)
		}
		if errors.Is(err, ErrNotFound) || errors.Is(err, apperrors.ErrNotFound) {
			logCtx.ErrorContext(ctx, "Customer disappeared before save completed")
			return nil, ErrNotFound
		}
		logCtx.ErrorContext(ctx, "Repository failed to save updated customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to save updated customer %s: %w", id, err)
	}

	logCtx.InfoContext(ctx, "Successfully updated customer in repository, publishing update event")
	s.publishCustomerUpdatedEvent(ctx, existing)

	return existing, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	logCtx := s.logger.With(slog.String("customerID", id.String()))
	logCtx.InfoContext(ctx, "Attempting to delete customer")

	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		logCtx.ErrorContext(ctx, "Repository error checking customer existence", slog.Any("error", err))
		return fmt.Errorf("failed to check customer %s existence: %w", id, err)
	}
	if !exists {
		logCtx.WarnContext(ctx, customerNotFound)
		return ErrNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, apperrors.ErrNotFound) {
			logCtx.WarnContext(ctx, "Customer disappeared before delete completed")
			return ErrNotFound
		}
		logCtx.ErrorContext(ctx, "Repository failed to delete customer", slog.Any("error", err))
		return fmt.Errorf("failed to delete customer %s: %w", id, err)
	}

	logCtx.InfoContext(ctx, "Successfully deleted customer, publishing deletion event")
	deletedEvent := event.CustomerDeletedEvent{
		Timestamp:  time.Now(),
		CustomerID: id,
	}
	if pubErr := s.pub.PublishCustomerDeleted(ctx, deletedEvent); pubErr != nil {
		s.logger.ErrorContext(ctx, "Customer deleted, but FAILED to publish deletion event", slog.Any("error", pubErr))
	}

	return nil
}

func (s *customerService) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	logCtx := s.logger.With(slog.String("customerID", id.String()))
	logCtx.DebugContext(ctx, "Checking customer existence")

	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		logCtx.ErrorContext(ctx, "Repository error checking customer existence", slog.Any("error", err))
		return false, fmt.Errorf("failed to check customer %s existence: %w", id, err)
	}
	return exists, nil
}
