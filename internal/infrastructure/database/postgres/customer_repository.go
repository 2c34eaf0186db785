package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"customer-service/internal/domain/customer"
	"customer-service/internal/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const errMsgFormat = "%w: %w"

type DBPool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Acquire(ctx context.Context) (*pgxpool.Conn, error)
	Close()
}

// CustomerRepository persists customers in the `customers` table. The table
// carries a unique index on email_address; a 23505 from that index surfaces
// as apperrors.ErrAlreadyExists so the service can translate it into the
// duplicate-email outcome.
type CustomerRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ customer.CustomerRepository = (*CustomerRepository)(nil)

func NewCustomerRepository(db DBPool, logger *slog.Logger) *CustomerRepository {
	if db == nil {
		panic("DBPool cannot be nil for CustomerRepository")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCustomerRepository, using default stderr handler")
	}
	return &CustomerRepository{
		db:     db,
		logger: logger.With("component", "CustomerRepository"),
	}
}

func (r *CustomerRepository) Save(ctx context.Context, cust *customer.Customer) error {
	if cust == nil {
		return fmt.Errorf("%w: customer cannot be nil", apperrors.ErrInvalidArgument)
	}

	if cust.ID == uuid.Nil {
		return r.createCustomer(ctx, cust)
	}
	return r.updateCustomer(ctx, cust)
}

func (r *CustomerRepository) createCustomer(ctx context.Context, cust *customer.Customer) error {
	r.logger.InfoContext(ctx, "Attempting to insert new customer", slog.String("email", cust.EmailAddress))

	query := `
        INSERT INTO customers (given_name, middle_name, family_name, email_address, contact_number, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
        RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		cust.GivenName,
		cust.MiddleName,
		cust.FamilyName,
		cust.EmailAddress,
		cust.ContactNumber,
	).Scan(
		&cust.ID,
		&cust.CreateDate,
		&cust.UpdatedAt,
	)

	if err != nil {
		translatedErr := translateDBError(err, r.logger)
		if errors.Is(translatedErr, apperrors.ErrAlreadyExists) {
			r.logger.WarnContext(ctx, "Failed to insert customer due to unique constraint violation", slog.String("email", cust.EmailAddress))
			return translatedErr
		}
		r.logger.ErrorContext(ctx, "Failed to insert customer", slog.Any("error", err))
		return fmt.Errorf("%w: failed to insert customer: %w", apperrors.ErrDatabase, err)
	}

	r.logger.InfoContext(ctx, "Customer inserted successfully", slog.String("customerID", cust.ID.String()))
	return nil
}

func (r *CustomerRepository) updateCustomer(ctx context.Context, cust *customer.Customer) error {
	r.logger.InfoContext(ctx, "Attempting to update customer", slog.String("customerID", cust.ID.String()))

	query := `
        UPDATE customers
        SET given_name = $1,
            middle_name = $2,
            family_name = $3,
            email_address = $4,
            contact_number = $5,
            updated_at = NOW()
        WHERE id = $6`

	cmdTag, err := r.db.Exec(ctx, query,
		cust.GivenName,
		cust.MiddleName,
		cust.FamilyName,
		cust.EmailAddress,
		cust.ContactNumber,
		cust.ID,
	)

	if err != nil {
		translatedErr := translateDBError(err, r.logger)
		if errors.Is(translatedErr, apperrors.ErrAlreadyExists) {
			r.logger.WarnContext(ctx, "Failed to update customer due to unique constraint violation", slog.String("email", cust.EmailAddress))
			return translatedErr
		}
		r.logger.ErrorContext(ctx, "Failed to update customer", slog.Any("error", err))
		return fmt.Errorf("%w: failed to update customer: %w", apperrors.ErrDatabase, err)
	}

	if cmdTag.RowsAffected() == 0 {
		r.logger.WarnContext(ctx, "Update affected zero rows, customer likely not found")
		return apperrors.ErrNotFound
	}

	r.logger.InfoContext(ctx, "Customer updated successfully")
	return nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	r.logger.InfoContext(ctx, "Attempting to find customer by ID")

	query := `
        SELECT id, given_name, middle_name, family_name, email_address, contact_number, created_at, updated_at
        FROM customers
        WHERE id = $1`

	return r.scanOne(ctx, query, id)
}

func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	r.logger.InfoContext(ctx, "Attempting to find customer by email")

	query := `
        SELECT id, given_name, middle_name, family_name, email_address, contact_number, created_at, updated_at
        FROM customers
        WHERE email_address = $1`

	return r.scanOne(ctx, query, email)
}

func (r *CustomerRepository) scanOne(ctx context.Context, query string, arg any) (*customer.Customer, error) {
	var cust customer.Customer
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&cust.ID,
		&cust.GivenName,
		&cust.MiddleName,
		&cust.FamilyName,
		&cust.EmailAddress,
		&cust.ContactNumber,
		&cust.CreateDate,
		&cust.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Customer not found")
			return nil, apperrors.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to query/scan customer", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to get customer: %w", apperrors.ErrDatabase, err)
	}

	r.logger.InfoContext(ctx, "Customer found successfully")
	return &cust, nil
}

func (r *CustomerRepository) FindAll(ctx context.Context) ([]*customer.Customer, error) {
	r.logger.InfoContext(ctx, "Attempting to find all customers")

	query := `
        SELECT id, given_name, middle_name, family_name, email_address, contact_number, created_at, updated_at
        FROM customers
        ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query customers", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to query customers: %w", apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	customers := make([]*customer.Customer, 0)
	for rows.Next() {
		var cust customer.Customer
		err := rows.Scan(
			&cust.ID,
			&cust.GivenName,
			&cust.MiddleName,
			&cust.FamilyName,
			&cust.EmailAddress,
			&cust.ContactNumber,
			&cust.CreateDate,
			&cust.UpdatedAt,
		)
		if err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan customer row", slog.Any("error", err))
			return nil, fmt.Errorf("%w: failed to scan customer row: %w", apperrors.ErrDatabase, err)
		}
		customers = append(customers, &cust)
	}

	if err = rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating customer rows", slog.Any("error", err))
		return nil, fmt.Errorf("%w: error iterating customer rows: %w", apperrors.ErrDatabase, err)
	}

	r.logger.InfoContext(ctx, "Finished finding customers", slog.Int("count", len(customers)))
	return customers, nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.logger.InfoContext(ctx, "Attempting to delete customer")

	query := `DELETE FROM customers WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to execute delete customer", slog.Any("error", err))
		return fmt.Errorf("%w: failed to delete customer: %w", apperrors.ErrDatabase, err)
	}

	if cmdTag.RowsAffected() == 0 {
		r.logger.WarnContext(ctx, "Delete affected zero rows, customer likely not found")
		return apperrors.ErrNotFound
	}

	r.logger.InfoContext(ctx, "Customer deleted successfully")
	return nil
}

func (r *CustomerRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	r.logger.DebugContext(ctx, "Checking customer existence by ID")

	query := `SELECT EXISTS(SELECT 1 FROM customers WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		r.logger.ErrorContext(ctx, "Failed to check customer existence by ID", slog.Any("error", err))
		return false, fmt.Errorf("%w: failed to check customer existence: %w", apperrors.ErrDatabase, err)
	}
	return exists, nil
}

func (r *CustomerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.logger.DebugContext(ctx, "Checking customer existence by email")

	query := `SELECT EXISTS(SELECT 1 FROM customers WHERE email_address = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		r.logger.ErrorContext(ctx, "Failed to check customer existence by email", slog.Any("error", err))
		return false, fmt.Errorf("%w: failed to check customer existence: %w", apperrors.ErrDatabase, err)
	}
	return exists, nil
}

func translateDBError(err error, contextLogger *slog.Logger) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {

		if pgErr.Code == "23505" {
			contextLogger.Warn("Database unique constraint violation", "detail", pgErr.Detail, "constraint", pgErr.ConstraintName)
			return fmt.Errorf("%w: %s", apperrors.ErrAlreadyExists, pgErr.ConstraintName)
		}

		contextLogger.Error("PostgreSQL specific error", "code", pgErr.Code, "message", pgErr.Message, "detail", pgErr.Detail)
		return fmt.Errorf("%w: db error code %s", apperrors.ErrDatabase, pgErr.Code)
	}

	contextLogger.Error("Generic database error", "error", err)
	return fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
}
