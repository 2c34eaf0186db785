package customer

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("customer not found")

	ErrDuplicateEmail = errors.New("email address already in use")
)

// CustomerRepository is the persistence port the domain service depends on.
// Save creates when the customer has a zero ID and updates otherwise.
// Implementations must enforce email uniqueness themselves (unique index or
// equivalent); the service's existence check is only the friendly early path.
type CustomerRepository interface {
	Save(ctx context.Context, customer *Customer) error

	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)

	FindByEmail(ctx context.Context, email string) (*Customer, error)

	FindAll(ctx context.Context) ([]*Customer, error)

	Delete(ctx context.Context, id uuid.UUID) error

	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
