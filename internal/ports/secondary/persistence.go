// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a lookup or update by id matches no employee.
var ErrNotFound = errors.New("employee not found")

// PersistenceError wraps a storage failure with the operation that hit it.
// The original cause is preserved for errors.Is/As inspection.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// EmployeeRepository defines the secondary port for employee persistence.
type EmployeeRepository interface {
	// List retrieves all employees in store order.
	List(ctx context.Context) ([]*EmployeeRecord, error)

	// GetByID retrieves an employee by id. Returns ErrNotFound when no row matches.
	GetByID(ctx context.Context, id int64) (*EmployeeRecord, error)

	// Create persists a new employee and returns the store-assigned id.
	Create(ctx context.Context, employee *EmployeeRecord) (int64, error)

	// Update rewrites all persisted fields of an existing employee.
	// Returns ErrNotFound when the id matches no row.
	Update(ctx context.Context, employee *EmployeeRecord) error

	// Delete removes an employee. Deleting a missing id is not an error.
	Delete(ctx context.Context, id int64) error
}

// EmployeeRecord represents an employee as stored in persistence.
// LastName and FirstName are required; every other field is optional
// and nil when absent in the store.
type EmployeeRecord struct {
	ID              int64
	LastName        string
	FirstName       string
	Title           *string
	TitleOfCourtesy *string
	BirthDate       *time.Time
	HireDate        *time.Time
	Address         *string
	City            *string
	Region          *string
	PostalCode      *string
	Country         *string
	HomePhone       *string
	Extension       *string
	Notes           *string
	ReportsTo       *int64
	PhotoPath       *string
}
