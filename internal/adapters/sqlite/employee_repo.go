// Package sqlite contains the SQLite implementation of the employee
// repository interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/staffdir/internal/db"
	"github.com/example/staffdir/internal/ports/secondary"
)

// EmployeeRepository implements secondary.EmployeeRepository with SQLite.
// Every operation acquires one connection from the factory and releases
// it before returning; writes that need atomicity run in a transaction
// scoped to the single call.
type EmployeeRepository struct {
	factory *db.Factory
}

// NewEmployeeRepository creates a new SQLite employee repository.
func NewEmployeeRepository(factory *db.Factory) *EmployeeRepository {
	return &EmployeeRepository{factory: factory}
}

// List retrieves all employees in whatever order the store returns
// them. An empty table yields an empty slice, never an error.
func (r *EmployeeRepository) List(ctx context.Context) ([]*secondary.EmployeeRecord, error) {
	conn, err := r.factory.Conn(ctx)
	if err != nil {
		return nil, &secondary.PersistenceError{Op: "list employees", Err: err}
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx,
		"SELECT EmployeeID, "+columnList()+" FROM Employees",
	)
	if err != nil {
		return nil, &secondary.PersistenceError{Op: "list employees", Err: err}
	}
	defer rows.Close()

	employees := []*secondary.EmployeeRecord{}
	for rows.Next() {
		record, err := scanEmployee(rows)
		if err != nil {
			return nil, &secondary.PersistenceError{Op: "list employees", Err: err}
		}
		employees = append(employees, record)
	}
	if err := rows.Err(); err != nil {
		return nil, &secondary.PersistenceError{Op: "list employees", Err: err}
	}

	return employees, nil
}

// GetByID retrieves an employee by its id. A missing row returns
// ErrNotFound; a second row for the same id violates the identity
// invariant and is reported instead of silently dropped.
func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (*secondary.EmployeeRecord, error) {
	conn, err := r.factory.Conn(ctx)
	if err != nil {
		return nil, &secondary.PersistenceError{Op: "get employee", Err: err}
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx,
		"SELECT EmployeeID, "+columnList()+" FROM Employees WHERE EmployeeID = ?",
		id,
	)
	if err != nil {
		return nil, &secondary.PersistenceError{Op: "get employee", Err: err}
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, &secondary.PersistenceError{Op: "get employee", Err: err}
		}
		return nil, fmt.Errorf("employee %d: %w", id, secondary.ErrNotFound)
	}

	record, err := scanEmployee(rows)
	if err != nil {
		return nil, &secondary.PersistenceError{Op: "get employee", Err: err}
	}

	if rows.Next() {
		return nil, &secondary.PersistenceError{
			Op:  "get employee",
			Err: fmt.Errorf("multiple rows share employee id %d", id),
		}
	}

	return record, nil
}

// Create persists a new employee inside one transaction and returns
// the store-assigned id. Any failure rolls back before propagating.
func (r *EmployeeRepository) Create(ctx context.Context, employee *secondary.EmployeeRecord) (int64, error) {
	conn, err := r.factory.Conn(ctx)
	if err != nil {
		return 0, &secondary.PersistenceError{Op: "create employee", Err: err}
	}
	defer conn.Close()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, &secondary.PersistenceError{Op: "create employee", Err: err}
	}

	result, err := tx.ExecContext(ctx,
		"INSERT INTO Employees ("+columnList()+") VALUES ("+placeholderList()+")",
		paramValues(employee)...,
	)
	if err != nil {
		tx.Rollback()
		return 0, &secondary.PersistenceError{Op: "create employee", Err: err}
	}

	id, err := result.LastInsertId()
	if err != nil {
		tx.Rollback()
		return 0, &secondary.PersistenceError{Op: "retrieve generated employee id", Err: err}
	}

	if err := tx.Commit(); err != nil {
		tx.Rollback()
		return 0, &secondary.PersistenceError{Op: "create employee", Err: err}
	}

	employee.ID = id
	return id, nil
}

// Update rewrites all persisted fields of an existing employee inside
// one transaction. An id matching no row rolls back and returns
// ErrNotFound.
func (r *EmployeeRepository) Update(ctx context.Context, employee *secondary.EmployeeRecord) error {
	conn, err := r.factory.Conn(ctx)
	if err != nil {
		return &secondary.PersistenceError{Op: "update employee", Err: err}
	}
	defer conn.Close()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return &secondary.PersistenceError{Op: "update employee", Err: err}
	}

	result, err := tx.ExecContext(ctx,
		"UPDATE Employees SET "+setClause()+" WHERE EmployeeID = ?",
		append(paramValues(employee), employee.ID)...,
	)
	if err != nil {
		tx.Rollback()
		return &secondary.PersistenceError{Op: "update employee", Err: err}
	}

	affected, err := result.RowsAffected()
	if err != nil {
		tx.Rollback()
		return &secondary.PersistenceError{Op: "update employee", Err: err}
	}
	if affected == 0 {
		tx.Rollback()
		return fmt.Errorf("employee not updated: %w", secondary.ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		tx.Rollback()
		return &secondary.PersistenceError{Op: "update employee", Err: err}
	}

	return nil
}

// Delete removes an employee by id. No transaction is opened and
// deleting a missing id is not an error.
func (r *EmployeeRepository) Delete(ctx context.Context, id int64) error {
	conn, err := r.factory.Conn(ctx)
	if err != nil {
		return &secondary.PersistenceError{Op: "delete employee", Err: err}
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, "DELETE FROM Employees WHERE EmployeeID = ?", id); err != nil {
		return &secondary.PersistenceError{Op: "delete employee", Err: err}
	}

	return nil
}

// scanEmployee maps one fetched row onto a record. The identity and
// the two required name columns go straight into the record; every
// optional column passes through its descriptor's coercion.
func scanEmployee(rows *sql.Rows) (*secondary.EmployeeRecord, error) {
	record := &secondary.EmployeeRecord{}

	dests := make([]any, 0, len(employeeFields)+1)
	dests = append(dests, &record.ID)
	assigns := make([]func() error, 0, len(employeeFields))
	for _, f := range employeeFields {
		dest, assign := f.scan(record)
		dests = append(dests, dest)
		if assign != nil {
			assigns = append(assigns, assign)
		}
	}

	if err := rows.Scan(dests...); err != nil {
		return nil, fmt.Errorf("failed to scan employee: %w", err)
	}
	for _, assign := range assigns {
		if err := assign(); err != nil {
			return nil, err
		}
	}

	return record, nil
}

// Ensure EmployeeRepository implements the interface
var _ secondary.EmployeeRepository = (*EmployeeRepository)(nil)
