package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/example/staffdir/internal/ports/secondary"
)

// dateLayout is the fixed, locale-independent format for date columns.
// Dates are stored as TEXT and must round-trip through this exact layout.
const dateLayout = "2006-01-02"

// fieldDesc describes one persisted employee column, excluding the
// identity column. param produces the bindable value for INSERT/UPDATE;
// scan returns a fresh scan destination and a closure that moves the
// scanned value onto the record. A nil assign means the destination
// writes the record directly.
type fieldDesc struct {
	column string
	param  func(e *secondary.EmployeeRecord) any
	scan   func(e *secondary.EmployeeRecord) (dest any, assign func() error)
}

// employeeFields is the authoritative descriptor table: every persisted
// column except EmployeeID, in the order statements bind them. Column
// list, placeholder list, and scan destinations all derive from this
// slice so they cannot drift apart.
var employeeFields = []fieldDesc{
	requiredText("LastName", func(e *secondary.EmployeeRecord) *string { return &e.LastName }),
	requiredText("FirstName", func(e *secondary.EmployeeRecord) *string { return &e.FirstName }),
	optionalText("Title", func(e *secondary.EmployeeRecord) **string { return &e.Title }),
	optionalText("TitleOfCourtesy", func(e *secondary.EmployeeRecord) **string { return &e.TitleOfCourtesy }),
	optionalDate("BirthDate", func(e *secondary.EmployeeRecord) **time.Time { return &e.BirthDate }),
	optionalDate("HireDate", func(e *secondary.EmployeeRecord) **time.Time { return &e.HireDate }),
	optionalText("Address", func(e *secondary.EmployeeRecord) **string { return &e.Address }),
	optionalText("City", func(e *secondary.EmployeeRecord) **string { return &e.City }),
	optionalText("Region", func(e *secondary.EmployeeRecord) **string { return &e.Region }),
	optionalText("PostalCode", func(e *secondary.EmployeeRecord) **string { return &e.PostalCode }),
	optionalText("Country", func(e *secondary.EmployeeRecord) **string { return &e.Country }),
	optionalText("HomePhone", func(e *secondary.EmployeeRecord) **string { return &e.HomePhone }),
	optionalText("Extension", func(e *secondary.EmployeeRecord) **string { return &e.Extension }),
	optionalText("Notes", func(e *secondary.EmployeeRecord) **string { return &e.Notes }),
	optionalInt("ReportsTo", func(e *secondary.EmployeeRecord) **int64 { return &e.ReportsTo }),
	optionalText("PhotoPath", func(e *secondary.EmployeeRecord) **string { return &e.PhotoPath }),
}

// requiredText describes a NOT NULL text column scanned straight into
// the record; its absence in a fetched row is a schema violation and
// fails the scan.
func requiredText(column string, field func(e *secondary.EmployeeRecord) *string) fieldDesc {
	return fieldDesc{
		column: column,
		param: func(e *secondary.EmployeeRecord) any {
			return *field(e)
		},
		scan: func(e *secondary.EmployeeRecord) (any, func() error) {
			return field(e), nil
		},
	}
}

// optionalText describes a nullable text column.
func optionalText(column string, field func(e *secondary.EmployeeRecord) **string) fieldDesc {
	return fieldDesc{
		column: column,
		param: func(e *secondary.EmployeeRecord) any {
			return nullString(*field(e))
		},
		scan: func(e *secondary.EmployeeRecord) (any, func() error) {
			raw := new(sql.NullString)
			return raw, func() error {
				*field(e) = strPtr(*raw)
				return nil
			}
		},
	}
}

// optionalInt describes a nullable integer column.
func optionalInt(column string, field func(e *secondary.EmployeeRecord) **int64) fieldDesc {
	return fieldDesc{
		column: column,
		param: func(e *secondary.EmployeeRecord) any {
			return nullInt64(*field(e))
		},
		scan: func(e *secondary.EmployeeRecord) (any, func() error) {
			raw := new(sql.NullInt64)
			return raw, func() error {
				*field(e) = int64Ptr(*raw)
				return nil
			}
		},
	}
}

// optionalDate describes a nullable date column stored as text in
// dateLayout. Malformed date text surfaces as a mapping error.
func optionalDate(column string, field func(e *secondary.EmployeeRecord) **time.Time) fieldDesc {
	return fieldDesc{
		column: column,
		param: func(e *secondary.EmployeeRecord) any {
			return nullDate(*field(e))
		},
		scan: func(e *secondary.EmployeeRecord) (any, func() error) {
			raw := new(sql.NullString)
			return raw, func() error {
				parsed, err := datePtr(column, *raw)
				if err != nil {
					return err
				}
				*field(e) = parsed
				return nil
			}
		},
	}
}

// nullString coerces an optional string to a bindable value; nil maps
// to the database NULL marker.
func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

// nullInt64 coerces an optional integer to a bindable value.
func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

// nullDate coerces an optional date to its text representation.
func nullDate(v *time.Time) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: v.Format(dateLayout), Valid: true}
}

// strPtr coerces a fetched nullable text value to the domain optional.
func strPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

// int64Ptr coerces a fetched nullable integer to the domain optional.
func int64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}

// datePtr parses a fetched nullable date-text value.
func datePtr(column string, v sql.NullString) (*time.Time, error) {
	if !v.Valid {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, v.String)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s value %q: %w", column, v.String, err)
	}
	return &parsed, nil
}

// columnList returns the descriptor columns joined for a SELECT or
// INSERT column clause.
func columnList() string {
	columns := make([]string, len(employeeFields))
	for i, f := range employeeFields {
		columns[i] = f.column
	}
	return strings.Join(columns, ", ")
}

// placeholderList returns one placeholder per descriptor column, in
// lockstep with columnList.
func placeholderList() string {
	marks := make([]string, len(employeeFields))
	for i := range employeeFields {
		marks[i] = "?"
	}
	return strings.Join(marks, ", ")
}

// setClause returns the UPDATE assignment list over all descriptor
// columns.
func setClause() string {
	assignments := make([]string, len(employeeFields))
	for i, f := range employeeFields {
		assignments[i] = f.column + " = ?"
	}
	return strings.Join(assignments, ", ")
}

// paramValues binds every descriptor field of the record, in column
// order.
func paramValues(e *secondary.EmployeeRecord) []any {
	args := make([]any, len(employeeFields))
	for i, f := range employeeFields {
		args[i] = f.param(e)
	}
	return args
}
