package db

// SchemaSQL is the complete schema for fresh staffdir installs.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. All tests
// use it via GetSchemaSQL() so that repository code referencing a column
// that does not exist here fails immediately with "no such column".
//
// BirthDate and HireDate are stored as TEXT in the fixed layout
// 2006-01-02 and reparsed on read; see the sqlite adapter.
const SchemaSQL = `
CREATE TABLE IF NOT EXISTS Employees (
	EmployeeID      INTEGER PRIMARY KEY,
	LastName        TEXT NOT NULL,
	FirstName       TEXT NOT NULL,
	Title           TEXT NULL,
	TitleOfCourtesy TEXT NULL,
	BirthDate       TEXT NULL,
	HireDate        TEXT NULL,
	Address         TEXT NULL,
	City            TEXT NULL,
	Region          TEXT NULL,
	PostalCode      TEXT NULL,
	Country         TEXT NULL,
	HomePhone       TEXT NULL,
	Extension       TEXT NULL,
	Notes           TEXT NULL,
	ReportsTo       INTEGER NULL,
	PhotoPath       TEXT NULL
);
`

// GetSchemaSQL returns the authoritative schema for fresh installs and tests.
func GetSchemaSQL() string {
	return SchemaSQL
}
