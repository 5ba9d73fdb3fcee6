package cli

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/example/staffdir/internal/ports/secondary"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// dateFormat is the accepted format for --birth and --hired values.
const dateFormat = "2006-01-02"

var employeeCmd = &cobra.Command{
	Use:   "employee",
	Short: "Manage employee records",
	Long:  "Add, list, update, and remove employees in the staff directory",
}

var employeeAddCmd = &cobra.Command{
	Use:   "add [last name] [first name]",
	Short: "Add a new employee",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		factory, repo, err := openRepository()
		if err != nil {
			return err
		}
		defer factory.Close()

		employee := &secondary.EmployeeRecord{
			LastName:  args[0],
			FirstName: args[1],
		}
		if err := applyFieldFlags(cmd, employee); err != nil {
			return err
		}

		id, err := repo.Create(cmd.Context(), employee)
		if err != nil {
			return err
		}

		fmt.Printf("%s Added employee #%d: %s %s\n", checkMark(), id, employee.FirstName, employee.LastName)
		return nil
	},
}

var employeeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all employees",
	RunE: func(cmd *cobra.Command, args []string) error {
		factory, repo, err := openRepository()
		if err != nil {
			return err
		}
		defer factory.Close()

		employees, err := repo.List(cmd.Context())
		if err != nil {
			return err
		}

		if len(employees) == 0 {
			fmt.Println("No employees found")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 2, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tTITLE\tCITY\tCOUNTRY\tHIRED")
		for _, e := range employees {
			fmt.Fprintf(w, "%d\t%s, %s\t%s\t%s\t%s\t%s\n",
				e.ID, e.LastName, e.FirstName,
				orDash(e.Title), orDash(e.City), orDash(e.Country), dashDate(e.HireDate),
			)
		}
		return w.Flush()
	},
}

var employeeGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show one employee",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		factory, repo, err := openRepository()
		if err != nil {
			return err
		}
		defer factory.Close()

		e, err := repo.GetByID(cmd.Context(), id)
		if err != nil {
			return err
		}

		header := fmt.Sprintf("#%d %s %s", e.ID, e.FirstName, e.LastName)
		fmt.Println(color.New(color.Bold).Sprint(header))
		printField("Title", e.Title)
		printField("Courtesy", e.TitleOfCourtesy)
		printDate("Born", e.BirthDate)
		printDate("Hired", e.HireDate)
		printField("Address", e.Address)
		printField("City", e.City)
		printField("Region", e.Region)
		printField("Postal code", e.PostalCode)
		printField("Country", e.Country)
		printField("Home phone", e.HomePhone)
		printField("Extension", e.Extension)
		printField("Notes", e.Notes)
		printField("Photo path", e.PhotoPath)
		if e.ReportsTo != nil {
			fmt.Printf("  Reports to: #%d\n", *e.ReportsTo)
		}
		return nil
	},
}

var employeeUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update an employee",
	Long:  "Update an employee. Only the provided flags change; other fields keep their current values.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		factory, repo, err := openRepository()
		if err != nil {
			return err
		}
		defer factory.Close()

		employee, err := repo.GetByID(cmd.Context(), id)
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("last") {
			employee.LastName, _ = cmd.Flags().GetString("last")
		}
		if cmd.Flags().Changed("first") {
			employee.FirstName, _ = cmd.Flags().GetString("first")
		}
		if err := applyFieldFlags(cmd, employee); err != nil {
			return err
		}

		if err := repo.Update(cmd.Context(), employee); err != nil {
			return err
		}

		fmt.Printf("%s Updated employee #%d\n", checkMark(), id)
		return nil
	},
}

var employeeRemoveCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove an employee",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		factory, repo, err := openRepository()
		if err != nil {
			return err
		}
		defer factory.Close()

		if err := repo.Delete(cmd.Context(), id); err != nil {
			return err
		}

		fmt.Printf("%s Removed employee #%d\n", checkMark(), id)
		return nil
	},
}

// registerFieldFlags adds the optional employee field flags shared by
// add and update.
func registerFieldFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "Job title")
	cmd.Flags().String("courtesy", "", "Title of courtesy (Ms., Dr., ...)")
	cmd.Flags().String("birth", "", "Birth date (YYYY-MM-DD)")
	cmd.Flags().String("hired", "", "Hire date (YYYY-MM-DD)")
	cmd.Flags().String("address", "", "Street address")
	cmd.Flags().String("city", "", "City")
	cmd.Flags().String("region", "", "Region or state")
	cmd.Flags().String("postal", "", "Postal code")
	cmd.Flags().String("country", "", "Country")
	cmd.Flags().String("phone", "", "Home phone")
	cmd.Flags().String("extension", "", "Phone extension")
	cmd.Flags().String("notes", "", "Free-text notes")
	cmd.Flags().Int64("reports-to", 0, "Manager employee id")
	cmd.Flags().String("photo", "", "Photo path")
}

// applyFieldFlags copies every changed optional field flag onto the
// record.
func applyFieldFlags(cmd *cobra.Command, e *secondary.EmployeeRecord) error {
	e.Title = stringFlag(cmd, "title", e.Title)
	e.TitleOfCourtesy = stringFlag(cmd, "courtesy", e.TitleOfCourtesy)
	e.Address = stringFlag(cmd, "address", e.Address)
	e.City = stringFlag(cmd, "city", e.City)
	e.Region = stringFlag(cmd, "region", e.Region)
	e.PostalCode = stringFlag(cmd, "postal", e.PostalCode)
	e.Country = stringFlag(cmd, "country", e.Country)
	e.HomePhone = stringFlag(cmd, "phone", e.HomePhone)
	e.Extension = stringFlag(cmd, "extension", e.Extension)
	e.Notes = stringFlag(cmd, "notes", e.Notes)
	e.PhotoPath = stringFlag(cmd, "photo", e.PhotoPath)

	if cmd.Flags().Changed("reports-to") {
		v, _ := cmd.Flags().GetInt64("reports-to")
		e.ReportsTo = &v
	}

	var err error
	if e.BirthDate, err = dateFlag(cmd, "birth", e.BirthDate); err != nil {
		return err
	}
	if e.HireDate, err = dateFlag(cmd, "hired", e.HireDate); err != nil {
		return err
	}
	return nil
}

// stringFlag returns the flag value when set, otherwise the current
// value. An explicitly empty flag clears the field.
func stringFlag(cmd *cobra.Command, name string, current *string) *string {
	if !cmd.Flags().Changed(name) {
		return current
	}
	v, _ := cmd.Flags().GetString(name)
	if v == "" {
		return nil
	}
	return &v
}

func dateFlag(cmd *cobra.Command, name string, current *time.Time) (*time.Time, error) {
	if !cmd.Flags().Changed(name) {
		return current, nil
	}
	v, _ := cmd.Flags().GetString(name)
	if v == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateFormat, v)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s value %q: expected %s", name, v, dateFormat)
	}
	return &parsed, nil
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid employee id %q", arg)
	}
	return id, nil
}

func checkMark() string {
	return color.New(color.FgGreen).Sprint("✓")
}

func orDash(v *string) string {
	if v == nil {
		return "-"
	}
	return *v
}

func dashDate(v *time.Time) string {
	if v == nil {
		return "-"
	}
	return v.Format(dateFormat)
}

func printField(label string, v *string) {
	if v == nil {
		return
	}
	fmt.Printf("  %s: %s\n", label, *v)
}

func printDate(label string, v *time.Time) {
	if v == nil {
		return
	}
	fmt.Printf("  %s: %s\n", label, v.Format(dateFormat))
}

// EmployeeCmd returns the employee command
func EmployeeCmd() *cobra.Command {
	return employeeCmd
}

func init() {
	registerFieldFlags(employeeAddCmd)

	registerFieldFlags(employeeUpdateCmd)
	employeeUpdateCmd.Flags().String("last", "", "Last name")
	employeeUpdateCmd.Flags().String("first", "", "First name")

	employeeCmd.AddCommand(employeeAddCmd)
	employeeCmd.AddCommand(employeeListCmd)
	employeeCmd.AddCommand(employeeGetCmd)
	employeeCmd.AddCommand(employeeUpdateCmd)
	employeeCmd.AddCommand(employeeRemoveCmd)
}
