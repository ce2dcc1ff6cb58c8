package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/provtools/provctl/internal/client/provisioning"
	"github.com/provtools/provctl/internal/errors"
)

// NewCustomer walks the operator through creating a customer: first the
// admin user, then the customer configuration. Quota and user limits
// are re-asked until a positive integer is entered. The contract type
// is fixed to "pay" and the admin is notified by mail.
func NewCustomer(in io.Reader, out io.Writer) (*provisioning.NewCustomerRequest, error) {
	r := bufio.NewReader(in)

	fmt.Fprintln(out, "Step 1: Enter first admin user")

	firstName, err := askLine(r, out, "Please enter first name: ")
	if err != nil {
		return nil, err
	}
	lastName, err := askLine(r, out, "Please enter last name: ")
	if err != nil {
		return nil, err
	}
	email, err := askLine(r, out, "Please enter email address: ")
	if err != nil {
		return nil, err
	}

	var userName *string
	wantUserName, err := askConfirm(r, out, "Provide username? [y/N]: ")
	if err != nil {
		return nil, err
	}
	if wantUserName {
		name, err := askLine(r, out, "Please enter username: ")
		if err != nil {
			return nil, err
		}
		userName = provisioning.String(name)
	}

	fmt.Fprintln(out, "Step 2: Configure customer")

	companyName, err := askLine(r, out, "Please enter company name: ")
	if err != nil {
		return nil, err
	}
	quotaMax, err := askPositiveInt(r, out, "Please enter maximum quota (in bytes): ")
	if err != nil {
		return nil, err
	}
	userMax, err := askPositiveInt(r, out, "Please enter maximum users: ")
	if err != nil {
		return nil, err
	}

	admin := provisioning.NewLocalFirstAdminUser(firstName, lastName, userName, email, nil)
	admin.NotifyUser = provisioning.Bool(true)

	return &provisioning.NewCustomerRequest{
		CustomerContractType: "pay",
		QuotaMax:             quotaMax,
		UserMax:              userMax,
		FirstAdminUser:       admin,
		CompanyName:          provisioning.String(companyName),
	}, nil
}

func askLine(r *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", errors.NewIO(err)
	}
	return strings.TrimSpace(line), nil
}

func askConfirm(r *bufio.Reader, out io.Writer, label string) (bool, error) {
	answer, err := askLine(r, out, label)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// askPositiveInt keeps asking until the operator enters an integer
// greater than zero.
func askPositiveInt(r *bufio.Reader, out io.Writer, label string) (int64, error) {
	for {
		answer, err := askLine(r, out, label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.ParseInt(answer, 10, 64)
		if err != nil || n <= 0 {
			fmt.Fprintln(out, "Please enter a valid positive number.")
			continue
		}
		return n, nil
	}
}
