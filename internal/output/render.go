// Package output provides the domain renderers for provctl results.
package output

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/provtools/provctl/internal/client/provisioning"
)

// Format selects the rendering for command results.
type Format string

const (
	// FormatPretty is the human-readable default.
	FormatPretty Format = "pretty"
	// FormatCSV is comma-separated output for scripting.
	FormatCSV Format = "csv"
	// FormatJSON is machine-readable JSON.
	FormatJSON Format = "json"
)

// Column headers are part of the CSV contract; order matters for
// downstream consumers.
var (
	customerHeaders  = []string{"companyName", "contractType", "userUsed", "userMax", "quotaUsed", "quotaMax", "id", "createdAt"}
	userHeaders      = []string{"id", "firstName", "lastName", "userName", "isLocked"}
	attributeHeaders = []string{"key", "value"}
)

func customerRow(c provisioning.Customer) []string {
	return []string{
		c.CompanyName,
		c.CustomerContractType,
		strconv.FormatInt(c.UserUsed, 10),
		strconv.FormatInt(c.UserMax, 10),
		strconv.FormatInt(c.QuotaUsed, 10),
		strconv.FormatInt(c.QuotaMax, 10),
		strconv.FormatInt(c.ID, 10),
		c.CreatedAt.Format(time.RFC3339),
	}
}

func userRow(u provisioning.UserItem) []string {
	return []string{
		strconv.FormatInt(u.ID, 10),
		u.FirstName,
		u.LastName,
		u.UserName,
		strconv.FormatBool(u.IsLocked),
	}
}

func attributeRow(a provisioning.KeyValueEntry) []string {
	return []string{a.Key, a.Value}
}

// Customers renders one page (or an aggregated fetch-all result) of
// customers.
func Customers(w io.Writer, format Format, list *provisioning.CustomerList) error {
	switch format {
	case FormatCSV:
		rows := make([][]string, 0, len(list.Items))
		for _, c := range list.Items {
			rows = append(rows, customerRow(c))
		}
		return PrintCSV(w, customerHeaders, rows)
	case FormatJSON:
		return PrintJSON(w, list)
	default:
		fmt.Fprintf(w, "total customers: %d | offset: %d | limit: %d\n",
			list.Range.Total, list.Range.Offset, list.Range.Limit)
		rows := make([][]string, 0, len(list.Items))
		for _, c := range list.Items {
			rows = append(rows, customerRow(c))
		}
		return PrintTable(w, customerHeaders, rows)
	}
}

// Customer renders a single customer record.
func Customer(w io.Writer, format Format, c *provisioning.Customer) error {
	switch format {
	case FormatCSV:
		return PrintCSV(w, customerHeaders, [][]string{customerRow(*c)})
	case FormatJSON:
		return PrintJSON(w, c)
	default:
		return PrintTable(w, customerHeaders, [][]string{customerRow(*c)})
	}
}

// Users renders one page of customer users.
func Users(w io.Writer, format Format, list *provisioning.UserList) error {
	switch format {
	case FormatCSV:
		rows := make([][]string, 0, len(list.Items))
		for _, u := range list.Items {
			rows = append(rows, userRow(u))
		}
		return PrintCSV(w, userHeaders, rows)
	case FormatJSON:
		return PrintJSON(w, list)
	default:
		fmt.Fprintf(w, "total users: %d | offset: %d | limit: %d\n",
			list.Range.Total, list.Range.Offset, list.Range.Limit)
		rows := make([][]string, 0, len(list.Items))
		for _, u := range list.Items {
			rows = append(rows, userRow(u))
		}
		return PrintTable(w, userHeaders, rows)
	}
}

// Attributes renders one page of customer attributes.
func Attributes(w io.Writer, format Format, customerID int64, list *provisioning.AttributeList) error {
	switch format {
	case FormatCSV:
		rows := make([][]string, 0, len(list.Items))
		for _, a := range list.Items {
			rows = append(rows, attributeRow(a))
		}
		return PrintCSV(w, attributeHeaders, rows)
	case FormatJSON:
		return PrintJSON(w, list)
	default:
		fmt.Fprintf(w, "customer attributes for customer with id: %d\n", customerID)
		if len(list.Items) == 0 {
			fmt.Fprintln(w, "customer has no attributes.")
			return nil
		}
		rows := make([][]string, 0, len(list.Items))
		for _, a := range list.Items {
			rows = append(rows, attributeRow(a))
		}
		return PrintTable(w, attributeHeaders, rows)
	}
}
