package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/provtools/provctl/internal/errors"
)

func TestNewCustomerFullFlow(t *testing.T) {
	in := strings.NewReader(strings.Join([]string{
		"Ada",
		"Lovelace",
		"ada@acme.test",
		"y",
		"ada.lovelace",
		"Acme Corp",
		"1000000",
		"50",
	}, "\n") + "\n")

	var out bytes.Buffer
	req, err := NewCustomer(in, &out)
	if err != nil {
		t.Fatalf("NewCustomer: %v", err)
	}

	if req.CustomerContractType != "pay" {
		t.Errorf("contract type = %q, want pay", req.CustomerContractType)
	}
	if req.QuotaMax != 1000000 || req.UserMax != 50 {
		t.Errorf("limits = %d/%d, want 1000000/50", req.QuotaMax, req.UserMax)
	}
	if req.CompanyName == nil || *req.CompanyName != "Acme Corp" {
		t.Errorf("company name = %v", req.CompanyName)
	}

	admin := req.FirstAdminUser
	if admin.FirstName != "Ada" || admin.LastName != "Lovelace" {
		t.Errorf("admin name = %q %q", admin.FirstName, admin.LastName)
	}
	if admin.UserName == nil || *admin.UserName != "ada.lovelace" {
		t.Errorf("username = %v, want ada.lovelace", admin.UserName)
	}
	if admin.Email == nil || *admin.Email != "ada@acme.test" {
		t.Errorf("email = %v", admin.Email)
	}
	if admin.NotifyUser == nil || !*admin.NotifyUser {
		t.Errorf("admin should be notified")
	}
	if admin.AuthData == nil || admin.AuthData.Method != "basic" {
		t.Errorf("auth data = %+v, want basic auth", admin.AuthData)
	}
	if admin.AuthData.MustChangePassword == nil || !*admin.AuthData.MustChangePassword {
		t.Errorf("must change password should be set")
	}
}

func TestNewCustomerUsernameDefaultsToEmail(t *testing.T) {
	in := strings.NewReader(strings.Join([]string{
		"Ada", "Lovelace", "ada@acme.test", "n", "Acme Corp", "500", "5",
	}, "\n") + "\n")

	req, err := NewCustomer(in, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("NewCustomer: %v", err)
	}
	if req.FirstAdminUser.UserName == nil || *req.FirstAdminUser.UserName != "ada@acme.test" {
		t.Errorf("username = %v, want email fallback", req.FirstAdminUser.UserName)
	}
}

func TestNewCustomerReasksInvalidQuota(t *testing.T) {
	in := strings.NewReader(strings.Join([]string{
		"Ada", "Lovelace", "ada@acme.test", "n", "Acme Corp",
		"not-a-number", "0", "-3", "1024",
		"5",
	}, "\n") + "\n")

	var out bytes.Buffer
	req, err := NewCustomer(in, &out)
	if err != nil {
		t.Fatalf("NewCustomer: %v", err)
	}
	if req.QuotaMax != 1024 {
		t.Errorf("quota = %d, want 1024", req.QuotaMax)
	}
	if got := strings.Count(out.String(), "Please enter a valid positive number."); got != 3 {
		t.Errorf("expected 3 re-prompt notices, got %d", got)
	}
}

func TestNewCustomerInputExhausted(t *testing.T) {
	in := strings.NewReader("Ada\n")

	_, err := NewCustomer(in, &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected error for truncated input")
	}
	if errors.KindOf(err) != errors.KindIO {
		t.Errorf("kind = %v, want %v", errors.KindOf(err), errors.KindIO)
	}
}
