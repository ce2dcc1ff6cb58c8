// Package provisioning provides tests for the wire models.
package provisioning

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestNewCustomerRequestSparseRoundTrip(t *testing.T) {
	req := NewCustomerRequest{
		CustomerContractType: "pay",
		QuotaMax:             5 << 30,
		UserMax:              25,
		FirstAdminUser:       NewLocalFirstAdminUser("Grace", "Hopper", String("ghopper"), "grace@initech.example", nil),
		CompanyName:          String("Initech"),
		// TrialDays, IsLocked, CustomerAttributes, ProviderCustomerID,
		// WebhooksMax deliberately absent.
	}

	payload, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(payload, &raw); err != nil {
		t.Fatalf("unmarshal raw: %v", err)
	}

	for _, present := range []string{"customerContractType", "quotaMax", "userMax", "firstAdminUser", "companyName"} {
		if _, ok := raw[present]; !ok {
			t.Errorf("field %q missing from wire payload", present)
		}
	}
	for _, absent := range []string{"trialDays", "isLocked", "customerAttributes", "providerCustomerId", "webhooksMax"} {
		if _, ok := raw[absent]; ok {
			t.Errorf("absent field %q must be omitted, not sent", absent)
		}
	}
	for key, value := range raw {
		if string(value) == "null" {
			t.Errorf("field %q serialized as explicit null", key)
		}
	}

	var back NewCustomerRequest
	if err := json.Unmarshal(payload, &back); err != nil {
		t.Fatalf("unmarshal back: %v", err)
	}
	if !reflect.DeepEqual(req, back) {
		t.Errorf("round trip changed the request:\n got %+v\nwant %+v", back, req)
	}
}

func TestUpdateCustomerRequestOmitsUnsetFields(t *testing.T) {
	cases := []struct {
		name string
		req  UpdateCustomerRequest
		keys []string
	}{
		{"company name only", UpdateCustomerRequest{CompanyName: String("Globex")}, []string{"companyName"}},
		{"quota max only", UpdateCustomerRequest{QuotaMax: Int64(10 << 30)}, []string{"quotaMax"}},
		{"user max only", UpdateCustomerRequest{UserMax: Int64(50)}, []string{"userMax"}},
		{"zero values still sent", UpdateCustomerRequest{UserMax: Int64(0), IsLocked: Bool(false)}, []string{"userMax", "isLocked"}},
	}

	for _, tc := range cases {
		payload, err := json.Marshal(tc.req)
		if err != nil {
			t.Fatalf("%s: marshal: %v", tc.name, err)
		}
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(payload, &raw); err != nil {
			t.Fatalf("%s: unmarshal: %v", tc.name, err)
		}
		if len(raw) != len(tc.keys) {
			t.Errorf("%s: payload %s carries %d fields, want %d", tc.name, payload, len(raw), len(tc.keys))
		}
		for _, key := range tc.keys {
			if _, ok := raw[key]; !ok {
				t.Errorf("%s: missing %q", tc.name, key)
			}
		}
	}
}

func TestFirstAdminUserDefaults(t *testing.T) {
	admin := NewLocalFirstAdminUser("Ada", "Lovelace", nil, "ada@initech.example", nil)

	if admin.UserName == nil || *admin.UserName != "ada@initech.example" {
		t.Errorf("username should default to email, got %v", admin.UserName)
	}
	if admin.AuthData == nil || admin.AuthData.Method != "basic" {
		t.Fatalf("auth data = %+v", admin.AuthData)
	}
	if admin.AuthData.MustChangePassword == nil || !*admin.AuthData.MustChangePassword {
		t.Error("first admin must change password on first login")
	}
}

func TestCustomerAttributesPreserveOrderAndDuplicates(t *testing.T) {
	attrs := NewCustomerAttributes()
	attrs.Add("b", "2")
	attrs.Add("a", "1")
	attrs.Add("b", "3")

	payload, err := json.Marshal(attrs)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back CustomerAttributes
	if err := json.Unmarshal(payload, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := []KeyValueEntry{{"b", "2"}, {"a", "1"}, {"b", "3"}}
	if !reflect.DeepEqual(back.Items, want) {
		t.Errorf("items = %+v, want insertion order preserved", back.Items)
	}
}
