// Package provisioning provides the API client for the provisioning service.
//
// Purpose:
//
//	Typed request/response models for the customer provisioning API.
//	Field names are lower-camel-case on the wire; optional fields are
//	pointers with omitempty so an absent field is omitted entirely
//	rather than sent as null (sparse update semantics).
//
package provisioning

import (
	"time"
)

// Range is the pagination metadata returned alongside every listing.
// Total is the authoritative item count for pagination loops.
type Range struct {
	Offset int64 `json:"offset"`
	Limit  int64 `json:"limit"`
	Total  int64 `json:"total"`
}

// KeyValueEntry is one customer attribute pair.
type KeyValueEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// CustomerAttributes is an ordered attribute set. Keys are not
// required unique at this layer; the server may reject duplicates.
type CustomerAttributes struct {
	Items []KeyValueEntry `json:"items"`
}

// NewCustomerAttributes returns an empty attribute set.
func NewCustomerAttributes() *CustomerAttributes {
	return &CustomerAttributes{Items: []KeyValueEntry{}}
}

// Add appends one key/value pair, preserving insertion order.
func (a *CustomerAttributes) Add(key, value string) {
	a.Items = append(a.Items, KeyValueEntry{Key: key, Value: value})
}

// Customer is a tenant record as returned by the API. Quota values are
// byte counts; quota/user usage is server-authoritative.
type Customer struct {
	ID                   int64               `json:"id"`
	CompanyName          string              `json:"companyName"`
	CustomerContractType string              `json:"customerContractType"`
	QuotaMax             int64               `json:"quotaMax"`
	QuotaUsed            int64               `json:"quotaUsed"`
	UserMax              int64               `json:"userMax"`
	UserUsed             int64               `json:"userUsed"`
	CreatedAt            time.Time           `json:"createdAt"`
	CustomerAttributes   *CustomerAttributes `json:"customerAttributes,omitempty"`
	UpdatedAt            *time.Time          `json:"updatedAt,omitempty"`
	LastLoginAt          *time.Time          `json:"lastLoginAt,omitempty"`
	TrialDaysLeft        *int64              `json:"trialDaysLeft,omitempty"`
	IsLocked             *bool               `json:"isLocked,omitempty"`
	CustomerUUID         *string             `json:"customerUuid,omitempty"`
}

// CustomerList is one page of customers.
type CustomerList struct {
	Range Range      `json:"range"`
	Items []Customer `json:"items"`
}

// AttributeList is one page of customer attributes.
type AttributeList struct {
	Range Range           `json:"range"`
	Items []KeyValueEntry `json:"items"`
}

// Right is a single user permission.
type Right struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Role groups rights assigned to a user.
type Role struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Items       []Right `json:"items,omitempty"`
}

// UserRoles is the role list attached to a user item.
type UserRoles struct {
	Items []Role `json:"items"`
}

// UserItem is the per-user projection returned by the customer-users
// listing.
type UserItem struct {
	ID                  int64      `json:"id"`
	FirstName           string     `json:"firstName"`
	LastName            string     `json:"lastName"`
	UserName            string     `json:"userName"`
	IsLocked            bool       `json:"isLocked"`
	AvatarUUID          string     `json:"avatarUuid"`
	CreatedAt           *time.Time `json:"createdAt,omitempty"`
	ExpireAt            *time.Time `json:"expireAt,omitempty"`
	LastLoginSuccessAt  *time.Time `json:"lastLoginSuccessAt,omitempty"`
	IsEncryptionEnabled *bool      `json:"isEncryptionEnabled,omitempty"`
	Email               *string    `json:"email,omitempty"`
	Phone               *string    `json:"phone,omitempty"`
	HomeRoomID          *int64     `json:"homeRoomId,omitempty"`
	UserRoles           *UserRoles `json:"userRoles,omitempty"`
}

// UserList is one page of customer users.
type UserList struct {
	Range Range      `json:"range"`
	Items []UserItem `json:"items"`
}

// UserAuthData selects the authentication method for a new user.
type UserAuthData struct {
	Method             string  `json:"method"`
	Login              *string `json:"login,omitempty"`
	Password           *string `json:"password,omitempty"`
	MustChangePassword *bool   `json:"mustChangePassword,omitempty"`
	ADConfigID         *int64  `json:"adConfigId,omitempty"`
	OIDConfigID        *int64  `json:"oidConfigId,omitempty"`
}

// FirstAdminUser is the administrator created with a new customer.
// Constructed once at customer-creation time and never mutated.
type FirstAdminUser struct {
	FirstName        string        `json:"firstName"`
	LastName         string        `json:"lastName"`
	UserName         *string       `json:"userName,omitempty"`
	AuthData         *UserAuthData `json:"authData,omitempty"`
	ReceiverLanguage *string       `json:"receiverLanguage,omitempty"`
	NotifyUser       *bool         `json:"notifyUser,omitempty"`
	Email            *string       `json:"email,omitempty"`
	Phone            *string       `json:"phone,omitempty"`
}

// NewLocalFirstAdminUser builds a first admin with basic auth and a
// forced password change on first login. The username defaults to the
// email address when absent.
func NewLocalFirstAdminUser(firstName, lastName string, userName *string, email string, receiverLanguage *string) FirstAdminUser {
	if userName == nil {
		userName = String(email)
	}
	return FirstAdminUser{
		FirstName: firstName,
		LastName:  lastName,
		UserName:  userName,
		AuthData: &UserAuthData{
			Method:             "basic",
			MustChangePassword: Bool(true),
		},
		ReceiverLanguage: receiverLanguage,
		Email:            String(email),
	}
}

// NewCustomerRequest creates a customer. Contract type, quotas and the
// first admin user are required; everything else is omitted from the
// payload when absent.
type NewCustomerRequest struct {
	CustomerContractType string              `json:"customerContractType"`
	QuotaMax             int64               `json:"quotaMax"`
	UserMax              int64               `json:"userMax"`
	FirstAdminUser       FirstAdminUser      `json:"firstAdminUser"`
	CompanyName          *string             `json:"companyName,omitempty"`
	TrialDays            *int64              `json:"trialDays,omitempty"`
	IsLocked             *bool               `json:"isLocked,omitempty"`
	CustomerAttributes   *CustomerAttributes `json:"customerAttributes,omitempty"`
	ProviderCustomerID   *string             `json:"providerCustomerId,omitempty"`
	WebhooksMax          *int64              `json:"webhooksMax,omitempty"`
}

// NewCustomerResponse is the created customer.
type NewCustomerResponse struct {
	ID                   int64               `json:"id"`
	CompanyName          string              `json:"companyName"`
	CustomerContractType string              `json:"customerContractType"`
	QuotaMax             int64               `json:"quotaMax"`
	UserMax              int64               `json:"userMax"`
	IsLocked             *bool               `json:"isLocked,omitempty"`
	TrialDays            *int64              `json:"trialDays,omitempty"`
	CreatedAt            *time.Time          `json:"createdAt,omitempty"`
	FirstAdminUser       FirstAdminUser      `json:"firstAdminUser"`
	CustomerAttributes   *CustomerAttributes `json:"customerAttributes,omitempty"`
	ProviderCustomerID   *string             `json:"providerCustomerId,omitempty"`
	WebhooksMax          *int64              `json:"webhooksMax,omitempty"`
	CustomerUUID         string              `json:"customerUuid"`
}

// UpdateCustomerRequest carries only the fields the caller intends to
// change; absent fields are left untouched server-side.
type UpdateCustomerRequest struct {
	CompanyName          *string `json:"companyName,omitempty"`
	CustomerContractType *string `json:"customerContractType,omitempty"`
	QuotaMax             *int64  `json:"quotaMax,omitempty"`
	UserMax              *int64  `json:"userMax,omitempty"`
	IsLocked             *bool   `json:"isLocked,omitempty"`
	ProviderCustomerID   *string `json:"providerCustomerId,omitempty"`
	WebhooksMax          *int64  `json:"webhooksMax,omitempty"`
}

// UpdateCustomerResponse is the customer after an update.
type UpdateCustomerResponse struct {
	ID                   int64               `json:"id"`
	CompanyName          string              `json:"companyName"`
	CustomerContractType string              `json:"customerContractType"`
	QuotaMax             int64               `json:"quotaMax"`
	UserMax              int64               `json:"userMax"`
	CustomerUUID         string              `json:"customerUuid"`
	IsLocked             *bool               `json:"isLocked,omitempty"`
	TrialDays            *int64              `json:"trialDays,omitempty"`
	CreatedAt            *time.Time          `json:"createdAt,omitempty"`
	UpdatedAt            *time.Time          `json:"updatedAt,omitempty"`
	CustomerAttributes   *CustomerAttributes `json:"customerAttributes,omitempty"`
	ProviderCustomerID   *string             `json:"providerCustomerId,omitempty"`
	WebhooksMax          *int64              `json:"webhooksMax,omitempty"`
}

// String returns a pointer to v.
func String(v string) *string { return &v }

// Int64 returns a pointer to v.
func Int64(v int64) *int64 { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }
