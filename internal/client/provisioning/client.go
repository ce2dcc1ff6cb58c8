// Package provisioning provides the API client for the provisioning service.
//
// Purpose:
//
//	REST client for the customer provisioning API. Builds one HTTP
//	request per operation, authenticates via the service-token header,
//	and maps every non-success status through the shared error
//	dispatch table. Construction validates the token against the API,
//	so creating a client can fail for the same reasons as any request.
//
// Dependencies:
//   - net/http: HTTP client
//   - internal/errors: error taxonomy and status dispatch
//   - go.uber.org/zap: request-level debug logging
//
package provisioning

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/provtools/provctl/internal/errors"
)

const (
	apiBase     = "api/v4/provisioning"
	tokenHeader = "X-Sds-Service-Token"
	userAgent   = "provctl"

	// DefaultLimit mirrors the server's page-size ceiling.
	DefaultLimit int64 = 500
	// DefaultOffset is the first page.
	DefaultOffset int64 = 0
)

// ListParams are the pagination and search parameters shared by the
// listing operations. Nil Offset/Limit fall back to the defaults;
// Filter and Sort are appended only when present and passed through
// verbatim (server-defined syntax).
type ListParams struct {
	Filter string
	Sort   string
	Offset *int64
	Limit  *int64
}

// PageFunc observes fetch-all progress after each page: items
// accumulated so far and the server-reported total.
type PageFunc func(fetched, total int64)

// Client talks to one provisioning endpoint with one service token for
// the lifetime of a CLI invocation.
type Client struct {
	baseURL    *url.URL
	token      string
	httpClient *http.Client
	log        *zap.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger attaches a logger for request-level debug output.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New creates a client for baseURL and validates token with a
// lightweight list call (limit=1). Any non-200 pre-check response
// fails construction with an unauthorized error carrying no body.
func New(ctx context.Context, baseURL, token string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.NewInvalidURL(err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.NewInvalidURL(fmt.Errorf("missing scheme or host in %q", baseURL))
	}

	c := &Client{
		baseURL:    u,
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.checkTokenValidity(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// checkTokenValidity probes the customers listing with limit=1.
func (c *Client) checkTokenValidity(ctx context.Context) error {
	u := c.endpoint("customers")
	q := u.Query()
	q.Set("limit", "1")
	u.RawQuery = q.Encode()

	req, err := c.newRequest(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.NewTransportFailure(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Debug("token pre-check rejected", zap.Int("status", resp.StatusCode))
		return errors.NewUnauthorized(nil)
	}
	return nil
}

// ListCustomers returns one page of customers.
func (c *Client) ListCustomers(ctx context.Context, params ListParams, includeAttributes bool) (*CustomerList, error) {
	u := c.endpoint("customers")
	q := listQuery(params)
	q.Set("include_attributes", strconv.FormatBool(includeAttributes))
	u.RawQuery = q.Encode()

	var list CustomerList
	if err := c.call(ctx, http.MethodGet, u, nil, http.StatusOK, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// ListAllCustomers fetches the complete customer list in sequential
// pages of DefaultLimit, preserving server order. The first failing
// page aborts the whole operation; no partial list is returned.
// onPage, when non-nil, is invoked after each page.
func (c *Client) ListAllCustomers(ctx context.Context, params ListParams, includeAttributes bool, onPage PageFunc) (*CustomerList, error) {
	all := &CustomerList{Items: []Customer{}}

	for offset := DefaultOffset; ; {
		page := params
		page.Offset = Int64(offset)
		page.Limit = Int64(DefaultLimit)

		res, err := c.ListCustomers(ctx, page, includeAttributes)
		if err != nil {
			return nil, err
		}

		all.Items = append(all.Items, res.Items...)
		// The latest page's range is authoritative for the loop.
		all.Range = Range{Offset: 0, Limit: DefaultLimit, Total: res.Range.Total}
		if onPage != nil {
			onPage(int64(len(all.Items)), res.Range.Total)
		}

		offset += DefaultLimit
		if offset >= res.Range.Total {
			return all, nil
		}
	}
}

// GetCustomer returns one customer by id.
func (c *Client) GetCustomer(ctx context.Context, id int64, includeAttributes bool) (*Customer, error) {
	u := c.endpoint("customers", strconv.FormatInt(id, 10))
	q := u.Query()
	q.Set("include_attributes", strconv.FormatBool(includeAttributes))
	u.RawQuery = q.Encode()

	var customer Customer
	if err := c.call(ctx, http.MethodGet, u, nil, http.StatusOK, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// CreateCustomer creates a new customer with its first admin user.
func (c *Client) CreateCustomer(ctx context.Context, req NewCustomerRequest) (*NewCustomerResponse, error) {
	u := c.endpoint("customers")

	var created NewCustomerResponse
	if err := c.call(ctx, http.MethodPost, u, req, http.StatusCreated, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateCustomer applies a sparse update to one customer.
func (c *Client) UpdateCustomer(ctx context.Context, id int64, req UpdateCustomerRequest) (*UpdateCustomerResponse, error) {
	u := c.endpoint("customers", strconv.FormatInt(id, 10))

	var updated UpdateCustomerResponse
	if err := c.call(ctx, http.MethodPut, u, req, http.StatusOK, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteCustomer removes one customer.
func (c *Client) DeleteCustomer(ctx context.Context, id int64) error {
	u := c.endpoint("customers", strconv.FormatInt(id, 10))
	return c.call(ctx, http.MethodDelete, u, nil, http.StatusNoContent, nil)
}

// GetCustomerAttributes returns one page of a customer's attributes.
func (c *Client) GetCustomerAttributes(ctx context.Context, id int64, params ListParams) (*AttributeList, error) {
	u := c.endpoint("customers", strconv.FormatInt(id, 10), "customerAttributes")
	u.RawQuery = listQuery(params).Encode()

	var list AttributeList
	if err := c.call(ctx, http.MethodGet, u, nil, http.StatusOK, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// UpdateCustomerAttributes replaces attribute values by key and
// returns the updated customer.
func (c *Client) UpdateCustomerAttributes(ctx context.Context, id int64, attrs *CustomerAttributes) (*Customer, error) {
	u := c.endpoint("customers", strconv.FormatInt(id, 10), "customerAttributes")

	var customer Customer
	if err := c.call(ctx, http.MethodPut, u, attrs, http.StatusOK, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// ListCustomerUsers returns one page of a customer's users.
func (c *Client) ListCustomerUsers(ctx context.Context, id int64, params ListParams) (*UserList, error) {
	u := c.endpoint("customers", strconv.FormatInt(id, 10), "users")
	u.RawQuery = listQuery(params).Encode()

	var list UserList
	if err := c.call(ctx, http.MethodGet, u, nil, http.StatusOK, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) endpoint(parts ...string) *url.URL {
	return c.baseURL.JoinPath(append([]string{apiBase}, parts...)...)
}

// listQuery applies the pagination defaults and appends filter/sort
// only when present.
func listQuery(p ListParams) url.Values {
	limit := DefaultLimit
	if p.Limit != nil {
		limit = *p.Limit
	}
	offset := DefaultOffset
	if p.Offset != nil {
		offset = *p.Offset
	}

	q := url.Values{}
	q.Set("limit", strconv.FormatInt(limit, 10))
	q.Set("offset", strconv.FormatInt(offset, 10))
	if p.Filter != "" {
		q.Set("filter", p.Filter)
	}
	if p.Sort != "" {
		q.Set("sort", p.Sort)
	}
	return q
}

func (c *Client) newRequest(ctx context.Context, method string, u *url.URL, body interface{}) (*http.Request, error) {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, errors.NewTransportFailure(err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, errors.NewTransportFailure(err)
	}
	req.Header.Set(tokenHeader, c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	return req, nil
}

// call sends one request and decodes the response into out when the
// status matches want. Every other status decodes the standard error
// body and goes through the dispatch table; a body that fails to
// decode surfaces as a transport failure.
func (c *Client) call(ctx context.Context, method string, u *url.URL, body interface{}, want int, out interface{}) error {
	req, err := c.newRequest(ctx, method, u, body)
	if err != nil {
		return err
	}

	c.log.Debug("provisioning request", zap.String("method", method), zap.String("url", u.Redacted()))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.NewTransportFailure(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		var apiErr errors.APIErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil {
			return errors.NewTransportFailure(err)
		}
		return errors.FromStatus(resp.StatusCode, &apiErr)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewTransportFailure(err)
	}
	return nil
}
