// Package mfapi implements the fund catalog and fund history sources
// on top of the free https://api.mfapi.in mutual-fund API.
package mfapi

import (
	"fmt"
	"log"
	"net/http"

	"github.com/etnz/fundbench"
	"github.com/etnz/fundbench/date"
	"github.com/shopspring/decimal"
)

const defaultBaseURL = "https://api.mfapi.in"

// Client talks to the mfapi scheme endpoints. The zero value is not
// usable; call New.
type Client struct {
	BaseURL string
	http    *http.Client
}

// New returns a Client with a daily-expiring disk cache: the catalog
// and the NAV histories only change once per trading day.
func New() *Client {
	return &Client{BaseURL: defaultBaseURL, http: newDailyCachingClient()}
}

// NewWithHTTPClient returns a Client using the given http.Client,
// bypassing the disk cache. Meant for tests.
func NewWithHTTPClient(baseURL string, c *http.Client) *Client {
	return &Client{BaseURL: baseURL, http: c}
}

// List fetches the full scheme catalog: every scheme code with its
// canonical scheme name.
func (c *Client) List() ([]fundbench.CatalogEntry, error) {
	addr := c.BaseURL + "/mf"
	entries := make([]fundbench.CatalogEntry, 0)
	if err := jwget(c.http, addr, &entries); err != nil {
		return nil, fmt.Errorf("fetching scheme list: %w", err)
	}
	return entries, nil
}

// navInfo is one raw NAV point: the date in day-month-year order and
// the NAV serialized as a decimal string.
type navInfo struct {
	Date string `json:"date"`
	NAV  string `json:"nav"`
}

// schemeDetail is the payload of the scheme endpoint.
type schemeDetail struct {
	Meta struct {
		FundHouse  string `json:"fund_house"`
		SchemeName string `json:"scheme_name"`
	} `json:"meta"`
	Data   []navInfo `json:"data"`
	Status string    `json:"status"`
}

// Fetch retrieves a scheme's metadata and NAV history. The feed serves
// points newest first; the returned history is chronological with
// unique dates. Unparseable points are dropped with a diagnostic.
func (c *Client) Fetch(code int) (*fundbench.FundHistory, error) {
	addr := fmt.Sprintf("%s/mf/%d", c.BaseURL, code)
	var detail schemeDetail
	if err := jwget(c.http, addr, &detail); err != nil {
		return nil, fmt.Errorf("fetching scheme %d: %w", code, err)
	}

	// Histories run to thousands of points; collect then sort once.
	days := make([]date.Date, 0, len(detail.Data))
	values := make([]float64, 0, len(detail.Data))
	for _, info := range detail.Data {
		on, err := date.ParseDMY(info.Date)
		if err != nil {
			log.Printf("scheme %d: dropping point: %v", code, err)
			continue
		}
		value, err := decimal.NewFromString(info.NAV)
		if err != nil {
			log.Printf("scheme %d: dropping point on %s: bad nav %q", code, on, info.NAV)
			continue
		}
		days = append(days, on)
		values = append(values, value.InexactFloat64())
	}
	nav := new(date.History[float64]).AppendAll(days, values)

	return &fundbench.FundHistory{
		Name:  detail.Meta.SchemeName,
		House: detail.Meta.FundHouse,
		NAV:   nav,
	}, nil
}
