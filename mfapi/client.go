// Package mfapi fetches published mutual fund values from api.mfapi.in.
//
// Published values change at most once a day, so every response is cached on
// disk with a daily expiry.
package mfapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/fundfolio/fundfolio"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the public endpoint serving fund value histories.
const DefaultBaseURL = "https://api.mfapi.in"

// navDateFormat is the dd-mm-yyyy format the endpoint publishes dates in.
const navDateFormat = "02-01-2006"

// Client queries fund value histories and metadata.
type Client struct {
	base   string
	client *http.Client
	log    zerolog.Logger
}

// New returns a client for the public endpoint, with the daily disk cache.
func New(log zerolog.Logger) *Client {
	return &Client{base: DefaultBaseURL, client: daily(log), log: log}
}

// NewWithClient returns a client for a custom endpoint and http client.
func NewWithClient(base string, hc *http.Client, log zerolog.Logger) *Client {
	return &Client{base: base, client: hc, log: log}
}

// jwget performs an HTTP GET request and unmarshals the JSON response into the provided data structure.
func (c *Client) jwget(ctx context.Context, addr string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}

// Series returns the full published value history of a scheme, normalized to
// ascending dates.
func (c *Client) Series(ctx context.Context, schemeID string) (fundfolio.NAVSeries, error) {
	addr := fmt.Sprintf("%s/mf/%s", c.base, schemeID)

	// the endpoint publishes dates and values as strings
	var content struct {
		Data []struct {
			Date string `json:"date"`
			NAV  string `json:"nav"`
		} `json:"data"`
		Status string `json:"status"`
	}
	if err := c.jwget(ctx, addr, &content); err != nil {
		return nil, fmt.Errorf("scheme %s: %w", schemeID, err)
	}
	if len(content.Data) == 0 {
		return nil, fmt.Errorf("scheme %s: no published values (status %q)", schemeID, content.Status)
	}

	series := make(fundfolio.NAVSeries, 0, len(content.Data))
	for _, row := range content.Data {
		on, err := time.Parse(navDateFormat, row.Date)
		if err != nil {
			return nil, fmt.Errorf("scheme %s: invalid date %q: %w", schemeID, row.Date, err)
		}
		nav, err := decimal.NewFromString(row.NAV)
		if err != nil {
			return nil, fmt.Errorf("scheme %s: invalid nav %q on %s: %w", schemeID, row.NAV, row.Date, err)
		}
		series = append(series, fundfolio.NAVPoint{
			Date: fundfolio.NewDate(on.Date()),
			NAV:  fundfolio.M(nav, fundfolio.DefaultCurrency),
		})
	}
	c.log.Debug().Str("scheme", schemeID).Int("points", len(series)).Msg("value series fetched")
	return series.Normalize(), nil
}

// SchemeName returns the published display name of a scheme.
func (c *Client) SchemeName(ctx context.Context, schemeID string) (string, error) {
	addr := fmt.Sprintf("%s/mf/%s", c.base, schemeID)

	var content any
	if err := c.jwget(ctx, addr, &content); err != nil {
		return "", fmt.Errorf("scheme %s: %w", schemeID, err)
	}
	value, err := jsonpath.Get("$.meta.scheme_name", content)
	if err != nil {
		return "", fmt.Errorf("scheme %s: no scheme name in metadata: %w", schemeID, err)
	}
	name, ok := value.(string)
	if !ok || name == "" {
		return "", fmt.Errorf("scheme %s: unexpected scheme name %v", schemeID, value)
	}
	return name, nil
}

var _ fundfolio.NAVSource = (*Client)(nil)
