package mfapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fundfolio/fundfolio"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sample mirrors the endpoint's payload, values as strings and dates
// descending as published.
const sample = `{
  "meta": {
    "fund_house": "Axis Mutual Fund",
    "scheme_code": 120503,
    "scheme_name": "Axis Bluechip Fund Direct Growth"
  },
  "data": [
    {"date": "17-06-2024", "nav": "106.10"},
    {"date": "14-06-2024", "nav": "104.30"},
    {"date": "13-06-2024", "nav": "103.95"}
  ],
  "status": "SUCCESS"
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewWithClient(srv.URL, srv.Client(), zerolog.Nop())
}

func TestSeries(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/mf/120503", r.URL.Path)
		w.Write([]byte(sample))
	})

	series, err := c.Series(context.Background(), "120503")
	require.NoError(t, err)
	require.Len(t, series, 3)

	// normalized to ascending dates
	assert.Equal(t, fundfolio.MustParse("2024-06-13"), series[0].Date)
	assert.Equal(t, fundfolio.MustParse("2024-06-17"), series[2].Date)
	assert.True(t, series[1].NAV.Equal(fundfolio.M(104.30, fundfolio.DefaultCurrency)))
}

func TestSeriesEmptyData(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [], "status": "FAIL"}`))
	})

	_, err := c.Series(context.Background(), "999999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no published values")
}

func TestSeriesBadDate(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [{"date": "2024-06-14", "nav": "104.30"}], "status": "SUCCESS"}`))
	})

	_, err := c.Series(context.Background(), "120503")
	assert.ErrorContains(t, err, "invalid date")
}

func TestSeriesBadNAV(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [{"date": "14-06-2024", "nav": "N.A."}], "status": "SUCCESS"}`))
	})

	_, err := c.Series(context.Background(), "120503")
	assert.ErrorContains(t, err, "invalid nav")
}

func TestSeriesHTTPError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	_, err := c.Series(context.Background(), "120503")
	require.Error(t, err)
}

func TestSchemeName(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sample))
	})

	name, err := c.SchemeName(context.Background(), "120503")
	require.NoError(t, err)
	assert.Equal(t, "Axis Bluechip Fund Direct Growth", name)
}

func TestSchemeNameMissing(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [], "status": "FAIL"}`))
	})

	_, err := c.SchemeName(context.Background(), "999999")
	assert.ErrorContains(t, err, "no scheme name")
}
