package sheets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

const testSheetURL = "https://docs.google.com/spreadsheets/d/1AbC-d_9/edit#gid=0"

func TestSpreadsheetID(t *testing.T) {
	id, err := SpreadsheetID(testSheetURL)
	require.NoError(t, err)
	assert.Equal(t, "1AbC-d_9", id)

	_, err = SpreadsheetID("https://example.com/not-a-sheet")
	assert.ErrorIs(t, err, ErrInvalidSheetURL)
}

func newTestAppender(t *testing.T, handler http.HandlerFunc) *Appender {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a := &Appender{Logger: zerolog.Nop()}
	require.NoError(t, a.NewWithOptions(context.Background(),
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	))
	return a
}

func TestAppendRow(t *testing.T) {
	var appended sheetsapi.ValueRange
	var inputOption string

	a := newTestAppender(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && strings.HasSuffix(r.URL.Path, "/spreadsheets/1AbC-d_9"):
			_, _ = w.Write([]byte(`{"sheets":[{"properties":{"title":"Leads"}},{"properties":{"title":"Archive"}}]}`))
		case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, ":append"):
			assert.Contains(t, r.URL.Path, "/spreadsheets/1AbC-d_9/values/")
			assert.Contains(t, r.URL.Path, "Leads")
			inputOption = r.URL.Query().Get("valueInputOption")
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&appended))
			_, _ = w.Write([]byte(`{"spreadsheetId":"1AbC-d_9","updates":{"updatedRows":1}}`))
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})

	err := a.AppendRow(context.Background(), testSheetURL, []interface{}{"Amy", "a@x.com", "555"})
	require.NoError(t, err)

	assert.Equal(t, "RAW", inputOption)
	require.Len(t, appended.Values, 1)
	assert.Equal(t, []interface{}{"Amy", "a@x.com", "555"}, appended.Values[0])
}

func TestAppendRowNoWorksheet(t *testing.T) {
	a := newTestAppender(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"sheets":[]}`))
	})

	err := a.AppendRow(context.Background(), testSheetURL, []interface{}{"x"})
	assert.ErrorIs(t, err, ErrNoWorksheet)
}

func TestAppendRowAPIError(t *testing.T) {
	a := newTestAppender(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"The caller does not have permission"}}`))
	})

	err := a.AppendRow(context.Background(), testSheetURL, []interface{}{"x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetching spreadsheet 1AbC-d_9")
}

func TestAppendRowInvalidURL(t *testing.T) {
	a := newTestAppender(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
	})
	assert.ErrorIs(t, a.AppendRow(context.Background(), "nope", nil), ErrInvalidSheetURL)
}

func TestAppendRowNotInitialized(t *testing.T) {
	a := &Appender{Logger: zerolog.Nop()}
	assert.ErrorIs(t, a.AppendRow(context.Background(), testSheetURL, []interface{}{"x"}), ErrNotInitialized)
}

func TestWorksheetRange(t *testing.T) {
	assert.Equal(t, "'Leads'", worksheetRange("Leads"))
	assert.Equal(t, "'Bob''s Leads'", worksheetRange("Bob's Leads"))
	assert.Equal(t, "''''''", worksheetRange("''"))
}

func TestAppendRowQuotedTitle(t *testing.T) {
	var appendPath string

	a := newTestAppender(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodGet {
			_, _ = w.Write([]byte(`{"sheets":[{"properties":{"title":"Bob's Leads"}}]}`))
			return
		}
		appendPath = r.URL.Path
		_, _ = w.Write([]byte(`{"spreadsheetId":"1AbC-d_9"}`))
	})

	require.NoError(t, a.AppendRow(context.Background(), testSheetURL, []interface{}{"Amy"}))
	assert.True(t, strings.HasSuffix(appendPath, "/values/'Bob''s Leads':append"), appendPath)
}
