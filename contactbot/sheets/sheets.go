// Package sheets appends rows to a Google spreadsheet.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// Scopes requested for the service account.
var Scopes = []string{
	"https://www.googleapis.com/auth/spreadsheets",
	"https://www.googleapis.com/auth/drive",
}

// Spreadsheet lookup errors.
var (
	ErrInvalidSheetURL = errors.New("not a spreadsheet URL")
	ErrNoWorksheet     = errors.New("spreadsheet has no worksheets")
	ErrNotInitialized  = errors.New("sheets client is not initialized")
)

var sheetURLRegex = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9_-]+)`)

// SpreadsheetID extracts the spreadsheet key from its URL.
func SpreadsheetID(sheetURL string) (string, error) {
	match := sheetURLRegex.FindStringSubmatch(sheetURL)
	if match == nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidSheetURL, sheetURL)
	}
	return match[1], nil
}

// worksheetRange quotes a worksheet title as an A1 range, doubling embedded quotes.
func worksheetRange(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}

// Appender appends rows to the first worksheet of a spreadsheet.
type Appender struct {
	Logger zerolog.Logger

	service *sheetsapi.Service
}

// New initializes the Appender with a service account credential file.
func (a *Appender) New(ctx context.Context, credentialsFile string, opts ...option.ClientOption) error {
	opts = append([]option.ClientOption{
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(Scopes...),
	}, opts...)
	return a.NewWithOptions(ctx, opts...)
}

// NewWithOptions initializes the Appender with explicit client options.
func (a *Appender) NewWithOptions(ctx context.Context, opts ...option.ClientOption) error {
	service, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return err
	}
	a.service = service
	a.Logger.Debug().Msg("Sheets client created")
	return nil
}

// AppendRow appends one row to the first worksheet of the spreadsheet at sheetURL.
func (a *Appender) AppendRow(ctx context.Context, sheetURL string, row []interface{}) error {
	logger := a.Logger.With().Str("module", "sheets").Logger()

	if a.service == nil {
		return ErrNotInitialized
	}

	id, err := SpreadsheetID(sheetURL)
	if err != nil {
		return err
	}

	// find the first worksheet
	spreadsheet, err := a.service.Spreadsheets.Get(id).
		Fields("sheets.properties.title").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("fetching spreadsheet %s: %w", id, err)
	}
	if len(spreadsheet.Sheets) == 0 || spreadsheet.Sheets[0].Properties == nil {
		return fmt.Errorf("%w: %s", ErrNoWorksheet, id)
	}
	title := spreadsheet.Sheets[0].Properties.Title
	logger.Debug().Str("spreadsheet", id).Str("worksheet", title).Msg("Resolved first worksheet")

	// append the row
	_, err = a.service.Spreadsheets.Values.
		Append(id, worksheetRange(title), &sheetsapi.ValueRange{Values: [][]interface{}{row}}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("appending row to %s: %w", id, err)
	}

	logger.Debug().Str("spreadsheet", id).Int("cells", len(row)).Msg("Row appended")
	return nil
}
