// Package spreadsheet appends balance observations to a Google Sheets table.
package spreadsheet

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// appendAnchor is where Sheets starts looking for the table to extend.
const appendAnchor = "A2"

// Recorder writes [timestamp, balance] rows to one sheet of a spreadsheet.
// Best effort: callers are expected to treat failures as non-fatal.
type Recorder struct {
	service       *sheets.Service
	spreadsheetID string
	sheetName     string
}

// NewRecorder builds a Recorder authenticated with a service-account
// credentials file.
func NewRecorder(ctx context.Context, credentialsFile, spreadsheetID, sheetName string) (*Recorder, error) {
	service, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope))
	if err != nil {
		return nil, errors.Wrap(err, "build sheets service")
	}

	return &Recorder{
		service:       service,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}, nil
}

// Append adds one row with the observation timestamp and the balance
// rendered as a string, inserted below the existing rows.
func (r *Recorder) Append(ctx context.Context, timestamp string, balance decimal.Decimal) error {
	body := &sheets.ValueRange{
		MajorDimension: "ROWS",
		Values:         [][]interface{}{{timestamp, balance.String()}},
	}

	_, err := r.service.Spreadsheets.Values.
		Append(r.spreadsheetID, r.rangeFor(appendAnchor), body).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()

	return errors.Wrap(err, "append balance row")
}

// Read returns the rows within a cell range such as "A1:B100".
func (r *Recorder) Read(ctx context.Context, cellRange string) ([][]interface{}, error) {
	resp, err := r.service.Spreadsheets.Values.
		Get(r.spreadsheetID, r.rangeFor(cellRange)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, errors.Wrap(err, "read sheet range")
	}

	return resp.Values, nil
}

func (r *Recorder) rangeFor(cellRange string) string {
	return fmt.Sprintf("%s!%s", r.sheetName, cellRange)
}
