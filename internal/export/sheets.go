// Package export appends reminded items to a Google Sheets spreadsheet,
// giving the reminder stream a durable, human-readable backup.
package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"finmind/internal/amqp"
)

type SheetsExporter struct {
	svc           *gsheet.Service
	spreadsheetID string
	sheetName     string
}

// NewFromEnv creates an exporter using service-account credentials from
// GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE or
// GOOGLE_APPLICATION_CREDENTIALS.
func NewFromEnv(ctx context.Context, spreadsheetID, sheetName string) (*SheetsExporter, error) {
	if spreadsheetID == "" {
		return nil, errors.New("missing spreadsheet id")
	}
	if sheetName == "" {
		sheetName = "Reminders"
	}

	svc, err := newSheetsService(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	return &SheetsExporter{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}, nil
}

func newSheetsService(ctx context.Context) (*gsheet.Service, error) {
	serviceAccountJSON := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	serviceAccountFile := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))
	if serviceAccountJSON == "" && serviceAccountFile == "" {
		serviceAccountFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	switch {
	case serviceAccountJSON != "":
		return gsheet.NewService(ctx,
			goption.WithCredentialsJSON([]byte(serviceAccountJSON)),
			goption.WithScopes(gsheet.SpreadsheetsScope))
	case serviceAccountFile != "":
		return gsheet.NewService(ctx,
			goption.WithCredentialsFile(serviceAccountFile),
			goption.WithScopes(gsheet.SpreadsheetsScope))
	default:
		return nil, errors.New("no service account credentials configured")
	}
}

// AppendReminder appends one reminder as a spreadsheet row.
func (e *SheetsExporter) AppendReminder(ctx context.Context, msg *amqp.ReminderMessage) error {
	row := []interface{}{
		msg.Timestamp.Format("2006-01-02 15:04:05"),
		msg.ItemID,
		string(msg.Type),
		msg.Name,
		msg.Amount.String(),
		msg.DueDate,
		string(msg.Priority),
		string(msg.State),
		msg.Days,
	}

	vr := &gsheet.ValueRange{Values: [][]interface{}{row}}
	writeRange := fmt.Sprintf("%s!A:I", e.sheetName)

	_, err := e.svc.Spreadsheets.Values.
		Append(e.spreadsheetID, writeRange, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append reminder row: %w", err)
	}

	slog.InfoContext(ctx, "Reminder exported to Google Sheets",
		"item_id", msg.ItemID,
		"sheet", e.sheetName)

	return nil
}
