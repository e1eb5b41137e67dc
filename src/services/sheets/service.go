package sheets

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"Backend-Masons-Leads/src/models"
)

type Service struct {
	values ValuesAPI
}

func NewService(values ValuesAPI) *Service {
	return &Service{values: values}
}

// CheckDuplicate reads the role's uniqueness column and reports whether any
// cell contains value, ignoring case. Substring matching is deliberate and
// produces false positives for values nested in longer ones. Read errors are
// logged and reported as "no duplicate".
func (s *Service) CheckDuplicate(ctx context.Context, spreadsheetID string, role models.UserType, value string) bool {
	l, ok := layoutFor(role)
	if !ok || s.values == nil {
		return false
	}

	rows, err := s.values.Get(ctx, spreadsheetID, l.UniqueRange)
	if err != nil {
		log.Printf("[sheets] duplicate check on %s failed, treating as unique: %v", l.UniqueRange, err)
		return false
	}

	needle := strings.ToLower(value)
	for _, row := range rows {
		if len(row) == 0 || row[0] == nil {
			continue
		}
		cell := strings.ToLower(fmt.Sprint(row[0]))
		if cell != "" && strings.Contains(cell, needle) {
			return true
		}
	}
	return false
}

// AppendRow writes the lead as one row at the end of its role's sheet.
// The row width is not checked against the range.
func (s *Service) AppendRow(ctx context.Context, spreadsheetID string, lead models.Lead) error {
	if s.values == nil {
		return errors.New("google sheets client not configured")
	}
	l, ok := layoutFor(lead.Role())
	if !ok {
		return fmt.Errorf("no sheet layout for user type %q", lead.Role())
	}

	cells := lead.Row()
	row := make([]interface{}, len(cells))
	for i, c := range cells {
		row[i] = c
	}

	if err := s.values.Append(ctx, spreadsheetID, l.AppendRange, [][]interface{}{row}); err != nil {
		return fmt.Errorf("append row to %s: %w", l.Sheet, err)
	}
	log.Printf("[sheets] appended %s row (%d cells)", l.Sheet, len(row))
	return nil
}
