// Package roster reads the external guest roster.
package roster

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/gocarina/gocsv"

	"guestpass/internal/domain"
)

// csvRow maps one roster line. The email column is optional; gocsv leaves
// the field empty when the column is absent.
type csvRow struct {
	Name  string `csv:"name"`
	Email string `csv:"email"`
}

// CSVSource loads roster rows from a CSV file with a header line.
type CSVSource struct {
	path string
}

// NewCSVSource returns a RosterSource reading from the given file path.
func NewCSVSource(path string) domain.RosterSource {
	return &CSVSource{path: path}
}

func (s *CSVSource) Load(ctx context.Context) ([]domain.RosterRow, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrRosterMissing, s.path)
		}
		return nil, fmt.Errorf("open roster: %w", err)
	}
	defer f.Close()

	var raw []*csvRow
	if err := gocsv.UnmarshalFile(f, &raw); err != nil {
		return nil, fmt.Errorf("parse roster %s: %w", s.path, err)
	}

	rows := make([]domain.RosterRow, 0, len(raw))
	for _, r := range raw {
		rows = append(rows, domain.RosterRow{
			Name:  strings.TrimSpace(r.Name),
			Email: strings.TrimSpace(r.Email),
		})
	}
	return rows, nil
}
