package sheet

import (
	"errors"
	"fmt"
	"io"

	"github.com/ZertGraf/pachca-tags/internal/domain"
)

// ReadAssignments parses the assignment file. Only the email and tags columns
// are used; comment is kept when present. The whole file is read before any
// row is returned.
func ReadAssignments(path string) ([]domain.AssignmentRow, error) {
	r, closeFn, err := openCSV(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = closeFn() }()

	idx, err := readHeader(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if err := requireColumns(idx, "email", "tags"); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var rows []domain.AssignmentRow
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		line, _ := r.FieldPos(0)
		rows = append(rows, domain.NewAssignmentRow(
			line,
			field(rec, idx, "email"),
			field(rec, idx, "tags"),
			field(rec, idx, "comment"),
		))
	}
	return rows, nil
}
