package domain

import (
	"errors"
	"strings"

	. "github.com/go-ozzo/ozzo-validation"
)

// Sentinel emails written into the template file. Rows carrying them are
// never applied.
const (
	WorkspaceTagsSentinel = "tags_from_workspace"
	ExampleEmail          = "example@example.com"
)

var reservedEmails = []string{WorkspaceTagsSentinel, ExampleEmail}

func IsReservedEmail(email string) bool {
	email = strings.TrimSpace(email)
	for _, r := range reservedEmails {
		if strings.EqualFold(email, r) {
			return true
		}
	}
	return false
}

// AssignmentRow is one line of the assignment input file.
type AssignmentRow struct {
	Line    int
	Email   string
	Tags    []string
	Comment string
}

func NewAssignmentRow(line int, email, rawTags, comment string) AssignmentRow {
	return AssignmentRow{
		Line:    line,
		Email:   strings.TrimSpace(email),
		Tags:    ParseTags(rawTags),
		Comment: comment,
	}
}

// Validate reports why a row must be skipped, or nil if it can be applied.
func (r *AssignmentRow) Validate() error {
	return ValidateStruct(r,
		Field(&r.Email, Required, By(notReserved)),
		Field(&r.Tags, Required),
	)
}

func notReserved(value interface{}) error {
	email, _ := value.(string)
	if IsReservedEmail(email) {
		return errors.New("reserved template row")
	}
	return nil
}

// ParseTags splits on ',' and ';', trims entries and drops empty and repeated ones.
func ParseTags(raw string) []string {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';'
	})

	var tags []string
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		tags = append(tags, p)
	}
	return tags
}

// MergeTags returns current followed by the entries of add not already present.
// Nothing is removed, and merging the same add twice is a no-op.
func MergeTags(current, add []string) []string {
	merged := make([]string, 0, len(current)+len(add))
	seen := make(map[string]struct{}, len(current)+len(add))
	for _, list := range [][]string{current, add} {
		for _, tag := range list {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			merged = append(merged, tag)
		}
	}
	return merged
}
