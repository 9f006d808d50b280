package sheet

import (
	"strings"

	"github.com/ZertGraf/pachca-tags/internal/domain"
)

var TemplateHeader = []string{"email", "first_name", "last_name", "tags", "comment"}

// exampleRow shows the operator how to fill the file. Its email is reserved,
// so assignment never applies it.
var exampleRow = []string{domain.ExampleEmail, "John", "Doe", "backend;qa;lead", "Example row, fill in like this"}

// WriteTemplate writes the assignment template: an optional row listing every
// workspace tag, a worked example and one row per user with their current tags.
func WriteTemplate(path string, tags []domain.Tag, users []domain.User) error {
	names := domain.TagNames(tags)
	namesByID := domain.TagNamesByID(tags)

	rows := make([][]string, 0, len(users)+2)
	if len(names) > 0 {
		rows = append(rows, []string{domain.WorkspaceTagsSentinel, "", "", strings.Join(names, ";"), ""})
	}
	rows = append(rows, exampleRow)

	for _, u := range users {
		rows = append(rows, []string{
			u.Email,
			u.FirstName,
			u.LastName,
			strings.Join(u.TemplateTags(namesByID), ";"),
			"",
		})
	}
	return writeFile(path, TemplateHeader, rows)
}
