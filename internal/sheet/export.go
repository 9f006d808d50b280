package sheet

import (
	"strconv"

	"github.com/ZertGraf/pachca-tags/internal/domain"
)

var (
	TagsHeader  = []string{"id", "name"}
	UsersHeader = []string{"id", "email", "first_name", "last_name", "nickname", "department", "phone_number", "title", "tags"}
)

// WriteTags writes one id,name row per tag.
func WriteTags(path string, tags []domain.Tag) error {
	rows := make([][]string, 0, len(tags))
	for _, t := range tags {
		rows = append(rows, []string{strconv.FormatInt(t.ID, 10), t.Name})
	}
	return writeFile(path, TagsHeader, rows)
}

// WriteUsers writes one row per user; tags are list_tags joined with ';'.
func WriteUsers(path string, users []domain.User) error {
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			strconv.FormatInt(u.ID, 10),
			u.Email,
			u.FirstName,
			u.LastName,
			u.Nickname,
			u.Department,
			u.PhoneNumber,
			u.Title,
			u.ListTags.Joined(";"),
		})
	}
	return writeFile(path, UsersHeader, rows)
}
