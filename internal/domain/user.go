package domain

import (
	"bytes"
	"encoding/json"
	"strings"
)

type User struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Nickname    string    `json:"nickname"`
	Department  string    `json:"department"`
	PhoneNumber string    `json:"phone_number"`
	Title       string    `json:"title"`
	ListTags    TagList   `json:"list_tags"`
	GroupTags   GroupTags `json:"group_tags"`
}

type GroupTag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NormalizeEmail is the comparison form of an email: trimmed and lower-cased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *User) HasEmail(email string) bool {
	return NormalizeEmail(u.Email) == NormalizeEmail(email)
}

// TemplateTags returns the tags shown for the user in the template file:
// list_tags when present, otherwise group_tags names (resolved through
// namesByID when an entry has no name).
func (u *User) TemplateTags(namesByID map[int64]string) []string {
	if len(u.ListTags) > 0 {
		return u.ListTags
	}
	var names []string
	for _, gt := range u.GroupTags {
		name := gt.Name
		if name == "" {
			name = namesByID[gt.ID]
		}
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// TagList is the list_tags field. Anything that is not a JSON array decodes
// to an empty list; null entries are dropped and non-string entries keep
// their JSON text.
type TagList []string

func (l *TagList) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil || raw == nil {
		*l = nil
		return nil
	}

	out := make(TagList, 0, len(raw))
	for _, item := range raw {
		item = bytes.TrimSpace(item)
		if string(item) == "null" {
			continue
		}
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			out = append(out, s)
			continue
		}
		out = append(out, string(item))
	}
	*l = out
	return nil
}

func (l TagList) Joined(sep string) string {
	return strings.Join(l, sep)
}

// GroupTags tolerates a malformed group_tags field the same way TagList does.
type GroupTags []GroupTag

func (g *GroupTags) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil || raw == nil {
		*g = nil
		return nil
	}

	out := make(GroupTags, 0, len(raw))
	for _, item := range raw {
		var gt GroupTag
		if err := json.Unmarshal(item, &gt); err != nil {
			continue
		}
		out = append(out, gt)
	}
	*g = out
	return nil
}
