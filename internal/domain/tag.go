package domain

type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// UnknownTagID marks a tag known to exist remotely whose id could not be resolved.
const UnknownTagID int64 = 0

// TagIndex maps tag name to id. Presence of a key means the tag exists or
// its creation was already attempted; the id may be UnknownTagID.
type TagIndex map[string]int64

func NewTagIndex(tags []Tag) TagIndex {
	idx := make(TagIndex, len(tags))
	for _, t := range tags {
		idx[t.Name] = t.ID
	}
	return idx
}

func (idx TagIndex) Has(name string) bool {
	_, ok := idx[name]
	return ok
}

// TagNames lists tag names in the order the api returned them.
func TagNames(tags []Tag) []string {
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}
	return names
}

// TagNamesByID is used to resolve group_tags entries that carry only an id.
func TagNamesByID(tags []Tag) map[int64]string {
	m := make(map[int64]string, len(tags))
	for _, t := range tags {
		m[t.ID] = t.Name
	}
	return m
}
