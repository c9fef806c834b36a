package entities

// Section is one node of the two-level content taxonomy. Subsections never
// nest further.
type Section struct {
	ID          string
	Title       string
	Subsections []Subsection
}

type Subsection struct {
	ID    string
	Title string
}

// EditorGrant confers edit/moderation capability over one section,
// independent of the holder's global role.
type EditorGrant struct {
	UserID    string
	SectionID string
}
