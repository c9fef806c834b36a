package entities

import "time"

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

func ValidStatus(status string) bool {
	return status == StatusDraft || status == StatusPublished
}

// Article is the unit of publication. Content is an opaque HTML string
// produced by the editing surface; it is sanitized on the way in and never
// parsed again. AuthorName is a snapshot taken at creation so attribution
// survives account deletion.
type Article struct {
	ID            string
	Title         string
	Content       string
	Excerpt       string
	SectionID     string
	SubsectionID  string
	AuthorID      string
	AuthorName    string
	Timestamp     time.Time
	ImageURL      string
	AllowComments bool
	Status        string
	Tags          []string
	Attachments   []Attachment
}

func (a Article) Published() bool {
	return a.Status == StatusPublished
}

// Attachment is an opaque blob carried with the article; Data is the
// base64 payload handed over by the editing surface.
type Attachment struct {
	ID       string
	Filename string
	MimeType string
	Data     string
}
