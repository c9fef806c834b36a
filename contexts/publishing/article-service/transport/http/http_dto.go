package httptransport

import "time"

type AttachmentDTO struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type ArticleDTO struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Content       string          `json:"content"`
	Excerpt       string          `json:"excerpt"`
	SectionID     string          `json:"section_id"`
	SubsectionID  string          `json:"subsection_id,omitempty"`
	AuthorID      string          `json:"author_id"`
	AuthorName    string          `json:"author_name"`
	Timestamp     time.Time       `json:"timestamp"`
	ImageURL      string          `json:"image_url,omitempty"`
	AllowComments bool            `json:"allow_comments"`
	Status        string          `json:"status"`
	Tags          []string        `json:"tags,omitempty"`
	Attachments   []AttachmentDTO `json:"attachments,omitempty"`
}

type ListArticlesResponse struct {
	Items []ArticleDTO `json:"items"`
}

type AttachmentRequest struct {
	Filename string `json:"filename"`
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type ArticleRequest struct {
	Title         string              `json:"title"`
	Content       string              `json:"content"`
	Excerpt       string              `json:"excerpt"`
	SectionID     string              `json:"section_id"`
	SubsectionID  string              `json:"subsection_id"`
	ImageURL      string              `json:"image_url"`
	AllowComments bool                `json:"allow_comments"`
	Status        string              `json:"status"`
	Tags          []string            `json:"tags"`
	Attachments   []AttachmentRequest `json:"attachments"`
}

type ListTagsResponse struct {
	Items []string `json:"items"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
