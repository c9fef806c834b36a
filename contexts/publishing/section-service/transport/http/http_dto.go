package httptransport

type SubsectionDTO struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type SectionDTO struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Subsections []SubsectionDTO `json:"subsections,omitempty"`
}

type ListSectionsResponse struct {
	Items []SectionDTO `json:"items"`
}

type CreateSectionRequest struct {
	Title string `json:"title"`
}

type CreateSubsectionRequest struct {
	Title string `json:"title"`
}

type GrantDTO struct {
	UserID    string `json:"user_id"`
	SectionID string `json:"section_id"`
}

type ListGrantsResponse struct {
	Items []GrantDTO `json:"items"`
}

type CreateGrantRequest struct {
	UserID    string `json:"user_id"`
	SectionID string `json:"section_id"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
