package httptransport

import "time"

type CommentDTO struct {
	ID           string    `json:"id"`
	ArticleID    string    `json:"article_id"`
	ParentID     string    `json:"parent_id,omitempty"`
	AuthorID     string    `json:"author_id"`
	AuthorName   string    `json:"author_name"`
	AuthorAvatar string    `json:"author_avatar,omitempty"`
	Content      string    `json:"content"`
	Timestamp    time.Time `json:"timestamp"`
}

type ListCommentsResponse struct {
	Items []CommentDTO `json:"items"`
}

type PostCommentRequest struct {
	Content  string `json:"content"`
	ParentID string `json:"parent_id"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
