package entities

import "time"

// Notification is a per-user inbox row produced by publishing and comment
// writes. Rows are created by those services inside their own
// transactions; this service only reads and flips the Read flag.
type Notification struct {
	ID        string
	UserID    string
	Type      string
	Message   string
	ArticleID string
	Read      bool
	Timestamp time.Time
}
