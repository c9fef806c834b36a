package entities

import "time"

// Comment is a flat record; threading is reconstructed from ParentID.
// Author fields are snapshots so discussions keep attribution after
// account deletion.
type Comment struct {
	ID           string
	ArticleID    string
	ParentID     string
	AuthorID     string
	AuthorName   string
	AuthorAvatar string
	Content      string
	Timestamp    time.Time
}
