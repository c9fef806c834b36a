package postgres

import "time"

type userModel struct {
	ID           string `gorm:"column:id;primaryKey"`
	Name         string `gorm:"column:name"`
	Email        string `gorm:"column:email;uniqueIndex"`
	PasswordHash string `gorm:"column:password_hash"`
	Role         string `gorm:"column:role"`
	Avatar       string `gorm:"column:avatar"`
}

func (userModel) TableName() string {
	return "users"
}

type sectionModel struct {
	ID       string `gorm:"column:id;primaryKey"`
	Title    string `gorm:"column:title"`
	Position int    `gorm:"column:position"`
}

func (sectionModel) TableName() string {
	return "sections"
}

type subsectionModel struct {
	ID        string `gorm:"column:id;primaryKey"`
	SectionID string `gorm:"column:section_id;index"`
	Title     string `gorm:"column:title"`
	Position  int    `gorm:"column:position"`
}

func (subsectionModel) TableName() string {
	return "subsections"
}

type grantModel struct {
	UserID    string `gorm:"column:user_id;primaryKey"`
	SectionID string `gorm:"column:section_id;primaryKey"`
}

func (grantModel) TableName() string {
	return "editor_grants"
}

type articleModel struct {
	ID            string    `gorm:"column:id;primaryKey"`
	Title         string    `gorm:"column:title"`
	Content       string    `gorm:"column:content"`
	Excerpt       string    `gorm:"column:excerpt"`
	SectionID     string    `gorm:"column:section_id;index"`
	SubsectionID  string    `gorm:"column:subsection_id"`
	AuthorID      string    `gorm:"column:author_id"`
	AuthorName    string    `gorm:"column:author_name"`
	Timestamp     time.Time `gorm:"column:timestamp;index"`
	ImageURL      string    `gorm:"column:image_url"`
	AllowComments bool      `gorm:"column:allow_comments"`
	Status        string    `gorm:"column:status;index"`
}

func (articleModel) TableName() string {
	return "articles"
}

type articleTagModel struct {
	ArticleID string `gorm:"column:article_id;primaryKey"`
	Tag       string `gorm:"column:tag;primaryKey;index"`
	Position  int    `gorm:"column:position"`
}

func (articleTagModel) TableName() string {
	return "article_tags"
}

type attachmentModel struct {
	ID        string `gorm:"column:id;primaryKey"`
	ArticleID string `gorm:"column:article_id;index"`
	Filename  string `gorm:"column:filename"`
	MimeType  string `gorm:"column:mime_type"`
	Data      string `gorm:"column:data"`
}

func (attachmentModel) TableName() string {
	return "attachments"
}

type commentModel struct {
	ID           string    `gorm:"column:id;primaryKey"`
	ArticleID    string    `gorm:"column:article_id;index"`
	ParentID     string    `gorm:"column:parent_id"`
	AuthorID     string    `gorm:"column:author_id"`
	AuthorName   string    `gorm:"column:author_name"`
	AuthorAvatar string    `gorm:"column:author_avatar"`
	Content      string    `gorm:"column:content"`
	Timestamp    time.Time `gorm:"column:timestamp"`
}

func (commentModel) TableName() string {
	return "comments"
}

type notificationModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	UserID    string    `gorm:"column:user_id;index"`
	Type      string    `gorm:"column:type"`
	Message   string    `gorm:"column:message"`
	ArticleID string    `gorm:"column:article_id;index"`
	Read      bool      `gorm:"column:read"`
	Timestamp time.Time `gorm:"column:timestamp"`
}

func (notificationModel) TableName() string {
	return "notifications"
}

type digestPreferenceModel struct {
	UserID     string     `gorm:"column:user_id;primaryKey"`
	Enabled    bool       `gorm:"column:enabled"`
	Frequency  string     `gorm:"column:frequency"`
	LastSentAt *time.Time `gorm:"column:last_sent_at"`
}

func (digestPreferenceModel) TableName() string {
	return "digest_preferences"
}

// mailSettingsModel is a one-row table; ID is always 1.
type mailSettingsModel struct {
	ID          int    `gorm:"column:id;primaryKey"`
	Host        string `gorm:"column:host"`
	Port        int    `gorm:"column:port"`
	Username    string `gorm:"column:username"`
	Password    string `gorm:"column:password"`
	Encryption  string `gorm:"column:encryption"`
	FromAddress string `gorm:"column:from_address"`
	FromName    string `gorm:"column:from_name"`
	Enabled     bool   `gorm:"column:enabled"`
}

func (mailSettingsModel) TableName() string {
	return "mail_settings"
}
