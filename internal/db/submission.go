package db

import "time"

// Content formats accepted at submission time.
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

// Submission 定义了待审核的投稿模型，仅存在于 staging 库。
// Rows are inserted by public submission and only ever removed by a
// moderation decision, never updated in place.
type Submission struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"not null" json:"title"`
	Content       string    `json:"content"`
	ContentFormat string    `json:"content_format"`
	Category      string    `json:"category"`
	Tags          []string  `gorm:"serializer:json" json:"tags"`
	AuthorName    string    `json:"author_name"`
	AuthorEmail   string    `json:"author_email"`
	FeaturedImage string    `json:"featured_image,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
