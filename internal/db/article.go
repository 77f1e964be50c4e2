package db

import "gorm.io/gorm"

// StatusPublished is the only status an Article is ever stored with;
// rejected submissions leave no row behind.
const StatusPublished = "Published"

// Article 定义了已发布的文章模型。只有审核通过才会写入这张表。
// SourceKey carries the staging id of the submission the article came from;
// its unique index is what makes a retried approval safe.
type Article struct {
	gorm.Model
	SourceKey     string   `gorm:"uniqueIndex;not null" json:"-"`
	Title         string   `gorm:"not null" json:"title"`
	Content       string   `json:"content"`
	Category      string   `json:"category"`
	Tags          []string `gorm:"serializer:json" json:"tags"`
	AuthorName    string   `json:"author_name"`
	AuthorEmail   string   `json:"author_email"`
	FeaturedImage string   `json:"featured_image,omitempty"`
	Status        string   `gorm:"not null" json:"status"`
	Views         int64    `gorm:"not null;default:0" json:"views"`
	Likes         int64    `gorm:"not null;default:0" json:"likes"`
	Shares        int64    `gorm:"not null;default:0" json:"shares"`
}
