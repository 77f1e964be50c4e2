package db

import "gorm.io/gorm"

// Comment moderation states.
const (
	CommentPending  = "Pending"
	CommentApproved = "Approved"
	CommentRejected = "Rejected"
)

// Comment 定义了文章评论模型。创建时为 Pending，审核后原地更新状态，永不删除。
type Comment struct {
	gorm.Model
	ArticleID uint   `gorm:"index;not null" json:"article_id"`
	Content   string `gorm:"not null" json:"content"`
	UserID    string `gorm:"not null" json:"user_id"`
	Status    string `gorm:"not null" json:"status"`
}
