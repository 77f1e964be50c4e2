package service

import (
	"errors"
	"strings"

	"github.com/insightjournal/internal/db"
	"gorm.io/gorm"
)

const anonymousUser = "anonymous"

var (
	ErrCommentNotFound      = errors.New("comment not found")
	ErrCommentMissingFields = errors.New("article id and content are required")
)

// CommentInput represents fields accepted when submitting a comment.
type CommentInput struct {
	ArticleID uint   `json:"article_id"`
	Content   string `json:"content"`
	UserID    string `json:"user_id"`
}

// CommentService 负责评论的创建、展示与审核，全部落在 publication 库。
type CommentService struct {
	db *gorm.DB
}

// NewCommentService creates a CommentService instance.
func NewCommentService(gdb *gorm.DB) *CommentService {
	return &CommentService{db: gdb}
}

// Create stages a pending comment under an article.
func (s *CommentService) Create(input CommentInput) (*db.Comment, error) {
	content := strings.TrimSpace(input.Content)
	if input.ArticleID == 0 || content == "" {
		return nil, ErrCommentMissingFields
	}

	userID := strings.TrimSpace(input.UserID)
	if userID == "" {
		userID = anonymousUser
	}

	comment := db.Comment{
		ArticleID: input.ArticleID,
		Content:   content,
		UserID:    userID,
		Status:    db.CommentPending,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListApproved returns the approved comments of one article, oldest first.
// Pending and rejected comments are never exposed here.
func (s *CommentService) ListApproved(articleID uint) ([]db.Comment, error) {
	var comments []db.Comment
	if err := s.db.Where("article_id = ? AND status = ?", articleID, db.CommentApproved).
		Order("created_at asc").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// ListPending returns all comments awaiting moderation.
func (s *CommentService) ListPending() ([]db.Comment, error) {
	var comments []db.Comment
	if err := s.db.Where("status = ?", db.CommentPending).
		Order("created_at asc").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// Decide flips a comment to Approved or Rejected in place. Unlike article
// moderation there is no cross-store move and no notification.
func (s *CommentService) Decide(id uint, action string) error {
	var status string
	switch action {
	case ActionApprove:
		status = db.CommentApproved
	case ActionReject:
		status = db.CommentRejected
	default:
		return ErrUnknownAction
	}

	result := s.db.Model(&db.Comment{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}
