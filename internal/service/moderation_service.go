package service

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/insightjournal/internal/db"
	"github.com/insightjournal/internal/notify"
	"gorm.io/gorm"
)

// Moderation actions.
const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

var (
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrUnknownAction      = errors.New("unknown moderation action")
)

// ModerationService 负责把投稿从 staging 库移出：通过则写入 publication 库，
// 否则直接删除。两个库之间没有共享事务，正确性完全依赖写入顺序。
type ModerationService struct {
	stores *db.Stores
	sender notify.Sender
}

// NewModerationService creates a ModerationService instance.
func NewModerationService(stores *db.Stores, sender notify.Sender) *ModerationService {
	return &ModerationService{stores: stores, sender: sender}
}

// ListPending returns all staged submissions, newest first.
func (s *ModerationService) ListPending() ([]db.Submission, error) {
	var submissions []db.Submission
	if err := s.stores.Staging.Order("created_at desc").Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

// Decide applies a moderation action to one staged submission.
//
// On approve the article must be durable in the publication store before the
// staging row is deleted: a failed publication write aborts the decision and
// the submission stays visible in the queue. A failed staging delete after a
// successful write is logged as an inconsistency and still reported as
// success, since the article already exists. The staging delete is
// conditional; zero affected rows means a concurrent decision already
// consumed the submission and the call reports not-found.
func (s *ModerationService) Decide(id, action, comment string) error {
	switch action {
	case ActionApprove, ActionReject:
	default:
		return ErrUnknownAction
	}

	var submission db.Submission
	if err := s.stores.Staging.First(&submission, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSubmissionNotFound
		}
		return err
	}

	if action == ActionApprove {
		if err := s.publish(&submission); err != nil {
			return fmt.Errorf("publish submission %s: %w", submission.ID, err)
		}
	}

	result := s.stores.Staging.Where("id = ?", submission.ID).Delete(&db.Submission{})
	switch {
	case result.Error != nil && action == ActionApprove:
		// The article is already durable; the stale staging row is a
		// manually reconcilable anomaly, not a failure.
		log.Printf("moderation: submission %s published but staging delete failed: %v", submission.ID, result.Error)
	case result.Error != nil:
		return result.Error
	case result.RowsAffected == 0:
		// Single winner: another decision got here first.
		return ErrSubmissionNotFound
	}

	s.notifyOutcome(submission, action, comment)
	return nil
}

// publish writes the article for an approved submission. The submission's
// staging id doubles as the idempotency key: when a retried approval finds
// the key already present the earlier write counts and nothing is added.
func (s *ModerationService) publish(submission *db.Submission) error {
	content, err := renderContent(submission.Content, submission.ContentFormat)
	if err != nil {
		return err
	}

	article := db.Article{
		SourceKey:   submission.ID,
		Title:       submission.Title,
		Content:     content,
		Category:    submission.Category,
		Tags:        normalizeTags(submission.Tags),
		AuthorName:  submission.AuthorName,
		AuthorEmail: submission.AuthorEmail,
		Status:      db.StatusPublished,
	}

	// A broken featured image never blocks publication, it is just dropped.
	if image := strings.TrimSpace(submission.FeaturedImage); image != "" && wellFormedImageDataURI(image) {
		article.FeaturedImage = image
	}

	if s.alreadyPublished(submission.ID) {
		return nil
	}

	if err := s.stores.Publication.Create(&article).Error; err != nil {
		// Lost a race on the unique source key: the other writer published.
		if s.alreadyPublished(submission.ID) {
			return nil
		}
		return err
	}
	return nil
}

func (s *ModerationService) alreadyPublished(sourceKey string) bool {
	var count int64
	if err := s.stores.Publication.Model(&db.Article{}).
		Where("source_key = ?", sourceKey).Count(&count).Error; err != nil {
		return false
	}
	return count > 0
}

func (s *ModerationService) notifyOutcome(submission db.Submission, action, comment string) {
	if s.sender == nil || submission.AuthorEmail == "" {
		return
	}

	n := notify.Notification{To: submission.AuthorEmail}
	if action == ActionApprove {
		n.Subject = "Article Approved"
		n.Body = fmt.Sprintf("Your article %q has been approved and published.", submission.Title)
	} else {
		n.Subject = "Article Rejected"
		n.Body = fmt.Sprintf("Your article %q was rejected.", submission.Title)
		if comment = strings.TrimSpace(comment); comment != "" {
			n.Body += "\n\nModerator comment: " + comment
		}
	}
	s.sender.Enqueue(n)
}
