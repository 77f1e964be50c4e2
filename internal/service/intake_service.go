package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/insightjournal/internal/db"
	"github.com/insightjournal/internal/notify"
	"gorm.io/gorm"
)

// Plain-text content bounds enforced at submission time. These are advisory
// UX limits; the moderation engine never assumes they held.
const (
	minContentRunes = 100
	maxContentRunes = 10000
)

var (
	ErrMissingField  = errors.New("title, content, category, author name and author email are required")
	ErrContentLength = fmt.Errorf("content must be between %d and %d plain-text characters", minContentRunes, maxContentRunes)
)

// SubmissionInput represents fields accepted from the public submission form.
type SubmissionInput struct {
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	ContentFormat string   `json:"content_format"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
	AuthorName    string   `json:"authorName"`
	AuthorEmail   string   `json:"authorEmail"`
	FeaturedImage string   `json:"featuredImage"`
}

// IntakeService 负责公开投稿的校验、规范化与入库。
type IntakeService struct {
	staging  *gorm.DB
	sender   notify.Sender
	notifyTo string
}

// NewIntakeService creates an IntakeService. notifyTo, when set, receives a
// heads-up for every staged submission.
func NewIntakeService(staging *gorm.DB, sender notify.Sender, notifyTo string) *IntakeService {
	return &IntakeService{staging: staging, sender: sender, notifyTo: notifyTo}
}

// Submit validates and stages a submission, then queues the received
// notifications. The stored content is already rendered and sanitized.
func (s *IntakeService) Submit(input SubmissionInput) (*db.Submission, error) {
	title := strings.TrimSpace(input.Title)
	category := strings.TrimSpace(input.Category)
	authorName := strings.TrimSpace(input.AuthorName)
	authorEmail := strings.TrimSpace(input.AuthorEmail)
	if title == "" || strings.TrimSpace(input.Content) == "" || category == "" ||
		authorName == "" || authorEmail == "" {
		return nil, ErrMissingField
	}

	format := strings.TrimSpace(input.ContentFormat)
	if format != db.FormatMarkdown {
		format = db.FormatHTML
	}

	content, err := renderContent(input.Content, format)
	if err != nil {
		return nil, err
	}

	if length := plainTextLength(content); length < minContentRunes || length > maxContentRunes {
		return nil, ErrContentLength
	}

	featuredImage := strings.TrimSpace(input.FeaturedImage)
	if featuredImage != "" {
		if err := validateFeaturedImage(featuredImage); err != nil {
			return nil, err
		}
	}

	submission := db.Submission{
		ID:            uuid.NewString(),
		Title:         title,
		Content:       content,
		ContentFormat: db.FormatHTML,
		Category:      category,
		Tags:          normalizeTags(input.Tags),
		AuthorName:    authorName,
		AuthorEmail:   authorEmail,
		FeaturedImage: featuredImage,
	}

	if err := s.staging.Create(&submission).Error; err != nil {
		return nil, err
	}

	if s.sender != nil {
		s.sender.Enqueue(notify.Notification{
			To:      authorEmail,
			Subject: "Article Submission Received",
			Body:    fmt.Sprintf("Your article %q has been submitted and is pending review.", title),
		})
		if s.notifyTo != "" {
			s.sender.Enqueue(notify.Notification{
				To:      s.notifyTo,
				Subject: "New submission awaiting review",
				Body:    fmt.Sprintf("%q by %s is waiting in the moderation queue.", title, authorName),
			})
		}
	}

	return &submission, nil
}
