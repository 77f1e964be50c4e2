package service

import (
	"errors"

	"github.com/insightjournal/internal/db"
	"gorm.io/gorm"
)

var ErrArticleNotFound = errors.New("article not found")

// ArticleService wraps public reads over the publication store.
type ArticleService struct {
	db *gorm.DB
}

// NewArticleService creates an ArticleService instance.
func NewArticleService(gdb *gorm.DB) *ArticleService {
	return &ArticleService{db: gdb}
}

// ListPublished returns published articles, newest first.
func (s *ArticleService) ListPublished() ([]db.Article, error) {
	var articles []db.Article
	if err := s.db.Where("status = ?", db.StatusPublished).
		Order("created_at desc").Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// Get fetches one article by id.
func (s *ArticleService) Get(id uint) (*db.Article, error) {
	var article db.Article
	if err := s.db.First(&article, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return &article, nil
}

// AnalyticsRow is the read-only counter projection exposed publicly.
type AnalyticsRow struct {
	Title  string `json:"title"`
	Views  int64  `json:"views"`
	Likes  int64  `json:"likes"`
	Shares int64  `json:"shares"`
}

// Analytics projects counters across all articles.
func (s *ArticleService) Analytics() ([]AnalyticsRow, error) {
	var rows []AnalyticsRow
	if err := s.db.Model(&db.Article{}).
		Select("title", "views", "likes", "shares").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
