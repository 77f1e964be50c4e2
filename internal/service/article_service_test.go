package service

import (
	"errors"
	"testing"

	"github.com/insightjournal/internal/db"
)

func seedArticle(t *testing.T, stores *db.Stores, article db.Article) db.Article {
	t.Helper()
	if article.SourceKey == "" {
		article.SourceKey = "seed-" + article.Title
	}
	if article.Status == "" {
		article.Status = db.StatusPublished
	}
	if err := stores.Publication.Create(&article).Error; err != nil {
		t.Fatalf("seed article: %v", err)
	}
	return article
}

func TestListPublishedReturnsArticles(t *testing.T) {
	stores := setupTestStores(t)
	svc := NewArticleService(stores.Publication)

	seedArticle(t, stores, db.Article{Title: "First"})
	seedArticle(t, stores, db.Article{Title: "Second"})

	articles, err := svc.ListPublished()
	if err != nil {
		t.Fatalf("list published: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(articles))
	}
}

func TestGetArticleNotFound(t *testing.T) {
	stores := setupTestStores(t)
	svc := NewArticleService(stores.Publication)

	if _, err := svc.Get(42); !errors.Is(err, ErrArticleNotFound) {
		t.Fatalf("expected ErrArticleNotFound, got %v", err)
	}
}

func TestAnalyticsProjectsCounters(t *testing.T) {
	stores := setupTestStores(t)
	svc := NewArticleService(stores.Publication)

	seedArticle(t, stores, db.Article{Title: "Counted", Views: 12, Likes: 3, Shares: 1})

	rows, err := svc.Analytics()
	if err != nil {
		t.Fatalf("analytics: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if row.Title != "Counted" || row.Views != 12 || row.Likes != 3 || row.Shares != 1 {
		t.Fatalf("unexpected projection %+v", row)
	}
}
