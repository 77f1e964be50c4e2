package handler

import (
	"github.com/insightjournal/internal/auth"
	"github.com/insightjournal/internal/db"
	"github.com/insightjournal/internal/notify"
	"github.com/insightjournal/internal/service"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	auth       *auth.Service
	intake     *service.IntakeService
	moderation *service.ModerationService
	articles   *service.ArticleService
	comments   *service.CommentService
}

// NewAPI constructs a handler set with shared services.
func NewAPI(stores *db.Stores, authService *auth.Service, sender notify.Sender, moderationNotifyTo string) *API {
	return &API{
		auth:       authService,
		intake:     service.NewIntakeService(stores.Staging, sender, moderationNotifyTo),
		moderation: service.NewModerationService(stores, sender),
		articles:   service.NewArticleService(stores.Publication),
		comments:   service.NewCommentService(stores.Publication),
	}
}
