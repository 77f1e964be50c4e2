package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/insightjournal/internal/service"
)

// GetArticles 返回所有已发布的文章。
func (a *API) GetArticles(c *gin.Context) {
	articles, err := a.articles.ListPublished()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "database error")
		return
	}
	c.JSON(http.StatusOK, articles)
}

// GetArticle 按 id 返回一篇文章。
func (a *API) GetArticle(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusNotFound, "article not found")
		return
	}

	article, err := a.articles.Get(id)
	if errors.Is(err, service.ErrArticleNotFound) {
		respondError(c, http.StatusNotFound, "article not found")
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "database error")
		return
	}
	c.JSON(http.StatusOK, article)
}

// GetAnalytics 返回所有文章的浏览、点赞与分享计数投影。
func (a *API) GetAnalytics(c *gin.Context) {
	rows, err := a.articles.Analytics()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "database error")
		return
	}
	c.JSON(http.StatusOK, rows)
}

// CreateComment 提交一条待审核的评论。
func (a *API) CreateComment(c *gin.Context) {
	var input service.CommentInput
	if !bindJSON(c, &input, "invalid comment payload") {
		return
	}

	if _, err := a.comments.Create(input); err != nil {
		if errors.Is(err, service.ErrCommentMissingFields) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "comment submission failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment submitted"})
}

// GetComments 返回一篇文章下已通过审核的评论。
func (a *API) GetComments(c *gin.Context) {
	articleID, err := parseUintParam(c, "article_id")
	if err != nil {
		respondError(c, http.StatusInternalServerError, "database error")
		return
	}

	comments, err := a.comments.ListApproved(articleID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "database error")
		return
	}
	c.JSON(http.StatusOK, comments)
}
