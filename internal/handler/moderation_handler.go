package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/insightjournal/internal/service"
)

type decisionRequest struct {
	Comment string `json:"comment"`
}

// ListSubmissions 返回等待审核的投稿。
func (a *API) ListSubmissions(c *gin.Context) {
	submissions, err := a.moderation.ListPending()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch submissions")
		return
	}
	c.JSON(http.StatusOK, submissions)
}

// DecideSubmission 对一条投稿执行 approve 或 reject。
func (a *API) DecideSubmission(c *gin.Context) {
	var req decisionRequest
	// 请求体可为空，评论是可选的
	_ = c.ShouldBindJSON(&req)

	err := a.moderation.Decide(c.Param("id"), c.Param("action"), req.Comment)
	if err == nil {
		if claims := Identity(c); claims != nil {
			log.Printf("moderation: %s decided %s on submission %s", claims.Username, c.Param("action"), c.Param("id"))
		}
	}
	switch {
	case errors.Is(err, service.ErrUnknownAction):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrSubmissionNotFound):
		respondError(c, http.StatusNotFound, "submission not found")
	case err != nil:
		respondError(c, http.StatusInternalServerError, "publication write failed")
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Action completed"})
	}
}

// ListPendingComments 返回等待审核的评论。
func (a *API) ListPendingComments(c *gin.Context) {
	comments, err := a.comments.ListPending()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch comments")
		return
	}
	c.JSON(http.StatusOK, comments)
}

// DecideComment 将一条评论原地置为 Approved 或 Rejected。
func (a *API) DecideComment(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusNotFound, "comment not found")
		return
	}

	err = a.comments.Decide(id, c.Param("action"))
	switch {
	case errors.Is(err, service.ErrUnknownAction):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrCommentNotFound):
		respondError(c, http.StatusNotFound, "comment not found")
	case err != nil:
		respondError(c, http.StatusInternalServerError, "comment action failed")
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Comment action completed"})
	}
}
