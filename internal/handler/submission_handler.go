package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/insightjournal/internal/service"
)

// SubmitArticle 接收公开投稿并写入 staging 库。
func (a *API) SubmitArticle(c *gin.Context) {
	var input service.SubmissionInput
	if !bindJSON(c, &input, "invalid submission payload") {
		return
	}

	_, err := a.intake.Submit(input)
	switch {
	case errors.Is(err, service.ErrMissingField),
		errors.Is(err, service.ErrContentLength),
		errors.Is(err, service.ErrImageMalformed),
		errors.Is(err, service.ErrImageTooLarge),
		errors.Is(err, service.ErrImageUnsupported):
		respondError(c, http.StatusBadRequest, err.Error())
	case err != nil:
		respondError(c, http.StatusInternalServerError, "submission failed")
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Article submitted"})
	}
}
