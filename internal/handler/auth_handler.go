package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/insightjournal/internal/auth"
)

type signupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Signup 处理注册请求。密码只以 bcrypt 哈希落库。
func (a *API) Signup(c *gin.Context) {
	var req signupRequest
	if !bindJSON(c, &req, "invalid signup payload") {
		return
	}

	user, err := a.auth.Signup(req.Username, req.Password, req.Role)
	if errors.Is(err, auth.ErrMissingFields) || errors.Is(err, auth.ErrInvalidRole) {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to create user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "user created",
		"username": user.Username,
		"role":     user.Role,
	})
}

// Login 验证凭据并签发能力令牌。
func (a *API) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req, "invalid login payload") {
		return
	}

	token, role, err := a.auth.Login(req.Username, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		respondError(c, http.StatusUnauthorized, "invalid username or password")
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "login failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "role": role})
}
