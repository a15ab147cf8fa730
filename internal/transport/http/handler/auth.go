package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfoliohub/internal/app"
	"portfoliohub/internal/model"
	"portfoliohub/internal/transport/http/response"
)

type AuthHandler struct {
	authService      *app.AuthService
	cookieName       string
	cookieMaxAgeSecs int
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=80"`
	Email    string `json:"email" binding:"required,email,max=120"`
	Password string `json:"password" binding:"required,min=6,max=128"`
	FullName string `json:"full_name" binding:"required,max=200"`
	Bio      string `json:"bio"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func NewAuthHandler(authService *app.AuthService, cookieName string, cookieMaxAgeSecs int) *AuthHandler {
	return &AuthHandler{
		authService:      authService,
		cookieName:       cookieName,
		cookieMaxAgeSecs: cookieMaxAgeSecs,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	user, err := h.authService.Register(app.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Bio:      req.Bio,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput),
			errors.Is(err, app.ErrUsernameExists),
			errors.Is(err, app.ErrEmailExists):
			response.Error(c, http.StatusBadRequest, err.Error())
		default:
			response.Internal(c)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "user created",
		"user": gin.H{
			"id":        user.ID,
			"username":  user.Username,
			"email":     user.Email,
			"full_name": user.FullName,
		},
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), app.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidCredential):
			response.Error(c, http.StatusUnauthorized, err.Error())
		default:
			response.Internal(c)
		}
		return
	}

	c.SetCookie(h.cookieName, result.Token, h.cookieMaxAgeSecs, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"message": "login successful",
		"user":    userBody(result.User),
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token, ok := getSessionTokenFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		response.Internal(c)
		return
	}

	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logout successful"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "authentication required")
		return
	}

	user, err := h.authService.GetUserByID(userID)
	if err != nil {
		response.Internal(c)
		return
	}
	if user == nil {
		response.Error(c, http.StatusUnauthorized, "authentication required")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userBody(user)})
}

func userBody(user *model.User) gin.H {
	return gin.H{
		"id":              user.ID,
		"username":        user.Username,
		"email":           user.Email,
		"full_name":       user.FullName,
		"bio":             user.Bio,
		"profile_picture": user.ProfilePicture,
	}
}
