package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfoliohub/internal/app"
	"portfoliohub/internal/transport/http/response"
)

type ProfileHandler struct {
	profileService *app.ProfileService
	authService    *app.AuthService
	cookieName     string
}

type UpdateProfileRequest struct {
	FullName *string `json:"full_name"`
	Bio      *string `json:"bio"`
}

func NewProfileHandler(profileService *app.ProfileService, authService *app.AuthService, cookieName string) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		authService:    authService,
		cookieName:     cookieName,
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileService.GetProfile(c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, app.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, err.Error())
		default:
			response.Internal(c)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":              profile.User.ID,
		"username":        profile.User.Username,
		"full_name":       profile.User.FullName,
		"bio":             profile.User.Bio,
		"profile_picture": profile.User.ProfilePicture,
		"created_at":      profile.User.CreatedAt,
		"projects_count":  profile.ProjectsCount,
		"projects":        profile.Projects,
	})
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	user, err := h.profileService.UpdateProfile(app.UpdateProfileInput{
		UserID:   c.Param("id"),
		CallerID: userID,
		FullName: req.FullName,
		Bio:      req.Bio,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, app.ErrForbidden):
			response.Error(c, http.StatusForbidden, err.Error())
		case errors.Is(err, app.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, err.Error())
		default:
			response.Internal(c)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "profile updated",
		"user": gin.H{
			"id":        user.ID,
			"username":  user.Username,
			"email":     user.Email,
			"full_name": user.FullName,
			"bio":       user.Bio,
		},
	})
}

func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := h.profileService.DeleteAccount(c.Param("id"), userID); err != nil {
		switch {
		case errors.Is(err, app.ErrForbidden):
			response.Error(c, http.StatusForbidden, err.Error())
		case errors.Is(err, app.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, err.Error())
		default:
			response.Internal(c)
		}
		return
	}

	// The account is gone; retire its session and cookie as well.
	if token, ok := getSessionTokenFromContext(c); ok {
		_ = h.authService.Logout(c.Request.Context(), token)
	}
	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}
