package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfoliohub/internal/app"
	"portfoliohub/internal/model"
	"portfoliohub/internal/transport/http/response"
)

type ProjectHandler struct {
	projectService *app.ProjectService
}

type CreateProjectRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"max=100"`
}

type UpdateProjectRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
}

func NewProjectHandler(projectService *app.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func (h *ProjectHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "12"))

	result, err := h.projectService.List(app.ListProjectsInput{
		Page:     page,
		PerPage:  perPage,
		Search:   c.Query("search"),
		Category: c.Query("category"),
		SortBy:   c.Query("sort_by"),
	})
	if err != nil {
		response.Internal(c)
		return
	}

	projects := make([]gin.H, 0, len(result.Items))
	for i := range result.Items {
		projects = append(projects, projectSummaryBody(&result.Items[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"projects":     projects,
		"total":        result.Total,
		"pages":        result.TotalPages,
		"current_page": result.CurrentPage,
	})
}

func (h *ProjectHandler) Get(c *gin.Context) {
	project, err := h.projectService.Get(c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, app.ErrProjectNotFound):
			response.Error(c, http.StatusNotFound, err.Error())
		default:
			response.Internal(c)
		}
		return
	}

	c.JSON(http.StatusOK, projectDetailBody(project))
}

func (h *ProjectHandler) Create(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	project, err := h.projectService.Create(app.CreateProjectInput{
		OwnerID:     userID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, err.Error())
		default:
			response.Internal(c)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "project created",
		"project": gin.H{
			"id":          project.ID,
			"title":       project.Title,
			"description": project.Description,
			"category":    project.Category,
		},
	})
}

func (h *ProjectHandler) Update(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	project, err := h.projectService.Update(app.UpdateProjectInput{
		ProjectID:   c.Param("id"),
		CallerID:    userID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, app.ErrForbidden):
			response.Error(c, http.StatusForbidden, err.Error())
		case errors.Is(err, app.ErrProjectNotFound):
			response.Error(c, http.StatusNotFound, err.Error())
		default:
			response.Internal(c)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "project updated",
		"project": gin.H{
			"id":          project.ID,
			"title":       project.Title,
			"description": project.Description,
			"category":    project.Category,
		},
	})
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := h.projectService.Delete(c.Param("id"), userID); err != nil {
		switch {
		case errors.Is(err, app.ErrForbidden):
			response.Error(c, http.StatusForbidden, err.Error())
		case errors.Is(err, app.ErrProjectNotFound):
			response.Error(c, http.StatusNotFound, err.Error())
		default:
			response.Internal(c)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "project deleted"})
}

func (h *ProjectHandler) Like(c *gin.Context) {
	likes, err := h.projectService.Like(c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, app.ErrProjectNotFound):
			response.Error(c, http.StatusNotFound, err.Error())
		default:
			response.Internal(c)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"likes": likes})
}

func projectSummaryBody(project *model.Project) gin.H {
	files := make([]gin.H, 0, len(project.Files))
	for _, file := range project.Files {
		files = append(files, gin.H{
			"id":        file.ID,
			"filename":  file.StoredName,
			"file_type": file.Kind,
			"file_path": file.Path,
		})
	}

	body := gin.H{
		"id":          project.ID,
		"title":       project.Title,
		"description": project.Description,
		"category":    project.Category,
		"views":       project.Views,
		"likes":       project.Likes,
		"created_at":  project.CreatedAt,
		"files":       files,
	}
	if project.Author != nil {
		body["author"] = gin.H{
			"id":        project.Author.ID,
			"username":  project.Author.Username,
			"full_name": project.Author.FullName,
		}
	}
	return body
}

func projectDetailBody(project *model.Project) gin.H {
	files := make([]gin.H, 0, len(project.Files))
	for _, file := range project.Files {
		files = append(files, gin.H{
			"id":                file.ID,
			"filename":          file.StoredName,
			"original_filename": file.OriginalName,
			"file_type":         file.Kind,
			"file_path":         file.Path,
			"file_size":         file.Size,
			"uploaded_at":       file.UploadedAt,
		})
	}

	body := gin.H{
		"id":          project.ID,
		"title":       project.Title,
		"description": project.Description,
		"category":    project.Category,
		"views":       project.Views,
		"likes":       project.Likes,
		"created_at":  project.CreatedAt,
		"updated_at":  project.UpdatedAt,
		"files":       files,
	}
	if project.Author != nil {
		body["author"] = gin.H{
			"id":              project.Author.ID,
			"username":        project.Author.Username,
			"full_name":       project.Author.FullName,
			"bio":             project.Author.Bio,
			"profile_picture": project.Author.ProfilePicture,
		}
	}
	return body
}
