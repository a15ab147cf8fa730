package app

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"portfoliohub/internal/model"
	"portfoliohub/internal/repository"
	"portfoliohub/internal/storage"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrForbidden       = errors.New("operation not allowed")
)

const (
	defaultPerPage = 12
	maxPerPage     = 50
)

type ProjectService struct {
	projectRepo *repository.ProjectRepository
	fileRepo    *repository.ProjectFileRepository
	blobs       *storage.Store
}

type ListProjectsInput struct {
	Page     int
	PerPage  int
	Search   string
	Category string
	SortBy   string
}

type ProjectPage struct {
	Items       []model.Project
	Total       int64
	TotalPages  int
	CurrentPage int
}

type CreateProjectInput struct {
	OwnerID     string
	Title       string
	Description string
	Category    string
}

type UpdateProjectInput struct {
	ProjectID   string
	CallerID    string
	Title       *string
	Description *string
	Category    *string
}

func NewProjectService(
	projectRepo *repository.ProjectRepository,
	fileRepo *repository.ProjectFileRepository,
	blobs *storage.Store,
) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		fileRepo:    fileRepo,
		blobs:       blobs,
	}
}

// List returns one catalog page. Page/per-page are clamped rather than
// rejected; a page past the end yields an empty item list.
func (s *ProjectService) List(input ListProjectsInput) (*ProjectPage, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	perPage := input.PerPage
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	items, total, err := s.projectRepo.List(repository.ProjectListParams{
		Search:   strings.TrimSpace(input.Search),
		Category: strings.TrimSpace(input.Category),
		SortBy:   input.SortBy,
		Offset:   (page - 1) * perPage,
		Limit:    perPage,
	})
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	return &ProjectPage{
		Items:       items,
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: page,
	}, nil
}

// Get returns full project detail and counts the fetch as one view. Every
// call increments, repeat visits and the author's own included.
func (s *ProjectService) Get(id string) (*model.Project, error) {
	if id == "" {
		return nil, ErrProjectNotFound
	}
	project, err := s.projectRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}

	if err := s.projectRepo.IncrementViews(id); err != nil {
		return nil, err
	}
	project.Views++
	return project, nil
}

func (s *ProjectService) Create(input CreateProjectInput) (*model.Project, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if input.OwnerID == "" || title == "" || description == "" {
		return nil, ErrInvalidInput
	}

	project := &model.Project{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Category:    strings.TrimSpace(input.Category),
		UserID:      input.OwnerID,
	}
	if err := s.projectRepo.Create(project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) Update(input UpdateProjectInput) (*model.Project, error) {
	project, err := s.projectRepo.GetByID(input.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}
	if project.UserID != input.CallerID {
		return nil, ErrForbidden
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, ErrInvalidInput
		}
		project.Title = title
	}
	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		if description == "" {
			return nil, ErrInvalidInput
		}
		project.Description = description
	}
	if input.Category != nil {
		project.Category = strings.TrimSpace(*input.Category)
	}

	if err := s.projectRepo.Update(project); err != nil {
		return nil, err
	}
	return project, nil
}

// Delete removes the project, its file rows, and their blobs. Only the owner
// may delete.
func (s *ProjectService) Delete(projectID, callerID string) error {
	project, err := s.projectRepo.GetByID(projectID)
	if err != nil {
		return err
	}
	if project == nil {
		return ErrProjectNotFound
	}
	if project.UserID != callerID {
		return ErrForbidden
	}
	return purgeProject(s.projectRepo, s.fileRepo, s.blobs, projectID)
}

// Like bumps the like counter and returns the new count.
func (s *ProjectService) Like(id string) (int, error) {
	project, err := s.projectRepo.GetByID(id)
	if err != nil {
		return 0, err
	}
	if project == nil {
		return 0, ErrProjectNotFound
	}
	if err := s.projectRepo.IncrementLikes(id); err != nil {
		return 0, err
	}
	return project.Likes + 1, nil
}

// purgeProject tears down one project: blobs first, then file rows, then the
// project row. Shared with account deletion so neither path leaks blobs.
func purgeProject(
	projectRepo *repository.ProjectRepository,
	fileRepo *repository.ProjectFileRepository,
	blobs *storage.Store,
	projectID string,
) error {
	files, err := fileRepo.ListByProject(projectID)
	if err != nil {
		return err
	}
	for _, file := range files {
		if err := blobs.Remove(file.StoredName); err != nil {
			return err
		}
	}
	if err := fileRepo.DeleteByProject(projectID); err != nil {
		return err
	}
	return projectRepo.Delete(projectID)
}
