package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"portfoliohub/internal/model"
)

// Sort keys accepted by List. Anything else falls back to SortByCreatedAt.
const (
	SortByCreatedAt = "created_at"
	SortByViews     = "views"
	SortByLikes     = "likes"
)

type ProjectListParams struct {
	Search   string
	Category string
	SortBy   string
	Offset   int
	Limit    int
}

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(project *model.Project) error {
	if err := r.db.Create(project).Error; err != nil {
		return fmt.Errorf("create project failed: %w", err)
	}
	return nil
}

func (r *ProjectRepository) GetByID(id string) (*model.Project, error) {
	var project model.Project
	if err := r.db.Preload("Author").Preload("Files").Where("id = ?", id).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query project by id failed: %w", err)
	}
	return &project, nil
}

// List applies search/category filters and ordering, returning one page of
// projects plus the total match count before pagination.
func (r *ProjectRepository) List(params ProjectListParams) ([]model.Project, int64, error) {
	query := r.db.Model(&model.Project{})
	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
	}
	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count projects failed: %w", err)
	}

	switch params.SortBy {
	case SortByViews:
		query = query.Order("views DESC")
	case SortByLikes:
		query = query.Order("likes DESC")
	default:
		query = query.Order("created_at DESC")
	}

	var projects []model.Project
	err := query.Preload("Author").Preload("Files").
		Offset(params.Offset).Limit(params.Limit).
		Find(&projects).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list projects failed: %w", err)
	}
	return projects, total, nil
}

func (r *ProjectRepository) ListByOwner(userID string) ([]model.Project, error) {
	var projects []model.Project
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("list projects by owner failed: %w", err)
	}
	return projects, nil
}

// IncrementViews bumps the view counter in a single UPDATE so concurrent
// fetches never lose an increment to a stale read.
func (r *ProjectRepository) IncrementViews(id string) error {
	err := r.db.Model(&model.Project{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
	if err != nil {
		return fmt.Errorf("increment project views failed: %w", err)
	}
	return nil
}

func (r *ProjectRepository) IncrementLikes(id string) error {
	err := r.db.Model(&model.Project{}).
		Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + 1")).Error
	if err != nil {
		return fmt.Errorf("increment project likes failed: %w", err)
	}
	return nil
}

func (r *ProjectRepository) Update(project *model.Project) error {
	err := r.db.Model(&model.Project{}).
		Where("id = ?", project.ID).
		Updates(map[string]any{
			"title":       project.Title,
			"description": project.Description,
			"category":    project.Category,
		}).Error
	if err != nil {
		return fmt.Errorf("update project failed: %w", err)
	}
	return nil
}

func (r *ProjectRepository) Delete(id string) error {
	if err := r.db.Where("id = ?", id).Delete(&model.Project{}).Error; err != nil {
		return fmt.Errorf("delete project failed: %w", err)
	}
	return nil
}
