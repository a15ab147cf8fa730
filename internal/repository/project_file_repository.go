package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"portfoliohub/internal/model"
)

type ProjectFileRepository struct {
	db *gorm.DB
}

func NewProjectFileRepository(db *gorm.DB) *ProjectFileRepository {
	return &ProjectFileRepository{db: db}
}

func (r *ProjectFileRepository) Create(file *model.ProjectFile) error {
	if err := r.db.Create(file).Error; err != nil {
		return fmt.Errorf("create project file failed: %w", err)
	}
	return nil
}

func (r *ProjectFileRepository) GetByID(id string) (*model.ProjectFile, error) {
	var file model.ProjectFile
	if err := r.db.Where("id = ?", id).First(&file).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query project file by id failed: %w", err)
	}
	return &file, nil
}

func (r *ProjectFileRepository) ListByProject(projectID string) ([]model.ProjectFile, error) {
	var files []model.ProjectFile
	if err := r.db.Where("project_id = ?", projectID).Order("uploaded_at ASC").Find(&files).Error; err != nil {
		return nil, fmt.Errorf("list project files failed: %w", err)
	}
	return files, nil
}

func (r *ProjectFileRepository) DeleteByProject(projectID string) error {
	if err := r.db.Where("project_id = ?", projectID).Delete(&model.ProjectFile{}).Error; err != nil {
		return fmt.Errorf("delete project files failed: %w", err)
	}
	return nil
}
