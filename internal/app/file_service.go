package app

import (
	"errors"
	"io"

	"github.com/google/uuid"

	"portfoliohub/internal/model"
	"portfoliohub/internal/repository"
	"portfoliohub/internal/storage"
)

var (
	ErrNoFile             = errors.New("no file provided")
	ErrFileTypeNotAllowed = errors.New("file type not allowed")
)

type FileService struct {
	projectRepo *repository.ProjectRepository
	fileRepo    *repository.ProjectFileRepository
	blobs       *storage.Store
}

type UploadInput struct {
	ProjectID    string
	CallerID     string
	OriginalName string
	Content      io.Reader
}

func NewFileService(
	projectRepo *repository.ProjectRepository,
	fileRepo *repository.ProjectFileRepository,
	blobs *storage.Store,
) *FileService {
	return &FileService{
		projectRepo: projectRepo,
		fileRepo:    fileRepo,
		blobs:       blobs,
	}
}

// Upload attaches a blob to a project. Ownership and extension checks happen
// before any disk write; the blob is written before the metadata row, and the
// blob is removed again if the row cannot be committed.
func (s *FileService) Upload(input UploadInput) (*model.ProjectFile, error) {
	if input.OriginalName == "" || input.Content == nil {
		return nil, ErrNoFile
	}

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

	kind, err := storage.Classify(input.OriginalName)
	if err != nil {
		if errors.Is(err, storage.ErrTypeNotAllowed) {
			return nil, ErrFileTypeNotAllowed
		}
		return nil, err
	}

	storedName, err := storage.NewStoredName(input.OriginalName)
	if err != nil {
		if errors.Is(err, storage.ErrTypeNotAllowed) {
			return nil, ErrFileTypeNotAllowed
		}
		return nil, err
	}

	written, err := s.blobs.Save(storedName, input.Content)
	if err != nil {
		return nil, err
	}

	file := &model.ProjectFile{
		ID:           uuid.NewString(),
		StoredName:   storedName,
		OriginalName: input.OriginalName,
		Kind:         kind,
		Path:         s.blobs.Path(storedName),
		Size:         written,
		ProjectID:    project.ID,
	}
	if err := s.fileRepo.Create(file); err != nil {
		// Keep disk and metadata consistent: no row, no blob.
		if removeErr := s.blobs.Remove(storedName); removeErr != nil {
			return nil, errors.Join(err, removeErr)
		}
		return nil, err
	}
	return file, nil
}
