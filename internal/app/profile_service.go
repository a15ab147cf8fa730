package app

import (
	"errors"
	"strings"
	"time"

	"portfoliohub/internal/model"
	"portfoliohub/internal/repository"
	"portfoliohub/internal/storage"
)

var ErrUserNotFound = errors.New("user not found")

// Description previews on the public profile are capped at this many
// characters, with an ellipsis marker appended when cut.
const profileDescriptionLimit = 200

type ProfileService struct {
	userRepo    *repository.UserRepository
	projectRepo *repository.ProjectRepository
	fileRepo    *repository.ProjectFileRepository
	blobs       *storage.Store
}

type ProfileView struct {
	User          *model.User
	ProjectsCount int
	Projects      []ProfileProject
}

type ProfileProject struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Views       int       `json:"views"`
	Likes       int       `json:"likes"`
	CreatedAt   time.Time `json:"created_at"`
}

type UpdateProfileInput struct {
	UserID   string
	CallerID string
	FullName *string
	Bio      *string
}

func NewProfileService(
	userRepo *repository.UserRepository,
	projectRepo *repository.ProjectRepository,
	fileRepo *repository.ProjectFileRepository,
	blobs *storage.Store,
) *ProfileService {
	return &ProfileService{
		userRepo:    userRepo,
		projectRepo: projectRepo,
		fileRepo:    fileRepo,
		blobs:       blobs,
	}
}

func (s *ProfileService) GetProfile(userID string) (*ProfileView, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	projects, err := s.projectRepo.ListByOwner(userID)
	if err != nil {
		return nil, err
	}

	view := &ProfileView{
		User:          user,
		ProjectsCount: len(projects),
		Projects:      make([]ProfileProject, 0, len(projects)),
	}
	for _, project := range projects {
		view.Projects = append(view.Projects, ProfileProject{
			ID:          project.ID,
			Title:       project.Title,
			Description: truncateDescription(project.Description),
			Category:    project.Category,
			Views:       project.Views,
			Likes:       project.Likes,
			CreatedAt:   project.CreatedAt,
		})
	}
	return view, nil
}

// UpdateProfile lets the owner change full name and bio; omitted fields keep
// their stored value.
func (s *ProfileService) UpdateProfile(input UpdateProfileInput) (*model.User, error) {
	if input.UserID != input.CallerID {
		return nil, ErrForbidden
	}

	user, err := s.userRepo.GetByID(input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if input.FullName != nil {
		fullName := strings.TrimSpace(*input.FullName)
		if fullName == "" {
			return nil, ErrInvalidInput
		}
		user.FullName = fullName
	}
	if input.Bio != nil {
		user.Bio = strings.TrimSpace(*input.Bio)
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteAccount removes the user and everything they own: projects, file
// rows, and on-disk blobs.
func (s *ProfileService) DeleteAccount(userID, callerID string) error {
	if userID != callerID {
		return ErrForbidden
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	projects, err := s.projectRepo.ListByOwner(userID)
	if err != nil {
		return err
	}
	for _, project := range projects {
		if err := purgeProject(s.projectRepo, s.fileRepo, s.blobs, project.ID); err != nil {
			return err
		}
	}
	return s.userRepo.Delete(userID)
}

func truncateDescription(description string) string {
	runes := []rune(description)
	if len(runes) <= profileDescriptionLimit {
		return description
	}
	return string(runes[:profileDescriptionLimit]) + "..."
}
