package app

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"portfoliohub/internal/model"
	"portfoliohub/internal/repository"
	"portfoliohub/internal/session"
	"portfoliohub/internal/storage"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open in-memory db")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps all queries on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		require.NoError(t, sqlDB.Close())
	})

	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Project{}, &model.ProjectFile{}))
	return db
}

func setupBlobStore(t *testing.T) *storage.Store {
	store, err := storage.NewStore(t.TempDir())
	require.NoError(t, err)
	return store
}

// fakeSessionStore satisfies SessionStore without redis.
type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[string]string
	next     int
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]string)}
}

func (f *fakeSessionStore) Create(_ context.Context, userID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next++
	token := fmt.Sprintf("token-%d", f.next)
	f.sessions[token] = userID
	return token, nil
}

func (f *fakeSessionStore) Resolve(_ context.Context, token string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	userID, ok := f.sessions[token]
	if !ok {
		return "", session.ErrNotFound
	}
	return userID, nil
}

func (f *fakeSessionStore) Destroy(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, token)
	return nil
}

func registerTestUser(t *testing.T, authService *AuthService, username string) *model.User {
	user, err := authService.Register(RegisterInput{
		Username: username,
		Email:    username + "@example.com",
		Password: "secret123",
		FullName: "Test " + username,
	})
	require.NoError(t, err)
	return user
}

type testEnv struct {
	db          *gorm.DB
	blobs       *storage.Store
	userRepo    *repository.UserRepository
	projectRepo *repository.ProjectRepository
	fileRepo    *repository.ProjectFileRepository
	auth        *AuthService
	projects    *ProjectService
	files       *FileService
	profiles    *ProfileService
}

func newTestEnv(t *testing.T) *testEnv {
	db := setupTestDB(t)
	blobs := setupBlobStore(t)

	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	fileRepo := repository.NewProjectFileRepository(db)

	return &testEnv{
		db:          db,
		blobs:       blobs,
		userRepo:    userRepo,
		projectRepo: projectRepo,
		fileRepo:    fileRepo,
		auth:        NewAuthService(userRepo, newFakeSessionStore()),
		projects:    NewProjectService(projectRepo, fileRepo, blobs),
		files:       NewFileService(projectRepo, fileRepo, blobs),
		profiles:    NewProfileService(userRepo, projectRepo, fileRepo, blobs),
	}
}

func (env *testEnv) blobCount(t *testing.T) int {
	entries, err := os.ReadDir(env.blobs.Dir())
	require.NoError(t, err)
	return len(entries)
}
