package bootstrap

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"portfoliohub/internal/model"
	"portfoliohub/internal/repository"
)

// Seed populates an empty database with two demo accounts and one sample
// project. A database that already holds users is left untouched.
func Seed(db *gorm.DB) error {
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)

	count, err := userRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	admin, err := seedUser(userRepo, "admin", "admin@portfoliohub.local", "admin123",
		"System Administrator", "Administrator account for the portfolio platform.")
	if err != nil {
		return err
	}

	demo, err := seedUser(userRepo, "joaosilva", "joao@email.com", "user123",
		"Joao Silva", "Software engineering student passionate about technology.")
	if err != nil {
		return err
	}

	project := &model.Project{
		ID:    uuid.NewString(),
		Title: "Academic Management System",
		Description: "A complete academic management system covering grades, attendance, " +
			"course registration and reporting. Built with React on the frontend and a " +
			"relational database on the backend.",
		Category: "Information Systems",
		Views:    15,
		Likes:    3,
		UserID:   demo.ID,
	}
	if err := projectRepo.Create(project); err != nil {
		return err
	}

	log.Printf("seed data created: users %s, %s", admin.Username, demo.Username)
	return nil
}

func seedUser(userRepo *repository.UserRepository, username, email, password, fullName, bio string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash seed password failed: %w", err)
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
		Bio:          bio,
	}
	if err := userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}
