package model

import "time"

type User struct {
	ID             string    `gorm:"size:36;primaryKey" json:"id"`
	Username       string    `gorm:"size:80;not null;uniqueIndex" json:"username"`
	Email          string    `gorm:"size:120;not null;uniqueIndex" json:"email"`
	PasswordHash   string    `gorm:"size:255;not null" json:"-"`
	FullName       string    `gorm:"size:200;not null" json:"full_name"`
	Bio            string    `gorm:"type:text" json:"bio"`
	ProfilePicture string    `gorm:"size:200" json:"profile_picture"`
	CreatedAt      time.Time `json:"created_at"`
}
