package model

import "time"

type Project struct {
	ID          string    `gorm:"size:36;primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Category    string    `gorm:"size:100" json:"category"`
	Views       int       `gorm:"not null;default:0" json:"views"`
	Likes       int       `gorm:"not null;default:0" json:"likes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// UserID is set at creation and never reassigned.
	UserID string `gorm:"size:36;not null;index" json:"user_id"`
	Author *User  `gorm:"foreignKey:UserID;references:ID" json:"-"`

	Files []ProjectFile `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}
