package model

import "time"

// File kinds derived from the upload's extension.
const (
	FileKindImage    = "image"
	FileKindVideo    = "video"
	FileKindDocument = "document"
)

type ProjectFile struct {
	ID string `gorm:"size:36;primaryKey" json:"id"`
	// StoredName is generated server-side; OriginalName is the untrusted
	// client-supplied name, kept as metadata only.
	StoredName   string    `gorm:"size:200;not null;uniqueIndex" json:"filename"`
	OriginalName string    `gorm:"size:255;not null" json:"original_filename"`
	Kind         string    `gorm:"size:20;not null" json:"file_type"`
	Path         string    `gorm:"size:500;not null" json:"file_path"`
	Size         int64     `gorm:"not null" json:"file_size"`
	UploadedAt   time.Time `gorm:"autoCreateTime" json:"uploaded_at"`

	ProjectID string `gorm:"size:36;not null;index" json:"project_id"`
}
