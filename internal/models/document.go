package models

import (
	"time"

	"github.com/google/uuid"
)

// Document is the stored record of an uploaded file. Slot is either
// "resume" or "job_description" and only describes which upload field the
// file arrived in, not what the classifier later decides about it.
type Document struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Filename         string    `gorm:"type:text" json:"filename"`
	OriginalFileName string    `gorm:"type:text" json:"original_filename"`
	Slot             string    `gorm:"type:text" json:"slot"`
	FilePath         string    `gorm:"type:text" json:"file_path"`
	CreatedAt        time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt        time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (d *Document) TableName() string {
	return "documents"
}
