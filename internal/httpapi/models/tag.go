package models

import "time"

// Tag is a moderation-curated label users attach to comments.
// Active=false hides it from listings and stats without deleting it.
type Tag struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Active      bool      `json:"active" gorm:"default:true;not null"`
	CreatedBy   string    `json:"created_by" gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// OwnerID returns the id of the user who created the tag.
func (t Tag) OwnerID() string {
	return t.CreatedBy
}

func (Tag) TableName() string {
	return "tags"
}
