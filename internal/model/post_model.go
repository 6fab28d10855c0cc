package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostModel struct {
	ID       string     `gorm:"type:uuid;primary_key" json:"id"`
	AuthorID string     `gorm:"type:uuid;not null;index" json:"author_id"`
	Author   AdminModel `gorm:"foreignKey:AuthorID" json:"author"`
	Title    string     `gorm:"type:varchar(255);not null" json:"title"`
	Content  string     `gorm:"type:text;not null" json:"content"`
	// No gorm default here: a default would turn an explicit false into true.
	IsPublished bool           `gorm:"not null" json:"is_published"`
	Thumbnail   string         `gorm:"type:varchar(500);not null" json:"thumbnail"`
	Tags        []PostTagModel `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"tags,omitempty"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (PostModel) TableName() string {
	return "posts"
}

func (p *PostModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

type PostTagModel struct {
	PostID   string `gorm:"type:uuid;primaryKey" json:"post_id"`
	Tag      string `gorm:"type:varchar(32);primaryKey;index" json:"tag"`
	Position int    `gorm:"not null" json:"position"`
}

func (PostTagModel) TableName() string {
	return "post_tags"
}

// All lists every model in dependency order, for gorm AutoMigrate.
func All() []interface{} {
	return []interface{}{&AdminModel{}, &PostModel{}, &PostTagModel{}}
}
