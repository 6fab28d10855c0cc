package entity

import "time"

type Category string

const (
	CategoryBusiness   Category = "Business"
	CategoryGaming     Category = "Gaming"
	CategoryTechnology Category = "Technology"
	CategoryHealth     Category = "Health"
	CategoryNews       Category = "News"
)

// Categories is the fixed set of tags a post may carry, in display order.
var Categories = []Category{
	CategoryBusiness,
	CategoryGaming,
	CategoryTechnology,
	CategoryHealth,
	CategoryNews,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ThumbnailExtensions are the accepted thumbnail URL suffixes.
var ThumbnailExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}

// Author is the part of an Admin embedded in post responses.
type Author struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type Post struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Thumbnail   string     `json:"thumbnail"`
	Tags        []Category `json:"tags"`
	Author      Author     `json:"author"`
	IsPublished bool       `json:"isPublished"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// PostInput is what an admin submits to create a post. A nil IsPublished
// means published.
type PostInput struct {
	Title       string
	Content     string
	Thumbnail   string
	Tags        []string
	IsPublished *bool
}

type PostFilter struct {
	PublishedOnly bool
}
