package persistent

import (
	"sort"

	"blogpress/internal/entity"
	"blogpress/internal/model"
)

func ToAdminEntity(m *model.AdminModel) *entity.Admin {
	if m == nil {
		return nil
	}

	return &entity.Admin{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Password:  m.Password,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToAdminModel(e *entity.Admin) *model.AdminModel {
	if e == nil {
		return nil
	}

	return &model.AdminModel{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Password:  e.Password,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	post := &entity.Post{
		ID:          m.ID,
		Title:       m.Title,
		Content:     m.Content,
		Thumbnail:   m.Thumbnail,
		Author:      entity.Author{ID: m.AuthorID, Name: m.Author.Name},
		IsPublished: m.IsPublished,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}

	tags := make([]model.PostTagModel, len(m.Tags))
	copy(tags, m.Tags)
	sort.SliceStable(tags, func(i, j int) bool { return tags[i].Position < tags[j].Position })

	post.Tags = make([]entity.Category, len(tags))
	for i, tag := range tags {
		post.Tags[i] = entity.Category(tag.Tag)
	}

	return post
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	post := &model.PostModel{
		ID:          e.ID,
		AuthorID:    e.Author.ID,
		Title:       e.Title,
		Content:     e.Content,
		Thumbnail:   e.Thumbnail,
		IsPublished: e.IsPublished,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}

	if len(e.Tags) > 0 {
		post.Tags = make([]model.PostTagModel, len(e.Tags))
		for i, tag := range e.Tags {
			post.Tags[i] = model.PostTagModel{
				PostID:   e.ID,
				Tag:      string(tag),
				Position: i,
			}
		}
	}

	return post
}
