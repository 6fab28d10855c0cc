package persistent

import (
	"context"

	"blogpress/internal/entity"
	"blogpress/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	List(ctx context.Context, filter entity.PostFilter) ([]*entity.Post, error)
	// Related returns published posts other than excludeID that carry any
	// of tags, newest first.
	Related(ctx context.Context, excludeID string, tags []entity.Category, limit int) ([]*entity.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func withAuthorAndTags(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Author", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name")
		}).
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		})
}

func (r *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postModel := ToPostModel(post)
	if postModel.ID == "" {
		postModel.ID = uuid.New().String()
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tags := postModel.Tags
		postModel.Tags = nil

		if err := tx.Omit(clause.Associations).Create(postModel).Error; err != nil {
			return err
		}

		if len(tags) > 0 {
			for i := range tags {
				tags[i].PostID = postModel.ID
			}
			if err := tx.Create(&tags).Error; err != nil {
				return err
			}
		}

		var created model.PostModel
		if err := withAuthorAndTags(tx).Where("id = ?", postModel.ID).First(&created).Error; err != nil {
			return err
		}

		*post = *ToPostEntity(&created)
		return nil
	})
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	if !isUUID(id) {
		return nil, entity.ErrNotFound
	}

	var postModel model.PostModel
	if err := withAuthorAndTags(r.db.WithContext(ctx)).Where("id = ?", id).First(&postModel).Error; err != nil {
		return nil, notFound(err)
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) List(ctx context.Context, filter entity.PostFilter) ([]*entity.Post, error) {
	var postModels []model.PostModel
	query := withAuthorAndTags(r.db.WithContext(ctx)).Order("created_at DESC").Order("id DESC")

	if filter.PublishedOnly {
		query = query.Where("is_published = ?", true)
	}

	if err := query.Find(&postModels).Error; err != nil {
		return nil, err
	}

	return toPostEntities(postModels), nil
}

func (r *postRepository) Related(ctx context.Context, excludeID string, tags []entity.Category, limit int) ([]*entity.Post, error) {
	if len(tags) == 0 || limit <= 0 {
		return []*entity.Post{}, nil
	}

	tagNames := make([]string, len(tags))
	for i, tag := range tags {
		tagNames[i] = string(tag)
	}

	db := r.db.WithContext(ctx)
	sharesTag := db.Model(&model.PostTagModel{}).Select("post_id").Where("tag IN ?", tagNames)

	var postModels []model.PostModel
	err := withAuthorAndTags(db).
		Where("id IN (?)", sharesTag).
		Where("id <> ?", excludeID).
		Where("is_published = ?", true).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&postModels).Error
	if err != nil {
		return nil, err
	}

	return toPostEntities(postModels), nil
}

func toPostEntities(postModels []model.PostModel) []*entity.Post {
	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts
}
