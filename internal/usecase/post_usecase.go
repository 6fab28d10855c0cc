package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"blogpress/internal/entity"
	"blogpress/internal/repo/persistent"
	"blogpress/pkg/logger"

	"github.com/go-playground/validator/v10"
)

// DefaultRelatedLimit caps related-post lookups when the caller gives no limit.
const DefaultRelatedLimit = 5

type PostUseCase interface {
	CreatePost(ctx context.Context, authorID string, input entity.PostInput) (*entity.Post, error)
	GetPost(ctx context.Context, id string) (*entity.Post, error)
	ListPosts(ctx context.Context, filter entity.PostFilter) ([]*entity.Post, error)
	FindRelated(ctx context.Context, id string, limit int) ([]*entity.Post, error)
}

type postUseCase struct {
	postRepo persistent.PostRepository
	validate *validator.Validate
	logger   *logger.Logger
}

func NewPostUseCase(postRepo persistent.PostRepository, logger *logger.Logger) PostUseCase {
	return &postUseCase{
		postRepo: postRepo,
		validate: newValidator(),
		logger:   logger,
	}
}

func (uc *postUseCase) CreatePost(ctx context.Context, authorID string, input entity.PostInput) (*entity.Post, error) {
	if authorID == "" {
		return nil, entity.ErrUnauthorized
	}

	in := postInput{
		Title:     strings.TrimSpace(input.Title),
		Content:   strings.TrimSpace(input.Content),
		Thumbnail: strings.TrimSpace(input.Thumbnail),
		Tags:      dedupeTags(input.Tags),
	}
	if err := uc.validate.Struct(in); err != nil {
		return nil, validationError(err)
	}

	published := true
	if input.IsPublished != nil {
		published = *input.IsPublished
	}

	tags := make([]entity.Category, len(in.Tags))
	for i, tag := range in.Tags {
		tags[i] = entity.Category(tag)
	}

	post := &entity.Post{
		Title:       in.Title,
		Content:     in.Content,
		Thumbnail:   in.Thumbnail,
		Tags:        tags,
		Author:      entity.Author{ID: authorID},
		IsPublished: published,
	}
	if err := uc.postRepo.Create(ctx, post); err != nil {
		uc.logger.Error("Failed to create post: %v", err)
		return nil, fmt.Errorf("create post: %w", err)
	}

	uc.logger.Info("Post %s created by admin %s", post.ID, authorID)
	return post, nil
}

// dedupeTags trims tags and drops repeats, keeping first occurrence order.
func dedupeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

func (uc *postUseCase) GetPost(ctx context.Context, id string) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, entity.ErrNotFound) {
			uc.logger.Error("Failed to get post %s: %v", id, err)
		}
		return nil, err
	}
	return post, nil
}

func (uc *postUseCase) ListPosts(ctx context.Context, filter entity.PostFilter) ([]*entity.Post, error) {
	posts, err := uc.postRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Error("Failed to list posts: %v", err)
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (uc *postUseCase) FindRelated(ctx context.Context, id string, limit int) ([]*entity.Post, error) {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	ref, err := uc.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}

	posts, err := uc.postRepo.Related(ctx, ref.ID, ref.Tags, limit)
	if err != nil {
		uc.logger.Error("Failed to find posts related to %s: %v", id, err)
		return nil, fmt.Errorf("find related posts: %w", err)
	}
	return posts, nil
}
