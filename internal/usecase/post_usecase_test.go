package usecase

import (
	"context"
	"errors"
	"testing"

	"blogpress/internal/entity"
	"blogpress/pkg/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validInput(tags ...string) entity.PostInput {
	return entity.PostInput{
		Title:     "Hello world",
		Content:   "A long enough body of text.",
		Thumbnail: "https://cdn.example.com/cover.PNG",
		Tags:      tags,
	}
}

func signupAuthor(t *testing.T, f *fixture) *entity.Admin {
	t.Helper()
	admin, err := f.auth.Signup(context.Background(), "Jo", "jo@example.com", "secret1")
	require.NoError(t, err)
	return admin
}

func TestCreatePost_DefaultsToPublished(t *testing.T) {
	f := newFixture(t, session.PlainCodec{})
	author := signupAuthor(t, f)

	post, err := f.posts.CreatePost(context.Background(), author.ID, validInput("Business"))
	require.NoError(t, err)
	assert.True(t, post.IsPublished)
	assert.Equal(t, entity.Author{ID: author.ID, Name: "Jo"}, post.Author)
	assert.Equal(t, []entity.Category{entity.CategoryBusiness}, post.Tags)
}

func TestCreatePost_ExplicitUnpublished(t *testing.T) {
	f := newFixture(t, session.PlainCodec{})
	author := signupAuthor(t, f)

	in := validInput("News")
	draft := false
	in.IsPublished = &draft

	post, err := f.posts.CreatePost(context.Background(), author.ID, in)
	require.NoError(t, err)
	assert.False(t, post.IsPublished)

	got, err := f.posts.GetPost(context.Background(), post.ID)
	require.NoError(t, err)
	assert.False(t, got.IsPublished)
}

func TestCreatePost_CollapsesDuplicateTags(t *testing.T) {
	f := newFixture(t, session.PlainCodec{})
	author := signupAuthor(t, f)

	post, err := f.posts.CreatePost(context.Background(), author.ID, validInput("Health", "News", "Health"))
	require.NoError(t, err)
	assert.Equal(t, []entity.Category{entity.CategoryHealth, entity.CategoryNews}, post.Tags)
}

func TestCreatePost_Validation(t *testing.T) {
	tests := []struct {
		name   string
		input  entity.PostInput
		fields map[string]string
	}{
		{
			name:  "empty tags",
			input: validInput(),
			fields: map[string]string{
				"tags": "At least one tag is required",
			},
		},
		{
			name:  "unknown tag",
			input: validInput("Business", "Sports"),
			fields: map[string]string{
				"tags": "Tags must be one of: Business, Gaming, Technology, Health, News",
			},
		},
		{
			name: "short fields and missing thumbnail",
			input: entity.PostInput{
				Title:   " ab ",
				Content: "too short",
				Tags:    []string{"Gaming"},
			},
			fields: map[string]string{
				"title":     "Title must be at least 3 characters long",
				"content":   "Content must be at least 10 characters long",
				"thumbnail": "Thumbnail image is required",
			},
		},
		{
			name: "thumbnail without image extension",
			input: entity.PostInput{
				Title:     "Hello world",
				Content:   "A long enough body of text.",
				Thumbnail: "https://cdn.example.com/cover.gif",
				Tags:      []string{"Gaming"},
			},
			fields: map[string]string{
				"thumbnail": "Thumbnail must be a valid image file",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, session.PlainCodec{})
			author := signupAuthor(t, f)

			_, err := f.posts.CreatePost(context.Background(), author.ID, tt.input)

			var verr *entity.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.fields, verr.Fields)
		})
	}
}

func TestCreatePost_RequiresAuthor(t *testing.T) {
	f := newFixture(t, session.PlainCodec{})

	_, err := f.posts.CreatePost(context.Background(), "", validInput("Business"))
	assert.ErrorIs(t, err, entity.ErrUnauthorized)
}

func TestGetPost_NotFound(t *testing.T) {
	f := newFixture(t, session.PlainCodec{})

	_, err := f.posts.GetPost(context.Background(), "9b2f6a55-2f43-4d8e-9d1b-3f0a3d2b7c11")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestListPosts_Filter(t *testing.T) {
	f := newFixture(t, session.PlainCodec{})
	author := signupAuthor(t, f)
	ctx := context.Background()

	_, err := f.posts.CreatePost(ctx, author.ID, validInput("Business"))
	require.NoError(t, err)

	in := validInput("Business")
	draft := false
	in.IsPublished = &draft
	_, err = f.posts.CreatePost(ctx, author.ID, in)
	require.NoError(t, err)

	all, err := f.posts.ListPosts(ctx, entity.PostFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
	for _, p := range all {
		assert.Equal(t, "Jo", p.Author.Name)
	}

	published, err := f.posts.ListPosts(ctx, entity.PostFilter{PublishedOnly: true})
	require.NoError(t, err)
	require.Len(t, published, 1)
	assert.True(t, published[0].IsPublished)
}

func TestFindRelated_ExcludesSelfAndUnpublished(t *testing.T) {
	f := newFixture(t, session.PlainCodec{})
	author := signupAuthor(t, f)
	ctx := context.Background()

	ref, err := f.posts.CreatePost(ctx, author.ID, validInput("Technology", "Gaming"))
	require.NoError(t, err)

	for i := 0; i < 7; i++ {
		_, err := f.posts.CreatePost(ctx, author.ID, validInput("Gaming"))
		require.NoError(t, err)
	}

	in := validInput("Technology")
	draft := false
	in.IsPublished = &draft
	hidden, err := f.posts.CreatePost(ctx, author.ID, in)
	require.NoError(t, err)

	_, err = f.posts.CreatePost(ctx, author.ID, validInput("Health"))
	require.NoError(t, err)

	related, err := f.posts.FindRelated(ctx, ref.ID, 0)
	require.NoError(t, err)
	assert.Len(t, related, DefaultRelatedLimit)

	for _, p := range related {
		assert.NotEqual(t, ref.ID, p.ID)
		assert.NotEqual(t, hidden.ID, p.ID)
		assert.True(t, p.IsPublished)
		assert.Contains(t, p.Tags, entity.CategoryGaming)
	}
}

func TestFindRelated_UnknownReference(t *testing.T) {
	f := newFixture(t, session.PlainCodec{})

	_, err := f.posts.FindRelated(context.Background(), "9b2f6a55-2f43-4d8e-9d1b-3f0a3d2b7c11", 5)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

type mockPostRepository struct {
	mock.Mock
}

func (m *mockPostRepository) Create(ctx context.Context, post *entity.Post) error {
	return m.Called(ctx, post).Error(0)
}

func (m *mockPostRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *mockPostRepository) List(ctx context.Context, filter entity.PostFilter) ([]*entity.Post, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *mockPostRepository) Related(ctx context.Context, excludeID string, tags []entity.Category, limit int) ([]*entity.Post, error) {
	args := m.Called(ctx, excludeID, tags, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func TestCreatePost_StoreError(t *testing.T) {
	repo := new(mockPostRepository)
	uc := NewPostUseCase(repo, newTestLogger())
	storeErr := errors.New("connection reset")

	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Post")).Return(storeErr)

	_, err := uc.CreatePost(context.Background(), "author-1", validInput("News"))
	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, entity.ErrValidation)
	repo.AssertExpectations(t)
}

func TestFindRelated_PassesReferenceTags(t *testing.T) {
	repo := new(mockPostRepository)
	uc := NewPostUseCase(repo, newTestLogger())
	ref := &entity.Post{ID: "ref", Tags: []entity.Category{entity.CategoryNews}}

	repo.On("GetByID", mock.Anything, "ref").Return(ref, nil)
	repo.On("Related", mock.Anything, "ref", ref.Tags, 3).Return([]*entity.Post{}, nil)

	posts, err := uc.FindRelated(context.Background(), "ref", 3)
	require.NoError(t, err)
	assert.Empty(t, posts)
	repo.AssertExpectations(t)
}
