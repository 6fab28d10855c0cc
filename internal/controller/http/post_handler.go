package http

import (
	"errors"
	"net/http"

	"blogpress/internal/entity"
	"blogpress/internal/usecase"
	"blogpress/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUseCase usecase.PostUseCase
	logger      *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
		logger:      logger,
	}
}

type CreatePostRequest struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Thumbnail   string   `json:"thumbnail"`
	Tags        []string `json:"tags"`
	IsPublished *bool    `json:"isPublished"`
}

type PostResponse struct {
	Post *entity.Post `json:"post"`
}

type PostsResponse struct {
	Posts []*entity.Post `json:"posts"`
}

// ListPosts godoc
// @Summary      List posts
// @Description  All posts newest first; published=true restricts to published posts
// @Tags         posts
// @Produce      json
// @Param        published query bool false "Only published posts"
// @Success      200  {object}  PostsResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	filter := entity.PostFilter{PublishedOnly: c.Query("published") == "true"}

	posts, err := h.postUseCase.ListPosts(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch posts"})
		return
	}

	c.JSON(http.StatusOK, PostsResponse{Posts: posts})
}

// CreatePost godoc
// @Summary      Create a post
// @Description  Create a post authored by the logged-in admin
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        request body CreatePostRequest true "Post data"
// @Success      201  {object}  PostResponse
// @Failure      400  {object}  ValidationErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	adminID := c.GetString(adminIDKey)
	if adminID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized access"})
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	post, err := h.postUseCase.CreatePost(c.Request.Context(), adminID, entity.PostInput{
		Title:       req.Title,
		Content:     req.Content,
		Thumbnail:   req.Thumbnail,
		Tags:        req.Tags,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		if abortWithValidation(c, err) {
			return
		}
		if errors.Is(err, entity.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized access"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, PostResponse{Post: post})
}

// GetPost godoc
// @Summary      Get a post
// @Tags         posts
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200  {object}  PostResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postUseCase.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeLookupError(c, err, "Failed to fetch post")
		return
	}

	c.JSON(http.StatusOK, PostResponse{Post: post})
}

// RelatedPosts godoc
// @Summary      Related posts
// @Description  Up to five published posts sharing a tag with the given post
// @Tags         posts
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200  {object}  PostsResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /posts/related/{id} [get]
func (h *PostHandler) RelatedPosts(c *gin.Context) {
	posts, err := h.postUseCase.FindRelated(c.Request.Context(), c.Param("id"), usecase.DefaultRelatedLimit)
	if err != nil {
		h.writeLookupError(c, err, "Failed to fetch related posts")
		return
	}

	c.JSON(http.StatusOK, PostsResponse{Posts: posts})
}

func (h *PostHandler) writeLookupError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, entity.ErrNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Post not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
}
