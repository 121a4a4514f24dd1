package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"sewsmart/internal/cache"
	"sewsmart/internal/middleware"
	"sewsmart/internal/models"
	"sewsmart/internal/observability"
	"sewsmart/internal/repository"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"
)

// ObjectStorage is the object store a PostService uploads design images to.
type ObjectStorage interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, publicURL string) error
}

const (
	feedLimit    = 20
	maxImageSize = 10 * 1024 * 1024 // 10MB
)

var allowedImageExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
}

var allowedImageMIMEs = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	storage  ObjectStorage
}

type CreatePostInput struct {
	UserID      string
	Description string
	Category    string
	Tags        string // comma-separated
	FileName    string
	FileSize    int64
	File        io.Reader
}

type DeletePostInput struct {
	UserID string
	PostID uint
}

func NewPostService(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	storage ObjectStorage,
) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
		storage:  storage,
	}
}

// CreatePost validates and uploads the image, then persists the post.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	span, ctx := observability.NewSpan(ctx, "PostService.CreatePost")
	defer span.End()
	span.AddAttributes(attribute.String("post.category", in.Category))

	if in.File == nil {
		return nil, models.NewValidationError("Image is required")
	}
	if in.FileSize > maxImageSize {
		middleware.ImageUploads.WithLabelValues("rejected").Inc()
		return nil, models.NewValidationError("Image too large (max 10MB)")
	}

	ext := strings.ToLower(filepath.Ext(in.FileName))
	if !allowedImageExts[ext] {
		middleware.ImageUploads.WithLabelValues("rejected").Inc()
		return nil, models.NewValidationError("Only image files (jpeg, jpg, png, gif) are allowed")
	}

	// Sniff the real content type from the first bytes, not the filename.
	head := make([]byte, 512)
	n, err := io.ReadFull(in.File, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, models.NewInternalError(err)
	}
	contentType := http.DetectContentType(head[:n])
	if !allowedImageMIMEs[contentType] {
		middleware.ImageUploads.WithLabelValues("rejected").Inc()
		return nil, models.NewValidationError("Only image files (jpeg, jpg, png, gif) are allowed")
	}
	body := io.MultiReader(bytes.NewReader(head[:n]), in.File)

	key := "uploads/" + uuid.NewString() + ext
	imageURL, err := s.storage.Upload(ctx, key, contentType, body)
	if err != nil {
		middleware.ImageUploads.WithLabelValues("failed").Inc()
		span.SetError(err)
		return nil, models.NewInternalError(err)
	}
	middleware.ImageUploads.WithLabelValues("success").Inc()

	post := &models.Post{
		UserID:      in.UserID,
		Image:       imageURL,
		Description: in.Description,
		Category:    in.Category,
		Tags:        splitTags(in.Tags),
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.getPostEnriched(ctx, post.ID)
}

// GetFeed returns the newest posts with authors, likes and comments attached.
// The raw list is cache-aside; author enrichment runs per read so profile
// edits show up without waiting out the feed TTL.
func (s *PostService) GetFeed(ctx context.Context) ([]*models.Post, error) {
	var posts []*models.Post
	err := cache.Aside(ctx, cache.PostsListKey, &posts, cache.PostsListTTL, func() error {
		var fetchErr error
		posts, fetchErr = s.postRepo.List(ctx, feedLimit)
		return fetchErr
	})
	if err != nil {
		return nil, err
	}
	if err := s.enrichAuthors(ctx, posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostService) GetUserPosts(ctx context.Context, userID string) ([]*models.Post, error) {
	posts, err := s.postRepo.ListByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.enrichAuthors(ctx, posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) error {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFoundError("Post", in.PostID)
	}
	if err != nil {
		return err
	}

	if post.UserID != in.UserID {
		return models.NewForbiddenError("You can only delete your own posts")
	}

	if err := s.postRepo.Delete(ctx, in.PostID); err != nil {
		return err
	}

	// Removing the stored image is best-effort; the post row is already gone.
	if s.storage != nil {
		if delErr := s.storage.Delete(ctx, post.Image); delErr != nil {
			middleware.Logger.Warn("Failed to delete post image from object storage",
				slog.String("image", post.Image),
				slog.String("error", delErr.Error()),
			)
		}
	}
	return nil
}

// ToggleLike adds the user to the post's like set if absent, removes them if
// present, and returns the post with the updated set.
func (s *PostService) ToggleLike(ctx context.Context, userID string, postID uint) (*models.Post, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", postID)
		}
		return nil, err
	}

	isLiked, err := s.postRepo.IsLiked(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	if isLiked {
		if err := s.postRepo.Unlike(ctx, userID, postID); err != nil {
			return nil, err
		}
	} else {
		if err := s.postRepo.Like(ctx, userID, postID); err != nil {
			return nil, err
		}
	}

	return s.getPostEnriched(ctx, postID)
}

func (s *PostService) getPostEnriched(ctx context.Context, postID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFoundError("Post", postID)
	}
	if err != nil {
		return nil, err
	}
	if err := s.enrichAuthors(ctx, []*models.Post{post}); err != nil {
		return nil, err
	}
	return post, nil
}

// enrichAuthors attaches the denormalized author to each post and comment in
// a single batch lookup.
func (s *PostService) enrichAuthors(ctx context.Context, posts []*models.Post) error {
	if len(posts) == 0 {
		return nil
	}

	seen := map[string]struct{}{}
	ids := make([]string, 0, len(posts))
	collect := func(id string) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	for _, p := range posts {
		collect(p.UserID)
		for i := range p.Comments {
			collect(p.Comments[i].UserID)
		}
	}

	infos, err := s.userRepo.GetInfosByExternalIDs(ctx, ids)
	if err != nil {
		return err
	}

	for _, p := range posts {
		p.User = infos[p.UserID]
		for i := range p.Comments {
			p.Comments[i].User = infos[p.Comments[i].UserID]
		}
	}
	return nil
}

func splitTags(raw string) models.TagList {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var tags models.TagList
	for _, t := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(t); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}
