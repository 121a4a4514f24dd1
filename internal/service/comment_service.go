package service

import (
	"context"
	"errors"
	"strings"

	"sewsmart/internal/models"
	"sewsmart/internal/repository"

	"gorm.io/gorm"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
}

type AddCommentInput struct {
	UserID  string
	PostID  uint
	Content string
}

type DeleteCommentInput struct {
	UserID    string
	PostID    uint
	CommentID uint
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

// AddComment appends a comment to the post and returns the updated post.
func (s *CommentService) AddComment(ctx context.Context, in AddCommentInput) (*models.Post, error) {
	if strings.TrimSpace(in.Content) == "" {
		return nil, models.NewValidationError("Comment content is required")
	}

	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", in.PostID)
		}
		return nil, err
	}

	comment := &models.Comment{
		PostID:  in.PostID,
		UserID:  in.UserID,
		Content: in.Content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return s.postEnriched(ctx, in.PostID)
}

// DeleteComment removes the comment if the caller authored it and returns the
// updated post.
func (s *CommentService) DeleteComment(ctx context.Context, in DeleteCommentInput) (*models.Post, error) {
	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", in.PostID)
		}
		return nil, err
	}

	comment, err := s.commentRepo.GetByID(ctx, in.PostID, in.CommentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFoundMessageError("Comment not found")
	}
	if err != nil {
		return nil, err
	}

	if comment.UserID != in.UserID {
		return nil, models.NewForbiddenError("You can only delete your own comments")
	}

	if err := s.commentRepo.Delete(ctx, in.CommentID); err != nil {
		return nil, err
	}

	return s.postEnriched(ctx, in.PostID)
}

func (s *CommentService) postEnriched(ctx context.Context, postID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	seen := map[string]struct{}{}
	ids := []string{post.UserID}
	seen[post.UserID] = struct{}{}
	for i := range post.Comments {
		id := post.Comments[i].UserID
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	infos, err := s.userRepo.GetInfosByExternalIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	post.User = infos[post.UserID]
	for i := range post.Comments {
		post.Comments[i].User = infos[post.Comments[i].UserID]
	}
	return post, nil
}
