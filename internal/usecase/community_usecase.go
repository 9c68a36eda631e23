package usecase

import (
	"context"
	"strings"

	"mados/internal/appstate"
	"mados/internal/domain/entity"
	"mados/internal/domain/service"
	"mados/internal/infrastructure/ratelimit"
	"mados/pkg/errors"
	"mados/pkg/utils"
)

type CommunityUseCase struct {
	state   *appstate.State
	limiter RateLimiter
	notify  notificationEmitter
}

func NewCommunityUseCase(state *appstate.State, limiter RateLimiter, notifier service.Notifier) *CommunityUseCase {
	return &CommunityUseCase{
		state:   state,
		limiter: limiter,
		notify:  notificationEmitter{state: state, notifier: notifier},
	}
}

type CreatePostInput struct {
	Title       string
	Description string
	Price       int64
	ImageURL    string
}

type CommentInput struct {
	Text     string
	ImageURL string
}

type LikeResult struct {
	Liked bool `json:"liked"`
	Likes int  `json:"likes"`
}

// ListPosts pages through the feed, newest first.
func (uc *CommunityUseCase) ListPosts(ctx context.Context, params utils.PaginationParams) ([]entity.CommunityPost, int64) {
	posts := uc.state.CommunityPosts()
	start, end := params.Window(len(posts))
	return posts[start:end], int64(len(posts))
}

func (uc *CommunityUseCase) GetPost(ctx context.Context, postID string) (*entity.CommunityPost, error) {
	post, ok := uc.state.CommunityPost(postID)
	if !ok {
		return nil, errors.NotFound("Post", nil)
	}
	return &post, nil
}

func (uc *CommunityUseCase) UserPosts(ctx context.Context, userID string) ([]entity.CommunityPost, error) {
	if _, ok := uc.state.User(userID); !ok {
		return nil, errors.NotFound("User", nil)
	}
	return postsBy(uc.state.CommunityPosts(), userID), nil
}

func (uc *CommunityUseCase) CreatePost(ctx context.Context, userID string, input CreatePostInput) (*entity.CommunityPost, error) {
	ss, _, err := currentSession(uc.state, userID)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" || input.ImageURL == "" || input.Price < 0 {
		return nil, errors.Validation("Judul, harga, dan gambar tidak boleh kosong.")
	}
	if err := allow(uc.limiter, userID, ratelimit.ActionCreatePost); err != nil {
		return nil, err
	}

	post, ok := ss.AddCommunityPost(appstate.NewCommunityPost{
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price,
		ImageURL:    input.ImageURL,
	})
	if !ok {
		return nil, errors.Unauthorized(msgLoginRequired, nil)
	}
	return &post, nil
}

// ToggleLike notifies the author when a like is added.
func (uc *CommunityUseCase) ToggleLike(ctx context.Context, userID, postID string) (*LikeResult, error) {
	ss, me, err := currentSession(uc.state, userID)
	if err != nil {
		return nil, err
	}
	post, ok := uc.state.CommunityPost(postID)
	if !ok {
		return nil, errors.NotFound("Post", nil)
	}

	liked := ss.ToggleCommunityPostLike(postID)
	if liked {
		uc.notify.emit(entity.Notification{
			Type:          entity.NotificationLike,
			RecipientID:   post.UserID,
			FromUserID:    me.ID,
			FromUserName:  me.Name,
			TargetSummary: post.Title,
		})
	}

	updated, _ := uc.state.CommunityPost(postID)
	return &LikeResult{Liked: liked, Likes: len(updated.Likes)}, nil
}

func (uc *CommunityUseCase) Comment(ctx context.Context, userID, postID string, input CommentInput) (*entity.CommunityPostComment, error) {
	ss, me, err := currentSession(uc.state, userID)
	if err != nil {
		return nil, err
	}
	post, ok := uc.state.CommunityPost(postID)
	if !ok {
		return nil, errors.NotFound("Post", nil)
	}
	text, err := uc.checkComment(userID, input)
	if err != nil {
		return nil, err
	}

	comment, ok := ss.AddCommentToCommunityPost(postID, text, input.ImageURL)
	if !ok {
		return nil, errors.NotFound("Post", nil)
	}

	uc.notify.emit(entity.Notification{
		Type:          entity.NotificationComment,
		RecipientID:   post.UserID,
		FromUserID:    me.ID,
		FromUserName:  me.Name,
		TargetSummary: post.Title,
	})
	return &comment, nil
}

// Reply answers a comment at any depth. The reply records the parent
// author's name.
func (uc *CommunityUseCase) Reply(ctx context.Context, userID, postID, parentCommentID string, input CommentInput) (*entity.CommunityPostComment, error) {
	ss, me, err := currentSession(uc.state, userID)
	if err != nil {
		return nil, err
	}
	post, ok := uc.state.CommunityPost(postID)
	if !ok {
		return nil, errors.NotFound("Post", nil)
	}
	parent, ok := entity.FindComment(post.Comments, parentCommentID)
	if !ok {
		return nil, errors.NotFound("Comment", nil)
	}
	text, err := uc.checkComment(userID, input)
	if err != nil {
		return nil, err
	}

	reply, ok := ss.AddReplyToComment(postID, parentCommentID, text, parent.UserName, input.ImageURL)
	if !ok {
		return nil, errors.NotFound("Comment", nil)
	}

	uc.notify.emit(entity.Notification{
		Type:          entity.NotificationComment,
		RecipientID:   parent.UserID,
		FromUserID:    me.ID,
		FromUserName:  me.Name,
		TargetSummary: summarize(parent.Text, 40),
	})
	return &reply, nil
}

func (uc *CommunityUseCase) checkComment(userID string, input CommentInput) (string, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" && input.ImageURL == "" {
		return "", errors.Validation("Komentar tidak boleh kosong.")
	}
	if err := allow(uc.limiter, userID, ratelimit.ActionComment); err != nil {
		return "", err
	}
	return text, nil
}
