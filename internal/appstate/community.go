package appstate

import (
	"mados/internal/domain/entity"
)

// NewCommunityPost carries the fields a user fills in; id, author,
// timestamp, likes and comments are stamped by AddCommunityPost.
type NewCommunityPost struct {
	Title       string
	Description string
	Price       int64
	ImageURL    string
}

// AddCommunityPost prepends a post authored by the current user. It returns
// the created post, or false without a current user.
func (ss *Session) AddCommunityPost(in NewCommunityPost) (post entity.CommunityPost, ok bool) {
	ss.withCurrentUser(func(s *State, me entity.User) {
		post = entity.CommunityPost{
			ID:          s.newID("cp"),
			UserID:      me.ID,
			UserName:    me.Name,
			Title:       in.Title,
			Description: in.Description,
			Price:       in.Price,
			ImageURL:    in.ImageURL,
			Timestamp:   s.now(),
			Likes:       []string{},
			Comments:    []entity.CommunityPostComment{},
		}
		s.communityPosts = prependTo(s.communityPosts, post)
		ok = true
	})
	return post.Clone(), ok
}

// ToggleCommunityPostLike adds or removes the current user's like. It
// reports whether the post is liked by the current user afterwards.
func (ss *Session) ToggleCommunityPostLike(postID string) (liked bool) {
	ss.withCurrentUser(func(s *State, me entity.User) {
		s.updatePostLocked(postID, func(p entity.CommunityPost) entity.CommunityPost {
			p.Likes, liked = toggleID(p.Likes, me.ID)
			return p
		})
	})
	return liked
}

// AddCommentToCommunityPost appends a top-level comment.
func (ss *Session) AddCommentToCommunityPost(postID, text, imageURL string) (comment entity.CommunityPostComment, ok bool) {
	ss.withCurrentUser(func(s *State, me entity.User) {
		c := s.newComment(me, text, imageURL, "")
		ok = s.updatePostLocked(postID, func(p entity.CommunityPost) entity.CommunityPost {
			p.Comments = appendTo(p.Comments, c)
			return p
		})
		comment = c
	})
	return comment, ok
}

// AddReplyToComment appends a reply under parentCommentID, wherever it sits
// in the post's comment tree. Nothing changes when the parent is missing.
func (ss *Session) AddReplyToComment(postID, parentCommentID, text, replyingTo, imageURL string) (reply entity.CommunityPostComment, ok bool) {
	ss.withCurrentUser(func(s *State, me entity.User) {
		r := s.newComment(me, text, imageURL, replyingTo)
		s.updatePostLocked(postID, func(p entity.CommunityPost) entity.CommunityPost {
			var attached bool
			p.Comments, attached = addReply(p.Comments, parentCommentID, r)
			ok = attached
			return p
		})
		reply = r
	})
	return reply, ok
}

// addReply rebuilds only the path from the root to the parent; untouched
// branches keep their slices.
func addReply(comments []entity.CommunityPostComment, parentID string, reply entity.CommunityPostComment) ([]entity.CommunityPostComment, bool) {
	for i, c := range comments {
		if c.ID == parentID {
			c.Replies = appendTo(c.Replies, reply)
			return replaceAt(comments, i, c), true
		}
		if len(c.Replies) == 0 {
			continue
		}
		if replies, ok := addReply(c.Replies, parentID, reply); ok {
			c.Replies = replies
			return replaceAt(comments, i, c), true
		}
	}
	return comments, false
}

func (s *State) newComment(author entity.User, text, imageURL, replyingTo string) entity.CommunityPostComment {
	return entity.CommunityPostComment{
		ID:         s.newID("cmt"),
		UserID:     author.ID,
		UserName:   author.Name,
		Text:       text,
		ImageURL:   imageURL,
		Timestamp:  s.now(),
		ReplyingTo: replyingTo,
		Replies:    []entity.CommunityPostComment{},
	}
}

func (s *State) updatePostLocked(id string, update func(entity.CommunityPost) entity.CommunityPost) bool {
	i := indexOf(s.communityPosts, func(p entity.CommunityPost) bool { return p.ID == id })
	if i < 0 {
		return false
	}
	s.communityPosts = replaceAt(s.communityPosts, i, update(s.communityPosts[i].Clone()))
	return true
}
