package appstate

import (
	"mados/internal/domain/entity"
)

// SendMessage appends a message from the current user to the session shared
// with partnerID, creating that session on first contact. Messaging yourself
// or an unknown user does nothing.
func (ss *Session) SendMessage(partnerID, text string, productContext *entity.ProductContext) (msg entity.ChatMessage, ok bool) {
	if partnerID == ss.userID {
		return msg, false
	}

	ss.withCurrentUser(func(s *State, me entity.User) {
		if _, found := s.userLocked(partnerID); !found {
			return
		}

		msg = entity.ChatMessage{
			ID:             s.newID("msg"),
			SenderID:       me.ID,
			Text:           text,
			Timestamp:      s.now(),
			Status:         entity.MessageSent,
			ProductContext: productContext.Clone(),
		}

		i := indexOf(s.chats, func(c entity.ChatSession) bool { return c.Between(me.ID, partnerID) })
		if i < 0 {
			s.chats = appendTo(s.chats, entity.ChatSession{
				ID:             s.newID("chat"),
				ParticipantIDs: []string{me.ID, partnerID},
				Messages:       []entity.ChatMessage{msg},
			})
		} else {
			chat := s.chats[i].Clone()
			chat.Messages = appendTo(chat.Messages, msg)
			s.chats = replaceAt(s.chats, i, chat)
		}
		ok = true
	})
	return msg, ok
}

// MarkMessagesAsRead marks every message partnerID sent in the shared
// session as read.
func (ss *Session) MarkMessagesAsRead(partnerID string) {
	ss.withCurrentUser(func(s *State, me entity.User) {
		i := indexOf(s.chats, func(c entity.ChatSession) bool { return c.Between(me.ID, partnerID) })
		if i < 0 {
			return
		}
		chat := s.chats[i].Clone()
		for j := range chat.Messages {
			if chat.Messages[j].SenderID == partnerID {
				chat.Messages[j].Status = entity.MessageRead
			}
		}
		s.chats = replaceAt(s.chats, i, chat)
	})
}

func (ss *Session) ChatWith(partnerID string) (entity.ChatSession, bool) {
	s := ss.state
	s.mu.RLock()
	defer s.mu.RUnlock()

	if ss.userID == "" {
		return entity.ChatSession{}, false
	}
	i := indexOf(s.chats, func(c entity.ChatSession) bool { return c.Between(ss.userID, partnerID) })
	if i < 0 {
		return entity.ChatSession{}, false
	}
	return s.chats[i].Clone(), true
}

// Chats lists the sessions the current user takes part in.
func (ss *Session) Chats() []entity.ChatSession {
	s := ss.state
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []entity.ChatSession
	for _, c := range s.chats {
		if containsID(c.ParticipantIDs, ss.userID) {
			out = append(out, c.Clone())
		}
	}
	return out
}
