package entity

import (
	"github.com/google/uuid"
)

// SessionContext identifies who owns a chat: a signed-in user or an
// anonymous browser session. Exactly one of the two is set.
type SessionContext struct {
	userId       *uuid.UUID
	sessionToken string
}

func Authenticated(userId uuid.UUID) SessionContext {
	return SessionContext{userId: &userId}
}

func Anonymous(sessionToken string) SessionContext {
	return SessionContext{sessionToken: sessionToken}
}

func (s SessionContext) IsAuthenticated() bool {
	return s.userId != nil
}

func (s SessionContext) UserId() (uuid.UUID, bool) {
	if s.userId == nil {
		return uuid.Nil, false
	}
	return *s.userId, true
}

func (s SessionContext) SessionToken() string {
	return s.sessionToken
}

// Valid reports whether the context names an owner at all.
func (s SessionContext) Valid() bool {
	return s.userId != nil || s.sessionToken != ""
}

// Key is a stable string used for per-session state such as the artifact
// panel and websocket routing.
func (s SessionContext) Key() string {
	if s.userId != nil {
		return "user:" + s.userId.String()
	}
	return "session:" + s.sessionToken
}

// Owns reports whether chat belongs to this session.
func (s SessionContext) Owns(chat *Chat) bool {
	if chat == nil {
		return false
	}
	if s.userId != nil {
		return chat.UserId != nil && *chat.UserId == *s.userId
	}
	return chat.UserId == nil && chat.SessionToken != nil && *chat.SessionToken == s.sessionToken
}

// Stamp sets the ownership columns of a new chat.
func (s SessionContext) Stamp(chat *Chat) {
	if s.userId != nil {
		id := *s.userId
		chat.UserId = &id
		chat.SessionToken = nil
		return
	}
	token := s.sessionToken
	chat.UserId = nil
	chat.SessionToken = &token
}
