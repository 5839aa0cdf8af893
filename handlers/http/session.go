package httpHandler

import (
	"github.com/gin-gonic/gin"

	"recipe-server/sessions"
)

// SessionCookie carries the opaque session token.
const SessionCookie = "recipe_session"

const contextUserKey = "session_user_id"

// ResolveSession reads the session cookie and, when it maps to a live
// session, injects the user ID into the request context. It never aborts;
// handlers decide how to answer anonymous requests.
func ResolveSession(store *sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err == nil {
			if userID, ok := store.Get(token); ok {
				c.Set(contextUserKey, userID)
			}
		}
		c.Next()
	}
}

// CurrentUserID returns the authenticated user ID, or "" for anonymous
// requests.
func CurrentUserID(c *gin.Context) string {
	if v, ok := c.Get(contextUserKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
