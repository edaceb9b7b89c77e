package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/immobilier_backend/internal/core/domain"
	"github.com/gin-gonic/gin"
)

const trackedUserKey = "tracked_user_id"

// EventTracker receives one event per successful user-attributed request.
type EventTracker interface {
	Enabled() bool
	Enqueue(distinctID, event string, properties map[string]any)
}

var untrackedPrefixes = []string{"/health", "/metrics", "/swagger"}

// SetTrackedUser attributes the current request to user for analytics. Handlers that
// authenticate without RequireUser (register, login) call it on success.
func SetTrackedUser(c *gin.Context, user *domain.User) {
	if user != nil {
		c.Set(trackedUserKey, user.UserID)
	}
}

func trackedUserID(c *gin.Context) (string, bool) {
	if user, ok := GetUserFromContext(c); ok {
		return user.UserID, true
	}
	id := c.GetString(trackedUserKey)
	return id, id != ""
}

// Analytics sends an event named after the matched route (e.g. "api_auth_login")
// for every request below 400 that can be attributed to a user.
func Analytics(tracker EventTracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tracker == nil || !tracker.Enabled() {
			c.Next()
			return
		}
		for _, prefix := range untrackedPrefixes {
			if strings.HasPrefix(c.Request.URL.Path, prefix) {
				c.Next()
				return
			}
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		userID, ok := trackedUserID(c)
		if !ok {
			return
		}
		event := strings.Trim(strings.NewReplacer("/", "_", ":", "").Replace(c.FullPath()), "_")
		if event == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, p := range c.Params {
				params[p.Key] = p.Value
			}
			props["params"] = params
		}
		tracker.Enqueue(userID, event, props)
	}
}
