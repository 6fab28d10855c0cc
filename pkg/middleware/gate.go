package middleware

import (
	"net/http"
	"strings"

	"blogpress/pkg/session"

	"github.com/gin-gonic/gin"
)

const (
	LoginPath = "/admin/login"
	HomePath  = "/"
)

var (
	protectedPrefixes = []string{"/create-post", "/admin/dashboard"}
	authEntryPaths    = []string{"/admin/login", "/admin"}
)

// Decide returns where to redirect a request for path, or false to let it
// through. Only the presence of a session cookie matters here; handlers that
// need the admin resolve it themselves.
func Decide(path string, hasSession bool) (string, bool) {
	if !hasSession {
		for _, prefix := range protectedPrefixes {
			if hasPathPrefix(path, prefix) {
				return LoginPath, true
			}
		}
		return "", false
	}

	for _, entry := range authEntryPaths {
		if path == entry {
			return HomePath, true
		}
	}
	return "", false
}

// AuthGate applies Decide to every request.
func AuthGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		target, redirect := Decide(c.Request.URL.Path, session.HasSession(c.Request))
		if redirect {
			c.Redirect(http.StatusTemporaryRedirect, target)
			c.Abort()
			return
		}
		c.Next()
	}
}

// hasPathPrefix matches prefix on a segment boundary, so "/create-post"
// covers "/create-post/draft" but not "/create-postcard".
func hasPathPrefix(path, prefix string) bool {
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	rest := path[len(prefix):]
	return rest == "" || rest[0] == '/'
}
