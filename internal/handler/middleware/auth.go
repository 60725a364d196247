package middleware

import (
	"net/http"

	"slotbook/internal/pkg/cookie"
	"slotbook/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const adminEmailKey = "admin_email"

type AuthMiddleware struct {
	jwtService *jwt.Service
}

func NewAuthMiddleware(jwtService *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// RequireAdmin gates the admin pages behind a valid session cookie. Browsers
// get a redirect to the login page rather than a JSON 401.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetSessionToken(c)
		if token == "" {
			redirectToLogin(c)
			return
		}

		claims, err := m.jwtService.ValidateSessionToken(token)
		if err != nil {
			redirectToLogin(c)
			return
		}

		c.Set(adminEmailKey, claims.Email)
		c.Next()
	}
}

func redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, "/admin-login")
	c.Abort()
}

func AdminEmail(c *gin.Context) string {
	if email, exists := c.Get(adminEmailKey); exists {
		if e, ok := email.(string); ok {
			return e
		}
	}
	return ""
}
