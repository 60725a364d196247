package api

import (
	"errors"
	"net/http"

	reqdto "slotbook/internal/handler/dto/request"
	"slotbook/internal/pkg/config"
	"slotbook/internal/pkg/cookie"
	"slotbook/internal/pkg/jwt"
	"slotbook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth       commands.AuthCommands
	jwtService *jwt.Service
	cookieCfg  config.CookieConfig
}

func NewAuthHandler(auth commands.AuthCommands, jwtService *jwt.Service, cookieCfg config.CookieConfig) *AuthHandler {
	return &AuthHandler{
		auth:       auth,
		jwtService: jwtService,
		cookieCfg:  cookieCfg,
	}
}

// @Summary Admin login form
// @Tags auth
// @Produce html
// @Success 200 {string} string
// @Router /admin-login [get]
func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "admin-login.html", gin.H{})
}

// @Summary Admin login
// @Description Checks credentials and sets the session cookie
// @Tags auth
// @Accept x-www-form-urlencoded
// @Success 302 {string} string
// @Failure 401 {string} string
// @Router /admin-login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusBadRequest, "admin-login.html", gin.H{
			"Error": "Please enter your email and password.",
		})
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, commands.ErrInvalidCredentials) {
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
				"Error": "Invalid email or password.",
			})
			return
		}
		c.HTML(http.StatusInternalServerError, "admin-login.html", gin.H{
			"Error": "Something went wrong. Please try again.",
		})
		return
	}

	cookie.SetSessionCookie(c, h.cookieCfg, token, h.jwtService.SessionDuration())
	c.Redirect(http.StatusFound, "/admin")
}

// @Summary Admin logout
// @Description Clears the session cookie
// @Tags auth
// @Success 302 {string} string
// @Router /admin-logout [get]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearSessionCookie(c, h.cookieCfg)
	c.Redirect(http.StatusFound, "/")
}
