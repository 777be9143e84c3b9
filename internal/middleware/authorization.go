package middleware

import (
	"crypto/subtle"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/localscan/explorer/api"
	"github.com/rs/zerolog/log"
)

var ErrUnauthorized = fmt.Errorf("invalid username or password")

// Authorization requires the given basic auth credentials. With an empty username or password every
// request passes.
func Authorization(username, password string) gin.HandlerFunc {
	if username == "" || password == "" {
		return func(c *gin.Context) {
			c.Next()
		}
	}
	return func(c *gin.Context) {
		user, pass, ok := c.Request.BasicAuth()
		if !ok || !validateCredentials(user, pass, username, password) {
			log.Warn().Str("path", c.Request.URL.Path).Msg(ErrUnauthorized.Error())
			c.Header("WWW-Authenticate", `Basic realm="explorer"`)
			api.UnauthorizedErrorHandler(c, ErrUnauthorized)
			return
		}
		c.Next()
	}
}

func validateCredentials(user, pass, username, password string) bool {
	userOk := subtle.ConstantTimeCompare([]byte(user), []byte(username)) == 1
	passOk := subtle.ConstantTimeCompare([]byte(pass), []byte(password)) == 1
	return userOk && passOk
}
