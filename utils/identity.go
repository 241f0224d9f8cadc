package utils

import "github.com/gin-gonic/gin"

// Identity is the fixed per-request identity value set by the auth
// middleware. Handlers and services receive it explicitly; there is no
// ambient current-user state.
type Identity struct {
	UserID   uint
	Username string
	IsAdmin  bool
}

const identityKey = "identity"

func SetIdentity(c *gin.Context, id Identity) {
	c.Set(identityKey, id)
}

func CurrentIdentity(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok && id.UserID != 0
}
