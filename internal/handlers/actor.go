package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/tabeebak/clinic-scheduler/internal/middleware"
)

// actor reads the authenticated identity set by the auth middleware.
// Routes calling this are always behind it, so the values are present.
func actor(c *gin.Context) (id uint, role string) {
	id = c.GetUint(middleware.ContextActorID)
	role = c.GetString(middleware.ContextActorRole)
	return id, role
}
