package auth

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the public auth endpoints and the authenticated
// /auth/me endpoint.
func RegisterRoutes(r *gin.Engine, handler *Handler, middleware gin.HandlerFunc) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", handler.Register)
		authGroup.POST("/login", handler.Login)
		authGroup.GET("/me", middleware, handler.Me)
	}
}
