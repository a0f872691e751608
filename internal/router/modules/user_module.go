package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/savelife-bd/savelife-server/internal/interface/http"
	"github.com/savelife-bd/savelife-server/internal/interface/middleware"
)

// UserModule wires profile routes.
//
// Policy note: status/role mutation and profile-update by email require
// authentication only, not an Admin role — deliberate parity with the
// product's current behavior. Tightening to Admin is a one-line change on
// the protected group below.
type UserModule struct {
	Handler  *handlers.UserHandler
	Verifier middleware.IdentityVerifier
	Redis    *redis.Client
}

func NewUserModule(h *handlers.UserHandler, v middleware.IdentityVerifier, rdb *redis.Client) *UserModule {
	return &UserModule{Handler: h, Verifier: v, Redis: rdb}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	// Public. Registration gets a coarse per-IP limit since it is the only
	// unauthenticated write in the module.
	registerLimiter := middleware.RateLimit(m.Redis, 30, time.Minute, middleware.KeyByIP())
	rg.POST("/users", registerLimiter, m.Handler.Register)
	rg.GET("/users/role/:email", m.Handler.GetByEmail)

	// Protected
	auth := rg.Group("")
	auth.Use(middleware.Auth(m.Verifier))
	{
		auth.GET("/users", m.Handler.List)
		auth.GET("/user/profile", m.Handler.MyProfile)
		auth.POST("/user/profile-photo", m.Handler.UploadPhoto)
		auth.PATCH("/profile-update/:email", m.Handler.UpdateProfile)
		auth.PATCH("/update/user/status", m.Handler.UpdateStatus)
		auth.PATCH("/update/user/role", m.Handler.UpdateRole)
	}
}
