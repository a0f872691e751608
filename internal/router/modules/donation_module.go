package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/savelife-bd/savelife-server/internal/interface/http"
	"github.com/savelife-bd/savelife-server/internal/interface/middleware"
)

// DonationModule wires donation-request routes.
// Public: pending listing, single-request details, search.
// Protected: creation, requester-scoped views, the role-scoped listing and
// status confirmation.
type DonationModule struct {
	Handler  *handlers.DonationHandler
	Verifier middleware.IdentityVerifier
}

func NewDonationModule(h *handlers.DonationHandler, v middleware.IdentityVerifier) *DonationModule {
	return &DonationModule{Handler: h, Verifier: v}
}

func (m *DonationModule) Register(rg *gin.RouterGroup) {
	// Public
	rg.GET("/all-pending-requests", m.Handler.AllPendingRequests)
	rg.GET("/donation-details/:id", m.Handler.Details)
	rg.GET("/search-requests", m.Handler.Search)

	// Protected
	auth := rg.Group("")
	auth.Use(middleware.Auth(m.Verifier))
	{
		auth.POST("/requests", m.Handler.Create)
		auth.GET("/my-requests", m.Handler.MyRequests)
		auth.GET("/my-recent-requests", m.Handler.MyRecentRequests)
		auth.GET("/all-requests", m.Handler.AllRequests)
		auth.PATCH("/donations/confirm/:id", m.Handler.Confirm)
	}
}
