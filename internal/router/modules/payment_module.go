package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/savelife-bd/savelife-server/internal/interface/http"
	"github.com/savelife-bd/savelife-server/internal/interface/middleware"
)

// PaymentModule wires the checkout routes. Both are public (the redirect
// flow has no token at hand) and therefore carry per-IP rate limiting.
type PaymentModule struct {
	Handler *handlers.PaymentHandler
	Redis   *redis.Client
}

func NewPaymentModule(h *handlers.PaymentHandler, rdb *redis.Client) *PaymentModule {
	return &PaymentModule{Handler: h, Redis: rdb}
}

func (m *PaymentModule) Register(rg *gin.RouterGroup) {
	checkoutLimiter := middleware.RateLimit(m.Redis, 20, time.Minute, middleware.KeyByIPAndPath())
	confirmLimiter := middleware.RateLimit(m.Redis, 60, time.Minute, middleware.KeyByIPAndPath())

	rg.POST("/create-payment-checkout", checkoutLimiter, m.Handler.CreateCheckout)
	rg.POST("/success-payment", confirmLimiter, m.Handler.ConfirmPayment)
}
