package routes

import (
	"checkout_verifier/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing          = "/ping"
	PathWebhook       = "/webhook"
	PathVerifyPayment = "/verify-payment"
	PathPix           = "/pix"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

func addPaymentRoutes(rg *gin.RouterGroup, h Handlers) {
	rg.POST(PathWebhook, h.Webhook.ReceiveWebhook)
	rg.GET(PathWebhook, h.Webhook.GetStatus)

	rg.POST(PathVerifyPayment, h.Verify.VerifyPayment)
	rg.GET(PathVerifyPayment, h.Verify.ResolveToken)

	rg.POST(PathPix, h.Pix.CreatePixCharge)
}
