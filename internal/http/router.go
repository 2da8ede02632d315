package httpx

import (
	"github.com/gin-gonic/gin"
	"github.com/you/invitesvc/internal/http/handlers"
	"github.com/you/invitesvc/internal/http/middleware"
)

// BuildRouter assembles the full route table. Every /api route passes the
// admission-control gate; on protected groups the gate runs after session
// hydration so buckets are keyed per identity, not only per IP.
func BuildRouter(
	ih *handlers.InviteHandlers,
	ah *handlers.AuthHandlers,
	mh *handlers.MechanicHandlers,
	vh *handlers.VendorHandlers,
	adm *handlers.AdminHandlers,
	rl *middleware.RateLimitMW,
	jwtmw *middleware.AuthMW,
	cb *middleware.CasbinMW,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	api := r.Group("/api")

	public := api.Group("/").Use(rl.Check())
	public.POST("/invite/accept", ih.Accept)
	public.POST("/auth/login", ah.Login)
	public.POST("/auth/otp/send", ah.SendOTP)
	public.POST("/auth/refresh", ah.Refresh)

	authed := api.Group("/").Use(jwtmw.WithJWT(), rl.Check(), cb.Enforce())
	authed.GET("/auth/me", ah.Me)
	authed.POST("/auth/logout", ah.Logout)
	authed.POST("/auth/password", ah.SetPassword)
	authed.GET("/mechanic/transactions", mh.Transactions)
	authed.GET("/vendor/profile", vh.Profile)

	admin := api.Group("/admin").Use(jwtmw.WithJWT(), rl.Check(), cb.Enforce())
	admin.POST("/invites", adm.CreateInvite)

	return r
}
