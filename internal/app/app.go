package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/you/invitesvc/internal/config"
	httpx "github.com/you/invitesvc/internal/http"
	"github.com/you/invitesvc/internal/http/handlers"
	"github.com/you/invitesvc/internal/http/middleware"
	"github.com/you/invitesvc/internal/infrastructure/auth"
	"github.com/you/invitesvc/internal/infrastructure/database"
	"github.com/you/invitesvc/internal/infrastructure/notifications"
	"github.com/you/invitesvc/internal/infrastructure/repositories"
	"github.com/you/invitesvc/internal/ratelimit"
	"github.com/you/invitesvc/internal/services"
)

// Run wires the service together and serves until the listener fails.
func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return err
	}
	cas, err := auth.NewCasbinService(gdb, cfg.CasbinModelPath)
	if err != nil {
		return err
	}
	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB).Client
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return err
	}

	// Infrastructure services
	passwordSvc := auth.NewPasswordService()
	tokenSvc := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTTL, cfg.RefreshTTL)
	hasher := auth.NewCredentialHasher()
	notifier := notifications.NewLogNotifier()

	// Repositories
	userRepo := repositories.NewUserRepository(gdb)
	inviteRepo := repositories.NewInviteRepository(gdb)
	codeRepo := repositories.NewCodeRepository(gdb)
	mechanicRepo := repositories.NewMechanicRepository(gdb)
	vendorRepo := repositories.NewVendorRepository(gdb)
	transactionRepo := repositories.NewTransactionRepository(gdb)
	sessionRepo := repositories.NewSessionRepository(rdb, cfg.RefreshTTL)
	store := repositories.NewRedemptionStore(gdb)

	// Services
	inviteSvc := services.NewInviteService(inviteRepo, codeRepo, store, sessionRepo, tokenSvc, hasher, cfg.AccessTTL, cfg.RefreshTTL)
	authSvc := services.NewAuthService(userRepo, sessionRepo, passwordSvc, tokenSvc, cfg.AccessTTL, cfg.RefreshTTL)
	otpSvc := services.NewOTPService(codeRepo, hasher, notifier, rdb, cfg.OTPTTL, cfg.OTPLength, cfg.OTPResendWindow)
	mechanicSvc := services.NewMechanicService(mechanicRepo, transactionRepo)
	vendorSvc := services.NewVendorService(vendorRepo)

	// Handlers
	inviteH := handlers.NewInviteHandlers(inviteSvc)
	authH := handlers.NewAuthHandlers(authSvc, otpSvc)
	mechanicH := handlers.NewMechanicHandlers(mechanicSvc)
	vendorH := handlers.NewVendorHandlers(vendorSvc)
	adminH := handlers.NewAdminHandlers(inviteSvc, cfg.InviteTTL)

	// Middleware
	rlMW := middleware.NewRateLimitMW(ratelimit.NewSlidingWindow(), ratelimit.DefaultRules())
	jwtMW := middleware.NewAuthMW(tokenSvc, sessionRepo)
	casbinMW := middleware.NewCasbinMW(cas.E)

	r := httpx.BuildRouter(inviteH, authH, mechanicH, vendorH, adminH, rlMW, jwtMW, casbinMW)

	policies, _ := cas.E.GetPolicy()
	if len(policies) == 0 {
		cas.E.AddPolicy("role_admin", "/api/admin/*", "(GET|POST|PUT|DELETE)")
		cas.E.AddPolicy("role_admin", "/api/auth/*", "(GET|POST)")
		cas.E.AddPolicy("role_mechanic", "/api/auth/*", "(GET|POST)")
		cas.E.AddPolicy("role_mechanic", "/api/mechanic/*", "GET")
		cas.E.AddPolicy("role_vendor", "/api/auth/*", "(GET|POST)")
		cas.E.AddPolicy("role_vendor", "/api/vendor/*", "GET")
		_ = cas.E.SavePolicy()
		log.Println("casbin: seeded default policies")
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
