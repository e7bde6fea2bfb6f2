package app

import (
	mdw "github.com/dajor/bewirtungsbeleg-sub002/internal/app/middleware"
	"github.com/dajor/bewirtungsbeleg-sub002/pkg/auth"
	"github.com/dajor/bewirtungsbeleg-sub002/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func (a *appServer) RegisterHandlers() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	handler := gin.New()

	// middlewares
	logger.Debugf("allowing CORS origins: %v", a.config.CORS.AllowedOrigins)
	logger.Debugf("allowing CORS methods: %v", a.config.CORS.AllowedMethods)
	logger.Debugf("allowing CORS headers: %v", a.config.CORS.AllowedHeaders)

	// cors middleware
	corsConfig := cors.Config{
		AllowOrigins:     a.config.CORS.AllowedOrigins,
		AllowMethods:     a.config.CORS.AllowedMethods,
		AllowHeaders:     a.config.CORS.AllowedHeaders,
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) bool {
			for _, allowedOrigin := range a.config.CORS.AllowedOrigins {
				if origin == allowedOrigin {
					return true
				}
			}
			return false
		},
	}
	handler.Use(cors.New(corsConfig))
	handler.Use(gin.Logger())
	handler.Use(gin.Recovery())

	// health check
	handler.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	emailRateLimit := mdw.EmailRateLimit(a.rateLimiter, &a.config.RateLimit)

	// create JWT middleware
	jwtManager := auth.NewJWTManager(a.config.JWTSecret)
	authMiddleware := auth.AuthMiddleware(jwtManager)

	// api routes
	api := handler.Group("/api/v1")

	auth := api.Group("/auth")
	{
		// session
		auth.POST("/login", a.controller.Login)
		auth.POST("/logout", a.controller.Logout)
		auth.GET("/me", authMiddleware, a.controller.Me)

		// magic link: GET verify is the link target in the mail
		auth.POST("/magic-link/send", emailRateLimit, a.controller.SendMagicLink)
		auth.GET("/magic-link/verify", a.controller.VerifyMagicLink)

		// password reset
		auth.POST("/forgot-password", emailRateLimit, a.controller.ForgotPassword)
		auth.GET("/verify-reset-token", a.controller.VerifyResetToken)
		auth.POST("/reset-password", a.controller.ResetPassword)

		// registration with email verification
		auth.POST("/register/send-verification", emailRateLimit, a.controller.SendVerification)
		auth.GET("/verify-email", a.controller.VerifyEmail)
		auth.POST("/verify-email", a.controller.VerifyEmail)
		auth.POST("/setup-password", a.controller.SetupPassword)
	}

	return handler
}
