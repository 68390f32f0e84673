package router

import (
	"net/http"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"go.uber.org/zap"

	"stress-checker/internal/config"
	"stress-checker/internal/handlers"
	"stress-checker/internal/models"
)

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}

func errorHandler(c *gin.Context, info ratelimit.Info) {
	c.JSON(http.StatusTooManyRequests, gin.H{"error": "Terlalu banyak percobaan. Silakan coba lagi nanti"})
}

func Setup(log *zap.Logger, instrument *models.Instrument) *gin.Engine {
	// Set up a new Gin router, add recovery middleware and request logging.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(log))

	store := cookie.NewStore([]byte(config.Conf.Server.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   false, // Set to true in production
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400 * 7,
	})
	router.Use(sessions.Sessions("stresscheck_session", store))

	// --- Now that sessions are initialized, other middleware can use them ---
	router.Use(CSRFProtection())
	router.Use(UserLoaderMiddleware())

	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
	})
	router.Use(func(c *gin.Context) {
		err := secureMiddleware.Process(c.Writer, c.Request)
		if err != nil {
			c.Abort()
			return
		}
	})

	// Handlers and routes
	authHandler := handlers.NewAuthHandler(log)
	questionnaireHandler := handlers.NewQuestionnaireHandler(log, instrument)
	historyHandler := handlers.NewHistoryHandler(log)
	chartsHandler := handlers.NewChartsHandler(log)
	profileHandler := handlers.NewProfileHandler(log)

	rateLimitStore := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Minute,
		Limit: 5,
	})
	limiter := ratelimit.RateLimiter(rateLimitStore, &ratelimit.Options{
		ErrorHandler: errorHandler,
		KeyFunc:      keyFunc,
	})

	// The SPA fetches its CSRF token once, then echoes it per request.
	router.GET("/csrf", func(c *gin.Context) {
		token, _ := c.Get("csrf_token")
		c.JSON(http.StatusOK, gin.H{"token": token})
	})

	router.POST("/register", limiter, authHandler.Register)
	router.POST("/login", limiter, authHandler.Login)
	router.POST("/logout", authHandler.Logout)
	router.GET("/me", authHandler.Me)

	authorized := router.Group("/")
	authorized.Use(AuthRequired())
	{
		testRoutes := authorized.Group("/test")
		{
			testRoutes.GET("", questionnaireHandler.Current)
			testRoutes.POST("/answer", questionnaireHandler.Answer)
			testRoutes.POST("/prev", questionnaireHandler.Prev)
			testRoutes.POST("/next", questionnaireHandler.Next)
			testRoutes.POST("/submit", questionnaireHandler.Submit)
			testRoutes.POST("/restart", questionnaireHandler.Restart)
		}

		historyRoutes := authorized.Group("/history")
		{
			historyRoutes.GET("", historyHandler.List)
			historyRoutes.GET("/latest", historyHandler.Latest)
			historyRoutes.GET("/chart", chartsHandler.ScoreTimeline)
			historyRoutes.GET("/export", historyHandler.Export)
			historyRoutes.DELETE("/:id", historyHandler.Delete)
			historyRoutes.DELETE("", historyHandler.DeleteAll)
		}

		profileRoutes := authorized.Group("/profile")
		{
			profileRoutes.POST("/update-password", profileHandler.UpdatePassword)
			profileRoutes.POST("/notifications", profileHandler.UpdateNotifications)
			profileRoutes.POST("/delete", profileHandler.DeleteAccount)
		}
	}

	return router
}
