package router

import (
	"net/http"
	"time"

	"footballers-insight/internal/config"
	"footballers-insight/internal/handlers"
	"footballers-insight/internal/services"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/unrolled/secure"
	"go.uber.org/zap"
)

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}

func rateLimitExceeded(c *gin.Context, info ratelimit.Info) {
	c.String(http.StatusTooManyRequests, "Too many requests. Try again later.")
}

func Setup(log *zap.Logger, computeSvc *services.ComputeService) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(log))

	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
	})
	router.Use(func(c *gin.Context) {
		if err := secureMiddleware.Process(c.Writer, c.Request); err != nil {
			c.Abort()
			return
		}
		c.Next()
	})

	computeHandler := handlers.NewComputeHandler(log, computeSvc)
	resultsHandler := handlers.NewResultsHandler(log)

	// A compute run rescans the team's full evaluation history, so the
	// trigger endpoint is rate limited per client.
	rateLimitStore := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Minute,
		Limit: uint(config.Conf.Server.ComputePerMinute),
	})
	limiter := ratelimit.RateLimiter(rateLimitStore, &ratelimit.Options{
		ErrorHandler: rateLimitExceeded,
		KeyFunc:      keyFunc,
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.POST("/teams/:teamID/compute", limiter, computeHandler.Compute)
		api.GET("/teams/:teamID/evaluations/latest", resultsHandler.LatestEvaluation)
		api.GET("/evaluations/:evaluationID/results", resultsHandler.EvaluationResults)
	}

	return router
}
