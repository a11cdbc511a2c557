package cmd

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/geosearch/backend/analyzer"
	"github.com/geosearch/backend/middleware"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP analysis API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "Listen port (defaults to $PORT or 8082)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	setupGinMode()

	a, err := analyzer.New(dataDir)
	if err != nil {
		return err
	}
	defer a.Shutdown()

	router := newRouter(a)

	port := servePort
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = "8082"
	}

	logrus.Infof("server starting on http://localhost:%s", port)
	return router.Run(":" + port)
}

func setupGinMode() {
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)
}

// newRouter assembles the API routes and middleware chain.
func newRouter(a *analyzer.Analyzer) *gin.Engine {
	r := gin.New()

	limiter := middleware.NewRateLimiter(2, 5) // 2 req/s, burst of 5
	r.Use(middleware.ErrorHandler())
	r.Use(limiter.RateLimit())
	r.Use(corsMiddleware())
	r.Use(middleware.Stats(a.GetStats()))

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
		api.POST("/analyze", analyzeHandler(a))
		api.GET("/statistics", statisticsHandler(a))
	}
	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func analyzeHandler(a *analyzer.Analyzer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request struct {
			URL string `json:"url" binding:"required,url"`
		}
		if err := c.ShouldBindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid URL provided"})
			return
		}

		logrus.WithField("url", request.URL).Info("analyze request")
		report, err := a.Analyze(request.URL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to analyze URL: " + err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, report)
	}
}

func statisticsHandler(a *analyzer.Analyzer) gin.HandlerFunc {
	return func(c *gin.Context) {
		snapshot := a.GetStats().Snapshot()
		if os.Getenv("DEV_MODE") == "true" {
			snapshot["cache"] = a.GetCacheStats()
		}
		c.JSON(http.StatusOK, snapshot)
	}
}
