package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
	"github.com/stockroomhq/stockroom-api/config"
	"github.com/stockroomhq/stockroom-api/controllers"
	"github.com/stockroomhq/stockroom-api/services"
	"github.com/stockroomhq/stockroom-api/store"
)

func main() {
	// Basic logging
	log.Println("Starting Stockroom API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize the document store
	store.Init(cfg.DataFile)
	log.Printf("Using data file %s", cfg.DataFile)

	// Initialize blob storage for uploaded images
	switch cfg.StorageBackend {
	case config.StorageS3:
		if _, err := services.InitS3BlobStore(); err != nil {
			log.Fatalf("Failed to initialize S3 storage: %v", err)
		}
		log.Printf("Serving uploads from s3://%s", cfg.AWSS3Bucket)
	default:
		services.InitLocalBlobStore(cfg.UploadDir)
		log.Printf("Serving uploads from %s", cfg.UploadDir)
	}

	router := newRouter(cfg)

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// newRouter wires middleware and the API routes
func newRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	// Bundled client assets, built and deployed separately
	router.Use(static.Serve("/", static.LocalFile(cfg.StaticDir, false)))

	api := router.Group("/api")
	{
		api.GET("/ping", ping)
		api.GET("/products", controllers.ListProducts)
		api.GET("/products/:id", controllers.GetProduct)
		api.POST("/orders", controllers.CreateOrder)
		api.GET("/search", controllers.Search)

		admin := api.Group("/admin")
		{
			admin.POST("/product", controllers.CreateProduct)
			admin.POST("/stock", controllers.AdjustStock)
			admin.GET("/orders", controllers.ListOrders)
			admin.POST("/orders/:id/approve", controllers.ApproveOrder)
			admin.POST("/orders/:id/reject", controllers.RejectOrder)
		}
	}

	// Uploaded product images
	router.GET("/uploads/:filename", controllers.GetUploadedImage)

	return router
}

// ping handles the liveness check endpoint
func ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ok":  true,
		"msg": "pong",
	})
}
