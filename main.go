package main

import (
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pinkLiz/ReactServeBooks/initializers"
	"github.com/pinkLiz/ReactServeBooks/internals/controllers"
	"github.com/pinkLiz/ReactServeBooks/internals/repository"
	"github.com/pinkLiz/ReactServeBooks/internals/service"
	logger "github.com/pinkLiz/ReactServeBooks/loggers"
	"github.com/pinkLiz/ReactServeBooks/middleware"
)

func main() {
	initializers.LoadEnvVariables()
	logger.Init()

	db, err := initializers.ConnectDatabase()
	if err != nil {
		logger.Logger.Fatal("Hubo un error al conectar: ", err)
	}
	if err := initializers.SyncDatabase(db); err != nil {
		logger.Logger.Fatal("failed to sync database: ", err)
	}
	logger.Logger.Info("Conexion exitosa")

	r := NewRouter(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	if err := r.Run(":" + port); err != nil {
		logger.Logger.Fatal("server stopped: ", err)
	}
}

// NewRouter wires the catalog routes onto a gin engine. The store handle is
// passed down explicitly so tests can run the full stack on their own DB.
func NewRouter(db *gorm.DB) *gin.Engine {
	repo := repository.NewLibroRepository(db)
	svc := service.NewLibroService(repo)
	ctrl := controllers.NewLibroController(svc)

	frontend := os.Getenv("FRONTEND_ORIGIN")
	if frontend == "" {
		frontend = "http://localhost:5173"
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{frontend},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "API de libros"})
	})

	api := r.Group("/api")
	{
		api.GET("/libros", ctrl.GetLibros)
		api.GET("/libros/:id", middleware.ValidateIDParam, ctrl.GetLibroByID)
		api.POST("/libros", ctrl.CreateLibro)
		api.PUT("/libros/:id", middleware.ValidateIDParam, ctrl.UpdateLibro)
		api.PATCH("/libros/:id/disponibilidad", middleware.ValidateIDParam, ctrl.ToggleDisponibilidad)
		api.DELETE("/libros/:id", middleware.ValidateIDParam, ctrl.DeleteLibro)
	}

	return r
}
