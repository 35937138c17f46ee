package main

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/metaphorce/taskflow/internal/config"
	"github.com/metaphorce/taskflow/internal/database"
	"github.com/metaphorce/taskflow/internal/handlers"
	"github.com/metaphorce/taskflow/internal/middleware"
	"github.com/metaphorce/taskflow/internal/repository"
	"github.com/metaphorce/taskflow/internal/services"
	"github.com/metaphorce/taskflow/internal/validation"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger := newLogger(cfg)

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		logger.WithError(err).Fatal("failed to connect to database")
	}
	logger.WithField("driver", cfg.DBDriver).Info("database connection established")

	// Run migrations
	if err := database.Migrate(); err != nil {
		logger.WithError(err).Fatal("failed to run migrations")
	}

	// Register enum validators used by binding tags
	if err := validation.RegisterCustomValidators(); err != nil {
		logger.WithError(err).Fatal("failed to register validators")
	}

	db := database.GetDB()

	// Wire repositories and services
	userService := services.NewUserService(repository.NewUserRepository(db), services.NewBcryptHasher())
	projectService := services.NewProjectService(repository.NewProjectRepository(db))
	taskService := services.NewTaskService(repository.NewTaskRepository(db))
	timeLogService := services.NewTimeLogService(repository.NewTimeLogRepository(db))

	userHandler := handlers.NewUserHandler(userService)
	projectHandler := handlers.NewProjectHandler(projectService)
	taskHandler := handlers.NewTaskHandler(taskService)
	timeLogHandler := handlers.NewTimeLogHandler(timeLogService)

	// Initialize Gin router
	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(cors.New(corsConfig(cfg)))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "TaskFlow API is running",
		})
	})

	// API routes
	api := r.Group("/taskflow")
	{
		users := api.Group("/users")
		{
			users.POST("", userHandler.CreateUser)
			users.GET("", userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
			users.GET("/email/:email", userHandler.GetUserByEmail)
			users.GET("/role/:role", userHandler.ListUsersByRole)
			users.GET("/name/:name", userHandler.GetUserByName)
		}

		projects := api.Group("/projects")
		{
			projects.POST("", projectHandler.CreateProject)
			projects.GET("", projectHandler.ListProjects)
			projects.GET("/period", projectHandler.ListProjectsByPeriod)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
			projects.GET("/:id/assigned-users", projectHandler.ListAssignedUsers)
			projects.GET("/title/:title", projectHandler.GetProjectByTitle)
			projects.GET("/start-date/:date", projectHandler.ListProjectsByStartDate)
			projects.GET("/lead/:id", projectHandler.ListProjectsByLead)
		}

		tasks := api.Group("/tasks")
		{
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("", taskHandler.ListTasks)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
			tasks.GET("/creator/:id", taskHandler.ListTasksByCreator)
			tasks.GET("/assignee/:id", taskHandler.ListTasksByAssignee)
			tasks.GET("/project/:id", taskHandler.ListTasksByProject)
			tasks.GET("/creation-date/:date", taskHandler.ListTasksByCreationDate)
			tasks.GET("/priority/:priority", taskHandler.ListTasksByPriority)
			tasks.GET("/status/:status", taskHandler.ListTasksByStatus)
		}

		timeLogs := api.Group("/time-logs")
		{
			timeLogs.POST("", timeLogHandler.CreateTimeLog)
			timeLogs.GET("", timeLogHandler.ListTimeLogs)
			timeLogs.GET("/period", timeLogHandler.ListTimeLogsByPeriod)
			timeLogs.GET("/:id", timeLogHandler.GetTimeLog)
			timeLogs.PUT("/:id", timeLogHandler.UpdateTimeLog)
			timeLogs.DELETE("/:id", timeLogHandler.DeleteTimeLog)
			timeLogs.GET("/user/:user_id", timeLogHandler.ListTimeLogsByUser)
			timeLogs.GET("/user/:user_id/task/:task_id", timeLogHandler.ListTimeLogsByUserAndTask)
			timeLogs.GET("/total-duration/user/:user_id/task/:task_id", timeLogHandler.GetTotalDuration)
		}
	}

	// Start server
	logger.WithField("port", cfg.Port).Info("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.WithError(err).Fatal("failed to start server")
	}
}

func newLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()
	if cfg.Env == "development" {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return logger
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	if cfg.CORSAllowedOrigins == "*" {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = strings.Split(cfg.CORSAllowedOrigins, ",")
	}
	c.AllowHeaders = append(c.AllowHeaders, middleware.RequestIDHeader)
	return c
}
