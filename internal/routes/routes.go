package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/staffdesk/company-platform/internal/config"
	"github.com/staffdesk/company-platform/internal/handlers"
	"github.com/staffdesk/company-platform/internal/middleware"
	"github.com/staffdesk/company-platform/internal/services"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Initialize services
	authService := services.NewAuthService(db, cfg)
	employeeService := services.NewEmployeeService(db)
	programmerService := services.NewProgrammerService(db)
	leaderService := services.NewLeaderService(db)
	teamService := services.NewTeamService(db)
	projectService := services.NewProjectService(db)
	analyticsService := services.NewAnalyticsService(db)
	reportService := services.NewReportService(db, cfg)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	programmerHandler := handlers.NewProgrammerHandler(programmerService)
	leaderHandler := handlers.NewLeaderHandler(leaderService, teamService)
	teamHandler := handlers.NewTeamHandler(teamService)
	projectHandler := handlers.NewProjectHandler(projectService, reportService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService, projectService)

	authRequired := middleware.AuthMiddleware(authService)

	api := router.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", authRequired, authHandler.GetCurrentUser)
		}

		// Employee routes (identity_card lookup via ?identity_card= on the list)
		employees := api.Group("/employees")
		{
			employees.GET("", employeeHandler.List)
			employees.GET("/:id", employeeHandler.Get)
			employees.POST("", employeeHandler.Create)
			employees.PUT("/:id", employeeHandler.Update)
			employees.DELETE("/:id", employeeHandler.Delete)
		}

		// Programmer routes
		programmers := api.Group("/programmers")
		{
			programmers.GET("", programmerHandler.List)
			programmers.GET("/:id", programmerHandler.Get)
			programmers.GET("/:id/languages", programmerHandler.Languages)
			programmers.POST("", programmerHandler.Create)
			programmers.POST("/:id/languages", programmerHandler.AddLanguage)
			programmers.PUT("/:id", programmerHandler.Update)
			programmers.DELETE("/:id", programmerHandler.Delete)
			programmers.DELETE("/:id/languages/:language", programmerHandler.RemoveLanguage)
		}

		// Leader routes
		leaders := api.Group("/leaders")
		{
			leaders.GET("", leaderHandler.List)
			leaders.GET("/:id", leaderHandler.Get)
			leaders.GET("/:id/team", leaderHandler.Team)
			leaders.POST("", leaderHandler.Create)
			leaders.PUT("/:id", leaderHandler.Update)
			leaders.DELETE("/:id", leaderHandler.Delete)
		}

		// Team routes require an authenticated active user
		teams := api.Group("/teams")
		teams.Use(authRequired)
		{
			teams.GET("", teamHandler.List)
			teams.GET("/:id", teamHandler.Get)
			teams.GET("/:id/members", teamHandler.Members)
			teams.POST("", teamHandler.Create)
			teams.POST("/:id/members", teamHandler.AddMember)
			teams.PUT("/:id", teamHandler.Update)
			teams.DELETE("/:id", teamHandler.Delete)
			teams.DELETE("/:id/members/:programmer_id", teamHandler.RemoveMember)
		}

		// Project routes: reads are public, mutations require auth.
		// Filtering by type goes through ?type= on the list.
		projects := api.Group("/projects")
		{
			projects.GET("", projectHandler.List)
			projects.GET("/:id", projectHandler.Get)
			projects.GET("/:id/details", projectHandler.WithDetails)
			projects.GET("/:id/report", projectHandler.Report)
			projects.GET("/:id/report/pdf", projectHandler.ReportPDF)

			projects.POST("", authRequired, projectHandler.Create)
			projects.POST("/management", authRequired, projectHandler.CreateManagement)
			projects.POST("/multimedia", authRequired, projectHandler.CreateMultimedia)
			projects.PUT("/:id", authRequired, projectHandler.Update)
			projects.PUT("/:id/management", authRequired, projectHandler.UpdateManagement)
			projects.PUT("/:id/multimedia", authRequired, projectHandler.UpdateMultimedia)
			projects.DELETE("/:id", authRequired, projectHandler.Delete)
		}

		// Analytics routes
		analytics := api.Group("/analytics")
		{
			analytics.GET("/earliest-project", analyticsHandler.EarliestProject)
			analytics.GET("/projects-count", analyticsHandler.ProjectsCount)
			analytics.GET("/highest-paid-employees", analyticsHandler.HighestPaidEmployees)
			analytics.GET("/salary/:employee_id", analyticsHandler.Salary)
			analytics.GET("/project-by-programmer/:identity_card", analyticsHandler.ProjectByProgrammerIdentity)
			analytics.GET("/programmers-by-framework/:framework", analyticsHandler.ProgrammersByFramework)
			analytics.GET("/programmers-by-project/:project_id", analyticsHandler.ProgrammersByProject)
		}
	}

	return router
}

// SeedAdminUser creates the default admin account if it does not exist.
func SeedAdminUser(db *gorm.DB, cfg *config.Config) error {
	authService := services.NewAuthService(db, cfg)

	if _, _, err := authService.Login(cfg.AdminUsername, cfg.AdminPassword); err == nil {
		return nil // Admin exists
	}

	_, err := authService.Register(cfg.AdminUsername, cfg.AdminEmail, cfg.AdminPassword)
	return err
}
