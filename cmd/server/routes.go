package main

import (
	"github.com/gin-gonic/gin"
	"panchayat.backend/internal/domain/entities"
	"panchayat.backend/internal/interfaces/http/handlers"
	"panchayat.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler     *handlers.AuthHandler
	adminHandler    *handlers.AdminHandler
	citizenHandler  *handlers.CitizenHandler
	agencyHandler   *handlers.AgencyHandler
	employeeHandler *handlers.EmployeeHandler
	authMiddleware  gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Account routes
		user := v1.Group("/user")
		{
			user.POST("/register", d.authHandler.Register)
			user.POST("/login", d.authHandler.Login)
			user.GET("/me", d.authMiddleware, d.authHandler.Me)
			user.POST("/logout", d.authMiddleware, d.authHandler.Logout)
		}

		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireRole(entities.RoleAdmin))
		{
			admin.GET("/users", d.adminHandler.ListUsers)
			admin.PUT("/verify/:username", d.adminHandler.VerifyUser)
			admin.DELETE("/delete/:username", d.adminHandler.DeleteUser)
			admin.GET("/activity/:username", d.adminHandler.ListActivity)
		}

		citizen := v1.Group("/citizen")
		citizen.Use(d.authMiddleware, middleware.RequireRole(entities.RoleCitizen))
		{
			citizen.GET("/profile", d.citizenHandler.GetProfile)
			citizen.PUT("/profile", d.citizenHandler.UpdateProfile)
			citizen.GET("/assets", d.citizenHandler.ListAssets)
			citizen.GET("/family", d.citizenHandler.ListFamilies)
			citizen.GET("/documents", d.citizenHandler.ListDocuments)
			citizen.GET("/financial-data", d.citizenHandler.ListFinancialData)

			citizen.GET("/issues", d.citizenHandler.ListIssues)
			citizen.POST("/issues", middleware.IdempotencyMiddleware(), d.citizenHandler.CreateIssue)
			citizen.DELETE("/issues/:id", d.citizenHandler.DeleteIssue)

			citizen.GET("/welfare-scheme", d.citizenHandler.ListSchemes)
			citizen.GET("/welfare-enrol", d.citizenHandler.ListEnrolments)
			citizen.POST("/welfare-enrol", d.citizenHandler.Enrol)
			citizen.DELETE("/welfare-enrol/:id", d.citizenHandler.Withdraw)

			citizen.GET("/infrastructure", d.citizenHandler.ListInfrastructure)
		}

		agency := v1.Group("/government-agency")
		agency.Use(d.authMiddleware, middleware.RequireRole(entities.RoleGovernmentAgency))
		{
			agency.GET("/welfare-scheme", d.agencyHandler.ListSchemes)
			agency.POST("/welfare-scheme", d.agencyHandler.CreateScheme)
			agency.DELETE("/welfare-scheme/:id", d.agencyHandler.DeleteScheme)

			agency.GET("/infrastructure", d.agencyHandler.ListInfrastructure)
			agency.POST("/infrastructure", d.agencyHandler.CreateInfrastructure)
		}

		employee := v1.Group("/panchayat-employee")
		employee.Use(d.authMiddleware, middleware.RequireRole(entities.RolePanchayatEmployee))
		{
			employee.POST("/assets", d.employeeHandler.CreateAsset)
			employee.GET("/assets/:username", d.employeeHandler.ListAssets)
			employee.PUT("/assets/:id", d.employeeHandler.UpdateAsset)
			employee.DELETE("/assets/:id", d.employeeHandler.DeleteAsset)

			employee.POST("/family", d.employeeHandler.CreateFamily)
			employee.GET("/family/:username", d.employeeHandler.ListFamilies)
			employee.POST("/family/:id/members", d.employeeHandler.AddFamilyMember)
			employee.DELETE("/family/:id/members/:username", d.employeeHandler.RemoveFamilyMember)
			employee.DELETE("/family/:id", d.employeeHandler.DeleteFamily)

			employee.GET("/issues", d.employeeHandler.ListIssues)
			employee.PUT("/issues/:id/status", d.employeeHandler.UpdateIssueStatus)

			employee.GET("/documents/:username", d.employeeHandler.ListDocuments)
			employee.POST("/documents", d.employeeHandler.UploadDocument)
			employee.DELETE("/documents/:id", d.employeeHandler.DeleteDocument)

			employee.GET("/financial-data/:username", d.employeeHandler.ListFinancialData)
			employee.POST("/financial-data", d.employeeHandler.CreateFinancialData)
			employee.PUT("/financial-data/:id", d.employeeHandler.UpdateFinancialData)
			employee.DELETE("/financial-data/:id", d.employeeHandler.DeleteFinancialData)

			employee.GET("/welfare-enrol", d.employeeHandler.ListEnrolments)
			employee.PUT("/welfare-enrol/:id", d.employeeHandler.DecideEnrolment)

			employee.GET("/infrastructure", d.employeeHandler.ListInfrastructure)
			employee.PUT("/infrastructure/:id/cost", d.employeeHandler.UpdateInfrastructureCost)

			employee.GET("/environmental-data", d.employeeHandler.ListEnvironmentalData)
			employee.POST("/environmental-data", d.employeeHandler.CreateEnvironmentalData)
			employee.GET("/environmental-data/:year", d.employeeHandler.GetEnvironmentalData)
			employee.PUT("/environmental-data/:year", d.employeeHandler.UpdateEnvironmentalData)
			employee.DELETE("/environmental-data/:year", d.employeeHandler.DeleteEnvironmentalData)
		}
	}
}
