package routes

import (
	"github.com/pedroloango/futboss/internal/handlers"
	"github.com/pedroloango/futboss/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes registers every authenticated API route.
func RegisterAPIRoutes(api *gin.RouterGroup) {
	api.POST("/logout", handlers.LogoutHandler)

	apiGroup := api.Group("/api")
	{
		// Profile of the logged-in user.
		profile := apiGroup.Group("/profile")
		{
			profile.GET("", handlers.GetProfileHandler)
		}

		// Students.
		students := apiGroup.Group("/students")
		students.Use(middleware.PermissionMiddleware("students_view"))
		{
			students.GET("", handlers.ListStudentsHandler)
			students.POST("", middleware.PermissionMiddleware("students_create"), handlers.CreateStudentHandler)
			students.GET("/:id", handlers.GetStudentHandler)
			students.PUT("/:id", middleware.PermissionMiddleware("students_edit"), handlers.UpdateStudentHandler)
			students.DELETE("/:id", middleware.PermissionMiddleware("students_delete"), handlers.DeleteStudentHandler)
		}

		// Monthly fee schedule and one-off charges.
		payments := apiGroup.Group("/payments")
		payments.Use(middleware.PermissionMiddleware("payments_view"))
		{
			payments.GET("", handlers.ListPaymentsHandler)
			payments.GET("/export", handlers.ExportPaymentsHandler)
			payments.POST("", middleware.PermissionMiddleware("payments_create"), handlers.CreatePaymentHandler)
			payments.POST("/generate", middleware.PermissionMiddleware("payments_create"), handlers.GenerateScheduleHandler)
			payments.GET("/:id/receipt", handlers.PaymentReceiptHandler)
			payments.PUT("/:id", middleware.PermissionMiddleware("payments_edit"), handlers.UpdatePaymentHandler)
			payments.POST("/:id/confirm", middleware.PermissionMiddleware("payments_edit"), handlers.ConfirmPaymentHandler)
			payments.POST("/:id/revert", middleware.PermissionMiddleware("payments_edit"), handlers.RevertPaymentHandler)
			payments.DELETE("/:id", middleware.PermissionMiddleware("payments_delete"), handlers.DeletePaymentHandler)
		}

		// Monthly fee values per category.
		feeSettings := apiGroup.Group("/fee-settings")
		feeSettings.Use(middleware.PermissionMiddleware("settings_view"))
		{
			feeSettings.GET("", handlers.ListFeeSettingsHandler)
			feeSettings.POST("", middleware.PermissionMiddleware("settings_edit"), handlers.CreateFeeSettingHandler)
			feeSettings.PUT("/:id", middleware.PermissionMiddleware("settings_edit"), handlers.UpdateFeeSettingHandler)
			feeSettings.DELETE("/:id", middleware.PermissionMiddleware("settings_edit"), handlers.DeleteFeeSettingHandler)
		}

		// Payment types with optional value formulas.
		paymentTypes := apiGroup.Group("/payment-types")
		paymentTypes.Use(middleware.PermissionMiddleware("settings_view"))
		{
			paymentTypes.GET("", handlers.ListPaymentTypesHandler)
			paymentTypes.POST("", middleware.PermissionMiddleware("settings_edit"), handlers.CreatePaymentTypeHandler)
			paymentTypes.PUT("/:id", middleware.PermissionMiddleware("settings_edit"), handlers.UpdatePaymentTypeHandler)
			paymentTypes.DELETE("/:id", middleware.PermissionMiddleware("settings_edit"), handlers.DeletePaymentTypeHandler)
		}

		// Standalone revenues outside the student schedule.
		revenues := apiGroup.Group("/revenues")
		revenues.Use(middleware.PermissionMiddleware("revenues_view"))
		{
			revenues.GET("", handlers.ListRevenuesHandler)
			revenues.POST("", middleware.PermissionMiddleware("revenues_edit"), handlers.CreateRevenueHandler)
			revenues.PUT("/:id", middleware.PermissionMiddleware("revenues_edit"), handlers.UpdateRevenueHandler)
			revenues.DELETE("/:id", middleware.PermissionMiddleware("revenues_edit"), handlers.DeleteRevenueHandler)
		}

		// Player evaluations.
		evaluations := apiGroup.Group("/evaluations")
		evaluations.Use(middleware.PermissionMiddleware("evaluations_view"))
		{
			evaluations.GET("", handlers.ListEvaluationsHandler)
			evaluations.POST("", middleware.PermissionMiddleware("evaluations_edit"), handlers.CreateEvaluationHandler)
			evaluations.PUT("/:id", middleware.PermissionMiddleware("evaluations_edit"), handlers.UpdateEvaluationHandler)
			evaluations.DELETE("/:id", middleware.PermissionMiddleware("evaluations_edit"), handlers.DeleteEvaluationHandler)
		}

		// Training attendance.
		attendance := apiGroup.Group("/attendance")
		attendance.Use(middleware.PermissionMiddleware("attendance_view"))
		{
			attendance.GET("", handlers.ListAttendanceHandler)
			attendance.POST("", middleware.PermissionMiddleware("attendance_edit"), handlers.CreateAttendanceHandler)
			attendance.DELETE("/:id", middleware.PermissionMiddleware("attendance_edit"), handlers.DeleteAttendanceHandler)
		}

		// Live match scouting.
		scout := apiGroup.Group("/scout")
		scout.Use(middleware.PermissionMiddleware("scout_view"))
		{
			scout.GET("/ws", handlers.ScoutWSEndpoint)

			scout.GET("/matches", handlers.ListMatchesHandler)
			scout.POST("/matches", middleware.PermissionMiddleware("scout_edit"), handlers.CreateMatchHandler)
			scout.POST("/matches/:id/finish", middleware.PermissionMiddleware("scout_edit"), handlers.FinishMatchHandler)
			scout.GET("/matches/:id/report", handlers.MatchReportHandler)

			scout.GET("/players", handlers.ListPlayersHandler)
			scout.POST("/players", middleware.PermissionMiddleware("scout_edit"), handlers.CreatePlayerHandler)
			scout.PUT("/players/:id", middleware.PermissionMiddleware("scout_edit"), handlers.UpdatePlayerHandler)
			scout.DELETE("/players/:id", middleware.PermissionMiddleware("scout_edit"), handlers.DeletePlayerHandler)

			scout.GET("/matches/:id/actions", handlers.ListActionsHandler)
			scout.POST("/matches/:id/actions", middleware.PermissionMiddleware("scout_edit"), handlers.CreateActionHandler)
			scout.DELETE("/matches/:id/actions/:actionId", middleware.PermissionMiddleware("scout_edit"), handlers.DeleteActionHandler)
			scout.POST("/matches/:id/substitutions", middleware.PermissionMiddleware("scout_edit"), handlers.SubstitutionHandler)
		}

		// Dashboard summary.
		dashboard := apiGroup.Group("/dashboard")
		{
			dashboard.GET("/stats", handlers.GetDashboardStatsHandler)
		}

		// Users.
		users := apiGroup.Group("/users")
		users.Use(middleware.PermissionMiddleware("users_view"))
		{
			users.GET("", handlers.ListUsersHandler)
			users.POST("", middleware.PermissionMiddleware("users_create"), handlers.CreateUserHandler)
			users.GET("/:id", handlers.GetUserHandler)
			users.PUT("/:id", middleware.PermissionMiddleware("users_edit"), handlers.UpdateUserHandler)
			users.DELETE("/:id", middleware.PermissionMiddleware("users_delete"), handlers.DeleteUserHandler)
		}

		// Roles.
		roles := apiGroup.Group("/roles")
		roles.Use(middleware.PermissionMiddleware("roles_view"))
		{
			roles.GET("", handlers.ListRolesHandler)
			roles.POST("", middleware.PermissionMiddleware("roles_create"), handlers.CreateRoleHandler)
			roles.GET("/:id", handlers.GetRoleHandler)
			roles.PUT("/:id", middleware.PermissionMiddleware("roles_edit"), handlers.UpdateRoleHandler)
			roles.DELETE("/:id", middleware.PermissionMiddleware("roles_delete"), handlers.DeleteRoleHandler)
		}

		// Permission catalog, read-only.
		permissions := apiGroup.Group("/permissions")
		permissions.Use(middleware.PermissionMiddleware("roles_view"))
		{
			permissions.GET("", handlers.ListPermissionsHandler)
		}
	}
}
