package Routes

import (
	"HealingRays/Controllers"
	"HealingRays/Middleware"
	"HealingRays/SSE"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func ConfigRoutes(router *gin.Engine) {
	// Gzip Compression
	router.Use(gzip.Gzip(gzip.BestSpeed))

	// Public routes
	public := router.Group("/api")
	{
		public.POST("/login", Controllers.Login)
		public.POST("/register", Controllers.Register)
		public.POST("/SaveFcmToken", Controllers.SaveFcmToken)

		// Signed, expiring download links
		public.GET("/files/*path", Controllers.ServeFile)
	}

	// Authorized routes
	authorized := router.Group("/api/protected")
	authorized.Use(Middleware.JwtAuthMiddleware())
	authorized.Use(Middleware.SetPractitioner())
	{
		// User-related routes
		authorized.GET("/user", Controllers.CurrentUser)
		authorized.POST("/logout", Controllers.Logout)
		authorized.POST("/DeleteUser", Controllers.DeleteUser)

		// Client-related routes
		authorized.GET("/FetchClients", Controllers.FetchClients)
		authorized.GET("/FetchClient/:id", Controllers.FetchClient)
		authorized.POST("/CreateClient", Controllers.CreateClient)
		authorized.PATCH("/UpdateClient/:id", Controllers.UpdateClient)
		authorized.POST("/AddHealingNote/:id", Controllers.AddHealingNote)
		authorized.DELETE("/DeleteClient/:id", Controllers.DeleteClient)

		// Session-related routes
		authorized.POST("/CreateSession", Controllers.CreateSession)
		authorized.GET("/FetchSessions", Controllers.FetchSessions)
		authorized.GET("/FetchClientSessions/:id", Controllers.FetchClientSessions)
		authorized.PATCH("/UpdateSession/:id", Controllers.UpdateSession)
		authorized.DELETE("/DeleteSession/:id", Controllers.DeleteSession)

		// Nurturing-session-related routes
		authorized.GET("/FetchNurturingSessions", Controllers.FetchNurturingSessions)
		authorized.POST("/CreateNurturingSession", Controllers.CreateNurturingSession)
		authorized.PATCH("/UpdateNurturingSession/:id", Controllers.UpdateNurturingSession)
		authorized.DELETE("/DeleteNurturingSession/:id", Controllers.DeleteNurturingSession)

		// Protocol-related routes
		authorized.GET("/FetchProtocols", Controllers.FetchProtocols)
		authorized.POST("/CreateProtocol", Controllers.CreateProtocol)
		authorized.PATCH("/UpdateProtocol/:id", Controllers.UpdateProtocol)
		authorized.DELETE("/DeleteProtocol/:id", Controllers.DeleteProtocol)

		// Payment-related routes
		authorized.GET("/FetchPayments", Controllers.FetchPayments)
		authorized.GET("/FetchClientPayments/:id", Controllers.FetchClientPayments)
		authorized.POST("/CreatePayment", Controllers.CreatePayment)
		authorized.PATCH("/UpdatePayment/:id", Controllers.UpdatePayment)
		authorized.DELETE("/DeletePayment/:id", Controllers.DeletePayment)
		authorized.GET("/FetchDuesSummary", Controllers.FetchDuesSummary)

		// Agenda route
		authorized.GET("/FetchAgenda", Controllers.FetchAgenda)

		// Storage-related routes
		authorized.POST("/UploadAttachments", Controllers.UploadAttachments)
		authorized.GET("/ResolveFileURL/*path", Controllers.ResolveFileURL)
		authorized.POST("/DeleteAttachmentFile", Controllers.DeleteAttachmentFile)

		// Export-related routes
		authorized.GET("/ExportAll", Controllers.ExportAll)
		authorized.GET("/ExportDuesExcel", Controllers.ExportDuesExcel)

		// SSE (Server-Sent Events) route
		authorized.GET("/RequestSSE", SSE.RequestSSE)
	}
}
