// Package bind wires the REST routes to their controllers.
package bind

import (
	"github.com/labstack/echo/v4"
	"github.com/shopops-cloud/shopops/api/rest/controller/admin"
	"github.com/shopops-cloud/shopops/api/rest/controller/calendar"
	"github.com/shopops-cloud/shopops/api/rest/controller/company"
	"github.com/shopops-cloud/shopops/api/rest/controller/export"
	"github.com/shopops-cloud/shopops/api/rest/controller/file"
	"github.com/shopops-cloud/shopops/api/rest/controller/invoice"
	"github.com/shopops-cloud/shopops/api/rest/controller/job"
	"github.com/shopops-cloud/shopops/api/rest/controller/jobpart"
	"github.com/shopops-cloud/shopops/api/rest/controller/note"
	"github.com/shopops-cloud/shopops/api/rest/controller/part"
	"github.com/shopops-cloud/shopops/api/rest/controller/quote"
	"github.com/shopops-cloud/shopops/api/rest/controller/task"
)

// Public binds the unauthenticated routes.
func Public(e *echo.Echo) {
	e.POST("/admin/login", admin.Login)
	e.POST("/admin/register", admin.Register)
	e.POST("/client/login", admin.ClientLogin)
	e.POST("/quote/new", quote.Post)
}

// Internal binds the authenticated admin-area routes.
func Internal(g *echo.Group) {
	// jobs
	{
		g.GET("/job", job.List)
		g.GET("/job/:id", job.Get)
		g.POST("/job", job.Post)
		g.PUT("/job/:id/po", job.PutPO)
		g.POST("/job/:id/invoice", job.Invoice)
		g.POST("/job/:id/recalculate", job.Recalculate)
		g.PUT("/job/:id/star", job.Star)
		g.DELETE("/job/:id/star", job.Unstar)
		g.POST("/job/:id/export/sheet", export.Sheet)
	}

	// parts on a job
	{
		g.GET("/job/:id/parts", jobpart.List)
		g.POST("/job/:id/parts", jobpart.Post)
		g.PUT("/job/:id/parts/:partId", jobpart.Put)
		g.DELETE("/job/:id/parts/:partId", jobpart.Delete)
	}

	// part catalog
	{
		g.GET("/part", part.List)
		g.GET("/part/:id", part.Get)
		g.POST("/part", part.Post)
		g.PUT("/part/:id", part.Put)
		g.DELETE("/part/:id", part.Delete)
	}

	// companies
	{
		g.GET("/company", company.List)
		g.GET("/company/:id", company.Get)
		g.POST("/company", company.Post)
		g.PUT("/company/:id", company.Put)
		g.DELETE("/company/:id", company.Delete)
	}

	// notes
	{
		g.GET("/notes", note.List)
		g.POST("/notes", note.Post)
		g.PUT("/notes/:id", note.Put)
		g.DELETE("/notes/:id", note.Delete)
	}

	// tasks
	{
		g.GET("/tasks", task.List)
		g.POST("/tasks", task.Post)
		g.PUT("/tasks/:id", task.Put)
		g.DELETE("/tasks/:id", task.Delete)
	}

	// admins
	{
		g.GET("/admins", admin.List)
		g.GET("/admins/:id", admin.Get)
		g.PUT("/admins/:id/access", admin.PutAccess)
		g.PUT("/admins/:id/company", admin.PutCompany)
		g.DELETE("/admins/:id", admin.Delete)
	}

	// invoices
	{
		g.GET("/invoices", invoice.List)
		g.PUT("/invoices/:jobId/status", invoice.PutStatus)
	}

	// files
	{
		g.GET("/files/:id", file.Get)
		g.POST("/files", file.Post)
		g.DELETE("/files/:id", file.Delete)
	}

	// quotes submitted through the public form
	g.GET("/quotes", quote.List)

	// calendar
	{
		g.GET("/calendar/events", calendar.List)
		g.POST("/calendar/job/:id", calendar.Post)
		g.DELETE("/calendar/events/:eventId", calendar.Delete)
	}
}
