package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fintrack-app/fintrack-backend/internal/dashboard"
	"github.com/fintrack-app/fintrack-backend/internal/expense"
	handlers "github.com/fintrack-app/fintrack-backend/internal/http"
	"github.com/fintrack-app/fintrack-backend/internal/income"
	"github.com/fintrack-app/fintrack-backend/internal/reports"
)

type Router struct {
	AuthHandler      *handlers.AuthHandler
	IncomeHandler    *income.Handler
	ExpenseHandler   *expense.Handler
	DashboardHandler *dashboard.Handler
	ReportsHandler   *reports.Handler
	AuthMW           fiber.Handler
	AuthRateLimit    fiber.Handler
}

func (r *Router) RegisterRoutes(app *fiber.App) {
	if r.AuthHandler != nil {
		app.Post("/api/v1/auth/register", r.AuthRateLimit, r.AuthHandler.Register)
		app.Post("/api/v1/auth/login", r.AuthRateLimit, r.AuthHandler.Login)
		app.Get("/api/v1/auth/getUser", r.AuthMW, r.AuthHandler.Me)
	}

	if r.IncomeHandler != nil {
		app.Post("/api/v1/income/add", r.AuthMW, r.IncomeHandler.Add)
		app.Get("/api/v1/income/get", r.AuthMW, r.IncomeHandler.List)
		app.Get("/api/v1/income/downloadexcel", r.AuthMW, r.IncomeHandler.DownloadExcel)
		app.Delete("/api/v1/income/:id", r.AuthMW, r.IncomeHandler.Delete)
	}

	if r.ExpenseHandler != nil {
		app.Post("/api/v1/expense/add", r.AuthMW, r.ExpenseHandler.Add)
		app.Get("/api/v1/expense/get", r.AuthMW, r.ExpenseHandler.List)
		app.Get("/api/v1/expense/downloadexcel", r.AuthMW, r.ExpenseHandler.DownloadExcel)
		app.Delete("/api/v1/expense/:id", r.AuthMW, r.ExpenseHandler.Delete)
	}

	if r.DashboardHandler != nil {
		app.Get("/api/v1/dashboard", r.AuthMW, r.DashboardHandler.Get)
	}

	if r.ReportsHandler != nil {
		app.Get("/api/v1/reports/statement", r.AuthMW, r.ReportsHandler.Statement)
		app.Get("/api/v1/reports/statement.pdf", r.AuthMW, r.ReportsHandler.StatementPDF)
	}
}
