package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/rigledger/docs"
	accounthandlers "github.com/GlebRadaev/rigledger/internal/handlers/account"
	adminhandlers "github.com/GlebRadaev/rigledger/internal/handlers/admin"
	shophandlers "github.com/GlebRadaev/rigledger/internal/handlers/shop"
	transactionhandlers "github.com/GlebRadaev/rigledger/internal/handlers/transactions"
	"github.com/GlebRadaev/rigledger/internal/service"
	"github.com/GlebRadaev/rigledger/pkg/auth"
	"github.com/GlebRadaev/rigledger/pkg/ratelimit"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AccountHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	CheckReferral(w http.ResponseWriter, r *http.Request)
	MaintenanceStatus(w http.ResponseWriter, r *http.Request)
	ClientLog(w http.ResponseWriter, r *http.Request)
	GetUser(w http.ResponseWriter, r *http.Request)
	Sync(w http.ResponseWriter, r *http.Request)
	GetReferrals(w http.ResponseWriter, r *http.Request)
	GetNotifications(w http.ResponseWriter, r *http.Request)
	MarkNotificationRead(w http.ResponseWriter, r *http.Request)
}

type TransactionHandler interface {
	Deposit(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type ShopHandler interface {
	GetItems(w http.ResponseWriter, r *http.Request)
	Buy(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	ListUsers(w http.ResponseWriter, r *http.Request)
	CreateUser(w http.ResponseWriter, r *http.Request)
	DeleteUser(w http.ResponseWriter, r *http.Request)
	ResetPassword(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	ListTransactions(w http.ResponseWriter, r *http.Request)
	ApproveTransaction(w http.ResponseWriter, r *http.Request)
	RejectTransaction(w http.ResponseWriter, r *http.Request)
	ClearTransactions(w http.ResponseWriter, r *http.Request)
	GetSettings(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)
	AddRig(w http.ResponseWriter, r *http.Request)
	DeleteRig(w http.ResponseWriter, r *http.Request)
	ToggleRig(w http.ResponseWriter, r *http.Request)
	ListItems(w http.ResponseWriter, r *http.Request)
	SaveItem(w http.ResponseWriter, r *http.Request)
	DeleteItem(w http.ResponseWriter, r *http.Request)
	ClearItems(w http.ResponseWriter, r *http.Request)
	RegenerateItems(w http.ResponseWriter, r *http.Request)
	ListLogs(w http.ResponseWriter, r *http.Request)
	ClearLogs(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AccountHandler     AccountHandler
	TransactionHandler TransactionHandler
	ShopHandler        ShopHandler
	AdminHandler       AdminHandler

	jwtService auth.JWTServiceInterface
	adminLogin string
	limiter    *ratelimit.Limiter
}

// New wires the handlers. A nil limiter leaves the public routes unthrottled.
func New(s *service.Services, jwtService auth.JWTServiceInterface, adminLogin string, limiter *ratelimit.Limiter) *Handlers {
	return &Handlers{
		AccountHandler:     accounthandlers.New(s.AccountService, s.ActivityService),
		TransactionHandler: transactionhandlers.New(s.LedgerService),
		ShopHandler:        shophandlers.New(s.ShopService),
		AdminHandler: adminhandlers.New(
			s.AccountService,
			s.StatusService,
			s.LedgerService,
			s.SettingsService,
			s.RigService,
			s.ShopService,
			s.ActivityService,
		),
		jwtService: jwtService,
		adminLogin: adminLogin,
		limiter:    limiter,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if h.limiter != nil {
				r.Use(h.limiter.Middleware)
			}
			r.Post("/register", h.AccountHandler.Register)
			r.Post("/login", h.AccountHandler.Login)
			r.Get("/check-referral/{code}", h.AccountHandler.CheckReferral)
			r.Post("/log", h.AccountHandler.ClientLog)
		})
		r.Get("/maintenance-status", h.AccountHandler.MaintenanceStatus)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.jwtService))
			r.Route("/user", func(r chi.Router) {
				r.Get("/", h.AccountHandler.GetUser)
				r.Post("/sync", h.AccountHandler.Sync)
				r.Get("/referrals", h.AccountHandler.GetReferrals)
				r.Get("/transactions", h.TransactionHandler.GetTransactions)
				r.Get("/notifications", h.AccountHandler.GetNotifications)
				r.Post("/notifications/{id}/read", h.AccountHandler.MarkNotificationRead)
			})
			r.Route("/transactions", func(r chi.Router) {
				r.Post("/deposit", h.TransactionHandler.Deposit)
				r.Post("/withdraw", h.TransactionHandler.Withdraw)
			})
			r.Route("/shop", func(r chi.Router) {
				r.Get("/items", h.ShopHandler.GetItems)
				r.Post("/buy", h.ShopHandler.Buy)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.jwtService), auth.AdminOnly(h.adminLogin))
			r.Get("/users", h.AdminHandler.ListUsers)
			r.Post("/users", h.AdminHandler.CreateUser)
			r.Post("/users/delete", h.AdminHandler.DeleteUser)
			r.Post("/users/reset-password", h.AdminHandler.ResetPassword)
			r.Post("/update-status", h.AdminHandler.UpdateStatus)
			r.Route("/transactions", func(r chi.Router) {
				r.Get("/", h.AdminHandler.ListTransactions)
				r.Post("/{id}/approve", h.AdminHandler.ApproveTransaction)
				r.Post("/{id}/reject", h.AdminHandler.RejectTransaction)
				r.Post("/clear", h.AdminHandler.ClearTransactions)
			})
			r.Get("/settings", h.AdminHandler.GetSettings)
			r.Post("/settings", h.AdminHandler.UpdateSettings)
			r.Route("/rigs", func(r chi.Router) {
				r.Post("/add", h.AdminHandler.AddRig)
				r.Post("/delete", h.AdminHandler.DeleteRig)
				r.Post("/toggle", h.AdminHandler.ToggleRig)
			})
			r.Route("/shop", func(r chi.Router) {
				r.Get("/items", h.AdminHandler.ListItems)
				r.Post("/items", h.AdminHandler.SaveItem)
				r.Delete("/items/{id}", h.AdminHandler.DeleteItem)
				r.Post("/clear", h.AdminHandler.ClearItems)
				r.Post("/regenerate", h.AdminHandler.RegenerateItems)
			})
			r.Get("/logs", h.AdminHandler.ListLogs)
			r.Post("/logs/clear", h.AdminHandler.ClearLogs)
		})
	})

	return r
}
