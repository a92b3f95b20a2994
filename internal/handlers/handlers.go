package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/refchain/docs"
	adminhandlers "github.com/GlebRadaev/refchain/internal/handlers/admin"
	authhandlers "github.com/GlebRadaev/refchain/internal/handlers/auth"
	levelhandlers "github.com/GlebRadaev/refchain/internal/handlers/levels"
	referralhandlers "github.com/GlebRadaev/refchain/internal/handlers/referrals"
	transactionhandlers "github.com/GlebRadaev/refchain/internal/handlers/transactions"
	"github.com/GlebRadaev/refchain/internal/service"
	"github.com/GlebRadaev/refchain/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
	ReferralLink(w http.ResponseWriter, r *http.Request)
}

type ReferralHandler interface {
	GetReferrals(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
	GetTree(w http.ResponseWriter, r *http.Request)
	GetBonuses(w http.ResponseWriter, r *http.Request)
}

type TransactionHandler interface {
	GetTransactions(w http.ResponseWriter, r *http.Request)
	Deposit(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
}

type LevelHandler interface {
	GetLevels(w http.ResponseWriter, r *http.Request)
	GetCurrent(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	ConfirmDeposit(w http.ResponseWriter, r *http.Request)
	ConfirmTournament(w http.ResponseWriter, r *http.Request)
	ManualBonus(w http.ResponseWriter, r *http.Request)
	CompleteTransaction(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler        AuthHandler
	ReferralHandler    ReferralHandler
	TransactionHandler TransactionHandler
	LevelHandler       LevelHandler
	AdminHandler       AdminHandler

	JWTService auth.JWTServiceInterface
	Members    adminhandlers.Members
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:        authhandlers.New(s.AuthService),
		ReferralHandler:    referralhandlers.New(s.ReferralService),
		TransactionHandler: transactionhandlers.New(s.TransactionService, s.TransactionReports),
		LevelHandler:       levelhandlers.New(s.LevelService),
		AdminHandler:       adminhandlers.New(s.AdminService),
		JWTService:         s.JWTService,
		Members:            s.AuthService,
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
		r.Post("/auth/register", h.AuthHandler.Register)
		r.Post("/auth/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.JWTService))
			r.Get("/auth/me", h.AuthHandler.Me)
			r.Get("/auth/referral-link", h.AuthHandler.ReferralLink)

			r.Route("/referrals", func(r chi.Router) {
				r.Get("/", h.ReferralHandler.GetReferrals)
				r.Get("/stats", h.ReferralHandler.GetStats)
				r.Get("/tree", h.ReferralHandler.GetTree)
			})
			r.Get("/bonuses", h.ReferralHandler.GetBonuses)

			r.Route("/transactions", func(r chi.Router) {
				r.Get("/", h.TransactionHandler.GetTransactions)
				r.Post("/deposit", h.TransactionHandler.Deposit)
				r.Post("/withdraw", h.TransactionHandler.Withdraw)
				r.Get("/balance", h.TransactionHandler.GetBalance)
			})

			r.Route("/levels", func(r chi.Router) {
				r.Get("/", h.LevelHandler.GetLevels)
				r.Get("/current", h.LevelHandler.GetCurrent)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(adminhandlers.RequireAdmin(h.Members))
				r.Post("/confirm-deposit", h.AdminHandler.ConfirmDeposit)
				r.Post("/confirm-tournament", h.AdminHandler.ConfirmTournament)
				r.Post("/bonuses", h.AdminHandler.ManualBonus)
				r.Post("/transactions/{id}/complete", h.AdminHandler.CompleteTransaction)
				r.Get("/stats", h.AdminHandler.GetStats)
			})
		})
	})

	return r
}
