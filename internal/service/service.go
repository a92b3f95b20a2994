package service

import (
	"github.com/GlebRadaev/refchain/internal/events"
	"github.com/GlebRadaev/refchain/internal/handlers/admin"
	"github.com/GlebRadaev/refchain/internal/handlers/auth"
	"github.com/GlebRadaev/refchain/internal/handlers/levels"
	"github.com/GlebRadaev/refchain/internal/handlers/referrals"
	"github.com/GlebRadaev/refchain/internal/handlers/transactions"

	pkgauth "github.com/GlebRadaev/refchain/pkg/auth"

	"github.com/GlebRadaev/refchain/internal/repo"
	"github.com/GlebRadaev/refchain/internal/service/adminservice"
	"github.com/GlebRadaev/refchain/internal/service/authservice"
	"github.com/GlebRadaev/refchain/internal/service/bonusservice"
	"github.com/GlebRadaev/refchain/internal/service/ledgerservice"
	"github.com/GlebRadaev/refchain/internal/service/levelservice"
	"github.com/GlebRadaev/refchain/internal/service/referralservice"
	"github.com/GlebRadaev/refchain/internal/service/reportservice"
)

type Options struct {
	JWTSecret        string
	MaxReferralDepth int
	CascadePolicy    bonusservice.Policy
	CodeAttempts     int
	HashCost         int
	Publisher        events.Publisher
}

type Services struct {
	AuthService        auth.Service
	ReferralService    referrals.Service
	TransactionService transactions.Service
	TransactionReports transactions.Reports
	LevelService       levels.Service
	AdminService       admin.Service
	JWTService         pkgauth.JWTServiceInterface
}

func New(repo *repo.Repositories, opts Options) *Services {
	publisher := opts.Publisher
	if publisher == nil {
		publisher = events.Noop{}
	}
	jwtService := pkgauth.NewJWTService(opts.JWTSecret)

	ledgerService := ledgerservice.New(repo.Members, repo.Transactions, repo.TxManager)
	levelService := levelservice.New(repo.Members, repo.Relations, repo.Levels)
	referralService := referralservice.New(repo.Relations, repo.TxManager, opts.MaxReferralDepth)
	bonusService := bonusservice.New(
		repo.Relations,
		repo.Members,
		repo.Levels,
		ledgerService,
		levelService,
		repo.TxManager,
		publisher,
		opts.CascadePolicy,
	)
	authService := authservice.New(
		repo.Members,
		referralService,
		bonusService,
		repo.TxManager,
		&pkgauth.HashService{Cost: opts.HashCost},
		jwtService,
		opts.CodeAttempts,
	)
	adminService := adminservice.New(repo.Members, repo.Transactions, ledgerService, bonusService, repo.TxManager, publisher)
	reportService := reportservice.New(repo.Members, repo.Relations, repo.Transactions)

	return &Services{
		AuthService:        authService,
		ReferralService:    reportService,
		TransactionService: ledgerService,
		TransactionReports: reportService,
		LevelService:       levelService,
		AdminService:       adminService,
		JWTService:         jwtService,
	}
}
