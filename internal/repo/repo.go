package repo

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/refchain/internal/domain"
	"github.com/GlebRadaev/refchain/internal/pg"
	boltrepo "github.com/GlebRadaev/refchain/internal/repo/bolt-repo"
	levelrepo "github.com/GlebRadaev/refchain/internal/repo/level-repo"
	memberrepo "github.com/GlebRadaev/refchain/internal/repo/member-repo"
	relationrepo "github.com/GlebRadaev/refchain/internal/repo/relation-repo"
	transactionrepo "github.com/GlebRadaev/refchain/internal/repo/transaction-repo"
)

// MemberRepo is implemented by both the Postgres and the bbolt stores.
type MemberRepo interface {
	Create(ctx context.Context, member *domain.Member) (*domain.Member, error)
	GetByID(ctx context.Context, id int) (*domain.Member, error)
	GetForUpdate(ctx context.Context, id int) (*domain.Member, error)
	GetByUsername(ctx context.Context, username string) (*domain.Member, error)
	GetByReferralCode(ctx context.Context, code string) (*domain.Member, error)
	UpdateBalances(ctx context.Context, id int, vcoins, rubles decimal.Decimal) error
	UpdateTier(ctx context.Context, id int, tier domain.Tier) error
	MarkFirstTournamentPlayed(ctx context.Context, id int) (bool, error)
	CountByType(ctx context.Context) (map[domain.MemberType]int, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int, error)
}

type RelationRepo interface {
	CreateBatch(ctx context.Context, relations []domain.ReferralRelation) ([]domain.ReferralRelation, error)
	ListAncestors(ctx context.Context, referredID int) ([]domain.ReferralRelation, error)
	FindDirectReferrer(ctx context.Context, referredID int) (*domain.ReferralRelation, error)
	CountDirect(ctx context.Context, referrerID int) (int, error)
	CountByReferrer(ctx context.Context, referrerID int) (int, error)
	ListReferrals(ctx context.Context, referrerID, limit, offset int) ([]domain.ReferralSummary, error)
	LevelBreakdown(ctx context.Context, referrerID int) ([]domain.LevelBreakdown, error)
	ListDescendants(ctx context.Context, rootID int) ([]domain.TreeEdge, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	GetByID(ctx context.Context, id int) (*domain.Transaction, error)
	GetForUpdate(ctx context.Context, id int) (*domain.Transaction, error)
	MarkConfirmed(ctx context.Context, id int, at time.Time) error
	ListByMember(ctx context.Context, memberID int, filter domain.TransactionFilter) ([]domain.Transaction, error)
	ListBonuses(ctx context.Context, memberID, limit, offset int) ([]domain.BonusEntry, error)
	TotalBonusEarned(ctx context.Context, memberID int) (decimal.Decimal, error)
	Totals(ctx context.Context) (domain.LedgerTotals, error)
}

type LevelRepo interface {
	List(ctx context.Context) ([]domain.Level, error)
}

type Repositories struct {
	Members      MemberRepo
	Relations    RelationRepo
	Transactions TransactionRepo
	Levels       LevelRepo
	TxManager    pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		Members:      memberrepo.New(conn),
		Relations:    relationrepo.New(conn),
		Transactions: transactionrepo.New(conn),
		Levels:       levelrepo.New(conn),
		TxManager:    txManager,
	}
}

// NewBolt serves every repository from one embedded bbolt file.
func NewBolt(store *boltrepo.Store) *Repositories {
	return &Repositories{
		Members:      store.Members(),
		Relations:    store.Relations(),
		Transactions: store.Transactions(),
		Levels:       store.Levels(),
		TxManager:    store,
	}
}
