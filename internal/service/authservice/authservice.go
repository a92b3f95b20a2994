package authservice

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/refchain/internal/domain"
	"github.com/GlebRadaev/refchain/internal/pg"
	"github.com/GlebRadaev/refchain/internal/service/bonusservice"
	"github.com/GlebRadaev/refchain/pkg/auth"
	"github.com/GlebRadaev/refchain/pkg/validate"
)

const (
	tokenTTL = 24 * time.Hour

	// DefaultCodeAttempts bounds referral code regeneration after collisions.
	DefaultCodeAttempts = 10
)

type Repo interface {
	Create(ctx context.Context, member *domain.Member) (*domain.Member, error)
	GetByID(ctx context.Context, id int) (*domain.Member, error)
	GetByUsername(ctx context.Context, username string) (*domain.Member, error)
	GetByReferralCode(ctx context.Context, code string) (*domain.Member, error)
}

type ChainBuilder interface {
	BuildChain(ctx context.Context, referrer, newMember *domain.Member) ([]domain.ReferralRelation, error)
}

type Cascader interface {
	CascadeBonuses(ctx context.Context, member *domain.Member, reason bonusservice.Reason) ([]domain.Transaction, error)
}

type RegisterRequest struct {
	Username     string
	Password     string
	Type         string
	ReferralCode string
}

type Service struct {
	memberRepo   Repo
	chains       ChainBuilder
	cascade      Cascader
	txManager    pg.TXManager
	hashService  auth.HashServiceInterface
	jwtService   auth.JWTServiceInterface
	codeAttempts int
	newCode      func() (string, error)
}

func New(
	memberRepo Repo,
	chains ChainBuilder,
	cascade Cascader,
	txManager pg.TXManager,
	hashService auth.HashServiceInterface,
	jwtService auth.JWTServiceInterface,
	codeAttempts int,
) *Service {
	if codeAttempts <= 0 {
		codeAttempts = DefaultCodeAttempts
	}
	return &Service{
		memberRepo:   memberRepo,
		chains:       chains,
		cascade:      cascade,
		txManager:    txManager,
		hashService:  hashService,
		jwtService:   jwtService,
		codeAttempts: codeAttempts,
		newCode:      GenerateReferralCode,
	}
}

// GenerateReferralCode draws a random code from the referral code alphabet.
func GenerateReferralCode() (string, error) {
	alphabet := validate.ReferralCodeAlphabet
	size := big.NewInt(int64(len(alphabet)))
	var sb strings.Builder
	sb.Grow(validate.ReferralCodeLength)
	for i := 0; i < validate.ReferralCodeLength; i++ {
		n, err := rand.Int(rand.Reader, size)
		if err != nil {
			return "", err
		}
		sb.WriteByte(alphabet[n.Int64()])
	}
	return sb.String(), nil
}

// Register creates a member with a fresh referral code. With a referral code the member is
// linked into the referrer's chain in the same atomic scope, and once that commits every
// ancestor receives its referral bonus. A cascade failure does not undo the registration:
// the committed member is returned together with an error wrapping
// domain.ErrCascadeIncomplete.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.Member, error) {
	username := strings.TrimSpace(req.Username)
	if !validate.IsUsername(username) {
		return nil, domain.ErrInvalidUsername
	}
	memberType, err := domain.ParseMemberType(req.Type)
	if err != nil {
		return nil, err
	}
	referrer, err := s.findReferrer(ctx, req.ReferralCode)
	if err != nil {
		return nil, err
	}
	if req.Password == "" {
		return nil, fmt.Errorf("%w: password is required", domain.ErrValidation)
	}
	hashedPassword, err := s.hashService.HashPassword(req.Password)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}

	var member *domain.Member
	for attempt := 1; ; attempt++ {
		member, err = s.create(ctx, &domain.Member{
			Username:     username,
			PasswordHash: hashedPassword,
			Type:         memberType,
		}, referrer)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrReferralCodeTaken) || attempt >= s.codeAttempts {
			zap.L().Error("can't create member: ", zap.String("username", username), zap.Error(err))
			return nil, err
		}
		zap.L().Debug("referral code collision, retrying", zap.Int("attempt", attempt))
	}

	if referrer != nil {
		if _, err := s.cascade.CascadeBonuses(ctx, member, bonusservice.ReasonReferral); err != nil {
			zap.L().Error("referral bonuses not fully paid", zap.Int("memberID", member.ID), zap.Error(err))
			return member, fmt.Errorf("%w: %w", domain.ErrCascadeIncomplete, err)
		}
	}

	zap.L().Info("member successfully registered", zap.String("username", username), zap.Int("memberID", member.ID))
	return member, nil
}

func (s *Service) findReferrer(ctx context.Context, code string) (*domain.Member, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, nil
	}
	if !validate.IsReferralCode(code) {
		return nil, domain.ErrInvalidReferralCode
	}
	referrer, err := s.memberRepo.GetByReferralCode(ctx, code)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrInvalidReferralCode
	}
	return referrer, err
}

// create inserts one candidate with a new code and, when referred, its chain.
func (s *Service) create(ctx context.Context, candidate *domain.Member, referrer *domain.Member) (*domain.Member, error) {
	code, err := s.newCode()
	if err != nil {
		return nil, fmt.Errorf("generate referral code: %w", err)
	}
	candidate.ReferralCode = code

	var member *domain.Member
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		member, err = s.memberRepo.Create(ctx, candidate)
		if err != nil {
			return err
		}
		if referrer == nil {
			return nil
		}
		_, err = s.chains.BuildChain(ctx, referrer, member)
		return err
	})
	if err != nil {
		return nil, err
	}
	return member, nil
}

func (s *Service) Authenticate(ctx context.Context, username, password string) (*domain.Member, error) {
	member, err := s.memberRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			zap.L().Info("invalid credentials", zap.String("username", username))
			return nil, domain.ErrInvalidCredentials
		}
		zap.L().Error("can't find member: ", zap.Error(err))
		return nil, err
	}
	if ok := s.hashService.ComparePassword(member.PasswordHash, password); !ok {
		zap.L().Info("invalid credentials", zap.String("username", username))
		return nil, domain.ErrInvalidCredentials
	}
	zap.L().Info("member successfully authenticated", zap.String("username", username))
	return member, nil
}

func (s *Service) GenerateToken(memberID int) (string, error) {
	token, err := s.jwtService.GenerateJWT(memberID, time.Now().Add(tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

// Me returns the member together with its own referral code.
func (s *Service) Me(ctx context.Context, memberID int) (*domain.Member, error) {
	return s.memberRepo.GetByID(ctx, memberID)
}
