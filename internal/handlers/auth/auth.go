package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/GlebRadaev/refchain/internal/domain"
	"github.com/GlebRadaev/refchain/internal/dto"
	"github.com/GlebRadaev/refchain/internal/handlers/httperr"
	"github.com/GlebRadaev/refchain/internal/service/authservice"
	pkgauth "github.com/GlebRadaev/refchain/pkg/auth"
	"github.com/GlebRadaev/refchain/pkg/utils"
)

type Service interface {
	Register(ctx context.Context, req authservice.RegisterRequest) (*domain.Member, error)
	Authenticate(ctx context.Context, username, password string) (*domain.Member, error)
	GenerateToken(memberID int) (string, error)
	Me(ctx context.Context, memberID int) (*domain.Member, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Register a new member
//	@Description	Create a member account. A valid referral code links the member into the referrer's chain and pays referral bonuses to every ancestor.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.TokenResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Username already taken"
//	@Failure		422		{object}	utils.Response	"Invalid username, member type or referral code"
//	@Failure		500		{object}	utils.Response	"Internal server error, or member registered with referral bonuses unpaid"
//	@Router			/api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	member, err := h.authService.Register(r.Context(), authservice.RegisterRequest{
		Username:     req.Username,
		Password:     req.Password,
		Type:         req.MemberType,
		ReferralCode: req.ReferralCode,
	})
	if errors.Is(err, domain.ErrCascadeIncomplete) {
		utils.RespondWithError(w, http.StatusInternalServerError, "Member registered but referral bonuses were not fully paid")
		return
	}
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	h.respondWithToken(w, member)
}

// Login godoc
//
//	@Summary		Authenticate member
//	@Description	Log in with username and password and get a JWT token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.TokenResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	member, err := h.authService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	h.respondWithToken(w, member)
}

func (h *AuthHandler) respondWithToken(w http.ResponseWriter, member *domain.Member) {
	token, err := h.authService.GenerateToken(member.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.TokenResponseDTO{
		Token:  token,
		Member: dto.NewMemberDTO(member),
	})
}

// Me godoc
//
//	@Summary		Current member
//	@Description	Profile of the authenticated member, including the referral code to share.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.MemberDTO
//	@Failure		401	{object}	utils.Response	"Member not authorized"
//	@Failure		404	{object}	utils.Response	"Member not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	memberID, ok := pkgauth.MemberID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	member, err := h.authService.Me(r.Context(), memberID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewMemberDTO(member))
}

// ReferralLink godoc
//
//	@Summary		Referral link
//	@Description	The member's referral code and a registration link that carries it, built from the host the request came in on.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ReferralLinkDTO
//	@Failure		401	{object}	utils.Response	"Member not authorized"
//	@Failure		404	{object}	utils.Response	"Member not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/referral-link [get]
func (h *AuthHandler) ReferralLink(w http.ResponseWriter, r *http.Request) {
	memberID, ok := pkgauth.MemberID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	member, err := h.authService.Me(r.Context(), memberID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ReferralLinkDTO{
		ReferralCode: member.ReferralCode,
		ReferralLink: registerURL(r, member.ReferralCode),
	})
}

// registerURL points at the registration page on the host the client used. A proxy's
// X-Forwarded-Proto wins over the connection's own scheme.
func registerURL(r *http.Request, code string) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	u := url.URL{
		Scheme:   scheme,
		Host:     r.Host,
		Path:     "/register",
		RawQuery: url.Values{"ref": {code}}.Encode(),
	}
	return u.String()
}
