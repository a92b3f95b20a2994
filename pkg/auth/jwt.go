package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt"
)

const Issuer = "refchain"

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrInvalidClaims = errors.New("invalid token claims")
)

type JWTServiceInterface interface {
	GenerateJWT(memberID int, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// Claims carry the member id twice: as the typed claim the handlers read and as the
// standard subject.
type Claims struct {
	MemberID int `json:"member_id"`
	jwt.StandardClaims
}

type JWTService struct {
	secretKey []byte
}

func NewJWTService(secret string) *JWTService {
	return &JWTService{secretKey: []byte(secret)}
}

func (s *JWTService) GenerateJWT(memberID int, expirationTime time.Time) (string, error) {
	claims := Claims{
		MemberID: memberID,
		StandardClaims: jwt.StandardClaims{
			Subject:   strconv.Itoa(memberID),
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: expirationTime.Unix(),
			Issuer:    Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.MemberID == 0 || claims.Issuer != Issuer {
		return nil, ErrInvalidClaims
	}
	if claims.Subject != "" && claims.Subject != strconv.Itoa(claims.MemberID) {
		return nil, ErrInvalidClaims
	}

	return claims, nil
}
