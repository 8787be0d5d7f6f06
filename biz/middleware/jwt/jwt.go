package jwt

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
	"time"

	"venue_tracker/be/biz/config"
	"venue_tracker/be/biz/model/errs"
	"venue_tracker/be/biz/util/metrics"
	"venue_tracker/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const defaultExpiration = 30 * 24 * time.Hour

var (
	ErrMissingSecret       = errors.New("jwt secret is empty")
	ErrJwtMalformed        = errors.New("jwt is malformed")
	ErrJwtInvalid          = errors.New("jwt is invalid")
	ErrJwtExpired          = errors.New("jwt is expired")
	ErrAuthorizationHeader = errors.New("authorization header missing or not bearer")
)

type Payload struct {
	UserID string `json:"user_id,omitempty"`
}

type Claims struct {
	jwt.RegisteredClaims
	Payload
}

// Verifier resolves a bearer token to the user id it was issued for.
type Verifier interface {
	Verify(token string) (string, error)
}

// Issuer signs and verifies HS256 access tokens. Tokens are self-contained:
// verification never touches storage, so they stay valid until expiry.
type Issuer struct {
	secret     []byte
	issuer     string
	expiration time.Duration
	now        func() time.Time
}

func NewIssuer(conf config.JWTConf) (*Issuer, error) {
	if strings.TrimSpace(conf.Secret) == "" {
		return nil, ErrMissingSecret
	}
	return &Issuer{
		secret:     []byte(conf.Secret),
		issuer:     conf.Issuer,
		expiration: expiration(conf),
		now:        time.Now,
	}, nil
}

// RandomSecret is only meant for development runs without a configured secret.
func RandomSecret() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}

func (i *Issuer) Issue(ctx context.Context, userID string) (string, int64, error) {
	now := i.now()
	expAt := now.Add(i.expiration)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    i.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expAt),
			ID:        uuid.NewString(),
		},
		Payload: Payload{UserID: userID},
	}
	tokenStr, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		hlog.CtxErrorf(ctx, "generate access token err: %v", err)
		return "", 0, err
	}
	return tokenStr, expAt.Unix(), nil
}

func (i *Issuer) Verify(tokenStr string) (string, error) {
	claims, err := i.validateToken(tokenStr)
	if err != nil {
		return "", err
	}
	return claims.UserID, nil
}

func (i *Issuer) validateToken(tokenStr string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	}
	if i.issuer != "" {
		opts = append(opts, jwt.WithIssuer(i.issuer))
	}

	var claims Claims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(token *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, opts...)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrJwtExpired
		case errors.Is(err, jwt.ErrTokenMalformed), errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
			return nil, ErrJwtMalformed
		default:
			return nil, ErrJwtInvalid
		}
	}
	if !token.Valid {
		return nil, ErrJwtInvalid
	}
	if claims.UserID == "" || claims.UserID != claims.Subject {
		return nil, ErrJwtMalformed
	}

	return &claims, nil
}

// ValidateMW guards protected routes. Every failure answers the same 401;
// the reason only goes to the log and metrics.
func ValidateMW(v Verifier) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		jwtStr, err := exactJWT(c)
		if err == nil {
			var userID string
			userID, err = v.Verify(jwtStr)
			if err == nil {
				c.Next(WithUserID(ctx, userID))
				return
			}
		}

		hlog.CtxInfof(ctx, "authorization failed: %v", err)
		metrics.TokenRejected(reason(err))
		resp.AbortWithErr(c, errs.Unauthorized, http.StatusUnauthorized)
	}
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, Payload{}, Payload{UserID: userID})
}

func GetPayload(ctx context.Context) Payload {
	payload, ok := ctx.Value(Payload{}).(Payload)
	if ok {
		return payload
	}
	return Payload{}
}

func GetUserID(ctx context.Context) string {
	return GetPayload(ctx).UserID
}

func exactJWT(c *app.RequestContext) (string, error) {
	header := strings.TrimSpace(string(c.Request.Header.Peek("Authorization")))
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrAuthorizationHeader
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrAuthorizationHeader
	}
	return token, nil
}

func reason(err error) string {
	switch {
	case errors.Is(err, ErrAuthorizationHeader):
		return "header"
	case errors.Is(err, ErrJwtExpired):
		return "expired"
	case errors.Is(err, ErrJwtMalformed):
		return "malformed"
	case errors.Is(err, ErrJwtInvalid):
		return "invalid"
	}
	return "other"
}

func expiration(conf config.JWTConf) time.Duration {
	if conf.Expiration > 0 {
		return time.Duration(conf.Expiration) * time.Second
	}

	return defaultExpiration
}
