package middleware

import (
	"net/http"
	"strings"
	"time"

	"order_core/internal/domain/entities"
	"order_core/pkg"

	"github.com/gin-gonic/gin"
	"github.com/go-faster/errors"
	"github.com/golang-jwt/jwt/v5"
)

const callerContextKey = "order_core.caller"

var (
	errMissingToken  = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
	errInvalidToken  = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized)
	errForbiddenRole = pkg.NewDomainErrorSimple("FORBIDDEN", "Insufficient role", http.StatusForbidden)
)

// Claims is the token payload. Subject is preferred; user_id is accepted for
// tokens minted by the legacy shop front.
type Claims struct {
	UserID string `json:"user_id,omitempty"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Authenticator turns HS256 bearer tokens into an entities.Caller on the gin
// context.
type Authenticator struct {
	secret []byte
}

func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{secret: []byte(secret)}
}

// RequireAuth rejects requests without a valid bearer token.
func (a *Authenticator) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}
		caller, err := a.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}
		c.Set(callerContextKey, caller)
		c.Next()
	}
}

// OptionalAuth attaches the caller when a valid token is present and lets
// guests through otherwise. A present but invalid token is still rejected.
func (a *Authenticator) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}
		caller, err := a.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}
		c.Set(callerContextKey, caller)
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if CallerFrom(c).Role != role {
			c.AbortWithStatusJSON(errForbiddenRole.HTTPStatus, errForbiddenRole.ToHTTPError())
			return
		}
		c.Next()
	}
}

func (a *Authenticator) Parse(raw string) (entities.Caller, error) {
	if len(a.secret) == 0 {
		return entities.Caller{}, errors.New("jwt secret not configured")
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return entities.Caller{}, errors.Wrap(err, "parse token")
	}
	if !token.Valid {
		return entities.Caller{}, errors.New("token not valid")
	}

	id := claims.Subject
	if id == "" {
		id = claims.UserID
	}
	if id == "" {
		return entities.Caller{}, errors.New("token has no subject")
	}
	role := claims.Role
	if role == "" {
		role = entities.RoleMember
	}
	return entities.Caller{ID: id, Role: role}, nil
}

// IssueToken signs a token for caller. Used by tests and the ops tooling.
func (a *Authenticator) IssueToken(caller entities.Caller, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: caller.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   caller.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// CallerFrom returns the authenticated caller, or the zero Caller for guests.
func CallerFrom(c *gin.Context) entities.Caller {
	if v, ok := c.Get(callerContextKey); ok {
		if caller, ok := v.(entities.Caller); ok {
			return caller
		}
	}
	return entities.Caller{}
}

// WithCaller stores caller on the context. Handler tests use it to skip token
// parsing.
func WithCaller(c *gin.Context, caller entities.Caller) {
	c.Set(callerContextKey, caller)
}

func bearerToken(c *gin.Context) (string, bool) {
	h := strings.TrimSpace(c.GetHeader("Authorization"))
	if h == "" {
		return "", false
	}
	scheme, token, found := strings.Cut(h, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}
