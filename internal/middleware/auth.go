package middleware

import (
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"solarquote/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Context keys set by RequireRole.
const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

var (
	secretMu  sync.RWMutex
	jwtSecret []byte
)

// InitJWTSecret installs the signing secret loaded from config.
func InitJWTSecret(secret string) {
	secretMu.Lock()
	defer secretMu.Unlock()
	jwtSecret = []byte(secret)
}

func GetJWTSecret() []byte {
	secretMu.RLock()
	secret := jwtSecret
	secretMu.RUnlock()
	if len(secret) > 0 {
		return secret
	}

	if os.Getenv("GIN_MODE") == "release" {
		panic("FATAL: JWT_SECRET environment variable is required in production mode")
	}
	return []byte("default_super_secret_key") // development fallback only
}

// IssueToken signs an access token for a principal. Tokens are normally minted by the identity
// service; this is used by tooling and tests.
func IssueToken(secret []byte, userID uuid.UUID, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  userID.String(),
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	})
	return token.SignedString(secret)
}

// Principal is the identity carried by a verified access token.
type Principal struct {
	UserID uuid.UUID
	Role   string
}

// ParseToken verifies an HMAC-signed token and extracts its subject and role.
func ParseToken(tokenString string, secret []byte) (Principal, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil {
		return Principal{}, err
	}
	if !token.Valid {
		return Principal{}, jwt.ErrTokenSignatureInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Principal{}, jwt.ErrTokenInvalidClaims
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return Principal{}, err
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return Principal{}, jwt.ErrTokenInvalidSubject
	}
	role, _ := claims["role"].(string)
	return Principal{UserID: userID, Role: role}, nil
}

// RequireRole validates the JWT token and checks that the caller's role is in allowedRoles.
func RequireRole(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Try cookie first, fallback to Authorization header
		tokenString, cookieErr := c.Cookie("access_token")
		if cookieErr != nil || tokenString == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Authorization is missing"))
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid authorization format. Expected 'Bearer <token>'"))
				return
			}
			tokenString = parts[1]
		}

		principal, err := ParseToken(tokenString, GetJWTSecret())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid token: "+err.Error()))
			return
		}
		if principal.Role == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Error(http.StatusForbidden, "Role not found in token"))
			return
		}

		roleAllowed := false
		for _, role := range allowedRoles {
			if principal.Role == role {
				roleAllowed = true
				break
			}
		}
		if !roleAllowed {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Error(http.StatusForbidden, "Access denied: insufficient permissions"))
			return
		}

		c.Set(ContextUserID, principal.UserID)
		c.Set(ContextUserRole, principal.Role)
		c.Next()
	}
}

// CurrentPrincipal returns the caller stored by RequireRole.
func CurrentPrincipal(c *gin.Context) (Principal, bool) {
	id, ok := c.Get(ContextUserID)
	if !ok {
		return Principal{}, false
	}
	userID, ok := id.(uuid.UUID)
	if !ok {
		return Principal{}, false
	}
	return Principal{UserID: userID, Role: c.GetString(ContextUserRole)}, true
}
