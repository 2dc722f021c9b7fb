package middleware

import (
	"net/http"
	"strings"

	"roomshub/internal/config"
	"roomshub/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const identityKey = "identity"

// AuthMiddleware resolves the caller identity for API requests. Two paths:
//
//   - a verified TLS client certificate whose common name is in the
//     configured allow-list authenticates the caller as a trusted service,
//     no token required;
//   - otherwise a bearer JWT in the Authorization header is validated with
//     the shared secret. The user_id claim becomes the acting user, and a
//     role claim of "service" grants the trusted-service privileges.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	allowedCNs := make(map[string]bool, len(cfg.ServiceCertCNs))
	for _, cn := range cfg.ServiceCertCNs {
		allowedCNs[cn] = true
	}

	return func(c *gin.Context) {
		// Certificate path: the TLS layer already verified the chain,
		// we only check the subject against the allow-list.
		if tls := c.Request.TLS; tls != nil && len(tls.PeerCertificates) > 0 {
			cn := tls.PeerCertificates[0].Subject.CommonName
			if allowedCNs[cn] {
				c.Set(identityKey, service.Identity{Service: true})
				c.Next()
				return
			}
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		ident, err := resolveToken(parts[1], cfg.JWTSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(identityKey, ident)
		c.Next()
	}
}

func resolveToken(tokenString, secret string) (service.Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return service.Identity{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return service.Identity{}, jwt.ErrTokenInvalidClaims
	}

	var ident service.Identity

	if role, ok := claims["role"].(string); ok && role == "service" {
		ident.Service = true
	}

	// JSON numbers decode as float64
	if userID, ok := claims["user_id"].(float64); ok {
		ident.UserID = int64(userID)
	} else if !ident.Service {
		return service.Identity{}, jwt.ErrTokenInvalidClaims
	}

	return ident, nil
}

// GetIdentity fetches the resolved identity set by AuthMiddleware
func GetIdentity(c *gin.Context) (service.Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return service.Identity{}, false
	}
	ident, ok := value.(service.Identity)
	return ident, ok
}
