package delivery

import (
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
)

// TokenVerifier verifies a Firebase ID token and returns its decoded form
type TokenVerifier interface {
	VerifyIDToken(ctx *gin.Context, idToken string) (*auth.Token, error)
}

// firebaseVerifier adapts *auth.Client to TokenVerifier
type firebaseVerifier struct {
	client *auth.Client
}

func NewFirebaseVerifier(client *auth.Client) TokenVerifier {
	return &firebaseVerifier{client: client}
}

func (v *firebaseVerifier) VerifyIDToken(c *gin.Context, idToken string) (*auth.Token, error) {
	return v.client.VerifyIDToken(c.Request.Context(), idToken)
}

// AuthMiddleware authenticates requests with a Firebase ID token in the
// Authorization header and exposes the caller's uid and email to handlers.
func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		token, err := verifier.VerifyIDToken(c, parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("userID", token.UID)
		if email, ok := token.Claims["email"].(string); ok {
			c.Set("userEmail", email)
		}
		c.Next()
	}
}
