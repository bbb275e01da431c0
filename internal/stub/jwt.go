package stub

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func (s *Server) signToken(account *Account, lifetime time.Duration) string {
	claims := jwt.MapClaims{
		"user_id":  account.ID,
		"username": account.Username,
		"exp":      s.now().Add(lifetime).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, _ := token.SignedString(s.secret)
	return signed
}

func (s *Server) tokens(account *Account) gin.H {
	return gin.H{
		"access":  s.signToken(account, 24*time.Hour),
		"refresh": s.signToken(account, 7*24*time.Hour),
	}
}

// authRequired validates the bearer token and puts the account in the
// context.
func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false, "message": "Authentication credentials were not provided",
			})
			return
		}

		token, err := jwt.Parse(parts[1], func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return s.secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false, "message": "Token is invalid or expired",
			})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false, "message": "Token is invalid or expired",
			})
			return
		}

		id, ok := claims["user_id"].(float64)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false, "message": "Token is invalid or expired",
			})
			return
		}

		account, ok := s.users.Get(int(id))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false, "message": "User not found",
			})
			return
		}

		c.Set("account", account)
		c.Next()
	}
}

func (s *Server) adminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if currentAccount(c) == nil || !currentAccount(c).IsStaff {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false, "message": "Admin access required",
			})
			return
		}
		c.Next()
	}
}

func currentAccount(c *gin.Context) *Account {
	if v, ok := c.Get("account"); ok {
		if account, ok := v.(*Account); ok {
			return account
		}
	}
	return nil
}
