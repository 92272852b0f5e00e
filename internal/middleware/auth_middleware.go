package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"clarityflow/internal/domain"
	"clarityflow/internal/shared/contextutil"
	"clarityflow/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const currentUserKey = "current_user"

// AuthMiddleware memverifikasi token dari identity provider eksternal dan
// membangun actor dari claims. Core tidak pernah mengelola kredensial;
// token hanya diverifikasi tanda tangannya.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token not found", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			code := "INVALID_TOKEN"
			if err != nil && strings.Contains(err.Error(), "expired") {
				code = "TOKEN_EXPIRED"
			}
			response.Error(c, http.StatusUnauthorized, code, "Invalid or expired token", nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token claims", nil)
			c.Abort()
			return
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "User ID not found in token", nil)
			c.Abort()
			return
		}

		name, _ := claims["name"].(string)
		email, _ := claims["email"].(string)
		companyID, _ := claims["company_id"].(string)
		role, _ := claims["role"].(string)
		department, _ := claims["department"].(string)

		// Claim department di luar enum dikosongkan supaya policy jatuh
		// ke default deny, bukan ke nilai liar dari identity provider.
		dept := domain.Department(department)
		if !domain.ValidDepartment(dept) {
			dept = ""
		}

		actor := domain.User{
			ID:         userID,
			Name:       name,
			Email:      email,
			CompanyID:  companyID,
			Role:       domain.Role(role),
			Department: dept,
		}

		c.Set(currentUserKey, actor)

		ctx := contextutil.WithUserID(c.Request.Context(), userID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// CurrentUser mengambil actor yang sudah diset AuthMiddleware. Zero value
// berarti request tidak terotentikasi.
func CurrentUser(c *gin.Context) domain.User {
	if v, ok := c.Get(currentUserKey); ok {
		if u, ok := v.(domain.User); ok {
			return u
		}
	}
	return domain.User{}
}
