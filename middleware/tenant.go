package middleware

import (
	"net/http"

	"fashiontally-backend/config"
	"fashiontally-backend/metrics"
	"fashiontally-backend/models"
	"fashiontally-backend/tenancy"
	"fashiontally-backend/utils"

	"github.com/gin-gonic/gin"
)

// Tenant loads the authenticated account and resolves the effective
// tenant key into the request context. Every /api handler reads
// "tenantKey" from the context and filters on it; none of them
// re-derive tenancy on their own. An unresolvable tenant aborts the
// request — an empty key must never widen into a global query.
func Tenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userId")
		if !exists {
			metrics.TenantContextMissingCounter.Inc()
			utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
			return
		}

		var user models.User
		if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
			metrics.TenantContextMissingCounter.Inc()
			utils.RespondWithError(c, http.StatusUnauthorized, "Account not found")
			return
		}
		if !user.IsActive {
			utils.RespondWithError(c, http.StatusForbidden, "Account is deactivated")
			return
		}

		account := user.Account()
		tenantKey := tenancy.ResolveTenantKey(account)
		if tenantKey == "" {
			metrics.TenantContextMissingCounter.Inc()
			utils.RespondWithError(c, http.StatusForbidden, "No tenant resolved for account")
			return
		}

		c.Set("account", account)
		c.Set("user", &user)
		c.Set("tenantKey", tenantKey)

		c.Next()
	}
}

// TenantKey pulls the resolved tenant key out of the context. The
// second return is false when the Tenant middleware did not run.
func TenantKey(c *gin.Context) (string, bool) {
	v, exists := c.Get("tenantKey")
	if !exists {
		return "", false
	}
	key, ok := v.(string)
	if !ok || key == "" {
		return "", false
	}
	return key, true
}
