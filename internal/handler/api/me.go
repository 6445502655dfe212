package api

import (
	"net/http"

	resdto "find-my-space/internal/handler/dto/response"
	"find-my-space/internal/handler/middleware"

	"github.com/gin-gonic/gin"
)

// @Summary Current identity
// @Description Claims of the verified bearer token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.IdentityResponse
// @Failure 401 {object} httperr.Response
// @Router /me [get]
func Me(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	c.JSON(http.StatusOK, resdto.IdentityResponse{
		ID:            identity.ID(),
		Name:          identity.Name(),
		Email:         identity.Email().Value(),
		EmailVerified: identity.EmailVerified(),
		Role:          identity.Role().String(),
	})
}
