package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-demo/internal/domain"
)

type roleRequest struct {
	Role string `json:"role" binding:"required"`
}

type roleResponse struct {
	Role           domain.Role `json:"role"`
	CanManageStore bool        `json:"canManageStore"`
}

func toRoleResponse(r domain.Role) roleResponse {
	return roleResponse{Role: r, CanManageStore: r.CanManageStore()}
}

func (h *handlers) getRole(c *gin.Context) {
	c.JSON(http.StatusOK, toRoleResponse(sessionFrom(c).Role()))
}

// setRole switches the acting role. There is no authentication behind it.
func (h *handlers) setRole(c *gin.Context) {
	var req roleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "role required")
		return
	}
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		h.writeError(c, err)
		return
	}
	sess := sessionFrom(c)
	sess.SetRole(role)
	h.logger.Printf("http: session=%s role=%s", sess.ID, role)
	c.JSON(http.StatusOK, toRoleResponse(role))
}
