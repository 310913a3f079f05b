package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	cartsvc "storefront-demo/internal/service/cart"
)

type addItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

type changeQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

func (h *handlers) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.deps.CartSvc.Get(c.Request.Context(), sessionFrom(c).Cart))
}

func (h *handlers) addCartItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "productId required")
		return
	}
	state, err := h.deps.CartSvc.Add(c.Request.Context(), sessionFrom(c).Cart, req.ProductID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *handlers) changeCartItem(c *gin.Context) {
	var req changeQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "quantity required")
		return
	}
	state, err := h.deps.CartSvc.ChangeQuantity(c.Request.Context(), sessionFrom(c).Cart, c.Param("id"), *req.Quantity)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *handlers) removeCartItem(c *gin.Context) {
	state, err := h.deps.CartSvc.Remove(c.Request.Context(), sessionFrom(c).Cart, c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *handlers) clearCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.deps.CartSvc.Clear(c.Request.Context(), sessionFrom(c).Cart))
}

func (h *handlers) toggleCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.deps.CartSvc.Toggle(c.Request.Context(), sessionFrom(c).Cart))
}

func (h *handlers) updateCart(c *gin.Context) {
	var req cartsvc.UpdateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid cart actions")
		return
	}
	state, err := h.deps.CartSvc.Update(c.Request.Context(), sessionFrom(c).Cart, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}
