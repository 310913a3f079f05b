package httpserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"storefront-demo/internal/catalog"
	"storefront-demo/internal/domain"
)

type productListResponse struct {
	Count   int              `json:"count"`
	Results []domain.Product `json:"results"`
}

type createProductRequest struct {
	Name        string           `json:"name"`
	Price       *decimal.Decimal `json:"price"`
	Description string           `json:"description"`
	Image       string           `json:"image"`
	Category    string           `json:"category"`
	Features    []string         `json:"features"`
}

type recommendQuery struct {
	Age      *int   `form:"age" binding:"omitempty,min=0,max=150"`
	Category string `form:"category"`
	MinPrice string `form:"minPrice"`
	MaxPrice string `form:"maxPrice"`
}

func listResponse(products []domain.Product) productListResponse {
	if products == nil {
		products = []domain.Product{}
	}
	return productListResponse{Count: len(products), Results: products}
}

func (h *handlers) listProducts(c *gin.Context) {
	products, err := h.deps.ProductSvc.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse(products))
}

func (h *handlers) getProduct(c *gin.Context) {
	p, err := h.deps.ProductSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *handlers) searchProducts(c *gin.Context) {
	products, err := h.deps.ProductSvc.Search(c.Request.Context(), c.Query("q"), strings.TrimSpace(c.Query("category")))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse(products))
}

func (h *handlers) recommendProducts(c *gin.Context) {
	var q recommendQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "invalid recommendation query")
		return
	}
	opts := catalog.RecommendOptions{Age: q.Age, Category: strings.TrimSpace(q.Category)}
	if q.MinPrice != "" || q.MaxPrice != "" {
		var pr domain.PriceRange
		var err error
		if pr.Min, err = parseBound(q.MinPrice); err != nil {
			badRequest(c, "invalid minPrice")
			return
		}
		if pr.Max, err = parseBound(q.MaxPrice); err != nil {
			badRequest(c, "invalid maxPrice")
			return
		}
		opts.PriceRange = &pr
	}

	products, err := h.deps.ProductSvc.Recommend(c.Request.Context(), opts)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse(products))
}

func parseBound(raw string) (*decimal.Decimal, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (h *handlers) createProduct(c *gin.Context) {
	sess := sessionFrom(c)
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid product payload")
		return
	}
	in := catalog.CreateInput{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Category:    req.Category,
		Features:    req.Features,
	}
	if req.Price != nil {
		in.Price = req.Price.String()
	}

	p, err := h.deps.ProductSvc.Create(c.Request.Context(), sess.Role(), in)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}
