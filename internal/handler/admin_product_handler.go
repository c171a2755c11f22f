package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"
)

// 管理画面の商品管理
type AdminProductHandler struct {
	uc *usecase.ProductUsecase
}

func NewAdminProductHandler(uc *usecase.ProductUsecase) *AdminProductHandler {
	return &AdminProductHandler{uc: uc}
}

type AdminProductRequest struct {
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int64           `json:"stock"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
}

// CRUDは既存クライアントの /api/products 直下のまま、ルート単位でガードを付ける
func (h *AdminProductHandler) RegisterRoutes(g *echo.Group, guards ...echo.MiddlewareFunc) {
	g.POST("/products", h.create, guards...)
	g.PUT("/products/:id", h.update, guards...)
	g.DELETE("/products/:id", h.delete, guards...)
}

func (h *AdminProductHandler) RegisterAdminRoutes(g *echo.Group) {
	g.GET("/products/export", h.exportExcel)
}

func (h *AdminProductHandler) create(c echo.Context) error {
	var req AdminProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	p, err := h.uc.AdminCreateProduct(c.Request().Context(), usecase.AdminProductInput{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
		Image:       req.Image,
		Description: req.Description,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *AdminProductHandler) update(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req AdminProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	err = h.uc.AdminUpdateProduct(c.Request().Context(), id, usecase.AdminProductInput{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
		Image:       req.Image,
		Description: req.Description,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

func (h *AdminProductHandler) delete(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.AdminDeleteProduct(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// 商品一覧をxlsxでダウンロード
func (h *AdminProductHandler) exportExcel(c echo.Context) error {
	products, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to build sheet"})
	}

	header := sheet.AddRow()
	for _, title := range []string{"ID", "Name", "Category", "Price", "Stock", "Image", "Description"} {
		header.AddCell().Value = title
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().Value = strconv.FormatInt(p.ID, 10)
		row.AddCell().Value = p.Name
		row.AddCell().Value = p.Category
		row.AddCell().Value = p.Price.StringFixed(2)
		row.AddCell().Value = strconv.FormatInt(p.Stock, 10)
		row.AddCell().Value = p.Image
		row.AddCell().Value = p.Description
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="products.xlsx"`)
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)
	return file.Write(c.Response())
}
