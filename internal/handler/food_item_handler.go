package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"foodmgmt/internal/export"
	"foodmgmt/internal/usecase"
)

// /fooditems のAPI（価格参照とxlsxエクスポート込み）
type FoodItemHandler struct {
	uc *usecase.FoodItemUsecase
}

// DI
func NewFoodItemHandler(uc *usecase.FoodItemUsecase) *FoodItemHandler {
	return &FoodItemHandler{uc: uc}
}

func (h *FoodItemHandler) RegisterRoutes(public *echo.Group, protected *echo.Group) {
	public.GET("/fooditems", h.list)
	public.GET("/fooditems/export", h.export)
	public.GET("/fooditems/:id", h.detail)
	public.GET("/api/fooditems/price/:id", h.price)
	protected.POST("/fooditems", h.create)
	protected.PUT("/fooditems/:id", h.update)
	protected.DELETE("/fooditems/:id", h.delete)
}

func (h *FoodItemHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FoodItemHandler) detail(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// 現在価格だけ返す
func (h *FoodItemHandler) price(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	price, err := h.uc.GetPrice(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]decimal.Decimal{"price": price})
}

func (h *FoodItemHandler) export(c echo.Context) error {
	items, err := h.uc.List(c.Request().Context(), "")
	if err != nil {
		return writeError(c, err)
	}

	buf, err := export.FoodItems(items)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "export failed"})
	}

	filename := fmt.Sprintf("FoodItems-%s.xlsx", time.Now().Format("20060102150405"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

func (h *FoodItemHandler) create(c echo.Context) error {
	var in usecase.FoodItemInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *FoodItemHandler) update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var in usecase.FoodItemInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.Update(c.Request().Context(), id, in); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *FoodItemHandler) delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
