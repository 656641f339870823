package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"foodmgmt/internal/usecase"
)

// /dashboard のAPI
type DashboardHandler struct {
	uc *usecase.DashboardUsecase
}

// DI
func NewDashboardHandler(uc *usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

func (h *DashboardHandler) RegisterRoutes(public *echo.Group) {
	public.GET("/dashboard", h.summary)
}

func (h *DashboardHandler) summary(c echo.Context) error {
	out, err := h.uc.Summary(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
