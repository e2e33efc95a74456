package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/moedinha/moedinha_backend/internal/core/ports/services"
	"github.com/moedinha/moedinha_backend/internal/dto"
	"github.com/moedinha/moedinha_backend/internal/middleware"
)

type calendarHandler struct {
	calendarService portssvc.CalendarSvc
	invoiceService  portssvc.InvoiceSvc
}

// registerCalendarRoutes registers the calendar view and the card invoice routes.
func registerCalendarRoutes(rg *gin.RouterGroup, calendarService portssvc.CalendarSvc, invoiceService portssvc.InvoiceSvc) {
	h := &calendarHandler{calendarService: calendarService, invoiceService: invoiceService}

	rg.GET("/calendar", h.getCalendar)

	accounts := rg.Group("/accounts/:id")
	{
		accounts.GET("/invoice", h.getInvoice)
		accounts.GET("/invoices", h.listInvoices)
	}
}

// getCalendar godoc
// @Summary Get the financial calendar of a month
// @Description Realized transactions and recurring projections from today on, grouped by day
// @Tags calendar
// @Produce  json
// @Param   year query int false "Year, defaults to the current one"
// @Param   month query int false "Month 1-12, defaults to the current one"
// @Success 200 {object} dto.CalendarResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 500 {object} map[string]string "Failed to build calendar"
// @Security BearerAuth
// @Router /calendar [get]
func (h *calendarHandler) getCalendar(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	var q dto.CalendarQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, logger, err)
		return
	}

	cal, err := h.calendarService.GetMonthFinancialEvents(c.Request.Context(), scope, q.Year, q.Month)
	if err != nil {
		respondError(c, logger, err, "Failed to build calendar")
		return
	}
	c.JSON(http.StatusOK, dto.ToCalendarResponse(cal))
}

// getInvoice godoc
// @Summary Get a credit card invoice
// @Tags invoices
// @Produce  json
// @Param   id path string true "Account ID"
// @Param   year query int false "Statement year, defaults to the current one"
// @Param   month query int false "Statement month 1-12, defaults to the current one"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Account has no invoice cycle or invalid query"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to compute invoice"
// @Security BearerAuth
// @Router /accounts/{id}/invoice [get]
func (h *calendarHandler) getInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	var q dto.InvoiceQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, logger, err)
		return
	}

	inv, err := h.invoiceService.GetInvoiceData(c.Request.Context(), scope, c.Param("id"), q.Year, q.Month)
	if err != nil {
		respondError(c, logger, err, "Failed to compute invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(inv))
}

// listInvoices godoc
// @Summary List available invoices
// @Description Statement months with transactions, newest first, always including the current one
// @Tags invoices
// @Produce  json
// @Param   id path string true "Account ID"
// @Success 200 {object} dto.AvailableInvoicesResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to list invoices"
// @Security BearerAuth
// @Router /accounts/{id}/invoices [get]
func (h *calendarHandler) listInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	refs, err := h.invoiceService.GetAvailableInvoices(c.Request.Context(), scope, c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to list invoices")
		return
	}
	c.JSON(http.StatusOK, dto.AvailableInvoicesResponse{Invoices: refs})
}
