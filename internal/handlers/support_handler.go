package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/lunaroak/driftfeed/backend/internal/models"
	"github.com/lunaroak/driftfeed/backend/internal/services"
)

// SupportHandler handles support tickets and moderation reports
type SupportHandler struct {
	supportService *services.SupportService
}

// NewSupportHandler creates a new SupportHandler
func NewSupportHandler(supportService *services.SupportService) *SupportHandler {
	return &SupportHandler{supportService: supportService}
}

// RegisterSupportRoutes registers support and report routes
func (h *SupportHandler) RegisterSupportRoutes(g *echo.Group) {
	g.POST("/support/tickets", h.CreateTicket)
	g.GET("/support/tickets", h.ListTickets)
	g.GET("/support/tickets/:id", h.GetTicket)
	g.POST("/reports", h.FileReport)
}

// CreateTicket opens a support ticket
func (h *SupportHandler) CreateTicket(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateTicketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ticket, err := h.supportService.CreateTicket(currentUserID, req)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, ticket)
}

// ListTickets lists the user's own tickets, newest first
func (h *SupportHandler) ListTickets(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	tickets, err := h.supportService.ListTickets(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"tickets": tickets}})
}

// GetTicket returns one of the user's own tickets
func (h *SupportHandler) GetTicket(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	ticketID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid ticket ID")
	}

	ticket, err := h.supportService.GetTicket(uint(ticketID), currentUserID)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, ticket)
}

// FileReport files a moderation report against content or a user
func (h *SupportHandler) FileReport(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	report, err := h.supportService.FileReport(currentUserID, req)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, report)
}
