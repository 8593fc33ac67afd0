// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/repairdesk/backend/internal/application/usecase/dashboard"
	"github.com/repairdesk/backend/internal/application/usecase/reminder"
	"github.com/repairdesk/backend/internal/domain/valueobject"
	"github.com/repairdesk/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles the summary and reminder endpoints.
type DashboardController struct {
	summaryUseCase  *dashboard.GetSummaryUseCase
	reminderUseCase *reminder.QueueDebtRemindersUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	summaryUseCase *dashboard.GetSummaryUseCase,
	reminderUseCase *reminder.QueueDebtRemindersUseCase,
) *DashboardController {
	return &DashboardController{
		summaryUseCase:  summaryUseCase,
		reminderUseCase: reminderUseCase,
	}
}

// Summary handles GET /dashboard/summary requests. The optional startDate and
// endDate query parameters bound the reporting window inclusively.
func (c *DashboardController) Summary(ctx *gin.Context) {
	window := valueobject.DateWindow{}

	if startDateStr := ctx.Query("startDate"); startDateStr != "" {
		startDate, err := time.Parse("2006-01-02", startDateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid startDate format, expected YYYY-MM-DD",
			})
			return
		}
		window.Start = &startDate
	}
	if endDateStr := ctx.Query("endDate"); endDateStr != "" {
		endDate, err := time.Parse("2006-01-02", endDateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid endDate format, expected YYYY-MM-DD",
			})
			return
		}
		endOfDay := endDate.Add(24*time.Hour - time.Nanosecond)
		window.End = &endOfDay
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), dashboard.GetSummaryInput{Window: window})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}

// QueueReminders handles POST /reminders/debt requests. It enqueues one
// reminder email per indebted customer with an address on file.
func (c *DashboardController) QueueReminders(ctx *gin.Context) {
	output, err := c.reminderUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to queue reminders",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.QueueRemindersResponse{
		Queued:  output.Queued,
		Skipped: output.Skipped,
	})
}
