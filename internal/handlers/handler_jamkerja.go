package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/presensi-app/presensi-backend/internal/apperrors"
	portssvc "github.com/presensi-app/presensi-backend/internal/core/ports/services"
	"github.com/presensi-app/presensi-backend/internal/dto"
	"github.com/presensi-app/presensi-backend/internal/middleware"
)

// jamKerjaHandler handles the weekday work-schedule admin endpoints.
type jamKerjaHandler struct {
	scheduleService portssvc.ScheduleSvcFacade
}

func newJamKerjaHandler(ss portssvc.ScheduleSvcFacade) *jamKerjaHandler {
	return &jamKerjaHandler{scheduleService: ss}
}

// RegisterJamKerjaRoutes registers the jam-kerja routes.
func RegisterJamKerjaRoutes(rg *gin.RouterGroup, scheduleService portssvc.ScheduleSvcFacade) {
	h := newJamKerjaHandler(scheduleService)

	jamKerja := rg.Group("/jam-kerja")
	{
		jamKerja.GET("", h.listSchedules)
		jamKerja.GET("/:hari", h.getSchedule)
		jamKerja.PUT("/:hari", h.upsertSchedule)
	}
}

// listSchedules godoc
// @Summary List weekday work schedules
// @Tags jam-kerja
// @Produce json
// @Success 200 {object} dto.Response
// @Security BearerAuth
// @Router /jam-kerja [get]
func (h *jamKerjaHandler) listSchedules(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	schedules, err := h.scheduleService.ListSchedules(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list schedules", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Fail("gagal mengambil jam kerja"))
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToListWorkScheduleResponse(schedules)))
}

// getSchedule godoc
// @Summary Get the schedule for one weekday
// @Tags jam-kerja
// @Produce json
// @Param hari path string true "Weekday name (Senin..Minggu)"
// @Success 200 {object} dto.Response
// @Security BearerAuth
// @Router /jam-kerja/{hari} [get]
func (h *jamKerjaHandler) getSchedule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	schedule, err := h.scheduleService.GetScheduleByWeekday(c.Request.Context(), c.Param("hari"))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.Fail("jam kerja belum diatur untuk hari ini"))
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
		default:
			logger.Error("Failed to get schedule", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.Fail("gagal mengambil jam kerja"))
		}
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToWorkScheduleResponse(schedule)))
}

// upsertSchedule godoc
// @Summary Create or replace the schedule for one weekday
// @Tags jam-kerja
// @Accept json
// @Produce json
// @Param hari path string true "Weekday name (Senin..Minggu)"
// @Param schedule body dto.UpsertScheduleRequest true "Schedule"
// @Success 200 {object} dto.Response
// @Security BearerAuth
// @Router /jam-kerja/{hari} [put]
func (h *jamKerjaHandler) upsertSchedule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("unauthorized"))
		return
	}

	var req dto.UpsertScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind schedule request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Fail("format permintaan tidak valid"))
		return
	}

	schedule, err := h.scheduleService.UpsertSchedule(c.Request.Context(), c.Param("hari"), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
			return
		}
		logger.Error("Failed to upsert schedule", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Fail("gagal menyimpan jam kerja"))
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToWorkScheduleResponse(schedule)))
}
