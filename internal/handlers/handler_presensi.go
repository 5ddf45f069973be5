package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/presensi-app/presensi-backend/internal/apperrors"
	"github.com/presensi-app/presensi-backend/internal/core/domain"
	portssvc "github.com/presensi-app/presensi-backend/internal/core/ports/services"
	"github.com/presensi-app/presensi-backend/internal/dto"
	"github.com/presensi-app/presensi-backend/internal/middleware"
)

// historyLimit is the number of past records GET /presensi returns.
const historyLimit = 10

// presensiHandler handles the attendance endpoints used by the mobile client.
type presensiHandler struct {
	attendanceService portssvc.AttendanceSvcFacade
}

func newPresensiHandler(as portssvc.AttendanceSvcFacade) *presensiHandler {
	return &presensiHandler{attendanceService: as}
}

// RegisterPresensiRoutes registers the attendance routes.
func RegisterPresensiRoutes(rg *gin.RouterGroup, attendanceService portssvc.AttendanceSvcFacade) {
	h := newPresensiHandler(attendanceService)

	presensi := rg.Group("/presensi")
	{
		presensi.GET("", h.getPresensi)
		presensi.POST("", h.recordPresensi)
	}
}

// getPresensi godoc
// @Summary Get daily attendance
// @Description Returns the record for the given date (default today) plus the last 10 history rows.
// @Tags presensi
// @Produce json
// @Param user_id query string true "User ID"
// @Param tanggal query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.Response
// @Security BearerAuth
// @Router /presensi [get]
func (h *presensiHandler) getPresensi(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, dto.Fail("user_id wajib diisi"))
		return
	}

	date := time.Now()
	if tanggal := c.Query("tanggal"); tanggal != "" {
		parsed, err := time.Parse("2006-01-02", tanggal)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Fail("format tanggal tidak valid"))
			return
		}
		date = parsed
	}

	record, history, err := h.attendanceService.GetDailyRecord(c.Request.Context(), userID, date, historyLimit)
	if err != nil {
		logger.Error("Failed to get daily record", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Fail("gagal mengambil data presensi"))
		return
	}

	resp := dto.AttendanceDayResponse{History: dto.ToAttendanceHistoryResponse(history)}
	if record != nil {
		today := dto.ToAttendanceRecordResponse(record)
		resp.Today = &today
	}
	c.JSON(http.StatusOK, dto.OK(resp))
}

// recordPresensi godoc
// @Summary Record a check-in or check-out
// @Description Validates the reported coordinate against the active geofences and applies the daily state transition. Domain rejections are reported with success=false and HTTP 200 for client compatibility.
// @Tags presensi
// @Accept json
// @Produce json
// @Param presensi body dto.RecordAttendanceRequest true "Attendance event"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 500 {object} dto.Response
// @Security BearerAuth
// @Router /presensi [post]
func (h *presensiHandler) recordPresensi(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind presensi request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Fail("format permintaan tidak valid"))
		return
	}

	now := time.Now()
	record, match, err := h.attendanceService.RecordAttendance(c.Request.Context(), req, now)
	if err != nil {
		h.writeRecordError(c, err)
		return
	}

	data := dto.RecordAttendanceData{
		Lokasi:     match.LocationName,
		JarakMeter: match.DistanceMeters,
		Waktu:      dto.FormatWaktu(now),
	}
	message := "Presensi keluar berhasil"
	if req.JenisPresensi == string(domain.DirectionCheckIn) {
		data.Status = string(record.Status)
		message = "Presensi masuk berhasil"
	}

	c.JSON(http.StatusOK, dto.OKMessage(message, data))
}

// writeRecordError maps pipeline failures onto the envelope. Domain
// rejections keep HTTP 200 with success=false; only infrastructure failures
// surface as 5xx.
func (h *presensiHandler) writeRecordError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	switch {
	case errors.Is(err, apperrors.ErrInvalidCoordinate):
		c.JSON(http.StatusOK, dto.Fail("koordinat tidak valid"))
	case errors.Is(err, apperrors.ErrOutsideAuthorizedArea):
		c.JSON(http.StatusOK, dto.Fail("Anda berada di luar area presensi yang diizinkan"))
	case errors.Is(err, apperrors.ErrAlreadyCheckedIn):
		c.JSON(http.StatusOK, dto.Fail("Anda sudah melakukan presensi masuk hari ini"))
	case errors.Is(err, apperrors.ErrAlreadyCheckedOut):
		c.JSON(http.StatusOK, dto.Fail("Anda sudah melakukan presensi keluar hari ini"))
	case errors.Is(err, apperrors.ErrNoCheckInFound):
		c.JSON(http.StatusOK, dto.Fail("Belum ada presensi masuk hari ini"))
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusOK, dto.Fail(err.Error()))
	default:
		logger.Error("Failed to record attendance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Fail("terjadi kesalahan pada server"))
	}
}
