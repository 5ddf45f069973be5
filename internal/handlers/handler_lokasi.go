package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/presensi-app/presensi-backend/internal/apperrors"
	"github.com/presensi-app/presensi-backend/internal/core/domain"
	portssvc "github.com/presensi-app/presensi-backend/internal/core/ports/services"
	"github.com/presensi-app/presensi-backend/internal/dto"
	"github.com/presensi-app/presensi-backend/internal/middleware"
)

// lokasiHandler handles the authorized-location admin endpoints.
type lokasiHandler struct {
	locationService portssvc.LocationSvcFacade
	userService     portssvc.UserReaderSvc
}

func newLokasiHandler(ls portssvc.LocationSvcFacade, us portssvc.UserReaderSvc) *lokasiHandler {
	return &lokasiHandler{locationService: ls, userService: us}
}

// RegisterLokasiRoutes registers the lokasi-kantor admin routes.
func RegisterLokasiRoutes(rg *gin.RouterGroup, locationService portssvc.LocationSvcFacade, userService portssvc.UserReaderSvc) {
	h := newLokasiHandler(locationService, userService)

	lokasi := rg.Group("/lokasi-kantor")
	{
		lokasi.GET("", h.listLocations)
		lokasi.POST("", h.createLocation)
		lokasi.GET("/:id", h.getLocation)
		lokasi.PUT("/:id", h.updateLocation)
		lokasi.DELETE("/:id", h.deactivateLocation)
	}
}

// requireAdmin resolves the authenticated user and checks the admin role.
// Returns the user ID when authorized; writes the response otherwise.
func (h *lokasiHandler) requireAdmin(c *gin.Context) (string, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("unauthorized"))
		return "", false
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to resolve requesting user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Fail("terjadi kesalahan pada server"))
		return "", false
	}
	if user.Role != domain.RoleAdmin {
		c.JSON(http.StatusForbidden, dto.Fail("hanya admin yang dapat mengubah lokasi"))
		return "", false
	}
	return userID, true
}

// createLocation godoc
// @Summary Create an authorized location
// @Tags lokasi-kantor
// @Accept json
// @Produce json
// @Param location body dto.CreateLocationRequest true "Location details"
// @Success 201 {object} dto.Response
// @Security BearerAuth
// @Router /lokasi-kantor [post]
func (h *lokasiHandler) createLocation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := h.requireAdmin(c)
	if !ok {
		return
	}

	var req dto.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind location request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Fail("format permintaan tidak valid"))
		return
	}

	location, err := h.locationService.CreateLocation(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
			return
		}
		logger.Error("Failed to create location", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Fail("gagal menyimpan lokasi"))
		return
	}

	c.JSON(http.StatusCreated, dto.OK(dto.ToLocationResponse(location)))
}

// listLocations godoc
// @Summary List authorized locations
// @Tags lokasi-kantor
// @Produce json
// @Success 200 {object} dto.Response
// @Security BearerAuth
// @Router /lokasi-kantor [get]
func (h *lokasiHandler) listLocations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	locations, err := h.locationService.ListLocations(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list locations", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Fail("gagal mengambil daftar lokasi"))
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToListLocationResponse(locations)))
}

// getLocation godoc
// @Summary Get one authorized location
// @Tags lokasi-kantor
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} dto.Response
// @Security BearerAuth
// @Router /lokasi-kantor/{id} [get]
func (h *lokasiHandler) getLocation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	location, err := h.locationService.GetLocationByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.Fail("lokasi tidak ditemukan"))
			return
		}
		logger.Error("Failed to get location", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Fail("gagal mengambil lokasi"))
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToLocationResponse(location)))
}

// updateLocation godoc
// @Summary Update an authorized location
// @Tags lokasi-kantor
// @Accept json
// @Produce json
// @Param id path string true "Location ID"
// @Param location body dto.UpdateLocationRequest true "Fields to update"
// @Success 200 {object} dto.Response
// @Security BearerAuth
// @Router /lokasi-kantor/{id} [put]
func (h *lokasiHandler) updateLocation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := h.requireAdmin(c)
	if !ok {
		return
	}

	var req dto.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind location update", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Fail("format permintaan tidak valid"))
		return
	}

	location, err := h.locationService.UpdateLocation(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.Fail("lokasi tidak ditemukan"))
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
		default:
			logger.Error("Failed to update location", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.Fail("gagal memperbarui lokasi"))
		}
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToLocationResponse(location)))
}

// deactivateLocation godoc
// @Summary Soft-delete an authorized location
// @Tags lokasi-kantor
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} dto.Response
// @Security BearerAuth
// @Router /lokasi-kantor/{id} [delete]
func (h *lokasiHandler) deactivateLocation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := h.requireAdmin(c)
	if !ok {
		return
	}

	if err := h.locationService.DeactivateLocation(c.Request.Context(), c.Param("id"), userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.Fail("lokasi tidak ditemukan"))
			return
		}
		logger.Error("Failed to deactivate location", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Fail("gagal menonaktifkan lokasi"))
		return
	}
	c.JSON(http.StatusOK, dto.OKMessage("lokasi dinonaktifkan", nil))
}
