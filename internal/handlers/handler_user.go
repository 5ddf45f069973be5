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

// userHandler handles user profile requests.
type userHandler struct {
	userService portssvc.UserReaderSvc
}

func newUserHandler(us portssvc.UserReaderSvc) *userHandler {
	return &userHandler{userService: us}
}

// RegisterUserRoutes registers the user profile routes.
func RegisterUserRoutes(rg *gin.RouterGroup, userService portssvc.UserReaderSvc) {
	h := newUserHandler(userService)

	users := rg.Group("/users")
	{
		users.GET("/:userID", h.getUser)
	}
}

// getUser godoc
// @Summary Get a user profile
// @Tags users
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /users/{userID} [get]
func (h *userHandler) getUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	user, err := h.userService.GetUserByID(c.Request.Context(), c.Param("userID"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.Fail("pengguna tidak ditemukan"))
			return
		}
		logger.Error("Failed to get user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Fail("terjadi kesalahan pada server"))
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToUserResponse(user)))
}
