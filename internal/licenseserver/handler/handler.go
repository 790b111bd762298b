package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/fekuna/omnipos-desktop/internal/license"
	"github.com/fekuna/omnipos-desktop/internal/licenseserver"
	"github.com/fekuna/omnipos-desktop/pkg/logger"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const serviceName = "license-server"

type LicenseHandler struct {
	uc     licenseserver.UseCase
	logger logger.ZapLogger
}

func NewLicenseHandler(uc licenseserver.UseCase, log logger.ZapLogger) *LicenseHandler {
	return &LicenseHandler{uc: uc, logger: log}
}

type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp int64  `json:"timestamp"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func (h *LicenseHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Service:   serviceName,
		Timestamp: time.Now().UnixMilli(),
	})
}

// Validate always answers 200 once the body parses. Failures surface as
// valid=false so the desktop client shows a message instead of a network
// error.
func (h *LicenseHandler) Validate(c echo.Context) error {
	var req license.ValidationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if strings.TrimSpace(req.Key) == "" || strings.TrimSpace(req.MachineFingerprint) == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "key and machine_fingerprint are required"})
	}

	client := licenseserver.Client{
		IPAddress: c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	}
	resp, err := h.uc.Validate(c.Request().Context(), &req, client)
	if err != nil {
		h.logger.Error("license validation failed", zap.Error(err))
		reason := licenseserver.ReasonInternal
		return c.JSON(http.StatusOK, &license.ValidationResponse{Valid: false, Error: &reason})
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *LicenseHandler) CreateLicense(c echo.Context) error {
	var req licenseserver.CreateLicenseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	resp, err := h.uc.CreateLicense(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, licenseserver.ErrInvalidRequest) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		}
		h.logger.Error("create license failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to create license"})
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *LicenseHandler) ListLicenses(c echo.Context) error {
	licenses, err := h.uc.ListLicenses(c.Request().Context())
	if err != nil {
		h.logger.Error("list licenses failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list licenses"})
	}
	return c.JSON(http.StatusOK, licenses)
}

func (h *LicenseHandler) LicensesByEmail(c echo.Context) error {
	licenses, err := h.uc.LicensesByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		h.logger.Error("list licenses by email failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list licenses"})
	}
	return c.JSON(http.StatusOK, licenses)
}

func (h *LicenseHandler) Revoke(c echo.Context) error {
	return h.setActive(c, h.uc.Revoke)
}

func (h *LicenseHandler) Reactivate(c echo.Context) error {
	return h.setActive(c, h.uc.Reactivate)
}

func (h *LicenseHandler) setActive(c echo.Context, apply func(ctx context.Context, id int64) (bool, error)) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid license id"})
	}
	ok, err := apply(c.Request().Context(), id)
	if err != nil {
		h.logger.Error("update license failed", zap.Int64("license_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to update license"})
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: ok})
}

func (h *LicenseHandler) ValidationHistory(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid license id"})
	}
	logs, err := h.uc.ValidationHistory(c.Request().Context(), id)
	if err != nil {
		h.logger.Error("list validation logs failed", zap.Int64("license_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list validations"})
	}
	return c.JSON(http.StatusOK, logs)
}
