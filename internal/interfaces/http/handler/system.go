package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	systemapp "github.com/pos/backend/internal/application/system"
	"github.com/pos/backend/internal/infrastructure/config"
	"github.com/pos/backend/internal/infrastructure/persistence"
)

// SystemHandler handles settings, audit trail and health endpoints
type SystemHandler struct {
	BaseHandler
	settingService *systemapp.SettingService
	auditService   *systemapp.AuditService
	db             *persistence.Database
	app            config.AppConfig
}

// NewSystemHandler creates a new SystemHandler. The database handle is
// optional; without it the health endpoint skips the database probe.
func NewSystemHandler(settingService *systemapp.SettingService, auditService *systemapp.AuditService, db *persistence.Database, app config.AppConfig) *SystemHandler {
	return &SystemHandler{settingService: settingService, auditService: auditService, db: db, app: app}
}

// Health handles GET /health. It pings the database and reports pool
// statistics so load balancers can pull a degraded instance.
func (h *SystemHandler) Health(c *gin.Context) {
	body := gin.H{
		"status":  "ok",
		"service": h.app.Name,
		"env":     h.app.Env,
	}

	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			body["status"] = "degraded"
			body["database"] = gin.H{"status": "down"}
			c.JSON(http.StatusServiceUnavailable, body)
			return
		}
		dbStatus := gin.H{"status": "up"}
		if stats, err := h.db.Stats(); err == nil {
			dbStatus["open_connections"] = stats.OpenConnections
			dbStatus["in_use"] = stats.InUse
			dbStatus["idle"] = stats.Idle
		}
		body["database"] = dbStatus
	}

	c.JSON(http.StatusOK, body)
}

// GetSetting handles GET /settings/:key
func (h *SystemHandler) GetSetting(c *gin.Context) {
	setting, err := h.settingService.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, setting)
}

// ListSettings handles GET /settings
func (h *SystemHandler) ListSettings(c *gin.Context) {
	settings, err := h.settingService.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, settings)
}

// UpdateSetting handles PUT /settings/:key
func (h *SystemHandler) UpdateSetting(c *gin.Context) {
	var req systemapp.UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	setting, err := h.settingService.Update(c.Request.Context(), c.Param("key"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, setting)
}

// ListAuditLogs handles GET /audit-logs
func (h *SystemHandler) ListAuditLogs(c *gin.Context) {
	var filter systemapp.AuditListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.ValidationError(c, err)
		return
	}

	logs, err := h.auditService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, logs)
}
