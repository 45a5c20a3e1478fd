package handler

import (
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"wolfstreet/internal/cache"
)

// StatusHandler serves the liveness message and the storage diagnostic.
type StatusHandler struct {
	db    *gorm.DB
	cache *cache.Client
}

// NewStatusHandler creates a new status handler.
func NewStatusHandler(db *gorm.DB, cache *cache.Client) *StatusHandler {
	return &StatusHandler{db: db, cache: cache}
}

// StorageStatus reports connectivity of the backing stores. The endpoint
// always answers 200; problems show up in the fields, not the status code.
type StorageStatus struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	ConnectionStatus string   `json:"connection_status"`
	Tables           []string `json:"tables"`
	Redis            string   `json:"redis"`
	MySQLDSNSet      bool     `json:"mysql_dsn_set"`
	RedisAddrSet     bool     `json:"redis_addr_set"`
}

// Root godoc
// @Summary Liveness message
// @Tags status
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *StatusHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "Wolf Street Backend Running"})
}

// Storage godoc
// @Summary Storage connectivity diagnostic
// @Tags status
// @Produce json
// @Success 200 {object} StorageStatus
// @Router /test [get]
func (h *StatusHandler) Storage(c echo.Context) error {
	ctx := c.Request().Context()

	status := StorageStatus{
		Backend:          "running",
		Database:         "not available",
		ConnectionStatus: "not connected",
		Tables:           []string{},
		Redis:            "not available",
		MySQLDSNSet:      os.Getenv("MYSQL_DSN") != "",
		RedisAddrSet:     os.Getenv("REDIS_ADDR") != "",
	}

	if h.db != nil {
		if sqlDB, err := h.db.DB(); err == nil {
			if err := sqlDB.PingContext(ctx); err == nil {
				status.Database = "connected"
				status.ConnectionStatus = "connected"
				if tables, err := h.db.Migrator().GetTables(); err == nil {
					if len(tables) > 10 {
						tables = tables[:10]
					}
					status.Tables = tables
				}
			} else {
				status.Database = "ping failed: " + err.Error()
			}
		} else {
			status.Database = "error: " + err.Error()
		}
	}

	if err := h.cache.Ping(ctx); err == nil {
		status.Redis = "connected"
	} else {
		status.Redis = "unreachable"
	}

	return c.JSON(http.StatusOK, status)
}
