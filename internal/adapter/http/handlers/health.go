package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"tasktracker/internal/adapter/http/middleware"
)

const (
	StatusOk        = "ok"
	StatusDown      = "down"
	healthDBTimeout = 2 * time.Second
	healthTimeFmt   = "2006-01-02 15:04:05"
)

type HealthBasic struct {
	AppName           string `json:"appName"`
	AppVersion        string `json:"appVersion"`
	CurrentSystemTime string `json:"currentSystemTime"`
	Message           string `json:"message"`
}

type HealthServices struct {
	Database string `json:"database"`
	Driver   string `json:"driver"`
}

type HealthAdvanced struct {
	AppName           string         `json:"appName"`
	AppVersion        string         `json:"appVersion"`
	CurrentSystemTime string         `json:"currentSystemTime"`
	Language          string         `json:"language"`
	Status            HealthServices `json:"status"`
}

type HealthHandler struct {
	db         *sqlx.DB
	appName    string
	appVersion string
}

func NewHealthHandler(db *sqlx.DB, appName, appVersion string) *HealthHandler {
	return &HealthHandler{db: db, appName: appName, appVersion: appVersion}
}

func (h *HealthHandler) CheckHealth(c *gin.Context) {
	statusCode := http.StatusOK
	message := StatusOk

	if !h.checkConnectionToDatabase(c.Request.Context()) {
		statusCode = http.StatusServiceUnavailable
		message = StatusDown
	}

	c.JSON(statusCode, HealthBasic{
		AppName:           h.appName,
		AppVersion:        h.version(),
		CurrentSystemTime: time.Now().UTC().Format(healthTimeFmt),
		Message:           message,
	})
}

func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	databaseStatus := StatusDown
	if h.checkConnectionToDatabase(c.Request.Context()) {
		databaseStatus = StatusOk
	}

	driver := ""
	if h.db != nil {
		driver = h.db.DriverName()
	}

	c.JSON(http.StatusOK, HealthAdvanced{
		AppName:           h.appName,
		AppVersion:        h.version(),
		CurrentSystemTime: time.Now().UTC().Format(healthTimeFmt),
		Language:          middleware.GetLang(c),
		Status: HealthServices{
			Database: databaseStatus,
			Driver:   driver,
		},
	})
}

func (h *HealthHandler) checkConnectionToDatabase(ctx context.Context) bool {
	if h.db == nil {
		return false
	}
	timeoutCtx, cancel := context.WithTimeout(ctx, healthDBTimeout)
	defer cancel()
	return h.db.PingContext(timeoutCtx) == nil
}

func (h *HealthHandler) version() string {
	if h.appVersion == "" {
		return "dev"
	}
	return h.appVersion
}
