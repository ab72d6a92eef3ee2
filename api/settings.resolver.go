package api

import (
	"fmt"
	"io"

	"papertrade/internal/domain"
	"papertrade/internal/logger"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) getSettings(c *gin.Context) {
	settings, err := m.Store.LoadSettings()
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	if settings == nil {
		defaults := domain.DefaultSettings()
		settings = &defaults
	}
	c.JSON(200, settings)
}

func (m ApiHandler) updateSettings(c *gin.Context) {
	var settings domain.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid request: %w", err), c, 400)
		return
	}

	// a failed save is non-fatal; the session just loses the preference
	// on restart
	if err := m.Store.SaveSettings(settings); err != nil {
		logger.FromContext(c.Request.Context()).Errorf("failed to save settings: %v", err)
	}
	c.JSON(200, settings)
}

func (m ApiHandler) exportData(c *gin.Context) {
	blob, err := m.Store.ExportAll()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="papertrade-backup.json"`)
	c.Data(200, "application/json", blob)
}

func (m ApiHandler) importData(c *gin.Context) {
	blob, err := io.ReadAll(c.Request.Body)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	if err := m.Store.ImportAll(blob); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	// pick the imported state up into the live session
	ctx := c.Request.Context()
	if err := m.PortfolioService.Reload(ctx); err != nil {
		returnErrorJson(err, c)
		return
	}
	if err := m.WatchlistService.Reload(ctx); err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, map[string]string{"message": "ok"})
}
