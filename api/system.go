package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (a *API) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "E-commerce backend is running"})
}

func (a *API) seed(c *gin.Context) {
	if a.Seeder == nil {
		a.unavailable(c)
		return
	}
	if err := a.Seeder.Seed(c.Request.Context()); err != nil {
		a.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type diagReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// diagnostics reports store connectivity without failing the request
// itself; every outcome is a 200 with the state spelled out.
func (a *API) diagnostics(c *gin.Context) {
	report := diagReport{
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      envStatus(a.Env.DatabaseURLSet),
		DatabaseName:     envStatus(a.Env.DatabaseNameSet),
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}
	if a.Diag != nil {
		ctx := c.Request.Context()
		if err := a.Diag.Ping(ctx); err != nil {
			report.Database = "available but unreachable"
		} else if names, err := a.Diag.CollectionNames(ctx); err != nil {
			report.Database = "connected but listing failed"
			report.ConnectionStatus = "connected"
		} else {
			if len(names) > 10 {
				names = names[:10]
			}
			report.Database = "connected"
			report.ConnectionStatus = "connected"
			report.Collections = names
		}
	}
	c.JSON(http.StatusOK, report)
}

func envStatus(set bool) string {
	if set {
		return "set"
	}
	return "not set"
}
