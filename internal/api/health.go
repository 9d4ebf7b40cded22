package api

import "github.com/gin-gonic/gin"

// HealthHandler provides liveness and readiness endpoints.
//
//   - /healthz: basic liveness probe, always 200 while the process runs.
//   - /readyz: readiness probe, depends on the operations source check.
type HealthHandler struct {
	sourceCheck func() error // reports whether the operations source is usable
}

// NewHealthHandler constructs a HealthHandler around a source check.
// Typically the check stats the configured operations file.
func NewHealthHandler(sourceCheck func() error) *HealthHandler {
	return &HealthHandler{sourceCheck: sourceCheck}
}

// Register mounts the health and readiness endpoints on the router.
func (h *HealthHandler) Register(r *gin.Engine) {
	// Liveness probe (just checks that the service is up)
	// @Summary      Liveness probe
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Router       /healthz [get]
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Readiness probe (checks the operations source)
	// @Summary      Readiness probe
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Failure      503  {object}  map[string]string
	// @Router       /readyz [get]
	r.GET("/readyz", func(c *gin.Context) {
		if h.sourceCheck != nil && h.sourceCheck() != nil {
			c.JSON(503, gin.H{"status": "degraded"})
			return
		}
		c.JSON(200, gin.H{"status": "ready"})
	})
}
