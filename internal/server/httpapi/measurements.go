package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitprogress/internal/progress"
	"fitprogress/internal/server/services"
)

type measurementRequest struct {
	Date    string             `json:"date" binding:"required"`
	Weight  float64            `json:"weight" binding:"required,gt=0"`
	Height  float64            `json:"height"`
	Metrics map[string]float64 `json:"metrics"`
	Notes   string             `json:"notes"`
}

func (r measurementRequest) input() services.MeasurementInput {
	return services.MeasurementInput{
		Date:    r.Date,
		Weight:  r.Weight,
		Height:  r.Height,
		Metrics: r.Metrics,
		Notes:   r.Notes,
	}
}

// submitMode reads the optional ?mode=create query parameter.
func submitMode(c *gin.Context) services.SubmitMode {
	if c.Query("mode") == string(services.SubmitModeCreate) {
		return services.SubmitModeCreate
	}
	return services.SubmitModeAuto
}

func (h *Handlers) listMeasurements(c *gin.Context) {
	claims := claimsFrom(c)
	ms, err := h.measurements.List(c.Request.Context(), claims.UserID, c.Query("from"), c.Query("to"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMeasurementResponses(ms))
}

func (h *Handlers) submitMeasurement(c *gin.Context) {
	var req measurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	claims := claimsFrom(c)
	m, op, err := h.measurements.Submit(c.Request.Context(), claims.UserID, req.input(), submitMode(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	status := http.StatusCreated
	if op == progress.OpUpdate {
		status = http.StatusOK
	}
	c.JSON(status, toMeasurementResponse(m))
}

func (h *Handlers) getMeasurement(c *gin.Context) {
	claims := claimsFrom(c)
	m, err := h.measurements.Get(c.Request.Context(), claims.UserID, c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMeasurementResponse(m))
}

func (h *Handlers) updateMeasurement(c *gin.Context) {
	var req measurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	claims := claimsFrom(c)
	m, err := h.measurements.Update(c.Request.Context(), claims.UserID, c.Param("id"), req.input())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMeasurementResponse(m))
}

func (h *Handlers) deleteMeasurement(c *gin.Context) {
	claims := claimsFrom(c)
	if err := h.measurements.Delete(c.Request.Context(), claims.UserID, c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
