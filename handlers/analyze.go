package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"crisisvision/llm"
	"crisisvision/pipeline"
	"crisisvision/types"
)

// Analyze runs the full two-stage pipeline and returns the merged result.
// Failures come back as a single structured error naming the stage; backend
// rejections keep the backend's own status code.
func Analyze(c *gin.Context, ctrl *pipeline.Controller) {
	req, category, ok := bindRequest(c)
	if !ok {
		return
	}

	analysisID := uuid.NewString()
	result, err := ctrl.Analyze(c.Request.Context(), analysisID, req, category)
	if err != nil {
		stage := "pipeline"
		var stageErr *pipeline.StageError
		if errors.As(err, &stageErr) {
			stage = stageErr.Stage
		}

		status := http.StatusInternalServerError
		var backendErr *llm.BackendError
		if errors.As(err, &backendErr) && backendErr.Status > 0 {
			status = backendErr.Status
		}

		c.JSON(status, gin.H{"stage": stage, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// TestMode returns the raw intelligence bundle without invoking inference.
func TestMode(c *gin.Context, ctrl *pipeline.Controller) {
	req, category, ok := bindRequest(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, ctrl.GatherOnly(c.Request.Context(), req, category))
}

func bindRequest(c *gin.Context) (types.AnalysisRequest, types.Category, bool) {
	var req types.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return req, types.None, false
	}
	if req.EmergencyType == "" {
		req.EmergencyType = string(types.None)
	}
	category, err := types.ParseCategory(req.EmergencyType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return req, types.None, false
	}
	return req, category, true
}
