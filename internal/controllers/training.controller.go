package controllers

import (
	"net/http"
	"strconv"

	"calorify/internal/ml"
	"calorify/internal/models"
	"calorify/internal/repository"
	"calorify/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TrainingController struct {
	jobRepo     repository.TrainingJobRepository
	trainedRepo repository.TrainedModelRepository
	worker      services.JobSubmitter
}

func NewTrainingController(
	jobRepo repository.TrainingJobRepository,
	trainedRepo repository.TrainedModelRepository,
	worker services.JobSubmitter,
) *TrainingController {
	return &TrainingController{
		jobRepo:     jobRepo,
		trainedRepo: trainedRepo,
		worker:      worker,
	}
}

// TrainModel godoc
// @Summary Trigger a training run
// @Description Queue an asynchronous training run for one model kind
// @Tags training
// @Accept json
// @Produce json
// @Param request body models.TrainModelRequest true "Model kind to train"
// @Success 202 {object} map[string]interface{} "Training job queued"
// @Failure 400 {object} map[string]interface{} "Invalid request or unknown model kind"
// @Failure 500 {object} map[string]interface{} "Failed to queue training job"
// @Security BearerAuth
// @Router /training [post]
func (tc *TrainingController) TrainModel(c *gin.Context) {
	var req models.TrainModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	// Rejecting an unknown kind here keeps bad requests from ever reaching
	// the queue; the trainer constructor enforces the same check.
	if !ml.Supported(req.Model) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Unknown model kind",
			"error":   "model must be one of: linear_regression, random_forest, xgboost",
		})
		return
	}

	job := &models.TrainingJob{
		ID:        uuid.New().String(),
		ModelName: req.Model,
		Status:    models.JobStatusPending,
	}
	if err := tc.jobRepo.SaveJob(job); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create training job",
			"error":   err.Error(),
		})
		return
	}

	if err := tc.worker.SubmitJob(models.TrainingJobRequest{
		JobID:     job.ID,
		ModelName: job.ModelName,
	}); err != nil {
		msg := err.Error()
		if updateErr := tc.jobRepo.UpdateJobStatus(job.ID, models.JobStatusFailed, &msg); updateErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to queue training job",
				"error":   updateErr.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to queue training job",
			"error":   msg,
		})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"status":  "success",
		"message": "Training job queued successfully",
		"data": gin.H{
			"job_id":     job.ID,
			"model_name": job.ModelName,
			"job_status": job.Status,
		},
	})
}

// GetJobStatus godoc
// @Summary Get training job status
// @Description Retrieve the current status of a training job by ID
// @Tags training
// @Produce json
// @Param job_id path string true "Job ID"
// @Success 200 {object} map[string]interface{} "Job retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Job not found"
// @Security BearerAuth
// @Router /training/jobs/{job_id} [get]
func (tc *TrainingController) GetJobStatus(c *gin.Context) {
	jobID := c.Param("job_id")

	job, err := tc.jobRepo.GetJobByID(jobID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Training job not found",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   job,
	})
}

// ListRecentJobs godoc
// @Summary List recent training jobs
// @Description Retrieve recent training jobs, newest first
// @Tags training
// @Produce json
// @Param limit query int false "Maximum number of jobs to return" default(20)
// @Success 200 {object} map[string]interface{} "Jobs retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve jobs"
// @Security BearerAuth
// @Router /training/jobs [get]
func (tc *TrainingController) ListRecentJobs(c *gin.Context) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	jobs, err := tc.jobRepo.GetRecentJobs(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve training jobs",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"count":  len(jobs),
		"data":   jobs,
	})
}
