package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/SscSPs/contractor_marketplace/internal/core/ports/services"
	"github.com/SscSPs/contractor_marketplace/internal/dto"
	"github.com/SscSPs/contractor_marketplace/internal/middleware"
	"github.com/SscSPs/contractor_marketplace/internal/utils"
	"github.com/gin-gonic/gin"
)

// jobHandler handles HTTP requests related to jobs and their payment
type jobHandler struct {
	jobService    portssvc.JobSvcFacade
	posthogClient *utils.PosthogClientWrapper
}

// newJobHandler creates a new jobHandler
func newJobHandler(js portssvc.JobSvcFacade, posthogClient *utils.PosthogClientWrapper) *jobHandler {
	return &jobHandler{
		jobService:    js,
		posthogClient: posthogClient,
	}
}

// registerJobRoutes registers routes related to jobs
func registerJobRoutes(rg *gin.RouterGroup, jobService portssvc.JobSvcFacade, posthogClient *utils.PosthogClientWrapper) {
	h := newJobHandler(jobService, posthogClient)

	jobs := rg.Group("/jobs")
	{
		jobs.GET("/unpaid", h.listUnpaidJobs)
		jobs.POST("/:job_id/pay", h.payForJob)
	}
}

// listUnpaidJobs godoc
// @Summary List unpaid jobs
// @Description Lists unpaid jobs on the calling profile's in-progress contracts, each with its contract
// @Tags jobs
// @Produce json
// @Param profile_id header int true "Calling profile ID"
// @Success 200 {array} dto.JobResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list jobs"
// @Router /jobs/unpaid [get]
func (h *jobHandler) listUnpaidJobs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	caller, ok := callerProfile(c)
	if !ok {
		return
	}

	jobs, err := h.jobService.ListUnpaidJobs(c.Request.Context(), caller.ID)
	if err != nil {
		respondError(c, logger, err, "Failed to list unpaid jobs")
		return
	}

	c.JSON(http.StatusOK, dto.ToJobWithContractResponses(jobs))
}

// payForJob godoc
// @Summary Pay for a job
// @Description Moves the job price from the contract client to the contractor and marks the job paid
// @Tags jobs
// @Produce json
// @Param profile_id header int true "Calling profile ID"
// @Param job_id path int true "Job ID"
// @Success 200 {object} dto.JobResponse
// @Failure 400 {object} map[string]string "Invalid job ID or insufficient funds"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller is not the contract client"
// @Failure 404 {object} map[string]string "Job not found or already paid"
// @Failure 500 {object} map[string]string "Failed to pay for job"
// @Router /jobs/{job_id}/pay [post]
func (h *jobHandler) payForJob(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	caller, ok := callerProfile(c)
	if !ok {
		return
	}

	jobID, err := strconv.ParseInt(c.Param("job_id"), 10, 64)
	if err != nil || jobID <= 0 {
		logger.Warn("Invalid job ID in path", slog.String("job_id", c.Param("job_id")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID"})
		return
	}

	logger = logger.With(slog.Int64("job_id", jobID))
	logger.Info("Received request to pay for job")

	job, err := h.jobService.PayForJob(c.Request.Context(), caller.ID, jobID)
	if err != nil {
		respondError(c, logger, err, "Failed to pay for job")
		return
	}

	middleware.PosthogEvent(c, h.posthogClient, "job_paid", map[string]any{
		"job_id":      job.ID,
		"contract_id": job.ContractID,
		"price":       job.Price.String(),
	})

	logger.Info("Job paid", slog.String("price", job.Price.String()))
	c.JSON(http.StatusOK, dto.ToJobResponse(job))
}
