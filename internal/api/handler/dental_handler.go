package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/batoolShene/DentalDiagnose/internal/api/metrics"
	"github.com/batoolShene/DentalDiagnose/internal/core/domain"
	"github.com/batoolShene/DentalDiagnose/internal/core/ports"
)

type DentalHandler struct {
	uploads    UploadStore
	classifier ConditionClassifier
	plog       ports.ProcessingLog
	log        zerolog.Logger
}

func NewDentalHandler(uploads UploadStore, classifier ConditionClassifier, plog ports.ProcessingLog, log zerolog.Logger) *DentalHandler {
	return &DentalHandler{uploads: uploads, classifier: classifier, plog: plog, log: log}
}

type analyzeResponse struct {
	Message string                    `json:"message"`
	Image   string                    `json:"image"`
	Results []domain.ConditionFinding `json:"results"`
}

// Analyze runs the multi-label condition classifier over the uploaded image
// and returns the findings plus an unmodified copy of the image.
//
// @Summary      Analyze dental conditions
// @Tags         dental
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        image  formData  file  true  "Dental image"
// @Success      200    {object}  analyzeResponse
// @Failure      400    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /api/dental/analyze [post]
func (h *DentalHandler) Analyze(c echo.Context) error {
	start := time.Now()

	inputPath, err := saveImageUpload(c, h.uploads)
	if err != nil {
		return err
	}

	outPath, findings, err := h.classifier.Analyze(inputPath, h.uploads.Dir())
	if err != nil {
		metrics.ProcessingErrorsTotal.WithLabelValues("analyze").Inc()
		return err
	}

	encoded, err := encodeImageBase64(outPath)
	if err != nil {
		metrics.ProcessingErrorsTotal.WithLabelValues("analyze").Inc()
		return err
	}

	appendProcessingLog(c, h.plog, h.log, "analyze", inputPath, outPath)
	metrics.ImagesProcessedTotal.WithLabelValues("analyze").Inc()
	metrics.DetectionsTotal.WithLabelValues("condition").Add(float64(len(findings)))
	metrics.ProcessingDuration.WithLabelValues("analyze").Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, analyzeResponse{
		Message: "Analysis completed",
		Image:   encoded,
		Results: findings,
	})
}
