package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/batoolShene/DentalDiagnose/internal/api/metrics"
	"github.com/batoolShene/DentalDiagnose/internal/core/ports"
)

type ProcessHandler struct {
	uploads  UploadStore
	pipeline ImagePipeline
	plog     ports.ProcessingLog
	log      zerolog.Logger
}

func NewProcessHandler(uploads UploadStore, pipeline ImagePipeline, plog ports.ProcessingLog, log zerolog.Logger) *ProcessHandler {
	return &ProcessHandler{uploads: uploads, pipeline: pipeline, plog: plog, log: log}
}

type processResponse struct {
	Message string `json:"message"`
	Image   string `json:"image"`
}

// Enhance applies adaptive contrast enhancement to the uploaded image.
//
// @Summary      Enhance an X-ray image
// @Tags         process
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        image  formData  file  true  "X-ray image"
// @Success      200    {object}  processResponse
// @Failure      400    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /api/process/enhance [post]
func (h *ProcessHandler) Enhance(c echo.Context) error {
	return h.run(c, "enhance", "Image enhanced successfully", h.pipeline.Enhance)
}

// Colorize maps the grayscale image through a false-color palette.
//
// @Summary      Colorize an X-ray image
// @Tags         process
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        image  formData  file  true  "X-ray image"
// @Success      200    {object}  processResponse
// @Failure      400    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /api/process/colorize [post]
func (h *ProcessHandler) Colorize(c echo.Context) error {
	return h.run(c, "colorize", "Image colorized successfully", h.pipeline.Colorize)
}

func (h *ProcessHandler) run(c echo.Context, operation, message string, transform func(inputPath, outputDir string) (string, error)) error {
	start := time.Now()

	inputPath, err := saveImageUpload(c, h.uploads)
	if err != nil {
		return err
	}

	outPath, err := transform(inputPath, h.uploads.Dir())
	if err != nil {
		metrics.ProcessingErrorsTotal.WithLabelValues(operation).Inc()
		return err
	}

	encoded, err := encodeImageBase64(outPath)
	if err != nil {
		metrics.ProcessingErrorsTotal.WithLabelValues(operation).Inc()
		return err
	}

	appendProcessingLog(c, h.plog, h.log, operation, inputPath, outPath)
	metrics.ImagesProcessedTotal.WithLabelValues(operation).Inc()
	metrics.ProcessingDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, processResponse{Message: message, Image: encoded})
}
