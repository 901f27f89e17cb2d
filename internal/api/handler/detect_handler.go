package handler

import (
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/batoolShene/DentalDiagnose/internal/api/metrics"
	"github.com/batoolShene/DentalDiagnose/internal/core/ports"
)

type DetectHandler struct {
	uploads  UploadStore
	pipeline ImagePipeline
	xray     XrayPredictor
	plog     ports.ProcessingLog
	log      zerolog.Logger
}

func NewDetectHandler(uploads UploadStore, pipeline ImagePipeline, xray XrayPredictor, plog ports.ProcessingLog, log zerolog.Logger) *DetectHandler {
	return &DetectHandler{uploads: uploads, pipeline: pipeline, xray: xray, plog: plog, log: log}
}

type detectResponse struct {
	Message string `json:"message"`
	Image   string `json:"image"`
	Results any    `json:"results"`
}

// Cavities runs the cavity detector and returns the annotated image.
//
// @Summary      Detect cavities
// @Tags         detect
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        image  formData  file  true  "X-ray image"
// @Success      200    {object}  detectResponse
// @Failure      400    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /api/detect/cavities [post]
func (h *DetectHandler) Cavities(c echo.Context) error {
	start := time.Now()

	inputPath, err := saveImageUpload(c, h.uploads)
	if err != nil {
		return err
	}

	outPath, result, err := h.pipeline.DetectCavities(inputPath, h.uploads.Dir())
	if err != nil {
		metrics.ProcessingErrorsTotal.WithLabelValues("cavities").Inc()
		return err
	}

	encoded, err := encodeImageBase64(outPath)
	if err != nil {
		metrics.ProcessingErrorsTotal.WithLabelValues("cavities").Inc()
		return err
	}

	appendProcessingLog(c, h.plog, h.log, "cavities", inputPath, outPath)
	metrics.ImagesProcessedTotal.WithLabelValues("cavities").Inc()
	metrics.DetectionsTotal.WithLabelValues("cavity").Add(float64(result.Count))
	metrics.ProcessingDuration.WithLabelValues("cavities").Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, detectResponse{
		Message: "Cavity detection completed",
		Image:   encoded,
		Results: result,
	})
}

// MissingTeeth runs the missing-teeth detector and returns the annotated image.
//
// @Summary      Detect missing teeth
// @Tags         detect
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        image  formData  file  true  "X-ray image"
// @Success      200    {object}  detectResponse
// @Failure      400    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /api/detect/missing-teeth [post]
func (h *DetectHandler) MissingTeeth(c echo.Context) error {
	start := time.Now()

	inputPath, err := saveImageUpload(c, h.uploads)
	if err != nil {
		return err
	}

	outPath, result, err := h.pipeline.DetectMissingTeeth(inputPath, h.uploads.Dir())
	if err != nil {
		metrics.ProcessingErrorsTotal.WithLabelValues("missing_teeth").Inc()
		return err
	}

	encoded, err := encodeImageBase64(outPath)
	if err != nil {
		metrics.ProcessingErrorsTotal.WithLabelValues("missing_teeth").Inc()
		return err
	}

	appendProcessingLog(c, h.plog, h.log, "missing_teeth", inputPath, outPath)
	metrics.ImagesProcessedTotal.WithLabelValues("missing_teeth").Inc()
	metrics.DetectionsTotal.WithLabelValues("missing_tooth").Add(float64(result.Count))
	metrics.ProcessingDuration.WithLabelValues("missing_teeth").Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, detectResponse{
		Message: "Missing teeth detection completed",
		Image:   encoded,
		Results: result,
	})
}

// Xray classifies the image with the single-label X-ray model. The image is
// classified directly from the request body; nothing is written to disk.
//
// @Summary      Classify an X-ray image
// @Tags         detect
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        image  formData  file  true  "X-ray image"
// @Success      200    {object}  map[string]interface{}
// @Failure      400    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /api/detect/xray [post]
func (h *DetectHandler) Xray(c echo.Context) error {
	start := time.Now()

	fh, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "No image provided")
	}
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return err
	}

	prediction, err := h.xray.PredictBytes(data)
	if err != nil {
		metrics.ProcessingErrorsTotal.WithLabelValues("xray").Inc()
		return err
	}

	appendProcessingLog(c, h.plog, h.log, "xray", fh.Filename, "")
	metrics.ImagesProcessedTotal.WithLabelValues("xray").Inc()
	metrics.ProcessingDuration.WithLabelValues("xray").Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, map[string]any{"result": prediction})
}
