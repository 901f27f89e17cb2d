package handler

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/batoolShene/DentalDiagnose/internal/core/domain"
	"github.com/batoolShene/DentalDiagnose/internal/core/ports"
)

const logAppendTimeout = 2 * time.Second

// saveImageUpload pulls the multipart "image" field and stores it under a
// unique name, returning the stored path.
func saveImageUpload(c echo.Context, uploads UploadStore) (string, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "No image provided")
	}
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	_, path, err := uploads.Save(src, fh.Filename)
	if err != nil {
		return "", err
	}
	return path, nil
}

// encodeImageBase64 reads the artifact and returns its base64 encoding for
// embedding in the JSON response.
func encodeImageBase64(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: read artifact: %v", domain.ErrProcessing, err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// appendProcessingLog records the operation best-effort; failures are logged
// and never fail the request. A short detached timeout keeps a slow store
// from holding the response.
func appendProcessingLog(c echo.Context, plog ports.ProcessingLog, log zerolog.Logger, action, imagePath, resultPath string) {
	email, _ := c.Get("email").(string)
	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request().Context()), logAppendTimeout)
	defer cancel()

	entry := domain.ProcessingEntry{
		UserEmail:  email,
		Action:     action,
		Timestamp:  time.Now().UTC(),
		ImagePath:  imagePath,
		ResultPath: resultPath,
	}
	if err := plog.Append(ctx, entry); err != nil {
		log.Warn().Err(err).Str("action", action).Msg("failed to append processing log")
	}
}
