package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type ImageHandler struct {
	uploads UploadStore
	log     zerolog.Logger
}

func NewImageHandler(uploads UploadStore, log zerolog.Logger) *ImageHandler {
	return &ImageHandler{uploads: uploads, log: log}
}

type uploadResponse struct {
	Message  string `json:"message"`
	Filename string `json:"filename"`
}

// Upload stores a raw image under its original (sanitized) name.
//
// @Summary      Upload an image
// @Tags         images
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        image  formData  file  true  "Image file"
// @Success      200    {object}  uploadResponse
// @Failure      400    {object}  map[string]string
// @Router       /api/images/upload [post]
func (h *ImageHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "No image provided")
	}
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	name, path, err := h.uploads.SaveRaw(src, fh.Filename)
	if err != nil {
		return err
	}
	h.log.Info().Str("filename", name).Str("path", path).Msg("image uploaded")

	return c.JSON(http.StatusOK, uploadResponse{
		Message:  "Image uploaded successfully",
		Filename: name,
	})
}
