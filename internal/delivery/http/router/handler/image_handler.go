package handler

import (
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"shopapi/config"
	"shopapi/internal/delivery/http/response"
	"shopapi/internal/domain/entity"
	domainerrors "shopapi/internal/domain/errors"
	"shopapi/internal/usecase"
	"shopapi/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// uploadFieldName is the multipart form field carrying the image file.
const uploadFieldName = "file"

// ImageHandler holds dependencies for product image handlers.
type ImageHandler struct {
	uc            usecase.ImageUsecase
	maxImageBytes int64
	logger        *slog.Logger
}

// NewImageHandler is the constructor for ImageHandler, injected by Fx.
func NewImageHandler(uc usecase.ImageUsecase, cfg *config.Config, logger *slog.Logger) *ImageHandler {
	return &ImageHandler{
		uc:            uc,
		maxImageBytes: cfg.Upload.MaxImageBytes,
		logger:        logger,
	}
}

type imageResponse struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Extension string    `json:"extension"`
	FileName  string    `json:"file_name"`
}

// CreateImage handles the multipart image upload for a product.
func (h *ImageHandler) CreateImage(c echo.Context) error {
	productID, err := uuid.Parse(c.QueryParam("product_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "product_id must be a UUID")
	}

	payload, err := h.readUpload(c)
	if err != nil {
		return errors.WithStack(err)
	}

	image, err := h.uc.CreateImage(c.Request().Context(), &usecase.CreateImageInput{
		ProductID: productID,
		Payload:   payload,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toImageResponse(image), "Image created successfully")
}

// GetImage streams the raw image bytes back as a download.
func (h *ImageHandler) GetImage(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	image, err := h.uc.GetImage(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	contentType := mime.TypeByExtension("." + image.Extension)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, image.FileName()))

	return c.Blob(http.StatusOK, contentType, image.Payload)
}

// GetProductImages streams a zip archive of a page of the product's images.
func (h *ImageHandler) GetProductImages(c echo.Context) error {
	productID, err := parseIDParam(c, "product_id")
	if err != nil {
		return errors.WithStack(err)
	}

	offset, limit, err := parsePagination(c)
	if err != nil {
		return errors.WithStack(err)
	}

	archive, err := h.uc.GetProductImagesArchive(c.Request().Context(), productID, offset, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, productID.String()+".zip"))

	return c.Blob(http.StatusOK, "application/zip", archive)
}

// UpdateImage handles replacing an image's payload with a new upload.
func (h *ImageHandler) UpdateImage(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	payload, err := h.readUpload(c)
	if err != nil {
		return errors.WithStack(err)
	}

	image, err := h.uc.UpdateImage(c.Request().Context(), id, &usecase.UpdateImageInput{Payload: payload})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toImageResponse(image), "Image updated successfully")
}

// DeleteImage handles the image deletion request.
func (h *ImageHandler) DeleteImage(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteImage(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Image deleted successfully")
}

// readUpload reads the multipart file field, enforcing the configured size cap
// before the payload reaches the usecase layer.
func (h *ImageHandler) readUpload(c echo.Context) ([]byte, error) {
	fileHeader, err := c.FormFile(uploadFieldName)
	if err != nil {
		return nil, domainerrors.ErrValidation.WithDetails(
			fmt.Sprintf("missing multipart file field %q", uploadFieldName))
	}
	if fileHeader.Size > h.maxImageBytes {
		return nil, domainerrors.ErrValidation.WithDetails(
			fmt.Sprintf("image exceeds the upload limit of %s", util.FormatBytes(h.maxImageBytes)))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	// Size in the part header is client-supplied; the limited reader is the
	// actual enforcement.
	payload, err := io.ReadAll(io.LimitReader(file, h.maxImageBytes+1))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read uploaded file")
	}
	if int64(len(payload)) > h.maxImageBytes {
		return nil, domainerrors.ErrValidation.WithDetails(
			fmt.Sprintf("image exceeds the upload limit of %s", util.FormatBytes(h.maxImageBytes)))
	}

	return payload, nil
}

func toImageResponse(image *entity.Image) *imageResponse {
	if image == nil {
		return nil
	}

	return &imageResponse{
		ID:        image.ID,
		ProductID: image.ProductID,
		Extension: image.Extension,
		FileName:  image.FileName(),
	}
}
