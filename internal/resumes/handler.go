package resumes

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
)

const maxImageUploadSize = 5 << 20 // 5MB across both slots

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches résumé routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes", h.create)
	rg.GET("/resumes", h.list)
	rg.GET("/resumes/:id", h.get)
	rg.PUT("/resumes/:id", h.update)
	rg.DELETE("/resumes/:id", h.remove)
	rg.PUT("/resumes/:id/upload-images", h.uploadImages)
}

func (h *Handler) create(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)

	var overrides Patch
	if err := c.ShouldBindJSON(&overrides); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	res, err := h.Svc.Create(c.Request.Context(), ownerID, overrides)
	if err != nil {
		respondServiceError(c, err, "failed to create resume")
		return
	}

	respond.JSON(c, http.StatusCreated, toResponse(res))
}

func (h *Handler) list(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)

	items, err := h.Svc.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		respondServiceError(c, err, "failed to list resumes")
		return
	}

	respond.JSON(c, http.StatusOK, toResponses(items))
}

func (h *Handler) get(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)

	res, err := h.Svc.Get(c.Request.Context(), c.Param("id"), ownerID)
	if err != nil {
		respondServiceError(c, err, "failed to fetch resume")
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(res))
}

func (h *Handler) update(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)

	var patch Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	res, err := h.Svc.Update(c.Request.Context(), c.Param("id"), ownerID, patch)
	if err != nil {
		respondServiceError(c, err, "failed to update resume")
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(res))
}

func (h *Handler) remove(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)

	if err := h.Svc.Delete(c.Request.Context(), c.Param("id"), ownerID); err != nil {
		respondServiceError(c, err, "failed to delete resume")
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"message": "resume deleted"})
}

func (h *Handler) uploadImages(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImageUploadSize)

	thumbnail, closeThumb, err := formImage(c, "thumbnail")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read thumbnail", nil)
		return
	}
	if closeThumb != nil {
		defer closeThumb()
	}

	profileImage, closeProfile, err := formImage(c, "profileImage")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read profileImage", nil)
		return
	}
	if closeProfile != nil {
		defer closeProfile()
	}

	res, err := h.Svc.UploadImages(c.Request.Context(), c.Param("id"), ownerID, thumbnail, profileImage)
	if err != nil {
		respondServiceError(c, err, "failed to upload images")
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"thumbnailUrl":    res.ThumbnailURL,
		"profileImageUrl": res.ProfileInfo.ProfileImageURL,
	})
}

// formImage returns nil without error when the field is absent; the service
// decides whether zero files is acceptable.
func formImage(c *gin.Context, field string) (*ImageUpload, func(), error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, nil, err
	}

	return &ImageUpload{
		FileName:    fileHeader.Filename,
		ContentType: contentTypeOf(fileHeader),
		Reader:      file,
	}, func() { _ = file.Close() }, nil
}

func contentTypeOf(fh *multipart.FileHeader) string {
	return fh.Header.Get("Content-Type")
}

func respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
	case errors.Is(err, ErrNoFiles):
		respond.Error(c, http.StatusBadRequest, "validation_error", "no images provided", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrUnsupportedMediaType):
		respond.Error(c, http.StatusUnsupportedMediaType, "unsupported_media_type", "only jpeg and png images are allowed", nil)
	case errors.Is(err, ErrStoreUnavailable):
		respond.Error(c, http.StatusServiceUnavailable, "store_unavailable", fallback, nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
