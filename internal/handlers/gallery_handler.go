package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/heritagecuts/barbershop-api/internal/domain/gallery"
	"github.com/heritagecuts/barbershop-api/internal/httperr"
	"github.com/heritagecuts/barbershop-api/internal/middleware"
	ucGallery "github.com/heritagecuts/barbershop-api/internal/usecase/gallery"
)

type GalleryHandler struct {
	load   *ucGallery.LoadImages
	upload *ucGallery.UploadImage
	delete *ucGallery.DeleteImage
}

func NewGalleryHandler(
	load *ucGallery.LoadImages,
	upload *ucGallery.UploadImage,
	delete *ucGallery.DeleteImage,
) *GalleryHandler {
	return &GalleryHandler{
		load:   load,
		upload: upload,
		delete: delete,
	}
}

// List resolves the gallery through the fallback chain. The response
// always carries a list; degraded=true means every live tier failed
// and the caller is looking at placeholders or nothing.
func (h *GalleryHandler) List(c *gin.Context) {
	category := c.Query("category")

	images, ok := h.load.Execute(c.Request.Context(), category)

	c.JSON(http.StatusOK, gin.H{
		"data":       images,
		"total":      len(images),
		"categories": gallery.Categories(),
		"degraded":   !ok,
	})
}

func (h *GalleryHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "A file field is required.")
		return
	}
	defer file.Close()

	var barberID *uint
	if raw := c.PostForm("barber_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			v := uint(id)
			barberID = &v
		}
	}

	actor := middleware.ActorFromContext(c)

	img, err := h.upload.Execute(c.Request.Context(), actor, ucGallery.UploadInput{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
		Title:       c.PostForm("title"),
		Category:    c.PostForm("category"),
		BarberID:    barberID,
		IsFeatured:  c.PostForm("is_featured") == "true",
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "forbidden"):
			httperr.Forbidden(c, "forbidden", "Only admins can upload images.")
		case httperr.IsBusiness(err, "file_too_large"):
			httperr.BadRequest(c, "file_too_large", "Images must be 10MB or smaller.")
		case httperr.IsBusiness(err, "unsupported_media_type"):
			httperr.BadRequest(c, "unsupported_media_type", "Only image uploads are supported.")
		default:
			httperr.Internal(c, "failed_to_upload", "Could not upload the image.")
		}
		return
	}

	c.JSON(http.StatusCreated, img)
}

func (h *GalleryHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid image id.")
		return
	}

	actor := middleware.ActorFromContext(c)

	if err := h.delete.Execute(c.Request.Context(), actor, uint(id)); err != nil {
		switch {
		case httperr.IsBusiness(err, "forbidden"):
			httperr.Forbidden(c, "forbidden", "Only admins can delete images.")
		case httperr.IsBusiness(err, "image_not_found"):
			httperr.NotFound(c, "image_not_found", "Image not found.")
		default:
			httperr.Internal(c, "failed_to_delete", "Could not delete the image.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
