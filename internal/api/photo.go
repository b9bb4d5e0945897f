package api

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kmwhite/dinner-recipes/backend/internal/service"
)

// maxPhotoBytes caps uploaded images at 10 MB.
const maxPhotoBytes = 10 << 20

type PhotoHandler struct {
	photoService   *service.PhotoRecipeService
	storageService *service.StorageService
}

func NewPhotoHandler(photoService *service.PhotoRecipeService, storageService *service.StorageService) *PhotoHandler {
	return &PhotoHandler{
		photoService:   photoService,
		storageService: storageService,
	}
}

// RegisterRoutes attaches the photo-recipe routes to an already-
// authenticated route group.
func (h *PhotoHandler) RegisterRoutes(router *gin.RouterGroup) {
	photos := router.Group("/photo-recipes")
	{
		photos.GET("", h.ListPhotoRecipes)
		photos.POST("", h.CreatePhotoRecipe)
		photos.DELETE("/:id", h.DeletePhotoRecipe)
	}
}

// ListPhotoRecipes returns the user's photo recipes, newest first.
func (h *PhotoHandler) ListPhotoRecipes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	photos, err := h.photoService.ListPhotoRecipes(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"photo_recipes": photos})
}

// CreatePhotoRecipe accepts a multipart form with a label and an image,
// uploads the image, then inserts the metadata row. The label is validated
// before the upload so a bad request never leaves an orphaned blob.
func (h *PhotoHandler) CreatePhotoRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	label := strings.TrimSpace(c.PostForm("label"))
	if label == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "label is required"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}
	if fileHeader.Size > maxPhotoBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read image"})
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, maxPhotoBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read image"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}
	ext := filepath.Ext(fileHeader.Filename)

	path, url, err := h.storageService.UploadPhotoImage(c.Request.Context(), data, contentType, ext)
	if err != nil {
		respondError(c, err)
		return
	}

	photo, err := h.photoService.AddPhotoRecipe(c.Request.Context(), userID, label, url, path)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, photo)
}

// DeletePhotoRecipe retires a photo recipe: blob first, then the row.
// There is no rollback between the two steps; if the row delete fails the
// blob is already gone.
func (h *PhotoHandler) DeletePhotoRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid photo recipe id"})
		return
	}

	photo, err := h.photoService.GetPhotoRecipe(c.Request.Context(), userID, id)
	if errors.Is(err, service.ErrNotFound) {
		// Matching row-delete semantics: deleting an id that does not
		// exist is success.
		c.JSON(http.StatusOK, gin.H{"message": "photo recipe deleted", "id": id})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	if photo.ImagePath != "" {
		if err := h.storageService.DeletePhotoImage(c.Request.Context(), photo.ImagePath); err != nil {
			respondError(c, err)
			return
		}
	}

	if err := h.photoService.DeletePhotoRecipe(c.Request.Context(), userID, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "photo recipe deleted", "id": id})
}
