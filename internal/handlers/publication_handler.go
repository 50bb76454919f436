package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lebarbier/salon-api/internal/httperr"
	"github.com/lebarbier/salon-api/internal/httpresp"
	"github.com/lebarbier/salon-api/internal/images"
	"github.com/lebarbier/salon-api/internal/middleware"
	"github.com/lebarbier/salon-api/internal/models"
	"github.com/lebarbier/salon-api/internal/storage"
	"github.com/lebarbier/salon-api/internal/timezone"
)

// ======================================================
// HANDLER (fil d'actualité du salon)
// ======================================================

type PublicationHandler struct {
	db      *gorm.DB
	storage *storage.S3Storage
}

func NewPublicationHandler(db *gorm.DB, store *storage.S3Storage) *PublicationHandler {
	return &PublicationHandler{db: db, storage: store}
}

// ======================================================
// PUBLIC
// ======================================================

// GET /api/public/publications
func (h *PublicationHandler) List(c *gin.Context) {
	var publications []models.Publication
	if err := h.db.
		Select("publications.*, (SELECT COUNT(*) FROM publication_likes WHERE publication_likes.publication_id = publications.id) AS like_count").
		Order("published_at DESC").
		Find(&publications).Error; err != nil {

		httperr.Internal(c, "failed_to_list_publications", "Erreur lors du chargement des publications.")
		return
	}

	httpresp.List(c, publications)
}

// ======================================================
// ADMIN
// ======================================================

// POST /api/admin/publications (multipart : title, body, image facultative)
func (h *PublicationHandler) Create(c *gin.Context) {
	title := c.PostForm("title")
	body := c.PostForm("body")

	if title == "" {
		httperr.BadRequest(c, "missing_title", "Le champ title est obligatoire.")
		return
	}

	pub := models.Publication{
		Title:       title,
		Body:        body,
		PublishedAt: timezone.Now(),
	}

	if file, err := c.FormFile("image"); err == nil {
		src, err := file.Open()
		if err != nil {
			httperr.Internal(c, "failed_to_read_image", "Erreur lors de la lecture du fichier.")
			return
		}
		defer src.Close()

		raw, err := io.ReadAll(src)
		if err != nil {
			httperr.Internal(c, "failed_to_read_image", "Erreur lors de la lecture du fichier.")
			return
		}

		encoded, err := images.ToWebP(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_image", "Image illisible (JPEG ou PNG attendu).")
			return
		}

		path, err := h.storage.Upload(c.Request.Context(), "publications", encoded, "image/webp")
		if err != nil {
			httperr.Internal(c, "failed_to_store_image", "Erreur lors de l'envoi du fichier.")
			return
		}

		pub.ImagePath = path
	}

	if err := h.db.Create(&pub).Error; err != nil {
		httperr.Internal(c, "failed_to_create_publication", "Erreur lors de la création de la publication.")
		return
	}

	c.JSON(http.StatusCreated, pub)
}

type UpdatePublicationRequest struct {
	Title *string `json:"title,omitempty"`
	Body  *string `json:"body,omitempty"`
}

// PATCH /api/admin/publications/:id
func (h *PublicationHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var pub models.Publication
	if err := h.db.First(&pub, id).Error; err != nil {
		httperr.NotFound(c, "publication_not_found", "Publication introuvable.")
		return
	}

	var req UpdatePublicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	if req.Title != nil {
		pub.Title = *req.Title
	}
	if req.Body != nil {
		pub.Body = *req.Body
	}

	if err := h.db.Save(&pub).Error; err != nil {
		httperr.Internal(c, "failed_to_update_publication", "Erreur lors de la mise à jour de la publication.")
		return
	}

	c.JSON(http.StatusOK, pub)
}

// DELETE /api/admin/publications/:id
func (h *PublicationHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var pub models.Publication
	if err := h.db.First(&pub, id).Error; err != nil {
		httperr.NotFound(c, "publication_not_found", "Publication introuvable.")
		return
	}

	if err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("publication_id = ?", pub.ID).Delete(&models.PublicationLike{}).Error; err != nil {
			return err
		}
		return tx.Delete(&pub).Error
	}); err != nil {
		httperr.Internal(c, "failed_to_delete_publication", "Erreur lors de la suppression de la publication.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ======================================================
// LIKES
// ======================================================

// POST /api/publications/:id/like
func (h *PublicationHandler) Like(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identifiant invalide.")
		return
	}

	var pub models.Publication
	if err := h.db.First(&pub, uint(id)).Error; err != nil {
		httperr.NotFound(c, "publication_not_found", "Publication introuvable.")
		return
	}

	like := models.PublicationLike{
		PublicationID: pub.ID,
		UserID:        userID,
	}

	// l'index unique rend le like idempotent
	if err := h.db.Create(&like).Error; err != nil && !httperr.IsUniqueViolation(err) {
		httperr.Internal(c, "failed_to_like", "Erreur lors de l'enregistrement du like.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "liked"})
}

// DELETE /api/publications/:id/like
func (h *PublicationHandler) Unlike(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identifiant invalide.")
		return
	}

	if err := h.db.
		Where("publication_id = ? AND user_id = ?", uint(id), userID).
		Delete(&models.PublicationLike{}).Error; err != nil {

		httperr.Internal(c, "failed_to_unlike", "Erreur lors de la suppression du like.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "unliked"})
}
