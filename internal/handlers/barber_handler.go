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
	"github.com/lebarbier/salon-api/internal/models"
	"github.com/lebarbier/salon-api/internal/storage"
)

type BarberHandler struct {
	db      *gorm.DB
	storage *storage.S3Storage
}

func NewBarberHandler(db *gorm.DB, store *storage.S3Storage) *BarberHandler {
	return &BarberHandler{db: db, storage: store}
}

// --------- Requests ---------

type CreateBarberRequest struct {
	Name string `json:"name" binding:"required"`
	Bio  string `json:"bio"`
}

type UpdateBarberRequest struct {
	Name   *string `json:"name,omitempty"`
	Bio    *string `json:"bio,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

// --------- Public ---------

// GET /api/public/barbers — uniquement les barbiers actifs
func (h *BarberHandler) ListPublic(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.
		Where("active = true").
		Order("id ASC").
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erreur lors du chargement des barbiers.")
		return
	}

	httpresp.List(c, barbers)
}

// --------- Admin ---------

func (h *BarberHandler) List(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.Order("id ASC").Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erreur lors du chargement des barbiers.")
		return
	}

	httpresp.List(c, barbers)
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	barber := models.Barber{
		Name:   req.Name,
		Bio:    req.Bio,
		Active: true,
	}

	if err := h.db.Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Erreur lors de la création du barbier.")
		return
	}

	c.JSON(http.StatusCreated, barber)
}

func (h *BarberHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var barber models.Barber
	if err := h.db.First(&barber, id).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbier introuvable.")
		return
	}

	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	if req.Name != nil {
		barber.Name = *req.Name
	}
	if req.Bio != nil {
		barber.Bio = *req.Bio
	}
	if req.Active != nil {
		barber.Active = *req.Active
	}

	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Erreur lors de la mise à jour du barbier.")
		return
	}

	c.JSON(http.StatusOK, barber)
}

// UploadPhoto reçoit un JPEG/PNG, le ré-encode en webp et le pousse sur S3.
// POST /api/admin/barbers/:id/photo (multipart, champ "photo")
func (h *BarberHandler) UploadPhoto(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identifiant invalide.")
		return
	}

	var barber models.Barber
	if err := h.db.First(&barber, uint(id)).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbier introuvable.")
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "Le champ photo est obligatoire.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_photo", "Erreur lors de la lecture du fichier.")
		return
	}
	defer src.Close()

	raw, err := io.ReadAll(src)
	if err != nil {
		httperr.Internal(c, "failed_to_read_photo", "Erreur lors de la lecture du fichier.")
		return
	}

	encoded, err := images.ToWebP(raw)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Image illisible (JPEG ou PNG attendu).")
		return
	}

	path, err := h.storage.Upload(c.Request.Context(), "barbers", encoded, "image/webp")
	if err != nil {
		httperr.Internal(c, "failed_to_store_photo", "Erreur lors de l'envoi du fichier.")
		return
	}

	barber.PhotoPath = path
	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Erreur lors de la mise à jour du barbier.")
		return
	}

	c.JSON(http.StatusOK, barber)
}
