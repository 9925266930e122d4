package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/wferreiracoriolano/barbearia-api/internal/audit"
	"github.com/wferreiracoriolano/barbearia-api/internal/httperr"
	"github.com/wferreiracoriolano/barbearia-api/internal/httpresp"
	"github.com/wferreiracoriolano/barbearia-api/internal/middleware"
	"github.com/wferreiracoriolano/barbearia-api/internal/models"
)

type BarberHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewBarberHandler(db *gorm.DB, audit *audit.Dispatcher) *BarberHandler {
	return &BarberHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CreateBarberRequest struct {
	Name string `json:"name" binding:"required"`
}

// --------- Handlers ---------

func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Nome do barbeiro é obrigatório.")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		httperr.BadRequest(c, "invalid_request", "Nome do barbeiro é obrigatório.")
		return
	}

	barber := models.Barber{
		Name:   name,
		Active: true,
	}

	if err := h.db.Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Erro ao criar barbeiro.")
		return
	}

	actorID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "barber_created",
		Entity:   "barber",
		EntityID: &barber.ID,
	})

	httpresp.Created(c, barber)
}

// ListActive é a visão do cliente: só barbeiros ativos, por nome.
func (h *BarberHandler) ListActive(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.
		Where("active = ?", true).
		Order("name ASC").
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	httpresp.OK(c, barbers)
}

// ListAll é a visão do admin: todos, mais recentes primeiro.
func (h *BarberHandler) ListAll(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.
		Order("created_at DESC").
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	httpresp.OK(c, barbers)
}
