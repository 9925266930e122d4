package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wferreiracoriolano/barbearia-api/internal/httperr"
	"github.com/wferreiracoriolano/barbearia-api/internal/httpresp"
	"github.com/wferreiracoriolano/barbearia-api/internal/middleware"
	ucSlot "github.com/wferreiracoriolano/barbearia-api/internal/usecase/slot"
)

// ======================================================
// HANDLER
// ======================================================

type SlotHandler struct {
	createFreeUC *ucSlot.CreateFreeSlot
	blockUC      *ucSlot.BlockSlot
	bookUC       *ucSlot.BookSlot
	listFreeUC   *ucSlot.ListFreeSlots
	listDayUC    *ucSlot.ListDaySlots
}

func NewSlotHandler(
	createFreeUC *ucSlot.CreateFreeSlot,
	blockUC *ucSlot.BlockSlot,
	bookUC *ucSlot.BookSlot,
	listFreeUC *ucSlot.ListFreeSlots,
	listDayUC *ucSlot.ListDaySlots,
) *SlotHandler {
	return &SlotHandler{
		createFreeUC: createFreeUC,
		blockUC:      blockUC,
		bookUC:       bookUC,
		listFreeUC:   listFreeUC,
		listDayUC:    listDayUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateFreeSlotRequest struct {
	BarberID uint   `json:"barber_id" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
}

type BlockSlotRequest struct {
	BarberID uint   `json:"barber_id" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
	Force    bool   `json:"force"`
}

type BookSlotRequest struct {
	SlotID    uint   `json:"slot_id" binding:"required"`
	Type      string `json:"type"`
	ServiceID *uint  `json:"service_id"`
}

// ======================================================
// HELPERS
// ======================================================

func barberDayQuery(c *gin.Context) (uint, string, bool) {
	barberIDStr := c.Query("barber_id")
	date := c.Query("date")

	if barberIDStr == "" || date == "" {
		httperr.BadRequest(c, "missing_params", "barber_id e date são obrigatórios.")
		return 0, "", false
	}

	barberID, err := strconv.ParseUint(barberIDStr, 10, 64)
	if err != nil || barberID == 0 {
		httperr.BadRequest(c, "invalid_barber_id", "barber_id inválido.")
		return 0, "", false
	}

	return uint(barberID), date, true
}

func mapSlotError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "invalid_date"):
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
	case httperr.IsBusiness(err, "invalid_time"):
		httperr.BadRequest(c, "invalid_time", "Hora inválida.")
	case httperr.IsBusiness(err, "invalid_type"):
		httperr.BadRequest(c, "invalid_type", "Tipo inválido.")
	case httperr.IsBusiness(err, "service_not_found"):
		httperr.BadRequest(c, "service_not_found", "Serviço inválido.")
	case httperr.IsBusiness(err, "slot_not_found"):
		httperr.NotFound(c, "slot_not_found", "Horário não encontrado.")
	case httperr.IsBusiness(err, "slot_already_exists"):
		httperr.Conflict(c, "slot_already_exists", "Esse horário já existe.")
	case httperr.IsBusiness(err, "slot_already_booked"):
		httperr.Conflict(c, "slot_already_booked", "Horário já marcado; use force para sobrescrever.")
	case httperr.IsBusiness(err, "slot_not_available"):
		httperr.Conflict(c, "slot_not_available", "Este horário não está livre.")
	default:
		httperr.Internal(c, "internal_error", "Erro interno.")
	}
}

// ======================================================
// CLIENTE
// ======================================================

func (h *SlotHandler) ListFree(c *gin.Context) {
	barberID, date, ok := barberDayQuery(c)
	if !ok {
		return
	}

	slots, err := h.listFreeUC.Execute(c.Request.Context(), barberID, date)
	if err != nil {
		mapSlotError(c, err)
		return
	}

	httpresp.OK(c, slots)
}

func (h *SlotHandler) Book(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	var req BookSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "slot_id é obrigatório.")
		return
	}

	s, err := h.bookUC.Execute(c.Request.Context(), ucSlot.BookSlotInput{
		SlotID:    req.SlotID,
		ClientID:  clientID,
		Type:      req.Type,
		ServiceID: req.ServiceID,
	})
	if err != nil {
		mapSlotError(c, err)
		return
	}

	httpresp.OK(c, s)
}

// ======================================================
// ADMIN
// ======================================================

func (h *SlotHandler) CreateFree(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateFreeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "barber_id, date e time são obrigatórios.")
		return
	}

	s, err := h.createFreeUC.Execute(c.Request.Context(), ucSlot.CreateFreeSlotInput{
		BarberID: req.BarberID,
		Date:     req.Date,
		Time:     req.Time,
		ActorID:  actorID,
	})
	if err != nil {
		mapSlotError(c, err)
		return
	}

	httpresp.Created(c, s)
}

func (h *SlotHandler) Block(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	var req BlockSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "barber_id, date e time são obrigatórios.")
		return
	}

	s, err := h.blockUC.Execute(c.Request.Context(), ucSlot.BlockSlotInput{
		BarberID: req.BarberID,
		Date:     req.Date,
		Time:     req.Time,
		Force:    req.Force,
		ActorID:  actorID,
	})
	if err != nil {
		mapSlotError(c, err)
		return
	}

	httpresp.OK(c, s)
}

func (h *SlotHandler) ListDay(c *gin.Context) {
	barberID, date, ok := barberDayQuery(c)
	if !ok {
		return
	}

	rows, err := h.listDayUC.Execute(c.Request.Context(), barberID, date)
	if err != nil {
		mapSlotError(c, err)
		return
	}

	httpresp.OK(c, rows)
}
