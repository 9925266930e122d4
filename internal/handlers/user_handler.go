package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/wferreiracoriolano/barbearia-api/internal/audit"
	"github.com/wferreiracoriolano/barbearia-api/internal/httperr"
	"github.com/wferreiracoriolano/barbearia-api/internal/httpresp"
	"github.com/wferreiracoriolano/barbearia-api/internal/middleware"
	"github.com/wferreiracoriolano/barbearia-api/internal/models"
	"github.com/wferreiracoriolano/barbearia-api/internal/validators"
)

type UserHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewUserHandler(db *gorm.DB, audit *audit.Dispatcher) *UserHandler {
	return &UserHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

// --------- Handlers ---------

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Nome, email e senha são obrigatórios.")
		return
	}

	role := req.Role
	if role == "" {
		role = middleware.RoleClient
	}
	if role != middleware.RoleClient && role != middleware.RoleAdmin {
		httperr.BadRequest(c, "invalid_role", "Role inválido.")
		return
	}

	email := validators.NormalizeEmail(req.Email)

	var count int64
	if err := h.db.Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}
	if count > 0 {
		httperr.Conflict(c, "email_already_registered", "Email já cadastrado.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao processar senha.")
		return
	}

	user := models.User{
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         role,
		Active:       true,
	}

	if err := h.db.Create(&user).Error; err != nil {
		// A checagem de contagem acima não é atômica: quem vencer a
		// corrida fica com o índice único e o perdedor cai aqui.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Conflict(c, "email_already_registered", "Email já cadastrado.")
			return
		}
		httperr.Internal(c, "failed_to_create_user", "Erro ao criar usuário.")
		return
	}

	actorID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "user_created",
		Entity:   "user",
		EntityID: &user.ID,
		Metadata: map[string]any{"role": user.Role},
	})

	httpresp.Created(c, user)
}

func (h *UserHandler) List(c *gin.Context) {
	var users []models.User
	if err := h.db.
		Order("created_at DESC").
		Find(&users).Error; err != nil {
		httperr.Internal(c, "failed_to_list_users", "Erro ao listar usuários.")
		return
	}

	httpresp.OK(c, users)
}
