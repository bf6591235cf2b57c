package handler

import (
	"errors"
	"net/http"

	"Community_API/internal/pkg"
	"Community_API/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type RoleHandler struct {
	svc *service.RoleService
	log zerolog.Logger
}

type RoleCreateReq struct {
	Name string `json:"name" binding:"required"`
}

func NewRoleHandler(svc *service.RoleService, log zerolog.Logger) *RoleHandler {
	return &RoleHandler{svc: svc, log: log}
}

func (h *RoleHandler) Create(c *gin.Context) {
	var req RoleCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, pkg.BindingMessage(err))
		return
	}

	role, err := h.svc.Create(c.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, service.ErrRoleExists) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondInternal(c, h.log, err)
		return
	}

	respondData(c, http.StatusCreated, role)
}

func (h *RoleHandler) List(c *gin.Context) {
	page := pkg.ParsePage(c.Query("page"))

	list, meta, err := h.svc.List(c.Request.Context(), page)
	if err != nil {
		respondInternal(c, h.log, err)
		return
	}

	respondPage(c, list, meta)
}
