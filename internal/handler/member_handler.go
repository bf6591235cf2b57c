package handler

import (
	"errors"
	"net/http"

	"Community_API/internal/pkg"
	"Community_API/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type MemberHandler struct {
	svc *service.MemberService
	log zerolog.Logger
}

type MemberCreateReq struct {
	Community string `json:"community" binding:"required"`
	User      string `json:"user" binding:"required"`
	Role      string `json:"role" binding:"required"`
}

func NewMemberHandler(svc *service.MemberService, log zerolog.Logger) *MemberHandler {
	return &MemberHandler{svc: svc, log: log}
}

func (h *MemberHandler) Create(c *gin.Context) {
	var req MemberCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, pkg.BindingMessage(err))
		return
	}

	member, err := h.svc.Add(c.Request.Context(), currentUserID(c), req.Community, req.User, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotAllowed):
			respondError(c, http.StatusForbidden, err.Error())
		case errors.Is(err, service.ErrCommunityNotFound),
			errors.Is(err, service.ErrUserNotFound),
			errors.Is(err, service.ErrRoleNotFound):
			respondError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrMemberExists):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondInternal(c, h.log, err)
		}
		return
	}

	respondData(c, http.StatusCreated, member)
}

func (h *MemberHandler) Remove(c *gin.Context) {
	err := h.svc.Remove(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotAllowed):
			respondError(c, http.StatusForbidden, err.Error())
		case errors.Is(err, service.ErrMemberNotFound), errors.Is(err, service.ErrCommunityNotFound):
			respondError(c, http.StatusNotFound, err.Error())
		default:
			respondInternal(c, h.log, err)
		}
		return
	}

	respondStatus(c)
}
