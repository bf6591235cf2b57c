package handler

import (
	"net/http"

	"Community_API/internal/pkg"
	"Community_API/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type CommunityHandler struct {
	svc *service.CommunityService
	log zerolog.Logger
}

type CommunityCreateReq struct {
	Name string `json:"name" binding:"required"`
}

func NewCommunityHandler(svc *service.CommunityService, log zerolog.Logger) *CommunityHandler {
	return &CommunityHandler{svc: svc, log: log}
}

func (h *CommunityHandler) Create(c *gin.Context) {
	var req CommunityCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, pkg.BindingMessage(err))
		return
	}

	community, err := h.svc.Create(c.Request.Context(), currentUserID(c), req.Name)
	if err != nil {
		respondInternal(c, h.log, err)
		return
	}

	respondData(c, http.StatusCreated, community)
}

func (h *CommunityHandler) List(c *gin.Context) {
	page := pkg.ParsePage(c.Query("page"))

	list, meta, err := h.svc.List(c.Request.Context(), page)
	if err != nil {
		respondInternal(c, h.log, err)
		return
	}

	respondPage(c, list, meta)
}

func (h *CommunityHandler) Members(c *gin.Context) {
	page := pkg.ParsePage(c.Query("page"))

	list, meta, err := h.svc.Members(c.Request.Context(), c.Param("id"), page)
	if err != nil {
		respondInternal(c, h.log, err)
		return
	}

	respondPage(c, list, meta)
}

func (h *CommunityHandler) MyOwned(c *gin.Context) {
	page := pkg.ParsePage(c.Query("page"))

	list, meta, err := h.svc.Owned(c.Request.Context(), currentUserID(c), page)
	if err != nil {
		respondInternal(c, h.log, err)
		return
	}

	respondPage(c, list, meta)
}

func (h *CommunityHandler) MyJoined(c *gin.Context) {
	page := pkg.ParsePage(c.Query("page"))

	list, meta, err := h.svc.Joined(c.Request.Context(), currentUserID(c), page)
	if err != nil {
		respondInternal(c, h.log, err)
		return
	}

	respondPage(c, list, meta)
}
