package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/tabeebak/clinic-scheduler/internal/httpresp"
	"github.com/tabeebak/clinic-scheduler/internal/refdata"
)

type RefdataHandler struct {
	lists *refdata.Lists
}

func NewRefdataHandler(lists *refdata.Lists) *RefdataHandler {
	return &RefdataHandler{lists: lists}
}

func (h *RefdataHandler) Specialties(c *gin.Context) {
	httpresp.List(c, h.lists.Specialties.Entries())
}

func (h *RefdataHandler) Governorates(c *gin.Context) {
	httpresp.List(c, h.lists.Governorates.Entries())
}
