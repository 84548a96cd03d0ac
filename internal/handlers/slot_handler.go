package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tabeebak/clinic-scheduler/internal/httperr"
	"github.com/tabeebak/clinic-scheduler/internal/httpresp"
	"github.com/tabeebak/clinic-scheduler/internal/schedule"
)

type SlotHandler struct {
	svc *schedule.Service
}

func NewSlotHandler(svc *schedule.Service) *SlotHandler {
	return &SlotHandler{svc: svc}
}

// ListForDoctor is the public view of a doctor's availability; only open
// slots are shown.
func (h *SlotHandler) ListForDoctor(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid doctor id")
		return
	}

	doctor, slots, err := h.svc.ListSlots(c.Request.Context(), uint(id), false)
	if err != nil {
		if writeBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed to list slots")
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"count":   len(slots),
		"doctor":  doctor,
		"data":    slots,
	})
}

// ListMine lists the authenticated doctor's own slots; showAll=true
// includes held and toggled-off windows.
func (h *SlotHandler) ListMine(c *gin.Context) {
	id, _ := actor(c)
	showAll := c.Query("showAll") == "true"

	_, slots, err := h.svc.ListSlots(c.Request.Context(), id, showAll)
	if err != nil {
		if writeBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed to list slots")
		return
	}

	httpresp.List(c, slots)
}

type addSlotRequest struct {
	Day          string `json:"day"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	SlotDuration int    `json:"slotDuration"`
	Type         string `json:"type"`
}

func (h *SlotHandler) Add(c *gin.Context) {
	id, _ := actor(c)

	var req addSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	slots, err := h.svc.AddSlot(c.Request.Context(), id, schedule.AddSlotInput{
		Day:          req.Day,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		SlotDuration: req.SlotDuration,
		Type:         req.Type,
	})
	if err != nil {
		if writeBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed to add slot")
		return
	}

	c.JSON(201, gin.H{"success": true, "count": len(slots), "data": slots})
}

type updateSlotRequest struct {
	Day          string `json:"day"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	SlotDuration int    `json:"slotDuration"`
}

func (h *SlotHandler) Update(c *gin.Context) {
	id, _ := actor(c)

	var req updateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	slots, err := h.svc.UpdateSlot(c.Request.Context(), id, c.Param("slotId"), schedule.UpdateSlotInput{
		Day:          req.Day,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		SlotDuration: req.SlotDuration,
	})
	if err != nil {
		if writeBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed to update slot")
		return
	}

	httpresp.List(c, slots)
}

func (h *SlotHandler) Toggle(c *gin.Context) {
	id, _ := actor(c)

	slots, err := h.svc.ToggleSlot(c.Request.Context(), id, c.Param("slotId"))
	if err != nil {
		if writeBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed to toggle slot")
		return
	}

	httpresp.List(c, slots)
}

func (h *SlotHandler) Delete(c *gin.Context) {
	id, _ := actor(c)

	slots, err := h.svc.DeleteSlot(c.Request.Context(), id, c.Param("slotId"))
	if err != nil {
		if writeBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed to delete slot")
		return
	}

	httpresp.List(c, slots)
}
