package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tabeebak/clinic-scheduler/internal/httperr"
	"github.com/tabeebak/clinic-scheduler/internal/httpresp"
	"github.com/tabeebak/clinic-scheduler/internal/stats"
)

// StatsHandler serves the doctor dashboard. Every endpoint is scoped to
// the authenticated doctor; there is no cross-doctor reporting.
type StatsHandler struct {
	svc *stats.Service
}

func NewStatsHandler(svc *stats.Service) *StatsHandler {
	return &StatsHandler{svc: svc}
}

func (h *StatsHandler) Dashboard(c *gin.Context) {
	doctorID, _ := actor(c)

	out, err := h.svc.Dashboard(c.Request.Context(), doctorID, time.Now())
	if err != nil {
		httperr.Internal(c, "failed to compute dashboard")
		return
	}
	httpresp.OK(c, out)
}

func (h *StatsHandler) Appointments(c *gin.Context) {
	doctorID, _ := actor(c)

	out, err := h.svc.AppointmentSeries(c.Request.Context(), doctorID, time.Now())
	if err != nil {
		httperr.Internal(c, "failed to compute appointment series")
		return
	}
	httpresp.OK(c, out)
}

func (h *StatsHandler) Patients(c *gin.Context) {
	doctorID, _ := actor(c)

	out, err := h.svc.PatientSeries(c.Request.Context(), doctorID, time.Now())
	if err != nil {
		httperr.Internal(c, "failed to compute patient series")
		return
	}
	httpresp.OK(c, out)
}

func (h *StatsHandler) Revenue(c *gin.Context) {
	doctorID, _ := actor(c)

	out, err := h.svc.RevenueSeries(c.Request.Context(), doctorID, time.Now())
	if err != nil {
		httperr.Internal(c, "failed to compute revenue series")
		return
	}
	httpresp.OK(c, out)
}

func (h *StatsHandler) Ratings(c *gin.Context) {
	doctorID, _ := actor(c)

	out, err := h.svc.RatingSeries(c.Request.Context(), doctorID, time.Now())
	if err != nil {
		httperr.Internal(c, "failed to compute rating series")
		return
	}
	httpresp.OK(c, out)
}

func (h *StatsHandler) Slots(c *gin.Context) {
	doctorID, _ := actor(c)

	out, err := h.svc.SlotCounts(c.Request.Context(), doctorID)
	if err != nil {
		httperr.Internal(c, "failed to compute slot counts")
		return
	}
	httpresp.OK(c, out)
}
