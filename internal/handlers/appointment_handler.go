package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/tabeebak/clinic-scheduler/internal/domain/appointment"
	"github.com/tabeebak/clinic-scheduler/internal/httperr"
	"github.com/tabeebak/clinic-scheduler/internal/httpresp"
	"github.com/tabeebak/clinic-scheduler/internal/middleware"
	usecase "github.com/tabeebak/clinic-scheduler/internal/usecase/appointment"
)

type AppointmentHandler struct {
	book       *usecase.BookAppointment
	transition *usecase.TransitionAppointment
	repo       domain.Repository
}

func NewAppointmentHandler(
	book *usecase.BookAppointment,
	transition *usecase.TransitionAppointment,
	repo domain.Repository,
) *AppointmentHandler {
	return &AppointmentHandler{
		book:       book,
		transition: transition,
		repo:       repo,
	}
}

// ======================================================
// BOOKING
// ======================================================

type createAppointmentRequest struct {
	DoctorID  uint    `json:"doctorId"`
	SlotID    string  `json:"slotId"`
	Type      string  `json:"type"`
	Reason    string  `json:"reason"`
	Day       string  `json:"day"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Price     float64 `json:"price"`
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	patientID, _ := actor(c)

	var req createAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), usecase.BookInput{
		DoctorID:  req.DoctorID,
		PatientID: patientID,
		SlotID:    req.SlotID,
		Type:      req.Type,
		Reason:    req.Reason,
		Day:       req.Day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Price:     req.Price,
	})
	if err != nil {
		if writeBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed to book appointment")
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LISTS
// ======================================================

// ListMine returns the caller's active appointments, doctor or patient
// side depending on the token role.
func (h *AppointmentHandler) ListMine(c *gin.Context) {
	id, role := actor(c)

	switch role {
	case middleware.RoleDoctor:
		aps, err := h.repo.ListByDoctor(c.Request.Context(), id)
		if err != nil {
			httperr.Internal(c, "failed to list appointments")
			return
		}
		httpresp.List(c, aps)

	case middleware.RolePatient:
		aps, err := h.repo.ListByPatient(c.Request.Context(), id)
		if err != nil {
			httperr.Internal(c, "failed to list appointments")
			return
		}
		httpresp.List(c, aps)

	default:
		httperr.Forbidden(c, "unknown role")
	}
}

// ======================================================
// TRANSITIONS
// ======================================================

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	actorID, role := actor(c)

	apID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid appointment id")
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		httperr.BadRequest(c, "status is required")
		return
	}

	result, err := h.transition.Execute(c.Request.Context(), usecase.TransitionInput{
		AppointmentID: uint(apID),
		Status:        domain.Status(req.Status),
		Actor:         usecase.Actor{Role: role, ID: actorID},
	})
	if err != nil {
		if writeBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed to update appointment")
		return
	}

	if result.Archive != nil {
		httpresp.OK(c, result.Archive)
		return
	}
	httpresp.OK(c, result.Appointment)
}

// ======================================================
// ARCHIVE
// ======================================================

func (h *AppointmentHandler) ListArchive(c *gin.Context) {
	doctorID, _ := actor(c)

	visits, err := h.repo.ListArchiveByDoctor(
		c.Request.Context(), doctorID, c.Query("patientName"))
	if err != nil {
		httperr.Internal(c, "failed to list archive")
		return
	}

	httpresp.List(c, visits)
}

// ArchiveDetails serves one snapshot to either party of the original
// appointment.
func (h *AppointmentHandler) ArchiveDetails(c *gin.Context) {
	actorID, role := actor(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid archive id")
		return
	}

	visit, err := h.repo.GetArchiveByID(c.Request.Context(), uint(id))
	if err != nil {
		httperr.NotFound(c, "archived visit not found")
		return
	}

	switch role {
	case middleware.RoleDoctor:
		if visit.DoctorID != actorID {
			httperr.Forbidden(c, "you do not have access to this visit")
			return
		}
	case middleware.RolePatient:
		if visit.PatientID != actorID {
			httperr.Forbidden(c, "you do not have access to this visit")
			return
		}
	default:
		httperr.Forbidden(c, "unknown role")
		return
	}

	httpresp.OK(c, visit)
}

// ======================================================
// DOCTOR'S PATIENTS
// ======================================================

// Patients lists everyone the doctor has seen, active or archived, with
// an optional name search.
func (h *AppointmentHandler) Patients(c *gin.Context) {
	doctorID, _ := actor(c)

	patients, err := h.repo.ListDoctorPatients(
		c.Request.Context(), doctorID, c.Query("search"))
	if err != nil {
		httperr.Internal(c, "failed to list patients")
		return
	}

	httpresp.List(c, patients)
}
