package handlers

import (
	"errors"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tabeebak/clinic-scheduler/internal/audit"
	"github.com/tabeebak/clinic-scheduler/internal/config"
	"github.com/tabeebak/clinic-scheduler/internal/httperr"
	"github.com/tabeebak/clinic-scheduler/internal/httpresp"
	"github.com/tabeebak/clinic-scheduler/internal/middleware"
	"github.com/tabeebak/clinic-scheduler/internal/models"
	"github.com/tabeebak/clinic-scheduler/internal/notify"
	"github.com/tabeebak/clinic-scheduler/internal/otp"
	"github.com/tabeebak/clinic-scheduler/internal/refdata"
	"github.com/tabeebak/clinic-scheduler/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	cfg    *config.Config
	lists  *refdata.Lists
	otp    *otp.Store
	mailer notify.Sender
	audit  *audit.Dispatcher
}

func NewAuthHandler(
	db *gorm.DB,
	cfg *config.Config,
	lists *refdata.Lists,
	store *otp.Store,
	mailer notify.Sender,
	dispatcher *audit.Dispatcher,
) *AuthHandler {
	return &AuthHandler{
		db:     db,
		cfg:    cfg,
		lists:  lists,
		otp:    store,
		mailer: mailer,
		audit:  dispatcher,
	}
}

func (h *AuthHandler) signToken(id uint, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  float64(id),
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(time.Duration(h.cfg.JWTTTLHours) * time.Hour).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(h.cfg.JWTSecret))
}

// ======================================================
// DOCTOR
// ======================================================

type registerDoctorRequest struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	Specialty   string   `json:"specialty"`
	Governorate string   `json:"governorate"`
	Address     string   `json:"address"`
	Phone       string   `json:"phone"`
	Age         int      `json:"age"`
	Bio         string   `json:"bio"`
	Experience  int      `json:"experience"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
}

func (h *AuthHandler) RegisterDoctor(c *gin.Context) {
	var req registerDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" ||
		req.Specialty == "" || req.Governorate == "" {
		httperr.BadRequest(c, "name, email, password, specialty and governorate are required")
		return
	}
	if len(req.Password) < 6 {
		httperr.BadRequest(c, "password must be at least 6 characters")
		return
	}
	if !validators.IsEmailDomainValid(req.Email) {
		httperr.BadRequest(c, "email domain is not valid")
		return
	}
	if !h.lists.Specialties.Contains(req.Specialty) {
		httperr.BadRequest(c, "unknown specialty")
		return
	}
	if !h.lists.Governorates.Contains(req.Governorate) {
		httperr.BadRequest(c, "unknown governorate")
		return
	}

	var existing models.Doctor
	if err := h.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		httperr.BadRequest(c, "email already registered")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed to process password")
		return
	}

	doctor := models.Doctor{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Specialty:    req.Specialty,
		Governorate:  req.Governorate,
		Address:      req.Address,
		Phone:        req.Phone,
		Age:          req.Age,
		Bio:          req.Bio,
		Experience:   req.Experience,
		Lat:          req.Lat,
		Lng:          req.Lng,
	}
	if err := h.db.Create(&doctor).Error; err != nil {
		httperr.Internal(c, "failed to create account")
		return
	}

	token, err := h.signToken(doctor.ID, middleware.RoleDoctor)
	if err != nil {
		httperr.Internal(c, "failed to issue token")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorRole: middleware.RoleDoctor,
		ActorID:   &doctor.ID,
		Action:    "doctor_registered",
		Entity:    "doctor",
		EntityID:  &doctor.ID,
	})

	httpresp.Created(c, gin.H{"token": token, "doctor": doctor})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) LoginDoctor(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		httperr.BadRequest(c, "email and password are required")
		return
	}

	var doctor models.Doctor
	if err := h.db.Where("email = ?", req.Email).First(&doctor).Error; err != nil {
		httperr.Unauthorized(c, "invalid credentials")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(doctor.PasswordHash), []byte(req.Password)) != nil {
		httperr.Unauthorized(c, "invalid credentials")
		return
	}

	token, err := h.signToken(doctor.ID, middleware.RoleDoctor)
	if err != nil {
		httperr.Internal(c, "failed to issue token")
		return
	}

	httpresp.OK(c, gin.H{"token": token, "doctor": doctor})
}

// ======================================================
// PATIENT
// ======================================================

type registerPatientRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
}

func (h *AuthHandler) RegisterPatient(c *gin.Context) {
	var req registerPatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		httperr.BadRequest(c, "name, email and password are required")
		return
	}
	if len(req.Password) < 6 {
		httperr.BadRequest(c, "password must be at least 6 characters")
		return
	}
	if !validators.IsEmailDomainValid(req.Email) {
		httperr.BadRequest(c, "email domain is not valid")
		return
	}

	var existing models.Patient
	if err := h.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		httperr.BadRequest(c, "email already registered")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed to process password")
		return
	}

	patient := models.Patient{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Phone:        req.Phone,
		Age:          req.Age,
		Gender:       req.Gender,
	}
	if err := h.db.Create(&patient).Error; err != nil {
		httperr.Internal(c, "failed to create account")
		return
	}

	token, err := h.signToken(patient.ID, middleware.RolePatient)
	if err != nil {
		httperr.Internal(c, "failed to issue token")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorRole: middleware.RolePatient,
		ActorID:   &patient.ID,
		Action:    "patient_registered",
		Entity:    "patient",
		EntityID:  &patient.ID,
	})

	httpresp.Created(c, gin.H{"token": token, "patient": patient})
}

func (h *AuthHandler) LoginPatient(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		httperr.BadRequest(c, "email and password are required")
		return
	}

	var patient models.Patient
	if err := h.db.Where("email = ?", req.Email).First(&patient).Error; err != nil {
		httperr.Unauthorized(c, "invalid credentials")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(patient.PasswordHash), []byte(req.Password)) != nil {
		httperr.Unauthorized(c, "invalid credentials")
		return
	}

	token, err := h.signToken(patient.ID, middleware.RolePatient)
	if err != nil {
		httperr.Internal(c, "failed to issue token")
		return
	}

	httpresp.OK(c, gin.H{"token": token, "patient": patient})
}

// Me returns the profile behind the presented token, whichever role it
// carries.
func (h *AuthHandler) Me(c *gin.Context) {
	id, role := actor(c)

	switch role {
	case middleware.RoleDoctor:
		var doctor models.Doctor
		if err := h.db.Preload("Slots").First(&doctor, id).Error; err != nil {
			httperr.NotFound(c, "doctor not found")
			return
		}
		httpresp.OK(c, doctor)

	case middleware.RolePatient:
		var patient models.Patient
		if err := h.db.First(&patient, id).Error; err != nil {
			httperr.NotFound(c, "patient not found")
			return
		}
		httpresp.OK(c, patient)

	default:
		httperr.Forbidden(c, "unknown role")
	}
}

// ======================================================
// PASSWORD RESET
// ======================================================

type otpRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (h *AuthHandler) RequestOTP(c *gin.Context) {
	var req otpRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		httperr.BadRequest(c, "email and role are required")
		return
	}
	if req.Role != middleware.RoleDoctor && req.Role != middleware.RolePatient {
		httperr.BadRequest(c, "role must be Doctor or Patient")
		return
	}

	if !h.accountExists(req.Role, req.Email) {
		httperr.NotFound(c, "no account found for this email")
		return
	}

	code, err := h.otp.Issue(c.Request.Context(), req.Role, req.Email)
	if err != nil {
		httperr.Internal(c, "failed to issue verification code")
		return
	}

	if err := h.mailer.SendOTP(c.Request.Context(), req.Email, code); err != nil {
		log.Printf("[auth] otp mail to %s failed: %v", req.Email, err)
		httperr.Internal(c, "failed to send verification code")
		return
	}

	httpresp.OK(c, gin.H{"message": "verification code sent"})
}

type resetPasswordRequest struct {
	Email       string `json:"email"`
	Role        string `json:"role"`
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.Email == "" || req.OTP == "" || req.NewPassword == "" {
		httperr.BadRequest(c, "email, role, otp and newPassword are required")
		return
	}
	if req.Role != middleware.RoleDoctor && req.Role != middleware.RolePatient {
		httperr.BadRequest(c, "role must be Doctor or Patient")
		return
	}
	if len(req.NewPassword) < 6 {
		httperr.BadRequest(c, "password must be at least 6 characters")
		return
	}

	ok, err := h.otp.Verify(c.Request.Context(), req.Role, req.Email, req.OTP)
	if err != nil {
		httperr.Internal(c, "failed to verify code")
		return
	}
	if !ok {
		httperr.BadRequest(c, "invalid or expired verification code")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed to process password")
		return
	}

	var res *gorm.DB
	if req.Role == middleware.RoleDoctor {
		res = h.db.Model(&models.Doctor{}).
			Where("email = ?", req.Email).
			Update("password_hash", string(hash))
	} else {
		res = h.db.Model(&models.Patient{}).
			Where("email = ?", req.Email).
			Update("password_hash", string(hash))
	}
	if res.Error != nil {
		httperr.Internal(c, "failed to update password")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "no account found for this email")
		return
	}

	httpresp.OK(c, gin.H{"message": "password updated"})
}

func (h *AuthHandler) accountExists(role, email string) bool {
	var err error
	if role == middleware.RoleDoctor {
		err = h.db.Select("id").Where("email = ?", email).First(&models.Doctor{}).Error
	} else {
		err = h.db.Select("id").Where("email = ?", email).First(&models.Patient{}).Error
	}
	return !errors.Is(err, gorm.ErrRecordNotFound) && err == nil
}
