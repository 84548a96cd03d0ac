// Command seed fills a development database with plausible doctors,
// patients, slots, appointments and reviews. Never run it against
// anything you care about; it writes straight into the configured DB.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tabeebak/clinic-scheduler/internal/config"
	"github.com/tabeebak/clinic-scheduler/internal/db"
	"github.com/tabeebak/clinic-scheduler/internal/models"
	"github.com/tabeebak/clinic-scheduler/internal/refdata"
	"github.com/tabeebak/clinic-scheduler/internal/stats"
)

const (
	doctorCount  = 15
	patientCount = 40

	seedPassword = "password123"
)

var weekDays = []string{
	"sunday", "monday", "tuesday", "wednesday", "thursday",
}

var visitTypes = []string{"consultation", "procedure", "test", "medication"}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	cfg := config.Load()
	database := db.NewDB(cfg)
	lists := refdata.Load()

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	doctors := seedDoctors(database, lists, string(hash))
	patients := seedPatients(database, string(hash))
	seedAppointments(database, doctors, patients)
	seedReviews(database, doctors, patients)

	log.Printf("seeded %d doctors, %d patients (password %q)",
		len(doctors), len(patients), seedPassword)
}

func seedDoctors(database *gorm.DB, lists *refdata.Lists, hash string) []models.Doctor {
	specialties := lists.Specialties.Entries()
	governorates := lists.Governorates.Entries()

	doctors := make([]models.Doctor, 0, doctorCount)
	for i := 0; i < doctorCount; i++ {
		lat := gofakeit.Float64Range(29.8, 31.3)
		lng := gofakeit.Float64Range(30.0, 32.3)

		doctor := models.Doctor{
			Name:         "Dr. " + gofakeit.Name(),
			Email:        fmt.Sprintf("doctor%d@example.com", i+1),
			PasswordHash: hash,
			Specialty:    specialties[rand.Intn(len(specialties))].Value,
			Governorate:  governorates[rand.Intn(len(governorates))].Value,
			Address:      gofakeit.Street(),
			Phone:        gofakeit.Phone(),
			Age:          gofakeit.Number(30, 65),
			Bio:          gofakeit.Paragraph(1, 3, 12, " "),
			Experience:   gofakeit.Number(2, 35),
			Lat:          &lat,
			Lng:          &lng,
		}
		if err := database.Create(&doctor).Error; err != nil {
			log.Fatalf("create doctor: %v", err)
		}

		for s := 0; s < gofakeit.Number(3, 8); s++ {
			startHour := gofakeit.Number(9, 16)
			slot := models.Slot{
				ID:           uuid.NewString(),
				DoctorID:     doctor.ID,
				Day:          weekDays[rand.Intn(len(weekDays))],
				StartTime:    fmt.Sprintf("%02d:00", startHour),
				EndTime:      fmt.Sprintf("%02d:00", startHour+1),
				SlotDuration: 30,
				IsAvailable:  true,
				Type:         visitTypes[rand.Intn(len(visitTypes))],
			}
			if err := database.Create(&slot).Error; err != nil {
				log.Fatalf("create slot: %v", err)
			}
			doctor.Slots = append(doctor.Slots, slot)
		}

		doctors = append(doctors, doctor)
	}
	return doctors
}

func seedPatients(database *gorm.DB, hash string) []models.Patient {
	patients := make([]models.Patient, 0, patientCount)
	for i := 0; i < patientCount; i++ {
		patient := models.Patient{
			Name:         gofakeit.Name(),
			Email:        fmt.Sprintf("patient%d@example.com", i+1),
			PasswordHash: hash,
			Phone:        gofakeit.Phone(),
			Age:          gofakeit.Number(18, 80),
			Gender:       gofakeit.RandomString([]string{"male", "female"}),
		}
		if err := database.Create(&patient).Error; err != nil {
			log.Fatalf("create patient: %v", err)
		}
		patients = append(patients, patient)
	}
	return patients
}

// seedAppointments books roughly half of every doctor's slots and
// completes or cancels a share of them, so the archive and the stats
// endpoints have something to report.
func seedAppointments(database *gorm.DB, doctors []models.Doctor, patients []models.Patient) {
	for _, doctor := range doctors {
		for i, slot := range doctor.Slots {
			if i%2 != 0 {
				continue
			}
			patient := patients[rand.Intn(len(patients))]

			ap := models.Appointment{
				DoctorID:  doctor.ID,
				PatientID: patient.ID,
				SlotID:    slot.ID,
				Type:      slot.Type,
				Reason:    gofakeit.Sentence(8),
				Day:       slot.Day,
				StartTime: slot.StartTime,
				EndTime:   slot.EndTime,
				Price:     float64(gofakeit.Number(100, 600)),
				Status:    "confirmed",
			}
			if err := database.Create(&ap).Error; err != nil {
				log.Fatalf("create appointment: %v", err)
			}
			if err := database.Model(&models.Slot{}).
				Where("id = ?", slot.ID).
				Update("is_available", false).Error; err != nil {
				log.Fatalf("hold slot: %v", err)
			}

			switch gofakeit.Number(0, 2) {
			case 0:
				completeAppointment(database, &ap, &doctor, &patient)
			case 1:
				cancelAppointment(database, &ap, slot.ID)
			}
		}
	}
}

func completeAppointment(database *gorm.DB, ap *models.Appointment, doctor *models.Doctor, patient *models.Patient) {
	completedAt := time.Now().AddDate(0, 0, -gofakeit.Number(1, 120))

	err := database.Transaction(func(tx *gorm.DB) error {
		visit := models.ArchiveVisit{
			OriginalAppointmentID: ap.ID,
			DoctorID:              ap.DoctorID,
			PatientID:             ap.PatientID,
			Type:                  ap.Type,
			Reason:                ap.Reason,
			Day:                   ap.Day,
			StartTime:             ap.StartTime,
			EndTime:               ap.EndTime,
			Price:                 ap.Price,
			DoctorName:            doctor.Name,
			DoctorSpecialty:       doctor.Specialty,
			PatientName:           patient.Name,
			PatientPhone:          patient.Phone,
			CompletedAt:           completedAt,
		}
		if err := tx.Create(&visit).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.CompletedVisitRef{
			PatientID:      ap.PatientID,
			ArchiveVisitID: visit.ID,
		}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Appointment{}, ap.ID).Error
	})
	if err != nil {
		log.Fatalf("complete appointment: %v", err)
	}
}

func cancelAppointment(database *gorm.DB, ap *models.Appointment, slotID string) {
	now := time.Now()
	err := database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Slot{}).
			Where("id = ?", slotID).
			Update("is_available", true).Error; err != nil {
			return err
		}
		return tx.Model(&models.Appointment{}).
			Where("id = ?", ap.ID).
			Updates(map[string]any{
				"status":       "cancelled",
				"cancelled_at": now,
			}).Error
	})
	if err != nil {
		log.Fatalf("cancel appointment: %v", err)
	}
}

func seedReviews(database *gorm.DB, doctors []models.Doctor, patients []models.Patient) {
	for _, doctor := range doctors {
		reviewers := rand.Perm(len(patients))[:gofakeit.Number(0, 8)]
		for _, idx := range reviewers {
			review := models.Review{
				DoctorID:  doctor.ID,
				PatientID: patients[idx].ID,
				Rating:    gofakeit.Number(1, 5),
				Comment:   gofakeit.Sentence(10),
			}
			if err := database.Create(&review).Error; err != nil {
				log.Fatalf("create review: %v", err)
			}
		}

		var avg float64
		if err := database.Model(&models.Review{}).
			Where("doctor_id = ?", doctor.ID).
			Select("COALESCE(AVG(rating), 0)").
			Scan(&avg).Error; err != nil {
			log.Fatalf("average rating: %v", err)
		}
		if err := database.Model(&models.Doctor{}).
			Where("id = ?", doctor.ID).
			Update("average_rating", stats.RoundRating(avg)).Error; err != nil {
			log.Fatalf("update rating: %v", err)
		}
	}
}
