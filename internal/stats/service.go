// Package stats is the read-only reporting layer over the active ledger,
// the archive and the reviews. Everything is computed fresh per request;
// nothing here mutates state.
package stats

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/tabeebak/clinic-scheduler/internal/models"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// ======================================================
// DASHBOARD
// ======================================================

type Dashboard struct {
	TotalAppointments   int64   `json:"totalAppointments"`
	AppointmentsChange  int     `json:"appointmentsChange"`
	TotalPatients       int64   `json:"totalPatients"`
	PatientsChange      int     `json:"patientsChange"`
	TotalRevenue        float64 `json:"totalRevenue"`
	RevenueChange       int     `json:"revenueChange"`
	AverageRating       float64 `json:"averageRating"`
	RatingChange        int     `json:"ratingChange"`
	AvailableSlotsCount int64   `json:"availableSlotsCount"`
	IncludeArchived     bool    `json:"includeArchived"`
}

func (s *Service) Dashboard(ctx context.Context, doctorID uint, now time.Time) (*Dashboard, error) {
	currentMonthStart := startOfMonth(now)
	previousMonthStart := startOfMonth(currentMonthStart.AddDate(0, -1, 0))

	total, err := s.appointmentCount(ctx, doctorID, nil, nil)
	if err != nil {
		return nil, err
	}
	currentMonth, err := s.appointmentCount(ctx, doctorID, &currentMonthStart, nil)
	if err != nil {
		return nil, err
	}
	previousMonth, err := s.appointmentCount(ctx, doctorID, &previousMonthStart, &currentMonthStart)
	if err != nil {
		return nil, err
	}

	totalPatients, err := s.distinctPatients(ctx, doctorID, nil, nil)
	if err != nil {
		return nil, err
	}
	currentPatients, err := s.distinctPatients(ctx, doctorID, &currentMonthStart, nil)
	if err != nil {
		return nil, err
	}
	previousPatients, err := s.distinctPatients(ctx, doctorID, &previousMonthStart, &currentMonthStart)
	if err != nil {
		return nil, err
	}

	currentRevenue, err := s.revenue(ctx, doctorID, &currentMonthStart, nil)
	if err != nil {
		return nil, err
	}
	previousRevenue, err := s.revenue(ctx, doctorID, &previousMonthStart, &currentMonthStart)
	if err != nil {
		return nil, err
	}

	averageRating, err := s.averageRating(ctx, doctorID, nil, nil)
	if err != nil {
		return nil, err
	}
	previousRating, err := s.averageRating(ctx, doctorID, &previousMonthStart, &currentMonthStart)
	if err != nil {
		return nil, err
	}

	var availableSlots int64
	if err := s.db.WithContext(ctx).
		Model(&models.Slot{}).
		Where("doctor_id = ? AND is_available = ?", doctorID, true).
		Count(&availableSlots).Error; err != nil {
		return nil, err
	}

	return &Dashboard{
		TotalAppointments:   total,
		AppointmentsChange:  GrowthPercent(float64(currentMonth), float64(previousMonth)),
		TotalPatients:       totalPatients,
		PatientsChange:      GrowthPercent(float64(currentPatients), float64(previousPatients)),
		TotalRevenue:        currentRevenue,
		RevenueChange:       GrowthPercent(currentRevenue, previousRevenue),
		AverageRating:       RoundRating(averageRating),
		RatingChange:        RatingPercent(averageRating, previousRating),
		AvailableSlotsCount: availableSlots,
		IncludeArchived:     true,
	}, nil
}

// ======================================================
// APPOINTMENT SERIES
// ======================================================

type Series struct {
	Labels          []string `json:"labels"`
	Scheduled       []int64  `json:"scheduled"`
	Completed       []int64  `json:"completed"`
	Cancelled       []int64  `json:"cancelled"`
	IncludeArchived bool     `json:"includeArchived"`
}

type AppointmentSeries struct {
	Weekly  Series `json:"weekly"`
	Monthly Series `json:"monthly"`
}

func (s *Service) AppointmentSeries(ctx context.Context, doctorID uint, now time.Time) (*AppointmentSeries, error) {
	weekly := Series{IncludeArchived: true}
	for i := 6; i >= 0; i-- {
		day := startOfDay(now.AddDate(0, 0, -i))
		next := day.AddDate(0, 0, 1)

		scheduled, completed, cancelled, err := s.bucketCounts(ctx, doctorID, day, next)
		if err != nil {
			return nil, err
		}

		weekly.Labels = append(weekly.Labels, day.Format("Mon"))
		weekly.Scheduled = append(weekly.Scheduled, scheduled)
		weekly.Completed = append(weekly.Completed, completed)
		weekly.Cancelled = append(weekly.Cancelled, cancelled)
	}

	monthly := Series{IncludeArchived: true}
	for m := time.January; m <= now.Month(); m++ {
		start := time.Date(now.Year(), m, 1, 0, 0, 0, 0, now.Location())
		end := start.AddDate(0, 1, 0)

		scheduled, completed, cancelled, err := s.bucketCounts(ctx, doctorID, start, end)
		if err != nil {
			return nil, err
		}

		monthly.Labels = append(monthly.Labels, monthLabel(m))
		monthly.Scheduled = append(monthly.Scheduled, scheduled)
		monthly.Completed = append(monthly.Completed, completed)
		monthly.Cancelled = append(monthly.Cancelled, cancelled)
	}

	return &AppointmentSeries{Weekly: weekly, Monthly: monthly}, nil
}

// ======================================================
// NEW vs RETURNING PATIENTS
// ======================================================

type SplitSeries struct {
	Archive    []int64 `json:"archive"`
	NotArchive []int64 `json:"notArchive"`
}

type PatientSeries struct {
	Labels            []string    `json:"labels"`
	NewPatients       SplitSeries `json:"newPatients"`
	ReturningPatients SplitSeries `json:"returningPatients"`
}

// A patient is new in month M when their earliest visit falls inside M,
// returning when they have a visit in M but an earlier first visit.
func (s *Service) PatientSeries(ctx context.Context, doctorID uint, now time.Time) (*PatientSeries, error) {
	out := &PatientSeries{}

	for i := 5; i >= 0; i-- {
		start := startOfMonth(now.AddDate(0, -i, 0))
		end := start.AddDate(0, 1, 0)
		out.Labels = append(out.Labels, monthLabel(start.Month()))

		newArchive, returningArchive, err := s.patientSplit(ctx,
			"archive_visits", "completed_at", doctorID, start, end)
		if err != nil {
			return nil, err
		}
		newActive, returningActive, err := s.patientSplit(ctx,
			"appointments", "created_at", doctorID, start, end)
		if err != nil {
			return nil, err
		}

		out.NewPatients.Archive = append(out.NewPatients.Archive, newArchive)
		out.NewPatients.NotArchive = append(out.NewPatients.NotArchive, newActive)
		out.ReturningPatients.Archive = append(out.ReturningPatients.Archive, returningArchive)
		out.ReturningPatients.NotArchive = append(out.ReturningPatients.NotArchive, returningActive)
	}

	return out, nil
}

// ======================================================
// REVENUE BY MONTH
// ======================================================

type RevenueSeries struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

func (s *Service) RevenueSeries(ctx context.Context, doctorID uint, now time.Time) (*RevenueSeries, error) {
	from := now.AddDate(0, -12, 0)

	type row struct {
		Year  int
		Month int
		Total float64
	}

	var active []row
	if err := s.db.WithContext(ctx).Raw(`
		SELECT EXTRACT(YEAR FROM created_at)::int AS year,
		       EXTRACT(MONTH FROM created_at)::int AS month,
		       COALESCE(SUM(price), 0) AS total
		FROM appointments
		WHERE doctor_id = ? AND status = 'completed' AND created_at >= ?
		GROUP BY 1, 2`, doctorID, from).
		Scan(&active).Error; err != nil {
		return nil, err
	}

	var archived []row
	if err := s.db.WithContext(ctx).Raw(`
		SELECT EXTRACT(YEAR FROM completed_at)::int AS year,
		       EXTRACT(MONTH FROM completed_at)::int AS month,
		       COALESCE(SUM(price), 0) AS total
		FROM archive_visits
		WHERE doctor_id = ? AND completed_at >= ?
		GROUP BY 1, 2`, doctorID, from).
		Scan(&archived).Error; err != nil {
		return nil, err
	}

	merged := map[[2]int]float64{}
	for _, r := range append(active, archived...) {
		merged[[2]int{r.Year, r.Month}] += r.Total
	}

	keys := make([][2]int, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i][0] != keys[j][0] {
			return keys[i][0] < keys[j][0]
		}
		return keys[i][1] < keys[j][1]
	})

	out := &RevenueSeries{}
	for _, k := range keys {
		out.Labels = append(out.Labels, fmt.Sprintf("%s %d", monthLabel(time.Month(k[1])), k[0]))
		out.Data = append(out.Data, merged[k])
	}
	return out, nil
}

// ======================================================
// RATING BY MONTH
// ======================================================

type RatingSeries struct {
	Labels  []string  `json:"labels"`
	Ratings []float64 `json:"ratings"`
}

// Reviews are never archived; this reads the review ledger only.
func (s *Service) RatingSeries(ctx context.Context, doctorID uint, now time.Time) (*RatingSeries, error) {
	out := &RatingSeries{}

	for i := 5; i >= 0; i-- {
		start := startOfMonth(now.AddDate(0, -i, 0))
		end := start.AddDate(0, 1, 0)
		out.Labels = append(out.Labels, monthLabel(start.Month()))

		avg, err := s.averageRating(ctx, doctorID, &start, &end)
		if err != nil {
			return nil, err
		}
		out.Ratings = append(out.Ratings, RoundRating(avg))
	}

	return out, nil
}

// ======================================================
// SLOT COUNTS
// ======================================================

type SlotCounts struct {
	Available   int64 `json:"available"`
	Unavailable int64 `json:"unavailable"`
}

func (s *Service) SlotCounts(ctx context.Context, doctorID uint) (*SlotCounts, error) {
	out := &SlotCounts{}

	if err := s.db.WithContext(ctx).
		Model(&models.Slot{}).
		Where("doctor_id = ? AND is_available = ?", doctorID, true).
		Count(&out.Available).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).
		Model(&models.Slot{}).
		Where("doctor_id = ? AND is_available = ?", doctorID, false).
		Count(&out.Unavailable).Error; err != nil {
		return nil, err
	}

	return out, nil
}

// ======================================================
// QUERY HELPERS
// ======================================================

// appointmentCount unions active (by created_at) and archived (by
// completed_at) records for a doctor over an optional half-open range.
func (s *Service) appointmentCount(ctx context.Context, doctorID uint, from, to *time.Time) (int64, error) {
	active := s.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("doctor_id = ?", doctorID)
	active = timeRange(active, "created_at", from, to)

	var activeCount int64
	if err := active.Count(&activeCount).Error; err != nil {
		return 0, err
	}

	archived := s.db.WithContext(ctx).
		Model(&models.ArchiveVisit{}).
		Where("doctor_id = ?", doctorID)
	archived = timeRange(archived, "completed_at", from, to)

	var archivedCount int64
	if err := archived.Count(&archivedCount).Error; err != nil {
		return 0, err
	}

	return activeCount + archivedCount, nil
}

func (s *Service) distinctPatients(ctx context.Context, doctorID uint, from, to *time.Time) (int64, error) {
	query := `
		SELECT COUNT(DISTINCT patient_id) FROM (
			SELECT patient_id FROM appointments
			WHERE doctor_id = @doctor
			  AND (@from::timestamptz IS NULL OR created_at >= @from)
			  AND (@to::timestamptz IS NULL OR created_at < @to)
			UNION ALL
			SELECT patient_id FROM archive_visits
			WHERE doctor_id = @doctor
			  AND (@from::timestamptz IS NULL OR completed_at >= @from)
			  AND (@to::timestamptz IS NULL OR completed_at < @to)
		) p`

	var count int64
	err := s.db.WithContext(ctx).Raw(query,
		map[string]any{"doctor": doctorID, "from": from, "to": to},
	).Scan(&count).Error
	return count, err
}

// revenue sums completed-appointment prices: archived visits plus any
// completed rows still sitting in the active ledger.
func (s *Service) revenue(ctx context.Context, doctorID uint, from, to *time.Time) (float64, error) {
	active := s.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("doctor_id = ? AND status = 'completed'", doctorID)
	active = timeRange(active, "created_at", from, to)

	var activeSum float64
	if err := active.
		Select("COALESCE(SUM(price), 0)").
		Scan(&activeSum).Error; err != nil {
		return 0, err
	}

	archived := s.db.WithContext(ctx).
		Model(&models.ArchiveVisit{}).
		Where("doctor_id = ?", doctorID)
	archived = timeRange(archived, "completed_at", from, to)

	var archivedSum float64
	if err := archived.
		Select("COALESCE(SUM(price), 0)").
		Scan(&archivedSum).Error; err != nil {
		return 0, err
	}

	return activeSum + archivedSum, nil
}

func (s *Service) averageRating(ctx context.Context, doctorID uint, from, to *time.Time) (float64, error) {
	q := s.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("doctor_id = ?", doctorID)
	q = timeRange(q, "created_at", from, to)

	var avg float64
	err := q.Select("COALESCE(AVG(rating), 0)").Scan(&avg).Error
	return avg, err
}

func (s *Service) bucketCounts(ctx context.Context, doctorID uint, from, to time.Time) (scheduled, completed, cancelled int64, err error) {
	scheduled, err = s.appointmentCount(ctx, doctorID, &from, &to)
	if err != nil {
		return
	}

	// Completed visits live in the archive; any still-active completed
	// rows are counted too for safety.
	var activeCompleted, archivedCompleted int64
	if err = s.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("doctor_id = ? AND status = 'completed' AND created_at >= ? AND created_at < ?",
			doctorID, from, to).
		Count(&activeCompleted).Error; err != nil {
		return
	}
	if err = s.db.WithContext(ctx).
		Model(&models.ArchiveVisit{}).
		Where("doctor_id = ? AND completed_at >= ? AND completed_at < ?",
			doctorID, from, to).
		Count(&archivedCompleted).Error; err != nil {
		return
	}
	completed = activeCompleted + archivedCompleted

	// Cancellations are never archived, the active ledger is the only
	// source.
	err = s.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("doctor_id = ? AND status = 'cancelled' AND created_at >= ? AND created_at < ?",
			doctorID, from, to).
		Count(&cancelled).Error
	return
}

func (s *Service) patientSplit(ctx context.Context, table, timeCol string, doctorID uint, start, end time.Time) (newCount, returningCount int64, err error) {
	newQuery := `
		SELECT COUNT(*) FROM (
			SELECT patient_id, MIN(` + timeCol + `) AS first_visit
			FROM ` + table + `
			WHERE doctor_id = ?
			GROUP BY patient_id
		) t WHERE first_visit >= ? AND first_visit < ?`

	if err = s.db.WithContext(ctx).
		Raw(newQuery, doctorID, start, end).
		Scan(&newCount).Error; err != nil {
		return
	}

	returningQuery := `
		SELECT COUNT(DISTINCT a.patient_id)
		FROM ` + table + ` a
		WHERE a.doctor_id = ? AND a.` + timeCol + ` >= ? AND a.` + timeCol + ` < ?
		AND (
			SELECT MIN(b.` + timeCol + `) FROM ` + table + ` b
			WHERE b.doctor_id = a.doctor_id AND b.patient_id = a.patient_id
		) < ?`

	err = s.db.WithContext(ctx).
		Raw(returningQuery, doctorID, start, end, start).
		Scan(&returningCount).Error
	return
}

func timeRange(q *gorm.DB, col string, from, to *time.Time) *gorm.DB {
	if from != nil {
		q = q.Where(col+" >= ?", *from)
	}
	if to != nil {
		q = q.Where(col+" < ?", *to)
	}
	return q
}
