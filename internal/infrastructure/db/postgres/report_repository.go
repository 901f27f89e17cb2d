package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/batoolShene/DentalDiagnose/internal/core/domain"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

type reportJoinedRow struct {
	ID          int64
	PatientID   int64
	PatientName string
	DoctorID    int64
	Date        time.Time
	ReportType  string
	Details     string
	FilePath    string
	CreatedAt   time.Time
}

func (r *ReportRepository) ListAll(ctx context.Context) ([]*domain.Report, error) {
	var rows []reportJoinedRow
	err := r.db.WithContext(ctx).Model(&reportRow{}).
		Select("reports.id, reports.patient_id, COALESCE(patients.name, '') AS patient_name, " +
			"reports.doctor_id, reports.date, reports.report_type, reports.details, " +
			"reports.file_path, reports.created_at").
		Joins("LEFT JOIN patients ON patients.id = reports.patient_id").
		Order("reports.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}

	reports := make([]*domain.Report, 0, len(rows))
	for _, row := range rows {
		reports = append(reports, &domain.Report{
			ID:          row.ID,
			PatientID:   row.PatientID,
			PatientName: row.PatientName,
			DoctorID:    row.DoctorID,
			Date:        row.Date,
			ReportType:  row.ReportType,
			Details:     row.Details,
			FilePath:    row.FilePath,
			CreatedAt:   row.CreatedAt,
		})
	}
	return reports, nil
}
