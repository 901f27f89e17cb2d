package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/batoolShene/DentalDiagnose/internal/core/domain"
	"github.com/batoolShene/DentalDiagnose/internal/core/ports"
)

// PatientService resolves patients by exact identity match.
type PatientService struct {
	repo ports.PatientRepository
	log  zerolog.Logger
}

func NewPatientService(repo ports.PatientRepository, log zerolog.Logger) *PatientService {
	return &PatientService{repo: repo, log: log}
}

// Find returns the patient matching name and birthdate exactly.
func (s *PatientService) Find(ctx context.Context, name string, birthdate time.Time) (*domain.Patient, error) {
	patient, err := s.repo.FindByNameAndBirthdate(ctx, name, birthdate)
	if err != nil {
		return nil, err
	}
	s.log.Debug().Str("name", name).Int64("patient_id", patient.ID).Msg("patient resolved")
	return patient, nil
}

// ReportService lists stored clinical reports.
type ReportService struct {
	repo ports.ReportRepository
	log  zerolog.Logger
}

func NewReportService(repo ports.ReportRepository, log zerolog.Logger) *ReportService {
	return &ReportService{repo: repo, log: log}
}

func (s *ReportService) ListAll(ctx context.Context) ([]*domain.Report, error) {
	return s.repo.ListAll(ctx)
}
