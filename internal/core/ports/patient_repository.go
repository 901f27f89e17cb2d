package ports

import (
	"context"
	"time"

	"github.com/batoolShene/DentalDiagnose/internal/core/domain"
)

// PatientRepository defines read access to patient records.
type PatientRepository interface {
	// FindByNameAndBirthdate returns the first patient matching both fields
	// exactly, or domain.ErrPatientNotFound.
	FindByNameAndBirthdate(ctx context.Context, name string, birthdate time.Time) (*domain.Patient, error)
}

// ReportRepository defines read access to clinical reports.
type ReportRepository interface {
	ListAll(ctx context.Context) ([]*domain.Report, error)
}

// ProcessingLog records image-processing operations. Writes are best-effort:
// a failed append must not fail the request that triggered it.
type ProcessingLog interface {
	Append(ctx context.Context, entry domain.ProcessingEntry) error
	Recent(ctx context.Context) ([]domain.ProcessingEntry, error)
}
