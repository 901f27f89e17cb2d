package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/batoolShene/DentalDiagnose/internal/core/domain"
)

type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

func (r *PatientRepository) FindByNameAndBirthdate(ctx context.Context, name string, birthdate time.Time) (*domain.Patient, error) {
	var row patientRow
	err := r.db.WithContext(ctx).
		Where("name = ? AND birthdate = ?", name, birthdate.Format("2006-01-02")).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPatientNotFound
		}
		return nil, fmt.Errorf("find patient: %w", err)
	}
	return row.toDomain(), nil
}
