package postgres

import (
	"time"

	"github.com/batoolShene/DentalDiagnose/internal/core/domain"
)

type userRow struct {
	ID           int64     `gorm:"primaryKey"`
	Name         string    `gorm:"size:255;not null"`
	Email        string    `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash;size:255;not null"`
	Role         string    `gorm:"size:32;not null"`
	Status       string    `gorm:"size:32;not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (userRow) TableName() string { return "users" }

func (r userRow) toDomain() *domain.User {
	return &domain.User{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Role:         domain.Role(r.Role),
		Status:       domain.Status(r.Status),
		CreatedAt:    r.CreatedAt,
	}
}

type activityRow struct {
	ID          int64     `gorm:"primaryKey"`
	UserID      *int64    `gorm:"index"`
	Action      string    `gorm:"size:64;not null"`
	Description string    `gorm:"size:512"`
	Timestamp   time.Time `gorm:"index;not null"`
}

func (activityRow) TableName() string { return "activity_logs" }

type patientRow struct {
	ID        int64     `gorm:"primaryKey"`
	Name      string    `gorm:"size:255;not null;index"`
	Birthdate time.Time `gorm:"type:date;not null"`
	Gender    string    `gorm:"size:16"`
	Phone     string    `gorm:"size:32"`
	Email     string    `gorm:"size:255"`
}

func (patientRow) TableName() string { return "patients" }

func (r patientRow) toDomain() *domain.Patient {
	return &domain.Patient{
		ID:        r.ID,
		Name:      r.Name,
		Birthdate: r.Birthdate,
		Gender:    r.Gender,
		Phone:     r.Phone,
		Email:     r.Email,
	}
}

type reportRow struct {
	ID         int64     `gorm:"primaryKey"`
	PatientID  int64     `gorm:"index;not null"`
	DoctorID   int64     `gorm:"index"`
	Date       time.Time `gorm:"type:date"`
	ReportType string    `gorm:"size:64"`
	Details    string    `gorm:"type:text"`
	FilePath   string    `gorm:"size:512"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (reportRow) TableName() string { return "reports" }
