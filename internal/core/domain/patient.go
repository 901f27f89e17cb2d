package domain

import "time"

// Patient is a read-mostly clinical record, looked up by exact name and
// birthdate match.
type Patient struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Birthdate time.Time `json:"birthdate"`
	Gender    string    `json:"gender,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
}

// Report is a stored clinical report. The observed API surface only lists
// reports; creation happens out of band.
type Report struct {
	ID          int64     `json:"id"`
	PatientID   int64     `json:"patient_id"`
	PatientName string    `json:"patient_name,omitempty"`
	DoctorID    int64     `json:"doctor_id"`
	Date        time.Time `json:"date"`
	ReportType  string    `json:"report_type,omitempty"`
	Details     string    `json:"details,omitempty"`
	FilePath    string    `json:"report_file_path,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
