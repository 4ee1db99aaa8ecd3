package model

import "time"

// Medication is a tracked medication with its free-form schedule label.
// The schedule is persisted as time_of_day and never interpreted.
// LastTaken is derived from the dose log and stays nil until the first dose is recorded.
type Medication struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Dose      string     `json:"dose"`
	Schedule  string     `json:"schedule"`
	Notes     string     `json:"notes"`
	CreatedAt time.Time  `json:"created_at"`
	LastTaken *time.Time `json:"last_taken"`
}

// MedicationInput is the payload accepted when creating or editing a medication.
type MedicationInput struct {
	Name     string `json:"name" form:"name" validate:"required,max=60"`
	Dose     string `json:"dose" form:"dose" validate:"required,max=60"`
	Schedule string `json:"schedule" form:"schedule" validate:"required,max=40"`
	Notes    string `json:"notes" form:"notes"`
}
