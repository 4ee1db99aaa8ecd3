package model

import "time"

// DoseLog records a single "taken" event for a medication.
type DoseLog struct {
	ID           string    `json:"id"`
	MedicationID string    `json:"medication_id"`
	TakenAt      time.Time `json:"taken_at"`
}

// HistoryEntry is a dose log joined with the medication it belongs to.
type HistoryEntry struct {
	TakenAt  time.Time `json:"taken_at"`
	Name     string    `json:"name"`
	Dose     string    `json:"dose"`
	Schedule string    `json:"schedule"`
}
