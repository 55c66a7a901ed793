package models

// Table is read-only reference data for seat selection. The busy flag is
// advisory only: the backend rejects a real conflict on submission.
type Table struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	IsBusy   bool   `json:"is_busy"`
}
