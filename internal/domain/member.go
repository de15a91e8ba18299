package domain

import "time"

// MemberSummary is the typed projection of a member row served to the admin
// listing and the register export. Variant-specific columns stay inside the
// engine as Records and never cross this boundary.
type MemberSummary struct {
	ID          int64     `json:"id"`
	Variant     string    `json:"variant"`
	TaxID       string    `json:"taxId"`
	CompanyName string    `json:"companyName"`
	Email       string    `json:"email"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}
