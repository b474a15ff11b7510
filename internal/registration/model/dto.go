package model

import "time"

// UpdateSettingsRequest carries a partial update of the registration gate.
// Omitted fields keep their current value.
type UpdateSettingsRequest struct {
	IsRegistrationOpen  *bool      `json:"is_registration_open"`
	RegistrationEndDate *time.Time `json:"registration_end_date"`
	// ClearEndDate removes the cutoff entirely.
	ClearEndDate bool `json:"clear_end_date"`
}

// SettingsResponse is the public shape of the registration gate.
type SettingsResponse struct {
	IsRegistrationOpen  bool       `json:"is_registration_open"`
	RegistrationEndDate *time.Time `json:"registration_end_date,omitempty"`
	// EffectiveOpen is the combined manual-flag + cutoff decision.
	EffectiveOpen bool `json:"effective_open"`
}

// NewSettingsResponse builds a SettingsResponse from the settings row.
func NewSettingsResponse(s *RegistrationSettings, now time.Time) *SettingsResponse {
	return &SettingsResponse{
		IsRegistrationOpen:  s.IsRegistrationOpen,
		RegistrationEndDate: s.RegistrationEndDate,
		EffectiveOpen:       s.EffectiveOpen(now),
	}
}
