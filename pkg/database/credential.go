package database

import "time"

// Credential holds the encrypted bank API token of one account. The plaintext
// token is never stored.
type Credential struct {
	AccountID      string     `json:"accountId"`
	EncryptedToken string     `json:"encryptedToken"`
	LastSyncAt     *time.Time `json:"lastSyncAt,omitempty"`
	LastSyncMarker *time.Time `json:"lastSyncMarker,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}
