// ABOUTME: Profile represents the single child profile for this installation
// ABOUTME: Its presence is the signal that onboarding is complete
package models

import "time"

// ProfileID is the fixed row id of the singleton profile
const ProfileID = "profile"

// MaxProfileNameLen bounds the display name length
const MaxProfileNameLen = 50

// Profile holds the child's display name and birth date.
// At most one profile exists; Birthdate is a civil date.
type Profile struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Birthdate  time.Time `json:"birthdate"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}
