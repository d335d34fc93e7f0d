// Package models defines server-side data models persisted in the database.
package models

import "time"

// Role separates account kinds: professors supervise students and may read
// (never write) their records.
type Role string

const (
	RoleProfessor Role = "professor"
	RoleStudent   Role = "student"
)

// NotificationSettings controls which reminder categories a delivery
// service may push for this user. Stored as JSONB.
type NotificationSettings struct {
	Measurements bool `json:"measurements"`
	Photos       bool `json:"photos"`
	Reminders    bool `json:"reminders"`
}

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash []byte
	Role         Role
	// ProfessorID links a student to the professor who registered them.
	// Empty for professors.
	ProfessorID string
	// FCMToken is the push-notification device token, if the client
	// registered one. Delivery itself is out of scope.
	FCMToken             string
	NotificationSettings NotificationSettings
	CreatedAt            time.Time
}
