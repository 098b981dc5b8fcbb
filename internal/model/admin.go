package model

import "time"

// Admin is one administrator credential record in the admins document.
type Admin struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Audit action labels written by AdminService.
const (
	ActionLogin      = "Login"
	ActionRemoveUser = "Remove User"
)

// AuditEntry is one immutable record in the admin audit log.
type AuditEntry struct {
	AdminUsername string `json:"admin_username"`
	Action        string `json:"action"`
	Details       string `json:"details"`
	Timestamp     string `json:"timestamp"`
}

// NewAuditEntry stamps an audit entry with the given clock time.
func NewAuditEntry(adminUsername, action, details string, now time.Time) AuditEntry {
	return AuditEntry{
		AdminUsername: adminUsername,
		Action:        action,
		Details:       details,
		Timestamp:     now.Format(TimestampFormat),
	}
}
