package domain

import "time"

type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // argon2id, PHC encoded. Never leaves the server.
	CreatedAt    time.Time
}
