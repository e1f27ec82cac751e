package model

import "github.com/google/uuid"

// Entry is a user-created title/body pair shown in the home list.
// ID is the identity key; titles may repeat.
type Entry struct {
	ID    string
	Title string
	Body  string
}

// NewEntry builds an entry with a fresh ID.
func NewEntry(title, body string) Entry {
	return Entry{ID: uuid.NewString(), Title: title, Body: body}
}

// Credentials are what the login and registration forms collect.
// They live only as long as one submit.
type Credentials struct {
	Email    string
	Password string
}
