package id

import "github.com/google/uuid"

// New returns a random UUIDv4 string, the public identifier format for
// adverts, products and staff across the platform.
func New() string {
	return uuid.NewString()
}

// Valid reports whether s is a well-formed UUID.
func Valid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
