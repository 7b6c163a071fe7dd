package models

import "github.com/google/uuid"

// NormalizeID parses id as a UUID and returns its canonical lowercase form.
// Every id crossing the API boundary goes through it, so PairKey compares
// like with like.
func NormalizeID(id string) (string, bool) {
	if id == "" {
		return "", false
	}
	u, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	return u.String(), true
}
