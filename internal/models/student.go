package models

// Student is the identity record owned by the fest API.
type Student struct {
	RollNumber string `json:"rollNumber"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}
