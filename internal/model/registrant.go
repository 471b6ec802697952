package model

// Registrant is the identity submitted with every registration in a run.
type Registrant struct {
	Name        string
	GovID       string
	Phone       string
	Email       string
	DateOfBirth string
	Age         int
}
