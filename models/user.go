package models

type UserId string

type User struct {
	UserId         UserId
	Email          string
	OrganizationId string
	FirstName      string
	LastName       string
}
