package models

type Organization struct {
	Id   string
	Name string
}

type CreateOrganizationInput struct {
	Name string
}

type UpdateOrganizationInput struct {
	Id   string
	Name *string
}
