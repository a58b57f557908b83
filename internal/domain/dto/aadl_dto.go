package dto

// CreateDemandeDTO is the body of a housing-application request.
type CreateDemandeDTO struct {
	Name       string `json:"name"`
	FamilyName string `json:"familyname,omitempty"`
	Phone      string `json:"phone"`
}
