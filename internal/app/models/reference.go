package models

// Reference is the `{id: "..."}` shape the API uses for related records.
type Reference struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

func (r *Reference) GetID() string {
	if r == nil {
		return ""
	}
	return r.ID
}

func (r *Reference) DisplayName() string {
	if r == nil {
		return ""
	}
	if r.Name != "" {
		return r.Name
	}
	if r.Email != "" {
		return r.Email
	}
	return r.ID
}
