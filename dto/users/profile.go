package users

import "strings"

type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Photo string `json:"photo"`

	// Password fields are declared only so we can reject them: profile
	// updates must never touch credentials.
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

func (r *UpdateProfileRequest) ContainsPasswordFields() bool {
	return r.Password != "" || r.PasswordConfirm != ""
}

func (r *UpdateProfileRequest) Validate() map[string]string {
	errors := make(map[string]string)
	if r.Name != "" && len(r.Name) > 100 {
		errors["name"] = "name must be at most 100 characters"
	}
	if r.Email != "" && !strings.Contains(r.Email, "@") {
		errors["email"] = "must be a valid email address"
	}
	return errors
}
