package models

import "strings"

// ValidationError reports the first field that violates the schema.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Normalize trims every text field the way the stored schema does.
func (a *AboutUs) Normalize() {
	a.Title = strings.TrimSpace(a.Title)
	a.Subtitle = strings.TrimSpace(a.Subtitle)
	a.Description = strings.TrimSpace(a.Description)
	a.SecondDescription = strings.TrimSpace(a.SecondDescription)
	a.CompanyDescription = strings.TrimSpace(a.CompanyDescription)
	a.Images.Normalize()
}

// Validate checks required text fields and non-negative counts. Image
// fields are free-form: empty, data URI or URL.
func (a *AboutUs) Validate() error {
	required := []struct {
		field, value, msg string
	}{
		{"title", a.Title, "Title is required"},
		{"subtitle", a.Subtitle, "Subtitle is required"},
		{"description", a.Description, "Description is required"},
		{"secondDescription", a.SecondDescription, "Second description is required"},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &ValidationError{Field: r.field, Message: r.msg}
		}
	}
	if a.YearsOfExperience < 0 {
		return &ValidationError{Field: "yearsOfExperience", Message: "Years must be positive"}
	}
	if a.MasterChefs < 0 {
		return &ValidationError{Field: "masterChefs", Message: "Master chefs must be positive"}
	}
	return nil
}
