package validation

import "github.com/go-playground/validator/v10"

// RegisterTags exposes the form rules as validator tags for admin payloads.
func RegisterTags(v *validator.Validate) error {
	tags := map[string]func(string) bool{
		"schoolphone": IsPhone,
		"gradelevel":  IsGradeLevel,
		"personname":  IsPersonName,
	}
	for tag, check := range tags {
		check := check
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			return value == "" || check(value)
		}); err != nil {
			return err
		}
	}
	return nil
}
