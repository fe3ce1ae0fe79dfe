package utils

import "github.com/go-playground/validator/v10"

type Validator struct {
	validate *validator.Validate
}

func NewValidator(v *validator.Validate) *Validator {
	return &Validator{validate: v}
}

func (val *Validator) Validate(i interface{}) error {
	return val.validate.Struct(i)
}
