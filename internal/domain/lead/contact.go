package lead

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	MsgNameTooShort = "O nome deve ter pelo menos 3 caracteres"
	MsgInvalidEmail = "Digite um e-mail válido"
	MsgInvalidPhone = "Digite um telefone válido com DDD"
)

var validate = validator.New()

// PhoneDigits keeps only the digits of a typed phone number.
func PhoneDigits(raw string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
}

// Normalize trims the fields and reduces the phone to digits.
func (c Contact) Normalize() Contact {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.Phone = PhoneDigits(c.Phone)
	return c
}

// Validate checks a normalized contact and reports every failing field.
func (c Contact) Validate() error {
	var fields []FieldError
	if len([]rune(c.Name)) < 3 {
		fields = append(fields, FieldError{Field: "name", Message: MsgNameTooShort})
	}
	if err := validate.Var(c.Email, "required,email"); err != nil {
		fields = append(fields, FieldError{Field: "email", Message: MsgInvalidEmail})
	}
	if n := len(c.Phone); n < 10 || n > 15 {
		fields = append(fields, FieldError{Field: "phone", Message: MsgInvalidPhone})
	}
	if len(fields) > 0 {
		return &ContactError{Fields: fields}
	}
	return nil
}
