package backend

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Shared validator; error messages use the form field names.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("form")
	})
	return v
}

type idRequest struct {
	ID string `form:"id" validate:"required,number"`
}

type insertTechfugeeRequest struct {
	Name   string `form:"name"`
	Email  string `form:"email" validate:"required,email"`
	Skills string `form:"skills" validate:"omitempty,json"`
}

type loginTechfugeeRequest struct {
	Email string `form:"email" validate:"required,email"`
}

type addSkillsRequest struct {
	ID     string `form:"id" validate:"required,number"`
	Skills string `form:"skills" validate:"required,json"`
}

type updateTechfugeeRequest struct {
	ID           string `form:"id" validate:"required,number"`
	City         string `form:"city"`
	Introduction string `form:"introduction"`
}

type updateAuthRequest struct {
	ID     string `form:"id" validate:"required,number"`
	Passed string `form:"passed" validate:"required,oneof=true false"`
}

type insertDonatorRequest struct {
	Name     string `form:"name"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password"`
	Website  string `form:"website"`
	Address  string `form:"address"`
}

type loginDonatorRequest struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password"`
}

type insertChallengeRequest struct {
	DonatorID        string `form:"id_donator" validate:"required,number"`
	Name             string `form:"name" validate:"required"`
	Description      string `form:"description"`
	LaptopType       string `form:"laptop_type"`
	Amount           string `form:"amount" validate:"omitempty,number"`
	HardwareProvided string `form:"hardware_provided"`
	Duration         string `form:"duration"`
}

type insertApplicationRequest struct {
	TechfugeeID string `form:"techfugee_id" validate:"required,number"`
	ChallengeID string `form:"challenge_id" validate:"required,number"`
}

// bind fills the string fields of dst from the request's form values and
// validates the result. dst must be a pointer to a struct of strings.
func bind(r *http.Request, dst any) error {
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	v := reflect.ValueOf(dst).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if key := t.Field(i).Tag.Get("form"); key != "" {
			v.Field(i).SetString(strings.TrimSpace(r.Form.Get(key)))
		}
	}
	if err := validate.Struct(dst); err != nil {
		return fmt.Errorf("%w: %s", ErrBadRequest, describe(err))
	}
	return nil
}

// describe flattens validation errors into "field: tag" pairs.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fe.Field()+": "+fe.Tag())
	}
	return strings.Join(parts, ", ")
}

// parseUint converts an already validated numeric field.
func parseUint(field, raw string) (uint, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrBadRequest, field, err)
	}
	return uint(n), nil
}
