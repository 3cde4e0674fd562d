package errors_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"

	pkgErrors "anime-catalog/pkg/errors"
)

type sample struct {
	ID   *int64 `json:"id"   validate:"required,gt=0"`
	Name string `json:"name" validate:"required"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	pkgErrors.UseJSONFieldNames(v)
	return v
}

func TestFromValidator(t *testing.T) {
	messages := pkgErrors.Messages{
		"id.required":   "The id must not be null",
		"name.required": "The name must not be empty",
	}

	t.Run("Keeps field order and messages", func(t *testing.T) {
		err := newValidator().Struct(sample{})
		verr := pkgErrors.FromValidator(err, messages)
		if verr == nil {
			t.Fatal("expected validation error")
		}
		if verr.FieldNames() != "id, name" {
			t.Errorf("unexpected fields %q", verr.FieldNames())
		}
		if verr.Messages() != "The id must not be null, The name must not be empty" {
			t.Errorf("unexpected messages %q", verr.Messages())
		}
	})

	t.Run("Falls back to generic message", func(t *testing.T) {
		neg := int64(-1)
		err := newValidator().Struct(sample{ID: &neg, Name: "x"})
		verr := pkgErrors.FromValidator(err, messages)
		if verr == nil || len(verr.Fields) != 1 {
			t.Fatalf("expected one field error, got %v", verr)
		}
		if verr.Fields[0].Message != "The id must satisfy gt=0" {
			t.Errorf("unexpected message %q", verr.Fields[0].Message)
		}
	})

	t.Run("Ignores other errors", func(t *testing.T) {
		if pkgErrors.FromValidator(errors.New("boom"), messages) != nil {
			t.Error("expected nil for non-validator error")
		}
	})
}

func TestValidationErrorAppend(t *testing.T) {
	all := &pkgErrors.ValidationError{}
	all.Append("[1].", &pkgErrors.ValidationError{Fields: []pkgErrors.FieldError{{Field: "name", Message: "bad"}}})
	if all.FieldNames() != "[1].name" {
		t.Errorf("unexpected fields %q", all.FieldNames())
	}
}

func TestInternalErrorStatus(t *testing.T) {
	if got := pkgErrors.NewInternalError(0, errors.New("x")).StatusCode(); got != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", got)
	}
	inner := errors.New("inner")
	if !errors.Is(pkgErrors.NewInternalError(http.StatusBadRequest, inner), inner) {
		t.Error("expected Unwrap to expose inner error")
	}
}
