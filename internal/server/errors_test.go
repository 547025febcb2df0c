package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{&ErrEmailAlreadyExists{Email: "a@b.c"}, http.StatusConflict},
		{&ErrDuplicateApplication{Email: "a@b.c"}, http.StatusConflict},
		{&ErrInvalidCredentials{}, http.StatusUnauthorized},
		{&ErrForbidden{}, http.StatusForbidden},
		{&ErrNotFound{Resource: "job", ID: uuid.New()}, http.StatusNotFound},
		{&ErrValidation{Field: "email", Message: "required"}, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatus(tt.err), "%T", tt.err)
	}
}
