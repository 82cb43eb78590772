package util

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func respond(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	RespondError(c, err)
	return w
}

func TestRespondErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", &ValidationError{Msg: "id is required"}, http.StatusBadRequest},
		{"not found", &NotFoundError{Resource: "user", ID: 42}, http.StatusNotFound},
		{"no business association", &BusinessAssociationError{UserID: 7}, http.StatusBadRequest},
		{"configuration", &ConfigurationError{Msg: "business 5 has no owning admin"}, http.StatusInternalServerError},
		{"persistence", &PersistenceError{Op: "upsert question", Err: errors.New("deadlock")}, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := respond(tc.err)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestRespondErrorEchoesPersistenceDetail(t *testing.T) {
	w := respond(&PersistenceError{Op: "attach answer", Err: errors.New("deadlock")})
	assert.Contains(t, w.Body.String(), "attach answer")
	assert.Contains(t, w.Body.String(), "deadlock")
}

func TestRespondErrorWrappedTaxonomy(t *testing.T) {
	// errors.As must see through wrapping, so a not-found inside a
	// persistence wrapper still maps to 404.
	wrapped := &PersistenceError{Op: "outer", Err: &NotFoundError{Resource: "x", ID: 1}}
	w := respond(wrapped)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPersistenceErrorUnwrap(t *testing.T) {
	inner := errors.New("inner")
	err := &PersistenceError{Op: "op", Err: inner}
	assert.ErrorIs(t, err, inner)
}
