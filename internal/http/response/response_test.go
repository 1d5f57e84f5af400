package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email string `validate:"required,email"`
	Age   int    `validate:"gte=0,lte=150"`
	Name  string `validate:"required"`
}

func TestValidationError(t *testing.T) {
	err := validator.New().Struct(sample{Email: "nope", Age: 200})
	require.Error(t, err)

	resp := ValidationError(err.(validator.ValidationErrors))
	assert.Equal(t, StatusError, resp.Status)
	assert.Contains(t, resp.Error, "field Email must be a valid email")
	assert.Contains(t, resp.Error, "field Age must be at most 150")
	assert.Contains(t, resp.Error, "field Name is a required field")
}

func TestJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	JSON(w, r, http.StatusConflict, Error("email already registered"))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Error", body.Status)
	assert.Equal(t, "email already registered", body.Error)
}
