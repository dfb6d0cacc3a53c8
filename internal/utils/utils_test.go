package utils

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserContext(t *testing.T) {
	ctx := SetUserContext(context.Background(), 42, "a@b.c")

	id, ok := GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)
	assert.Equal(t, "a@b.c", GetUserEmailFromContext(ctx))
}

func TestUserContext_Missing(t *testing.T) {
	_, ok := GetUserIDFromContext(context.Background())
	assert.False(t, ok)
	assert.Equal(t, "", GetUserEmailFromContext(context.Background()))
}

func TestStrPtr(t *testing.T) {
	p := StrPtr("hello")
	assert.Equal(t, "hello", *p)
}

func TestWriteJSONError(t *testing.T) {
	w := httptest.NewRecorder()
	WriteJSONError(w, "nope", 404)

	assert.Equal(t, 404, w.Code)
	assert.JSONEq(t, `{"error":"nope"}`, w.Body.String())
}
