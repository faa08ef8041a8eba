package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilder(t *testing.T) {
	err := NewError(CategoryConfig, "invalid configuration").
		Fatal().
		WithContext("file", "sitegen.yaml").
		Build()

	assert.Equal(t, CategoryConfig, err.Category())
	assert.Equal(t, SeverityFatal, err.Severity())
	assert.Equal(t, "invalid configuration", err.Message())
	file, ok := err.Context().Get("file")
	assert.True(t, ok)
	assert.Equal(t, "sitegen.yaml", file)
}

func TestClassifiedError_Message(t *testing.T) {
	err := ValidationError(`Unknown task "x". Use "posts" or "static".`).Build()
	assert.EqualError(t, err, `Unknown task "x". Use "posts" or "static".`)
	assert.True(t, err.IsFatal())

	cause := stderrors.New("disk full")
	wrapped := WrapError(cause, CategoryFileSystem, "write og-image.png").Build()
	assert.EqualError(t, wrapped, "write og-image.png: disk full")
	assert.ErrorIs(t, wrapped, cause)
	assert.Equal(t, cause, wrapped.Cause())
	assert.False(t, wrapped.IsFatal())
}

func TestHasCategory(t *testing.T) {
	err := fmt.Errorf("loading catalog: %w", NotFoundError("Unknown blog post slug: nope").Build())

	assert.True(t, HasCategory(err, CategoryNotFound))
	assert.False(t, HasCategory(err, CategoryRender))
	assert.False(t, HasCategory(stderrors.New("plain"), CategoryNotFound))
	assert.ErrorIs(t, err, NotFoundError("Unknown blog post slug: nope").Build())
}

func TestWithContext_Copies(t *testing.T) {
	base := RenderError("render failed").Build()
	withSlug := base.WithContext("slug", "first-post")

	_, ok := base.Context().Get("slug")
	assert.False(t, ok)
	slug, ok := withSlug.Context().Get("slug")
	assert.True(t, ok)
	assert.Equal(t, "first-post", slug)
}
