package mode

import (
	"context"
	"testing"

	"github.com/Veraticus/lumen/internal/model"
	"github.com/Veraticus/lumen/internal/storage"
	"github.com/Veraticus/lumen/internal/tui/themes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext_InScope(t *testing.T) {
	s := NewStore(context.Background(), storage.NewMemoryStorage(), themes.NewDocument())
	ctx := WithStore(context.Background(), s)

	got := FromContext(ctx)
	require.Same(t, s, got)

	require.NoError(t, FromContext(ctx).SetMode(ctx, model.ModePublic))
	assert.Equal(t, model.ModePublic, s.Mode())
}

func TestFromContext_OutOfScopePanics(t *testing.T) {
	assert.PanicsWithError(t, ErrNoStore.Error(), func() {
		FromContext(context.Background())
	})
}

func TestWithStore_NilPanics(t *testing.T) {
	assert.PanicsWithError(t, ErrNoStore.Error(), func() {
		WithStore(context.Background(), nil)
	})
}

func TestNilStore_Panics(t *testing.T) {
	var s *Store

	assert.PanicsWithError(t, ErrNoStore.Error(), func() { s.Mode() })
	assert.PanicsWithError(t, ErrNoStore.Error(), func() {
		_ = s.SetMode(context.Background(), model.ModePublic)
	})
	assert.PanicsWithError(t, ErrNoStore.Error(), func() { s.Toggle(context.Background()) })
}
