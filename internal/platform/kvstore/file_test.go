// Copyright (c) 2026 ArtStudy. All rights reserved.
// Author: lin.wanqing.art@gmail.com

package kvstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linwanqing/artstudy/internal/platform/kvstore"
)

/*
TestFileStore_RoundTrip verifies Set then Get returns the stored document.
*/
func TestFileStore_RoundTrip(t *testing.T) {
	store, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	doc := []byte(`{"r1":{"year":"1503"}}`)

	require.NoError(t, store.Set(ctx, "artStudy.overrides.v3", doc))

	got, found, err := store.Get(ctx, "artStudy.overrides.v3")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, doc, got)
}

/*
TestFileStore_MissingKey verifies an unwritten key reads as absent, not an error.
*/
func TestFileStore_MissingKey(t *testing.T) {
	store, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)

	got, found, err := store.Get(context.Background(), "artStudy.notes.v3")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, got)
}

/*
TestFileStore_Overwrite verifies the full-document overwrite semantics.
*/
func TestFileStore_Overwrite(t *testing.T) {
	store, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "k", []byte(`{"a":1}`)))
	require.NoError(t, store.Set(ctx, "k", []byte(`{"b":2}`)))

	got, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte(`{"b":2}`), got)
}
