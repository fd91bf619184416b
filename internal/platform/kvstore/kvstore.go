// Copyright (c) 2026 ArtStudy. All rights reserved.
// Author: lin.wanqing.art@gmail.com

/*
Package kvstore provides the durable key-value store holding user study state.

It mirrors the storage model of the browser tool this service replaced:
a small number of fixed keys, each holding one whole JSON document that is
overwritten in full on every mutation. Writes are atomic at key granularity,
so last-write-wins is the only consistency rule needed.

Drivers:

  - file: one JSON file per key under a state directory (default).
  - redis: one Redis string per key.
  - postgres: one row per key in the app_state table.
*/
package kvstore

import "context"

// Store is the minimal contract for whole-document key-value persistence.
//
// Get returns (nil, false, nil) when the key has never been written; callers
// treat that the same as an empty document.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
}
