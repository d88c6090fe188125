package karaoke

import (
	"context"
	"errors"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/jhuang314/telegramkaraoke/pkg/kv"
)

// kv key prefixes for the badger-backed cache stores.
const (
	kvFeaturesPrefix    = "features"
	kvTranscriptsPrefix = "transcripts"
)

// kvRecordStore keeps msgpack-encoded feature records in a kv.Store.
// Used by long-running deployments where one BadgerDB holds both caches.
type kvRecordStore struct {
	store kv.Store
}

// NewKVRecordStore creates a RecordStore backed by a kv.Store.
func NewKVRecordStore(s kv.Store) RecordStore {
	return &kvRecordStore{store: s}
}

func (s *kvRecordStore) Load(ctx context.Context, identity string) (*FeatureRecord, error) {
	data, err := s.store.Get(ctx, kv.Key{kvFeaturesPrefix, identity})
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, ErrCacheMiss
		}
		return nil, &CacheError{Op: "read", Identity: identity, cause: err}
	}

	var rec FeatureRecord
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		return nil, &CacheError{Op: "read", Identity: identity, cause: err}
	}
	return &rec, nil
}

func (s *kvRecordStore) Store(ctx context.Context, identity string, rec *FeatureRecord) error {
	data, err := msgpack.Marshal(rec)
	if err != nil {
		return &CacheError{Op: "write", Identity: identity, cause: err}
	}
	if err := s.store.Set(ctx, kv.Key{kvFeaturesPrefix, identity}, data); err != nil {
		return &CacheError{Op: "write", Identity: identity, cause: err}
	}
	return nil
}

// kvTranscriptStore keeps transcripts in a kv.Store.
type kvTranscriptStore struct {
	store kv.Store
}

// NewKVTranscriptStore creates a TranscriptStore backed by a kv.Store.
func NewKVTranscriptStore(s kv.Store) TranscriptStore {
	return &kvTranscriptStore{store: s}
}

func (s *kvTranscriptStore) Load(ctx context.Context, identity string) (string, error) {
	data, err := s.store.Get(ctx, kv.Key{kvTranscriptsPrefix, identity})
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return "", ErrCacheMiss
		}
		return "", &CacheError{Op: "read", Identity: identity, cause: err}
	}
	return string(data), nil
}

func (s *kvTranscriptStore) Store(ctx context.Context, identity string, text string) error {
	if err := s.store.Set(ctx, kv.Key{kvTranscriptsPrefix, identity}, []byte(text)); err != nil {
		return &CacheError{Op: "write", Identity: identity, cause: err}
	}
	return nil
}
