package kv_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/jhuang314/telegramkaraoke/pkg/kv"
)

// newTestStore creates a Store for testing. Tests in this file use the
// Memory implementation, but the same test logic can be reused for other
// backends by changing the factory.
func newTestStore(t *testing.T, opts *kv.Options) kv.Store {
	t.Helper()
	s := kv.NewMemory(opts)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGetSetDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, nil)

	key := kv.Key{"features", "joytotheworld"}
	val := []byte(`{"bpm":120}`)

	// Get non-existent key.
	_, err := s.Get(ctx, key)
	if !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// Set and Get.
	if err := s.Set(ctx, key, val); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := s.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != string(val) {
		t.Fatalf("Get = %q, want %q", got, val)
	}

	// Overwrite.
	val2 := []byte(`{"bpm":126}`)
	if err := s.Set(ctx, key, val2); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	got, err = s.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get after overwrite: %v", err)
	}
	if string(got) != string(val2) {
		t.Fatalf("Get = %q, want %q", got, val2)
	}

	// Delete is idempotent.
	if err := s.Delete(ctx, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(ctx, key); err != nil {
		t.Fatalf("Delete again: %v", err)
	}
	if _, err := s.Get(ctx, key); !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, nil)

	key := kv.Key{"transcript", "silentnight"}
	if err := s.Set(ctx, key, []byte("silent night")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := s.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	got[0] = 'X'

	again, err := s.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(again) != "silent night" {
		t.Fatalf("stored value mutated: %q", again)
	}
}

func TestConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n byte) {
			defer wg.Done()
			key := kv.Key{"features", string('a' + rune(n))}
			for j := 0; j < 100; j++ {
				if err := s.Set(ctx, key, []byte{n}); err != nil {
					t.Errorf("Set: %v", err)
					return
				}
				got, err := s.Get(ctx, key)
				if err != nil {
					t.Errorf("Get: %v", err)
					return
				}
				if got[0] != n {
					t.Errorf("Get = %d, want %d", got[0], n)
					return
				}
			}
		}(byte(i))
	}
	wg.Wait()
}

func TestKeyString(t *testing.T) {
	k := kv.Key{"features", "take", "1"}
	if got := k.String(); got != "features:take:1" {
		t.Fatalf("String = %q, want %q", got, "features:take:1")
	}
}
