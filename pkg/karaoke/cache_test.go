package karaoke

import (
	"context"
	"errors"
	"testing"

	"github.com/jhuang314/telegramkaraoke/pkg/kv"
)

func TestKVRecordStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewKVRecordStore(kv.NewMemory(nil))

	if _, err := store.Load(ctx, "missing"); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("Load(missing) = %v, want ErrCacheMiss", err)
	}

	want := &FeatureRecord{
		BPM:          126,
		Duration:     28.4,
		AveragePitch: 233.1,
		PitchTrack:   55.02,
		Text:         "jingle bells jingle bells",
		PitchRange:   210,
	}
	if err := store.Store(ctx, "take9", want); err != nil {
		t.Fatalf("Store: %v", err)
	}
	got, err := store.Load(ctx, "take9")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *got != *want {
		t.Fatalf("Load = %+v, want %+v", got, want)
	}

	// Overwrite wins.
	want.BPM = 118
	if err := store.Store(ctx, "take9", want); err != nil {
		t.Fatalf("Store overwrite: %v", err)
	}
	got, err = store.Load(ctx, "take9")
	if err != nil {
		t.Fatalf("Load after overwrite: %v", err)
	}
	if got.BPM != 118 {
		t.Fatalf("BPM after overwrite = %v, want 118", got.BPM)
	}
}

func TestKVTranscriptStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewKVTranscriptStore(kv.NewMemory(nil))

	if _, err := store.Load(ctx, "missing"); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("Load(missing) = %v, want ErrCacheMiss", err)
	}

	const text = "dashing through the snow"
	if err := store.Store(ctx, "take9", text); err != nil {
		t.Fatalf("Store: %v", err)
	}
	got, err := store.Load(ctx, "take9")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != text {
		t.Fatalf("Load = %q, want %q", got, text)
	}
}
