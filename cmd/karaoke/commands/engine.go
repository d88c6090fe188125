package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/openai/openai-go"

	"github.com/jhuang314/telegramkaraoke/cmd/karaoke/internal/config"
	"github.com/jhuang314/telegramkaraoke/pkg/karaoke"
	"github.com/jhuang314/telegramkaraoke/pkg/kv"
	"github.com/jhuang314/telegramkaraoke/pkg/speech"
	"github.com/jhuang314/telegramkaraoke/pkg/storage"
)

// newEngine wires a comparison engine from the CLI configuration. The
// artifact store is returned alongside so commands can import local files.
// The returned closer releases the cache backend and must be called.
func newEngine(ctx context.Context) (*karaoke.Engine, storage.FileStore, func() error, error) {
	cfg, err := GetConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	store, err := newStore(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	apiKey := cfg.APIKey()
	if apiKey == "" {
		return nil, nil, nil, fmt.Errorf("no transcription API key: set speech.api_key in %s or OPENAI_API_KEY", cfg.Path)
	}
	var sttOpts []speech.WhisperOption
	if cfg.Speech.BaseURL != "" {
		sttOpts = append(sttOpts, speech.WithBaseURL(cfg.Speech.BaseURL))
	}
	if cfg.Speech.Model != "" {
		sttOpts = append(sttOpts, speech.WithModel(openai.AudioModel(cfg.Speech.Model)))
	}
	stt := speech.NewWhisper(apiKey, sttOpts...)

	opts := []karaoke.Option{karaoke.WithLogger(slog.Default())}
	closer := func() error { return nil }

	switch cfg.Cache.Backend {
	case "", "files":
		// Engine default: JSON and text files in the store.
	case "badger":
		db, err := kv.NewBadger(kv.BadgerOptions{Dir: cfg.CacheDir()})
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open cache: %w", err)
		}
		opts = append(opts,
			karaoke.WithRecordStore(karaoke.NewKVRecordStore(db)),
			karaoke.WithTranscriptStore(karaoke.NewKVTranscriptStore(db)))
		closer = db.Close
	default:
		return nil, nil, nil, fmt.Errorf("unknown cache backend %q (want files or badger)", cfg.Cache.Backend)
	}

	return karaoke.New(store, stt, opts...), store, closer, nil
}

// newStore opens the artifact store: S3 when configured, local disk otherwise.
func newStore(ctx context.Context, cfg *config.Config) (storage.FileStore, error) {
	if cfg.S3 == nil {
		return storage.NewLocal(cfg.WorkDir)
	}

	var loadOpts []func(*awsconfig.LoadOptions) error
	if cfg.S3.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.S3.Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3.Endpoint)
			o.UsePathStyle = true
		}
	})
	return storage.NewS3(client, cfg.S3.Bucket, cfg.S3.Prefix), nil
}
