package speech

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// ModelWhisper1 is the default transcription model.
const ModelWhisper1 = openai.AudioModelWhisper1

// Whisper implements Transcriber using the OpenAI audio transcription API.
//
// This can also be used with any OpenAI-compatible provider by setting
// WithBaseURL.
type Whisper struct {
	client *openai.Client
	model  openai.AudioModel
}

var _ Transcriber = (*Whisper)(nil)

// WhisperOption configures a Whisper transcriber.
type WhisperOption func(*whisperConfig)

type whisperConfig struct {
	model      openai.AudioModel
	baseURL    string
	httpClient *http.Client
}

// WithModel overrides the transcription model.
func WithModel(model openai.AudioModel) WhisperOption {
	return func(c *whisperConfig) { c.model = model }
}

// WithBaseURL points the client at an OpenAI-compatible endpoint.
func WithBaseURL(url string) WhisperOption {
	return func(c *whisperConfig) { c.baseURL = url }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(hc *http.Client) WhisperOption {
	return func(c *whisperConfig) { c.httpClient = hc }
}

// NewWhisper creates a Whisper transcriber. The apiKey is required.
func NewWhisper(apiKey string, opts ...WhisperOption) *Whisper {
	cfg := whisperConfig{
		model:      ModelWhisper1,
		httpClient: http.DefaultClient,
	}
	for _, o := range opts {
		o(&cfg)
	}

	clientOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(cfg.httpClient),
	}
	if cfg.baseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(cfg.baseURL))
	}
	client := openai.NewClient(clientOpts...)

	return &Whisper{client: &client, model: cfg.model}
}

// Transcribe uploads the audio file and returns the raw transcription text.
func (w *Whisper) Transcribe(ctx context.Context, audioPath string) (string, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("speech: open %s: %w", audioPath, err)
	}
	defer f.Close()

	name := filepath.Base(audioPath)
	contentType := mime.TypeByExtension(filepath.Ext(name))

	res, err := w.client.Audio.Transcriptions.New(ctx, openai.AudioTranscriptionNewParams{
		File:  openai.File(f, name, contentType),
		Model: w.model,
	})
	if err != nil {
		return "", fmt.Errorf("speech: transcribe %s: %w", name, err)
	}
	return res.Text, nil
}
