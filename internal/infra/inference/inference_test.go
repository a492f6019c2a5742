package inference

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"soko/config"
	"soko/internal/infra/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedCall struct {
	path string
	body map[string]any
}

type fakeAPI struct {
	calls  atomic.Int32
	last   atomic.Pointer[recordedCall]
	status int
	reply  any
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.calls.Add(1)
	var body map[string]any
	_ = json.NewDecoder(r.Body).Decode(&body)
	f.last.Store(&recordedCall{path: r.URL.Path, body: body})

	if f.status != 0 {
		w.WriteHeader(f.status)

		return
	}
	_ = json.NewEncoder(w).Encode(f.reply)
}

func testConfig(t *testing.T, api *fakeAPI) *config.Config {
	t.Helper()

	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.ApplyDefaults()
	cfg.Enrichment.Endpoint = srv.URL
	cfg.Enrichment.BreakerFailures = 2

	return cfg
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTagger(t *testing.T, api *fakeAPI) *ZeroShotTagger {
	t.Helper()

	cfg := testConfig(t, api)
	c, err := cache.NewBadger("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	logger := discardLogger()

	return NewZeroShotTagger(NewClient(cfg, logger), c, cfg, logger).(*ZeroShotTagger)
}

func TestTagKeepsConfidentLabelsOnly(t *testing.T) {
	api := &fakeAPI{reply: map[string]any{
		"sequence": "ESP32 dev board with wifi",
		"labels":   []string{"esp32", "development board", "iot", "microcontroller", "electronics", "component", "kit", "pump"},
		"scores":   []float64{0.99, 0.97, 0.95, 0.9, 0.85, 0.8, 0.7, 0.1},
	}}
	tagger := newTagger(t, api)

	tags := tagger.Tag(context.Background(), "ESP32 dev board with wifi")

	assert.Equal(t, []string{"esp32", "development board", "iot", "microcontroller", "electronics"}, tags)

	call := api.last.Load()
	require.NotNil(t, call)
	assert.Equal(t, "/models/valhalla/distilbart-mnli-12-3", call.path)
	assert.Equal(t, "ESP32 dev board with wifi", call.body["inputs"])
	params := call.body["parameters"].(map[string]any)
	assert.Equal(t, true, params["multi_label"])
	assert.Len(t, params["candidate_labels"], 15)
}

func TestTagAcceptsListResponse(t *testing.T) {
	api := &fakeAPI{reply: []map[string]any{
		{"label": "pump", "score": 0.71},
		{"label": "motor", "score": 0.92},
		{"label": "kit", "score": 0.7},
	}}
	tagger := newTagger(t, api)

	assert.Equal(t, []string{"motor", "pump"}, tagger.Tag(context.Background(), "water pump with motor"))
}

func TestTagUsesCache(t *testing.T) {
	api := &fakeAPI{reply: map[string]any{
		"labels": []string{"sensor"},
		"scores": []float64{0.9},
	}}
	tagger := newTagger(t, api)
	ctx := context.Background()

	first := tagger.Tag(ctx, "DHT22 humidity sensor")
	second := tagger.Tag(ctx, "DHT22 humidity sensor")

	assert.Equal(t, []string{"sensor"}, first)
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), api.calls.Load())
}

func TestTagFailsOpen(t *testing.T) {
	api := &fakeAPI{status: http.StatusServiceUnavailable}
	tagger := newTagger(t, api)
	ctx := context.Background()

	assert.Equal(t, []string{}, tagger.Tag(ctx, "anything"))
	assert.Equal(t, []string{}, tagger.Tag(ctx, "anything"))
	// failures are not cached
	assert.Equal(t, int32(2), api.calls.Load())
}

func TestTagSkipsBlankText(t *testing.T) {
	api := &fakeAPI{}
	tagger := newTagger(t, api)

	assert.Equal(t, []string{}, tagger.Tag(context.Background(), "   "))
	assert.Zero(t, api.calls.Load())
}

func TestBreakerStopsCallingFailingAPI(t *testing.T) {
	api := &fakeAPI{status: http.StatusInternalServerError}
	cfg := testConfig(t, api)
	client := NewClient(cfg, discardLogger())
	ctx := context.Background()

	var out any
	for range 5 {
		assert.Error(t, client.Call(ctx, "test", "m", map[string]string{}, &out))
	}

	assert.Equal(t, int32(2), api.calls.Load())
}

func TestEnhanceDescription(t *testing.T) {
	tests := []struct {
		name      string
		api       *fakeAPI
		swahili   bool
		input     string
		want      string
		wantModel string
	}{
		{
			name:      "english uses the description model",
			api:       &fakeAPI{reply: []map[string]string{{"generated_text": "A reliable cordless drill."}}},
			input:     "drill good",
			want:      "A reliable cordless drill.",
			wantModel: "/models/mrm8488/t5-base-finetuned-common_gen",
		},
		{
			name:      "swahili uses the multilingual model",
			api:       &fakeAPI{reply: []map[string]string{{"generated_text": "Simu nzuri kwa bei nafuu."}}},
			swahili:   true,
			input:     "simu nzuri",
			want:      "Simu nzuri kwa bei nafuu.",
			wantModel: "/models/google/mt5-small",
		},
		{
			name:      "failure returns the input",
			api:       &fakeAPI{status: http.StatusBadGateway},
			input:     "keep me",
			want:      "keep me",
			wantModel: "/models/mrm8488/t5-base-finetuned-common_gen",
		},
		{
			name:      "empty generation returns the input",
			api:       &fakeAPI{reply: []map[string]string{}},
			input:     "keep me too",
			want:      "keep me too",
			wantModel: "/models/mrm8488/t5-base-finetuned-common_gen",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t, tt.api)
			logger := discardLogger()
			detector := func(string) bool { return tt.swahili }
			describer := NewDescriber(NewClient(cfg, logger), detector, cfg, logger)

			assert.Equal(t, tt.want, describer.Enhance(context.Background(), tt.input))

			call := tt.api.last.Load()
			require.NotNil(t, call)
			assert.Equal(t, tt.wantModel, call.path)
			assert.Equal(t, "improve: "+tt.input, call.body["inputs"])
			params := call.body["parameters"].(map[string]any)
			assert.InDelta(t, 200, params["max_length"], 0)
		})
	}
}

func TestSwahiliDetector(t *testing.T) {
	isSwahili := NewSwahiliDetector()

	assert.True(t, isSwahili("Ninauza pikipiki nzuri sana kwa bei nafuu, karibu dukani kwetu leo"))
	assert.False(t, isSwahili("Selling a reliable cordless drill with two batteries and a charger"))
}
