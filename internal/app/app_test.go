package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"
)

// fakeRand replays scripted values. The last value repeats once the script
// runs out.
type fakeRand struct {
	ints   []int
	floats []float64
}

func (f *fakeRand) Intn(n int) int {
	v := 0
	if len(f.ints) > 0 {
		v = f.ints[0]
		if len(f.ints) > 1 {
			f.ints = f.ints[1:]
		}
	}
	return v % n
}

func (f *fakeRand) Float64() float64 {
	v := 0.0
	if len(f.floats) > 0 {
		v = f.floats[0]
		if len(f.floats) > 1 {
			f.floats = f.floats[1:]
		}
	}
	return v
}

var testClock = func() time.Time {
	return time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)
}

// newCompletionServer serves OpenAI-style chat completion responses and
// records the last request body it saw.
func newCompletionServer(content string, lastReq *map[string]any) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if lastReq != nil {
			var body map[string]any
			_ = json.NewDecoder(r.Body).Decode(&body)
			*lastReq = body
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":     "chatcmpl-test",
			"object": "chat.completion",
			"model":  "gpt-3.5-turbo",
			"choices": []map[string]any{
				{
					"index": 0,
					"message": map[string]any{
						"role":    "assistant",
						"content": content,
					},
					"finish_reason": "stop",
				},
			},
		})
	}))
}

func testConfig(siteDir, openaiBase string) Config {
	return Config{
		OpenAIKey:        "test-key",
		NewsAPIKey:       "news-key",
		SiteDir:          siteDir,
		Remote:           "origin",
		Branch:           "main",
		AuthorName:       "TechDaily Bot",
		AuthorEmail:      "bot@techdaily.example",
		Model:            "gpt-3.5-turbo",
		StyleProbability: 0.2,
		IndexSize:        10,
		OpenAIBaseURL:    openaiBase,
	}
}
