package llm

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testClient(t *testing.T, reply string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", auth)
		}
		resp := chatResponse{Choices: []choice{{Message: Message{Role: "assistant", Content: reply}}}}
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return &Client{
		apiKey:  "test-key",
		baseURL: srv.URL,
		model:   "test-model",
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func TestChat(t *testing.T) {
	c := testClient(t, "hello")
	got, err := c.Chat([]Message{{Role: "user", Content: "hi"}})
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if got != "hello" {
		t.Errorf("Chat = %q, want hello", got)
	}
}

func TestChatNoAPIKey(t *testing.T) {
	c := &Client{client: http.DefaultClient}
	if _, err := c.Chat([]Message{{Role: "user", Content: "hi"}}); err == nil {
		t.Error("expected error without api key")
	}
}

func TestAnalyzeFoodTextParsesFencedJSON(t *testing.T) {
	c := testClient(t, "```json\n[{\"name\":\"Dal\",\"calories\":180,\"protein\":12,\"carbs\":25,\"fats\":3,\"quantity\":\"1 bowl\"}]\n```")
	foods, err := c.AnalyzeFoodText("a bowl of dal")
	if err != nil {
		t.Fatalf("AnalyzeFoodText: %v", err)
	}
	if len(foods) != 1 {
		t.Fatalf("got %d foods, want 1", len(foods))
	}
	if foods[0].Name != "Dal" || foods[0].Calories != 180 {
		t.Errorf("unexpected food: %+v", foods[0])
	}
}

func TestAnalyzeFoodTextEmptyResult(t *testing.T) {
	c := testClient(t, "[]")
	if _, err := c.AnalyzeFoodText("nothing"); err == nil {
		t.Error("expected error for empty item list")
	}
}

func TestMacrosFromGramsFillsGrams(t *testing.T) {
	c := testClient(t, `{"name":"Paneer","calories":265,"protein":18,"carbs":4,"fats":20,"quantity":"100 g"}`)
	food, err := c.MacrosFromGrams("Paneer", 100)
	if err != nil {
		t.Fatalf("MacrosFromGrams: %v", err)
	}
	if food.Grams == nil || *food.Grams != 100 {
		t.Errorf("Grams = %v, want 100", food.Grams)
	}
}

func TestGenerateRecipeRejectsEmptyTitle(t *testing.T) {
	c := testClient(t, `{"title":"","steps":[]}`)
	if _, err := c.GenerateRecipe("eggs, spinach", "no conditions"); err == nil {
		t.Error("expected error for empty recipe")
	}
}

func TestStripFences(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n[1,2]\n```", "[1,2]"},
		{"  {\"a\":1}  ", `{"a":1}`},
	}
	for _, tc := range cases {
		if got := stripFences(tc.in); got != tc.want {
			t.Errorf("stripFences(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
