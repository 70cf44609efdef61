package cms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := NewClient("project", "production", "2024-01-01", "api.example.com")
	client.baseURL = server.URL
	return client
}

func TestFetchDecodesResult(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("query"); got != `*[_type == "post"]` {
			t.Errorf("query = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result":[{"title":"Hello"}]}`))
	})

	var docs []struct {
		Title string `json:"title"`
	}
	if err := client.Fetch(context.Background(), `*[_type == "post"]`, &docs); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(docs) != 1 || docs[0].Title != "Hello" {
		t.Fatalf("docs = %+v", docs)
	}
}

func TestFetchNullResultLeavesOutZero(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":null}`))
	})

	var docs []struct{}
	if err := client.Fetch(context.Background(), `*[_type == "post"]`, &docs); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if docs != nil {
		t.Fatalf("docs = %v, want nil for a null result", docs)
	}
}

func TestFetchNonOKStatusIsError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "query parse error", http.StatusBadRequest)
	})

	var docs []struct{}
	if err := client.Fetch(context.Background(), `*[_type ==`, &docs); err == nil {
		t.Fatal("expected an error for a non-200 response")
	}
}

func TestFetchSendsBearerToken(t *testing.T) {
	var got string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`{"result":[]}`))
	})
	client.WithToken("secret")

	var docs []struct{}
	if err := client.Fetch(context.Background(), `*[_type == "post"]`, &docs); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if got != "Bearer secret" {
		t.Errorf("Authorization = %q", got)
	}
}
