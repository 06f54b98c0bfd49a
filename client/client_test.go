package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"postfeed/models"
)

func TestListKeepsOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.Header.Get("X-Request-Id") == "" {
			t.Error("missing X-Request-Id header")
		}
		w.Write([]byte(`[{"id":1,"userId":1,"title":"A","body":"B"},{"id":2,"userId":1,"title":"C","body":"D"}]`))
	}))
	defer srv.Close()

	posts, err := New(srv.URL).List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].Title != "A" || posts[1].Title != "C" {
		t.Errorf("unexpected order: %v", posts)
	}
}

func TestCreateSendsJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json; charset=UTF-8" {
			t.Errorf("unexpected content type %q", ct)
		}

		raw, _ := io.ReadAll(r.Body)
		var got map[string]interface{}
		if err := json.Unmarshal(raw, &got); err != nil {
			t.Fatalf("body is not JSON: %s", raw)
		}
		want := map[string]interface{}{"title": "Hello", "body": "World", "userId": float64(1)}
		if len(got) != len(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
		for k, v := range want {
			if got[k] != v {
				t.Errorf("field %s: expected %v, got %v", k, v, got[k])
			}
		}

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":101,"title":"Hello","body":"World","userId":1}`))
	}))
	defer srv.Close()

	created, err := New(srv.URL).Create(context.Background(), models.Post{
		Title: "Hello", Body: "World", UserID: models.DefaultUserID,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID != 101 {
		t.Errorf("expected id 101, got %d", created.ID)
	}
}

func TestFailuresWrapErrRequestFailed(t *testing.T) {
	notJSON := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>nope</html>"))
	}))
	defer notJSON.Close()

	badStatus := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`[]`))
	}))
	defer badStatus.Close()

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	downURL := down.URL
	down.Close()

	for name, url := range map[string]string{"not json": notJSON.URL, "status": badStatus.URL, "network": downURL} {
		_, err := New(url).List(context.Background())
		if !errors.Is(err, ErrRequestFailed) {
			t.Errorf("%s: expected ErrRequestFailed, got %v", name, err)
		}
	}
}

func TestNewDefaultsEndpoint(t *testing.T) {
	if c := New(""); c.Endpoint != DefaultEndpoint {
		t.Errorf("expected default endpoint, got %s", c.Endpoint)
	}
}
