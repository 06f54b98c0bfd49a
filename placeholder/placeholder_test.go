package placeholder

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"postfeed/client"
	"postfeed/database"
	"postfeed/models"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	if err := database.InitDB(filepath.Join(t.TempDir(), "posts.db")); err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	mux := http.NewServeMux()
	h := New("/posts")
	mux.Handle("/posts", h)
	mux.Handle("/posts/", h)
	srv := httptest.NewServer(mux)
	t.Cleanup(func() {
		srv.Close()
		database.DB.Close()
	})
	return srv
}

func TestCreateThenList(t *testing.T) {
	srv := newTestServer(t)
	c := client.New(srv.URL + "/posts")
	ctx := context.Background()

	created, err := c.Create(ctx, models.Post{Title: "Hello", Body: "World", UserID: models.DefaultUserID})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == 0 || created.Title != "Hello" || created.Body != "World" || created.UserID != 1 {
		t.Errorf("unexpected echo %v", created)
	}

	posts, err := c.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(posts) != 1 || posts[0] != created {
		t.Errorf("expected [%v], got %v", created, posts)
	}
}

func TestCreateAnswers201(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/posts", "application/json", strings.NewReader(`{"title":"t","body":"b","userId":1}`))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Errorf("expected 201, got %d", resp.StatusCode)
	}
}

func TestShowAndMissing(t *testing.T) {
	srv := newTestServer(t)
	created, err := database.InsertPost(models.Post{UserID: 1, Title: "x", Body: "y"})
	if err != nil {
		t.Fatalf("InsertPost: %v", err)
	}

	tests := []struct {
		path   string
		status int
	}{
		{"/posts/" + strconv.Itoa(created.ID), http.StatusOK},
		{"/posts/424242", http.StatusNotFound},
		{"/posts/abc", http.StatusNotFound},
	}
	for _, tt := range tests {
		resp, err := http.Get(srv.URL + tt.path)
		if err != nil {
			t.Fatalf("GET %s: %v", tt.path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != tt.status {
			t.Errorf("GET %s: expected %d, got %d", tt.path, tt.status, resp.StatusCode)
		}
	}
}

func TestRejectsOtherMethods(t *testing.T) {
	srv := newTestServer(t)

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/posts", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", resp.StatusCode)
	}
}

func TestBadJSON(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/posts", "application/json", strings.NewReader(`{nope`))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", resp.StatusCode)
	}
}
