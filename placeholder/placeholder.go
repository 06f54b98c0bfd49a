// Package placeholder serves a local posts collection with the same shape as
// the public one, backed by the sqlite database.
package placeholder

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"postfeed/database"
	"postfeed/models"
)

// Handler answers /posts and /posts/{id}.
type Handler struct {
	prefix string
}

func New(prefix string) *Handler {
	return &Handler{prefix: strings.TrimSuffix(prefix, "/")}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, h.prefix), "/")
	if rest == "" {
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		case http.MethodPost:
			h.create(w, r)
		default:
			writeError(w, http.StatusMethodNotAllowed, "Invalid request method.")
		}
		return
	}

	id, err := strconv.Atoi(rest)
	if err != nil {
		writeError(w, http.StatusNotFound, "Post not found.")
		return
	}
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Invalid request method.")
		return
	}
	h.show(w, id)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	posts, err := database.ListPosts()
	if err != nil {
		log.Printf("Error listing posts: %v", err)
		writeError(w, http.StatusInternalServerError, "Error retrieving posts")
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

func (h *Handler) show(w http.ResponseWriter, id int) {
	post, err := database.GetPost(id)
	if err == sql.ErrNoRows {
		writeError(w, http.StatusNotFound, "Post not found.")
		return
	} else if err != nil {
		log.Printf("Error retrieving post %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Error retrieving post")
		return
	}
	writeJSON(w, http.StatusOK, post)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var p models.Post
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "Failed to parse JSON: "+err.Error())
		return
	}
	p.ID = 0

	created, err := database.InsertPost(p)
	if err != nil {
		log.Printf("Error inserting post: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to submit post.")
		return
	}
	log.Printf("placeholder: stored post %d (request %s)", created.ID, r.Header.Get("X-Request-Id"))
	writeJSON(w, http.StatusCreated, created)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
