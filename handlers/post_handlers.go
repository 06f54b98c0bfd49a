package handlers

import (
	"encoding/json"
	"html/template"
	"log"
	"net/http"

	"postfeed/feed"
	"postfeed/pages"
)

func (s *Server) HomePage(w http.ResponseWriter, r *http.Request) {
	response := make(map[string]interface{})

	if r.Method != http.MethodGet {
		response["error"] = "Invalid request method."
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(response)
		return
	}

	if r.URL.Path != "/" {
		tmpl := `<html>
                    <head><title>Page Not Found</title></head>
                    <body>
                        <h1>404 - Page Not Found</h1>
                    </body>
                 </html>`
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(tmpl))
		return
	}

	var data pages.IndexData
	for _, b := range s.Page.Blocks() {
		// blocks are built from escaped fields only
		data.Blocks = append(data.Blocks, template.HTML(b))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.Index.Execute(w, data); err != nil {
		log.Printf("Error executing template: %v", err)
		http.Error(w, "Error rendering posts", http.StatusInternalServerError)
		return
	}
}

// ShowPosts returns the blocks currently on the page.
func (s *Server) ShowPosts(w http.ResponseWriter, r *http.Request) {
	response := make(map[string]interface{})

	if r.Method != http.MethodGet {
		response["error"] = "Invalid request method."
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(response)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.Page.Blocks()); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// PostSubmit hands the submitted fields to the submitter and answers before
// the remote service has replied.
func (s *Server) PostSubmit(w http.ResponseWriter, r *http.Request) {
	response := make(map[string]interface{})
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		response["error"] = "Invalid request method."
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(response)
		return
	}

	if err := r.ParseForm(); err != nil {
		response["error"] = "Invalid form data."
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(response)
		return
	}

	form := feed.NewFields(r.PostForm.Get("title"), r.PostForm.Get("body"))
	s.Submitter.Submit(s.ctx, form)

	response["message"] = "Post submitted."
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(response)
}

// Refresh reloads the collection into the page.
func (s *Server) Refresh(w http.ResponseWriter, r *http.Request) {
	response := make(map[string]interface{})
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		response["error"] = "Invalid request method."
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(response)
		return
	}

	s.Load()

	response["posts"] = s.Page.Len()
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}
