package handlers

import (
	"context"
	"log"
	"net/http"
	"os"

	"postfeed/client"
	"postfeed/feed"
)

// Server owns the page shown to every browser and the components writing to it.
type Server struct {
	Page      *feed.Page
	Fetcher   *feed.Fetcher
	Submitter *feed.Submitter
	Hub       *Hub

	// ctx outlives single requests; create calls keep running after the
	// submitting request has been answered.
	ctx context.Context
}

// NewServer wires a page, its hub and the feed components to the collection
// endpoint. Nothing is fetched until Load is called.
func NewServer(ctx context.Context, endpoint string, logger *log.Logger) *Server {
	c := client.New(endpoint)
	page := feed.NewPage()

	s := &Server{
		Page:      page,
		Fetcher:   feed.NewFetcher(c, page, logger),
		Submitter: feed.NewSubmitter(c, page, logger),
		Hub:       NewHub(page),
		ctx:       ctx,
	}
	go s.Hub.Run(ctx)
	return s
}

// Load fetches the collection into the page, as on first page load.
func (s *Server) Load() {
	s.Fetcher.Load(s.ctx)
}

// Routes registers the page endpoints on mux.
func (s *Server) Routes(mux *http.ServeMux) {
	if _, err := os.Stat("./static"); err == nil {
		mux.Handle("/static/", http.StripPrefix("/static", http.FileServer(http.Dir("./static"))))
	}
	mux.HandleFunc("/", s.HomePage)
	mux.HandleFunc("/show_posts", s.ShowPosts)
	mux.HandleFunc("/post_submit", s.PostSubmit)
	mux.HandleFunc("/refresh", s.Refresh)
	mux.HandleFunc("/ws", s.Hub.HandleConnections)
}
