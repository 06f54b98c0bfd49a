package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"postfeed/client"
	"postfeed/database"
	"postfeed/handlers"
	"postfeed/placeholder"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	addr := flag.String("addr", envOr("POSTFEED_ADDR", ":4422"), "listen address")
	endpoint := flag.String("endpoint", envOr("POSTFEED_ENDPOINT", client.DefaultEndpoint), "posts collection endpoint")
	local := flag.Bool("local", false, "serve a local posts collection at /posts and use it")
	dbPath := flag.String("db", "./postfeed.db", "sqlite file for the local collection")
	seed := flag.Int("seed", 10, "sample posts to insert into an empty local collection")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mux := http.NewServeMux()

	if *local {
		if err := database.InitDB(*dbPath); err != nil {
			log.Fatalf("Database initialization failed: %v", err)
		}
		defer database.DB.Close()
		if err := database.SeedPosts(*seed); err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}

		ph := placeholder.New("/posts")
		mux.Handle("/posts", ph)
		mux.Handle("/posts/", ph)
		*endpoint = "http://" + localHost(*addr) + "/posts"
	}

	s := handlers.NewServer(ctx, *endpoint, log.Default())
	s.Routes(mux)

	srv := &http.Server{Addr: *addr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	log.Printf("http://%s/ (posts from %s)", localHost(*addr), *endpoint)
	go s.Load()

	<-ctx.Done()
	log.Println("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	s.Submitter.Wait()
}

// localHost turns a listen address like ":4422" into "localhost:4422".
func localHost(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "localhost" + addr
	}
	return addr
}
