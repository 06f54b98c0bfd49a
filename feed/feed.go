package feed

import (
	"context"
	"log"
	"sync"

	"postfeed/models"
	"postfeed/utils"
)

// Lister reads the posts collection.
type Lister interface {
	List(ctx context.Context) ([]models.Post, error)
}

// Creator adds a post to the collection and returns the stored copy.
type Creator interface {
	Create(ctx context.Context, p models.Post) (models.Post, error)
}

type replacer interface {
	Replace(blocks []string)
}

// Fetcher fills a container with every post of the collection.
type Fetcher struct {
	Source    Lister
	Container Container
	Log       *log.Logger
}

func NewFetcher(src Lister, c Container, logger *log.Logger) *Fetcher {
	if logger == nil {
		logger = log.Default()
	}
	return &Fetcher{Source: src, Container: c, Log: logger}
}

// Load replaces the container contents with one block per post, in the order
// the collection returned them. On failure the container is left as it was.
func (f *Fetcher) Load(ctx context.Context) {
	posts, err := f.Source.List(ctx)
	if err != nil {
		f.Log.Printf("Error: %v", err)
		return
	}

	blocks := make([]string, 0, len(posts))
	for _, p := range posts {
		blocks = append(blocks, utils.PostBlock(p.Title, p.Body))
	}

	if r, ok := f.Container.(replacer); ok {
		r.Replace(blocks)
		return
	}
	f.Container.Clear()
	for _, b := range blocks {
		f.Container.Append(b)
	}
}

// Submitter turns form submissions into create requests.
type Submitter struct {
	Target    Creator
	Container Container
	Log       *log.Logger

	wg sync.WaitGroup
}

func NewSubmitter(target Creator, c Container, logger *log.Logger) *Submitter {
	if logger == nil {
		logger = log.Default()
	}
	return &Submitter{Target: target, Container: c, Log: logger}
}

// Submit reads the form, starts the create request and resets the form
// without waiting for the answer. The created post is appended to the
// container once the response arrives; failures are only logged.
func (s *Submitter) Submit(ctx context.Context, form Form) {
	p := models.Post{
		Title:  form.Title(),
		Body:   form.Body(),
		UserID: models.DefaultUserID,
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.create(ctx, p)
	}()

	form.Reset()
}

func (s *Submitter) create(ctx context.Context, p models.Post) {
	created, err := s.Target.Create(ctx, p)
	if err != nil {
		s.Log.Printf("Error: %v", err)
		return
	}
	s.Log.Printf("Post created: %v", created)
	s.Container.Append(utils.PostBlock(created.Title, created.Body))
}

// Wait blocks until every submission started so far has completed.
func (s *Submitter) Wait() {
	s.wg.Wait()
}
