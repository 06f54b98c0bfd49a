// Package feed loads posts into a container and submits new ones from a form.
package feed

import (
	"strings"
	"sync"

	"postfeed/utils"
)

// Container is the region the rendered post blocks are written into.
type Container interface {
	Clear()
	Append(block string)
}

// Form gives access to the two input fields of the post form.
type Form interface {
	Title() string
	Body() string
	Reset()
}

const (
	OpReplace = "replace"
	OpAppend  = "append"
)

// Change describes one mutation of a Page. Blocks holds the new contents for
// a replace and the added block for an append.
type Change struct {
	Op     string   `json:"type"`
	Blocks []string `json:"blocks"`
}

// Page is an in-memory Container safe for concurrent use.
type Page struct {
	mu        sync.Mutex
	blocks    []string
	listeners []func(Change)
}

func NewPage() *Page {
	return &Page{}
}

func (p *Page) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.blocks = nil
	p.notify(Change{Op: OpReplace, Blocks: []string{}})
}

func (p *Page) Append(block string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.blocks = append(p.blocks, block)
	p.notify(Change{Op: OpAppend, Blocks: []string{block}})
}

// Replace swaps the whole contents at once, so listeners see a single change
// instead of a clear followed by one append per block.
func (p *Page) Replace(blocks []string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.blocks = append([]string(nil), blocks...)
	p.notify(Change{Op: OpReplace, Blocks: p.snapshot()})
}

// Blocks returns a copy of the current contents.
func (p *Page) Blocks() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshot()
}

func (p *Page) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.blocks)
}

// Text is the text content of the page with the markup removed.
func (p *Page) Text() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	parts := make([]string, len(p.blocks))
	for i, b := range p.blocks {
		parts[i] = utils.TextContent(b)
	}
	return strings.Join(parts, " ")
}

// Subscribe registers fn to be called after every change and returns the
// contents at the moment of subscribing, so no change is missed or seen
// twice. Listeners run with the page locked and must not call back into it.
func (p *Page) Subscribe(fn func(Change)) []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listeners = append(p.listeners, fn)
	return p.snapshot()
}

func (p *Page) snapshot() []string {
	out := make([]string, len(p.blocks))
	copy(out, p.blocks)
	return out
}

func (p *Page) notify(c Change) {
	for _, fn := range p.listeners {
		fn(c)
	}
}

// Fields is a plain in-memory Form.
type Fields struct {
	mu          sync.Mutex
	title, body string
}

func NewFields(title, body string) *Fields {
	return &Fields{title: title, body: body}
}

func (f *Fields) Title() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.title
}

func (f *Fields) Body() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.body
}

func (f *Fields) Set(title, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.title, f.body = title, body
}

func (f *Fields) Reset() {
	f.Set("", "")
}
