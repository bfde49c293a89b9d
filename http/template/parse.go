package template

import (
	"bytes"
	"fmt"
	html "html/template"
	"io/fs"
	"path"
	"sync"
)

// Ext is the file extension error templates are named with.
const Ext = ".jade"

//go:generate mockgen -destination templatemock/templatemock.go -package templatemock github.com/xy-planning-network/terminus/http/template Renderer

// A Renderer renders the template file at fp with params into markup.
type Renderer interface {
	Render(fp string, params map[string]any) ([]byte, error)
}

// Parser parses HTML templates with the functions provided,
// with a focus on utilizing embedded HTML templates through fs.FS.
//
// Parser implements Renderer.
type Parser struct {
	fs   fs.FS
	fns  html.FuncMap
	pool *sync.Pool
}

// NewParser constructs a *Parser looking up templates in the dirs provided,
// in order, followed by this package's own templates.
//
// The "statusText" function is always available.
func NewParser(dirs []fs.FS, opts ...ParserOptFn) *Parser {
	p := &Parser{
		fns:  make(html.FuncMap),
		pool: &sync.Pool{New: func() any { return new(bytes.Buffer) }},
	}
	for _, opt := range opts {
		opt(p)
	}

	all := make([]fs.FS, 0, len(dirs)+1)
	for _, dir := range dirs {
		if dir != nil {
			all = append(all, dir)
		}
	}

	p.fs = &mergeFS{
		cache: make(map[string]fs.FS),
		dirs:  append(all, pkgFS),
	}

	return p.AddFn(StatusText())
}

// AddFn includes the named function in the *Parser's function map.
func (p *Parser) AddFn(name string, fn any) *Parser {
	if p.fns == nil {
		p.fns = make(html.FuncMap)
	}
	p.fns[name] = fn

	return p
}

// Parse parses files found in the *Parser's directories with those functions provided previously.
// The first file names the template returned.
func (p *Parser) Parse(fps ...string) (*html.Template, error) {
	files := make([]string, 0, len(fps))
	for _, fp := range fps {
		if fp != "" {
			files = append(files, fp)
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w", ErrNoFiles)
	}

	return html.New(path.Base(files[0])).Funcs(p.fns).ParseFS(p.fs, files...)
}

// Render parses the template file at fp and executes it with params.
func (p *Parser) Render(fp string, params map[string]any) ([]byte, error) {
	if fp == "" {
		return nil, fmt.Errorf("%w", ErrNoFiles)
	}

	tmpl, err := p.Parse(fp)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotRendered, err)
	}

	b := p.pool.Get().(*bytes.Buffer)
	b.Reset()
	defer p.pool.Put(b)

	if err := tmpl.Execute(b, params); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotRendered, err)
	}

	out := make([]byte, b.Len())
	copy(out, b.Bytes())

	return out, nil
}
