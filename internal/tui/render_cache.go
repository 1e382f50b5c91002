package tui

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/javiermolinar/tarjama/internal/translation"
)

// renderCacheSize bounds the number of painted rows kept.
const renderCacheSize = 1024

// RenderCache stores painted rows so scrolling does not re-bind them.
// Views are recycled per template the way a list view reuses row holders.
type RenderCache struct {
	width int
	lines *lru.Cache[int, []string]
	pool  map[translation.Template]*translation.View
}

// NewRenderCache creates an empty cache.
func NewRenderCache() *RenderCache {
	lines, _ := lru.New[int, []string](renderCacheSize)
	return &RenderCache{
		lines: lines,
		pool:  make(map[translation.Template]*translation.View),
	}
}

// Invalidate drops every painted row.
func (c *RenderCache) Invalidate() {
	c.lines.Purge()
}

// Lines returns the painted lines of the row at index for the given width.
func (c *RenderCache) Lines(r *translation.Renderer, p *translation.Painter, index, width int) []string {
	if width != c.width {
		c.width = width
		c.Invalidate()
	}
	if lines, ok := c.lines.Get(index); ok {
		return lines
	}

	kind := r.ViewKindFor(index)
	tmpl := translation.TemplateFor(kind)
	v, ok := c.pool[tmpl]
	if !ok {
		v = r.CreateView(kind)
		c.pool[tmpl] = v
	}
	r.BindView(v, index)

	lines := strings.Split(p.Paint(v, width, r.Theme().FontSize), "\n")
	c.lines.Add(index, lines)
	return lines
}

// Height returns the number of lines the row at index occupies.
func (c *RenderCache) Height(r *translation.Renderer, p *translation.Painter, index, width int) int {
	return len(c.Lines(r, p, index, width))
}
