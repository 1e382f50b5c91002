// Package translation binds reader rows to view templates.
//
// A Renderer owns the ordered row sequence and the current theme snapshot.
// Hosts ask it for the kind of each visible row, create a view for that kind,
// bind the view to a position, and paint it. All methods are meant to be
// called from the UI loop; nothing here is safe for concurrent use.
package translation

import (
	"fmt"

	"github.com/javiermolinar/tarjama/internal/quran"
)

// ArabicMultiplier scales the base font size for Arabic rows.
const ArabicMultiplier = 1.4

// IndexError reports access to a row position outside the sequence.
// Renderer methods panic with it; a valid host never triggers one.
type IndexError struct {
	Index int
	Count int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("translation: row index %d out of range [0,%d)", e.Index, e.Count)
}

// ClickListener receives clicks on rendered views.
type ClickListener func(v *View)

// Renderer maps reader rows to views.
type Renderer struct {
	rows          []quran.Row
	snapshot      Snapshot
	arabicShaping bool

	listener      ClickListener
	onDataChanged func()
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithArabicShaping records whether the output can shape Arabic script.
func WithArabicShaping(enabled bool) Option {
	return func(r *Renderer) {
		r.arabicShaping = enabled
	}
}

// NewRenderer creates an empty renderer.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{arabicShaping: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetRows replaces the row sequence with a copy of rows.
func (r *Renderer) SetRows(rows []quran.Row) {
	r.rows = append(r.rows[:0:0], rows...)
}

// SetTheme stores the snapshot used for binding. If rows are present the
// whole list is marked for re-render.
func (r *Renderer) SetTheme(s Snapshot) {
	r.snapshot = s
	if len(r.rows) > 0 {
		r.notifyDataSetChanged()
	}
}

// Theme returns the current snapshot.
func (r *Renderer) Theme() Snapshot {
	return r.snapshot
}

// SetOnDataSetChanged registers fn to run whenever the whole list needs re-rendering.
func (r *Renderer) SetOnDataSetChanged(fn func()) {
	r.onDataChanged = fn
}

func (r *Renderer) notifyDataSetChanged() {
	if r.onDataChanged != nil {
		r.onDataChanged()
	}
}

// SetOnTranslationClickedListener stores the click listener. Passing nil
// unregisters it.
func (r *Renderer) SetOnTranslationClickedListener(l ClickListener) {
	r.listener = l
}

// RowCount returns the number of rows.
func (r *Renderer) RowCount() int {
	return len(r.rows)
}

// Row returns the row at index. It panics with *IndexError if index is out of range.
func (r *Renderer) Row(index int) quran.Row {
	r.checkIndex(index)
	return r.rows[index]
}

// ViewKindFor returns the kind of the row at index.
// It panics with *IndexError if index is out of range.
func (r *Renderer) ViewKindFor(index int) quran.Kind {
	r.checkIndex(index)
	return r.rows[index].Kind
}

func (r *Renderer) checkIndex(index int) {
	if index < 0 || index >= len(r.rows) {
		panic(&IndexError{Index: index, Count: len(r.rows)})
	}
}

// TemplateFor returns the view template used for a row kind.
func TemplateFor(kind quran.Kind) Template {
	switch kind {
	case quran.KindSuraHeader:
		return TemplateHeader
	case quran.KindBasmallah, quran.KindQuranText:
		return TemplateArabic
	case quran.KindSpacer:
		return TemplateSpacer
	case quran.KindVerseNumber:
		return TemplateVerseNumber
	case quran.KindTranslator:
		return TemplateTranslator
	default:
		return TemplateText
	}
}

// CreateView instantiates the template for kind. Every view it returns
// forwards clicks to the renderer's listener.
func (r *Renderer) CreateView(kind quran.Kind) *View {
	t := TemplateFor(kind)
	return &View{
		Template: t,
		Slot:     newSlot(t),
		position: -1,
		onClick:  r.dispatchClick,
	}
}

func (r *Renderer) dispatchClick(v *View) {
	if r.listener != nil {
		r.listener(v)
	}
}

// BindView fills v's slot from the row at index and the current snapshot.
// It panics with *IndexError if index is out of range.
func (r *Renderer) BindView(v *View, index int) {
	row := r.Row(index)
	v.position = index

	switch slot := v.Slot.(type) {
	case *Label:
		r.bindLabel(slot, row)
	case *Divider:
		slot.ShowLine = r.showLine(index)
		slot.Color = r.snapshot.DividerColor
	case *VerseNumber:
		slot.Text = fmt.Sprintf("Sura %d, Ayah %d", row.Sura(), row.Ayah())
		slot.NightMode = r.snapshot.NightMode
	}
}

func (r *Renderer) bindLabel(l *Label, row quran.Row) {
	switch row.Kind {
	case quran.KindSuraHeader:
		l.Text = quran.SuraTitle(row.Sura())
		l.Background = r.snapshot.SuraHeaderColor
		l.Color = r.snapshot.SuraHeaderTextColor
	case quran.KindBasmallah, quran.KindQuranText:
		if row.Kind == quran.KindBasmallah {
			l.Text = quran.ArabicBasmallah
		} else {
			l.Text = quran.StripBasmallah(row.Sura(), row.Ayah(), row.Verse.Text)
		}
		l.Shaping = r.arabicShaping
		l.Color = r.snapshot.ArabicTextColor
		l.Size = ArabicMultiplier * float64(r.snapshot.FontSize)
	case quran.KindTranslator:
		l.Text = row.Translator
	default:
		l.Text = row.Translation
		l.Color = r.snapshot.TextColor
		l.Size = float64(r.snapshot.FontSize)
	}
}

// showLine reports whether the spacer at index draws its rule. The rule is
// hidden on the last row and before a row from a different sura.
func (r *Renderer) showLine(index int) bool {
	if index+1 >= len(r.rows) {
		return false
	}
	return r.rows[index+1].Sura() == r.rows[index].Sura()
}
