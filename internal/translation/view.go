package translation

import "fmt"

// Template identifies the view layout used for a row.
type Template int

const (
	TemplateHeader Template = iota
	TemplateArabic
	TemplateSpacer
	TemplateVerseNumber
	TemplateTranslator
	TemplateText
)

func (t Template) String() string {
	switch t {
	case TemplateHeader:
		return "header"
	case TemplateArabic:
		return "arabic"
	case TemplateSpacer:
		return "spacer"
	case TemplateVerseNumber:
		return "verse_number"
	case TemplateTranslator:
		return "translator"
	case TemplateText:
		return "text"
	default:
		return fmt.Sprintf("template(%d)", int(t))
	}
}

// Slot is the single populated control of a View: *Label, *Divider or *VerseNumber.
type Slot interface {
	slot()
}

// Label is a text control.
type Label struct {
	Text       string
	Color      string  // Foreground hex; empty keeps the template default
	Background string  // Background hex; empty means none
	Size       float64 // Text size; zero keeps the template default
	Shaping    bool    // Text carries Arabic-script shaping
}

// Divider is the separator control of a spacer row.
type Divider struct {
	ShowLine bool
	Color    string
}

// VerseNumber is the verse-number badge control.
type VerseNumber struct {
	Text      string
	NightMode bool
}

func (*Label) slot()       {}
func (*Divider) slot()     {}
func (*VerseNumber) slot() {}

// View is an instantiated row template.
type View struct {
	Template Template
	Slot     Slot

	position int
	onClick  func(*View)
}

// Position returns the row index the view was last bound to, or -1.
func (v *View) Position() int {
	return v.position
}

// Click delivers a click on the view to its renderer.
func (v *View) Click() {
	if v.onClick != nil {
		v.onClick(v)
	}
}

// Label returns the view's label slot, or nil if the template has none.
func (v *View) Label() *Label {
	l, _ := v.Slot.(*Label)
	return l
}

// Divider returns the view's divider slot, or nil if the template has none.
func (v *View) Divider() *Divider {
	d, _ := v.Slot.(*Divider)
	return d
}

// VerseNumber returns the view's verse-number slot, or nil if the template has none.
func (v *View) VerseNumber() *VerseNumber {
	n, _ := v.Slot.(*VerseNumber)
	return n
}

func newSlot(t Template) Slot {
	switch t {
	case TemplateSpacer:
		return &Divider{}
	case TemplateVerseNumber:
		return &VerseNumber{}
	default:
		return &Label{}
	}
}
