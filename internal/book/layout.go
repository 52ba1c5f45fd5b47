// Package book turns a month of journal entries into a paginated 5x7in
// printable book. Layout is a pure computation over an abstract page model;
// rendering to PDF happens separately, so every line and page break is
// deterministic and testable without parsing PDF output.
package book

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/monthsbackend/internal/dates"
	"github.com/monthsbackend/internal/models"
)

// Page geometry in PDF points (72 per inch): 5x7in trim, 0.5in margin.
const (
	PageWidth    = 360.0
	PageHeight   = 504.0
	Margin       = 36.0
	ContentWidth = PageWidth - Margin*2

	// A question block never starts below this line; wrapped answer lines
	// check the lower threshold individually, so overflow can happen
	// mid-answer.
	questionThreshold = PageHeight - 100
	lineThreshold     = PageHeight - 60

	answerLineStep   = 20.0
	questionLineStep = 12.0
	questionGap      = 20.0

	notesRulingStep = 24.0
)

// Font selects one of the built-in PDF fonts by family, style and size.
type Font struct {
	Family string
	Style  string // "", "B" or "I"
	Size   float64
}

var (
	fontCoverTitle = Font{"Times", "B", 24}
	fontCoverMonth = Font{"Times", "", 18}
	fontDate       = Font{"Times", "B", 14}
	fontQuestion   = Font{"Times", "I", 10}
	fontAnswer     = Font{"Helvetica", "", 10}
	fontFooter     = Font{"Helvetica", "", 8}
)

// RGB is a 0-255 color triple.
type RGB struct {
	R, G, B int
}

var (
	colorPaper  = RGB{254, 253, 251}
	colorInk    = RGB{44, 44, 44}
	colorAccent = RGB{139, 115, 85}
	colorRule   = RGB{232, 230, 227}
	colorMuted  = RGB{107, 107, 107}
)

const (
	creditLine        = "Created with MONTHS"
	notesHeader       = "Notes"
	noAnswerPlacehold = "[No answer provided]"
)

// Element is one drawing operation on a page.
type Element interface {
	element()
}

// Text places a string with its baseline at Y. When Centered is set, X is the
// center of the run instead of its left edge.
type Text struct {
	X, Y     float64
	Value    string
	Font     Font
	Color    RGB
	Centered bool
}

// Line is a stroked horizontal or vertical rule.
type Line struct {
	X1, Y1, X2, Y2 float64
	Width          float64
	Color          RGB
}

// Rect is a filled rectangle.
type Rect struct {
	X, Y, W, H float64
	Color      RGB
}

func (Text) element() {}
func (Line) element() {}
func (Rect) element() {}

// Page is one fixed-size page of the document. Numbers run from 1 (the cover)
// and increase monotonically, including pages inserted by overflow.
type Page struct {
	Number   int
	Elements []Element
}

// Document is the finished paginated book, ready for rendering.
type Document struct {
	Pages []*Page
}

// Measurer supplies string width metrics for a font. The renderer provides a
// PDF-backed one; tests substitute a fixed-width fake.
type Measurer interface {
	TextWidth(f Font, s string) float64
}

// Slot is one question/answer pair of an entry. An empty Question marks an
// unused slot and is skipped entirely; an empty Answer renders the
// placeholder line.
type Slot struct {
	Question string
	Answer   string
}

// Entry is one day's material for the book, keyed by ISO date.
type Entry struct {
	Date  string
	Slots [models.SlotCount]Slot
}

// EntryFromModel projects a joined store entry into its book form.
func EntryFromModel(e models.EntryWithQuestions) Entry {
	entry := Entry{Date: e.EntryDate}
	for slot := models.SlotFirst; slot <= models.SlotThird; slot++ {
		entry.Slots[slot] = Slot{
			Question: e.Questions[slot].Text,
			Answer:   e.Answer(slot),
		}
	}
	return entry
}

// Layout typesets the book: a cover page, one dated section per entry in
// ascending date order with overflow pagination, and three ruled note pages
// when the month has any entries. Identical input always yields an identical
// document.
func Layout(m Measurer, userName, monthKey string, entries []Entry) *Document {
	l := &layouter{m: m, doc: &Document{}}

	l.cover(userName, monthKey)

	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})

	for _, entry := range sorted {
		l.entrySection(entry)
	}

	if len(sorted) > 0 {
		for i := 0; i < 3; i++ {
			l.notesPage()
		}
	}

	// Every page after the cover carries its running page number, including
	// pages left behind mid-entry by overflow.
	for _, page := range l.doc.Pages[1:] {
		page.Elements = append(page.Elements, Text{
			X:        PageWidth / 2,
			Y:        PageHeight - 20,
			Value:    strconv.Itoa(page.Number),
			Font:     fontFooter,
			Color:    colorMuted,
			Centered: true,
		})
	}

	return l.doc
}

type layouter struct {
	m    Measurer
	doc  *Document
	page *Page
}

func (l *layouter) addPage() {
	l.page = &Page{Number: len(l.doc.Pages) + 1}
	l.doc.Pages = append(l.doc.Pages, l.page)
}

func (l *layouter) add(e Element) {
	l.page.Elements = append(l.page.Elements, e)
}

func (l *layouter) cover(userName, monthKey string) {
	l.addPage()
	l.add(Rect{X: 0, Y: 0, W: PageWidth, H: PageHeight, Color: colorPaper})

	titleY := PageHeight/2 - 40
	l.add(Text{X: PageWidth / 2, Y: titleY, Value: userName, Font: fontCoverTitle, Color: colorInk, Centered: true})
	l.add(Line{
		X1: Margin + 60, Y1: titleY + 20,
		X2: PageWidth - Margin - 60, Y2: titleY + 20,
		Width: 1, Color: colorAccent,
	})
	l.add(Text{X: PageWidth / 2, Y: titleY + 50, Value: dates.MonthName(monthKey), Font: fontCoverMonth, Color: colorInk, Centered: true})
	l.add(Text{X: PageWidth / 2, Y: PageHeight - Margin, Value: creditLine, Font: fontFooter, Color: colorMuted, Centered: true})
}

func (l *layouter) entrySection(entry Entry) {
	l.addPage()
	y := Margin

	l.add(Text{X: Margin, Y: y + 12, Value: dates.DisplayDate(entry.Date), Font: fontDate, Color: colorInk})
	y += 30
	l.add(Line{X1: Margin, Y1: y, X2: PageWidth - Margin, Y2: y, Width: 0.5, Color: colorRule})
	y += 20

	for i, slot := range entry.Slots {
		if slot.Question == "" {
			continue
		}

		if y > questionThreshold {
			l.addPage()
			y = Margin
		}

		questionLines := wrap(l.m, fontQuestion, fmt.Sprintf("Q%d: %s", i+1, slot.Question), ContentWidth)
		for k, line := range questionLines {
			l.add(Text{X: Margin, Y: y + float64(k)*questionLineStep, Value: line, Font: fontQuestion, Color: colorAccent})
		}
		y += float64(len(questionLines))*questionLineStep + 8

		if slot.Answer != "" {
			// Double-spaced, with the overflow check before every single
			// line so a long answer can continue on a fresh page.
			for _, line := range wrap(l.m, fontAnswer, slot.Answer, ContentWidth) {
				if y > lineThreshold {
					l.addPage()
					y = Margin
				}
				l.add(Text{X: Margin, Y: y, Value: line, Font: fontAnswer, Color: colorInk})
				y += answerLineStep
			}
		} else {
			l.add(Text{X: Margin, Y: y, Value: noAnswerPlacehold, Font: fontAnswer, Color: colorMuted})
			y += answerLineStep
		}

		y += questionGap
	}
}

func (l *layouter) notesPage() {
	l.addPage()
	for lineY := Margin + 30; lineY < PageHeight-Margin; lineY += notesRulingStep {
		l.add(Line{X1: Margin, Y1: lineY, X2: PageWidth - Margin, Y2: lineY, Width: 0.25, Color: colorRule})
	}
	l.add(Text{X: Margin, Y: Margin + 12, Value: notesHeader, Font: fontQuestion, Color: colorAccent})
}

// wrap splits text into lines no wider than maxWidth, honoring explicit
// newlines and hard-breaking words that are wider than a whole line.
func wrap(m Measurer, f Font, text string, maxWidth float64) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(m, f, para, maxWidth)...)
	}
	return lines
}

func wrapParagraph(m Measurer, f Font, para string, maxWidth float64) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := ""
	for _, word := range words {
		if m.TextWidth(f, word) > maxWidth {
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			broken := breakWord(m, f, word, maxWidth)
			lines = append(lines, broken[:len(broken)-1]...)
			current = broken[len(broken)-1]
			continue
		}

		if current == "" {
			current = word
			continue
		}
		candidate := current + " " + word
		if m.TextWidth(f, candidate) <= maxWidth {
			current = candidate
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	return append(lines, current)
}

// breakWord splits a single over-wide word at character boundaries. Always
// returns at least one piece.
func breakWord(m Measurer, f Font, word string, maxWidth float64) []string {
	var pieces []string
	current := ""
	for _, r := range word {
		candidate := current + string(r)
		if current != "" && m.TextWidth(f, candidate) > maxWidth {
			pieces = append(pieces, current)
			current = string(r)
		} else {
			current = candidate
		}
	}
	return append(pieces, current)
}

var whitespace = regexp.MustCompile(`\s+`)

// FileName derives the download name for a generated book.
func FileName(userName, monthKey string) string {
	return fmt.Sprintf("%s_%s.pdf", whitespace.ReplaceAllString(userName, "_"), monthKey)
}
