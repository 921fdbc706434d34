package xmlio

import (
	"bufio"
	"io"
	"strings"
)

// Mode controls which attributes entity writers emit.
type Mode int

const (
	// Abridged omits attributes that hold their default value.
	Abridged Mode = iota
	// Full writes every recognized attribute.
	Full
)

func (m Mode) String() string {
	if m == Full {
		return "full"
	}
	return "abridged"
}

type frame struct {
	name     string
	children bool
}

// Writer emits an indented XML document. The first error is kept and every
// later call becomes a no-op; check it with Flush.
type Writer struct {
	Mode Mode

	w       *bufio.Writer
	err     error
	stack   []frame
	open    bool
	started bool
}

func NewWriter(w io.Writer, mode Mode) *Writer {
	return &Writer{Mode: mode, w: bufio.NewWriter(w)}
}

func (w *Writer) Abridged() bool {
	return w.Mode == Abridged
}

func (w *Writer) write(s string) {
	if w.err != nil {
		return
	}
	_, w.err = w.w.WriteString(s)
}

func (w *Writer) StartDocument() {
	w.write(`<?xml version="1.0" encoding="utf-8"?>`)
	w.started = true
}

// closeTag finishes a pending start tag so content can follow it.
func (w *Writer) closeTag() {
	if w.open {
		w.write(">")
		w.open = false
	}
}

func (w *Writer) newLine() {
	if w.started {
		w.write("\n" + strings.Repeat("  ", len(w.stack)))
	}
	w.started = true
	if n := len(w.stack); n > 0 {
		w.stack[n-1].children = true
	}
}

func (w *Writer) StartElement(name string) {
	w.closeTag()
	w.newLine()
	w.write("<" + name)
	w.stack = append(w.stack, frame{name: name})
	w.open = true
}

// Attr writes an attribute of the element started last. It must be called
// before any content of that element.
func (w *Writer) Attr(name, value string) {
	if !w.open {
		if w.err == nil {
			w.err = errAttrAfterContent(name)
		}
		return
	}
	w.write(" " + name + `="` + attrEscaper.Replace(value) + `"`)
}

func (w *Writer) Text(s string) {
	w.closeTag()
	w.write(textEscaper.Replace(s))
}

func (w *Writer) Comment(s string) {
	w.closeTag()
	w.newLine()
	w.write("<!--" + s + "-->")
}

func (w *Writer) EndElement() {
	n := len(w.stack)
	if n == 0 {
		return
	}
	top := w.stack[n-1]
	w.stack = w.stack[:n-1]
	if w.open {
		w.write(" />")
		w.open = false
		return
	}
	if top.children {
		w.write("\n" + strings.Repeat("  ", len(w.stack)))
	}
	w.write("</" + top.name + ">")
}

// ElementString writes <name>value</name>, or <name /> for an empty value.
func (w *Writer) ElementString(name, value string) {
	w.StartElement(name)
	if value != "" {
		w.Text(value)
	}
	w.EndElement()
}

// Flush closes any open elements and flushes the underlying writer.
func (w *Writer) Flush() error {
	for len(w.stack) > 0 {
		w.EndElement()
	}
	if w.err != nil {
		return w.err
	}
	return w.w.Flush()
}

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"\t", "&#x9;",
	"\n", "&#xA;",
	"\r", "&#xD;",
)

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\r", "&#xD;",
)
