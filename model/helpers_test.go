package model

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/jsphweid/rsxml/xmlio"
	"github.com/stretchr/testify/assert"
)

func render(t *testing.T, mode xmlio.Mode, name string, write func(*xmlio.Writer)) string {
	var buf bytes.Buffer
	w := xmlio.NewWriter(&buf, mode)
	w.StartElement(name)
	write(w)
	w.EndElement()
	assert.NoError(t, w.Flush())
	return buf.String()
}

func parse[T any](t *testing.T, doc string, read func(*xmlio.Reader, xml.StartElement) (T, error)) (T, error) {
	r := xmlio.NewReader(strings.NewReader(doc))
	root, err := r.Root()
	assert.NoError(t, err)
	return read(r, root)
}
