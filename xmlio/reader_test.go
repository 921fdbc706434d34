package xmlio

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type item struct {
	Time int
	Mask uint8
}

var itemBits = FlagBits{"a": 0, "b": 1}

func readItem(r *Reader, se xml.StartElement) (item, error) {
	var it item
	p := NewAttrParser(se)
	for _, a := range se.Attr {
		if ReadFlag(&it.Mask, itemBits, a) {
			continue
		}
		if a.Name.Local == "time" {
			it.Time = p.Time(a)
		}
	}
	if err := p.Err(); err != nil {
		return it, err
	}
	return it, r.Skip()
}

func TestParseBinary(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(uint8(0), ParseBinary(""))
	assert.Equal(uint8(0), ParseBinary("0"))
	assert.Equal(uint8(1), ParseBinary("1"))
	assert.Equal(uint8(1), ParseBinary("2"))
	assert.Equal(uint8(0), ParseBinary("-1"))
}

func TestReadListToleratesWrongCount(t *testing.T) {
	assert := assert.New(t)

	doc := `<list count="5">
  <!-- ignored -->
  <i time="1.5" a="1" />
  <i time="2" b="1"><unknown><deep /></unknown></i>
</list>`
	r := NewReader(strings.NewReader(doc))
	root, err := r.Root()
	assert.NoError(err)

	items, err := ReadList(r, root, readItem)
	assert.NoError(err)
	assert.Equal([]item{{Time: 1500, Mask: 1}, {Time: 2000, Mask: 2}}, items)
}

func TestReadListEmpty(t *testing.T) {
	assert := assert.New(t)

	for _, doc := range []string{`<list count="0" />`, `<list></list>`, `<list count="x"/>`} {
		r := NewReader(strings.NewReader(doc))
		root, err := r.Root()
		assert.NoError(err)
		items, err := ReadList(r, root, readItem)
		assert.NoError(err)
		assert.Empty(items)
	}
}

func TestReadListReportsFormatError(t *testing.T) {
	assert := assert.New(t)

	r := NewReader(strings.NewReader(`<list count="1"><i time="abc" /></list>`))
	root, _ := r.Root()
	_, err := ReadList(r, root, readItem)

	var ferr *FormatError
	assert.True(errors.As(err, &ferr))
	assert.Equal("i", ferr.Element)
	assert.Equal("time", ferr.Attr)
}

func TestRequire(t *testing.T) {
	assert := assert.New(t)

	r := NewReader(strings.NewReader(`<tuning string0="0" />`))
	root, _ := r.Root()
	assert.NoError(Require(root, "string0"))

	err := Require(root, "string0", "string1")
	assert.True(errors.Is(err, ErrMissingAttribute))
	assert.Contains(err.Error(), "string1")
}

func TestReadTextSkipsChildren(t *testing.T) {
	assert := assert.New(t)

	r := NewReader(strings.NewReader(`<title>Te<b>x</b>st</title>`))
	_, err := r.Root()
	assert.NoError(err)
	text, err := r.ReadText()
	assert.NoError(err)
	assert.Equal("Test", text)
}

func TestReaderHonoursCharsetLabel(t *testing.T) {
	assert := assert.New(t)

	doc := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><title>Caf\xe9</title>"
	r := NewReader(strings.NewReader(doc))
	_, err := r.Root()
	assert.NoError(err)
	text, err := r.ReadText()
	assert.NoError(err)
	assert.Equal("Café", text)
}
