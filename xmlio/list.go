package xmlio

import (
	"encoding/xml"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// Larger counts still parse, the slice just grows as children arrive.
const maxPresize = 1 << 16

// WriteList writes items under <listName count="N">, one elemName element
// each, in order.
func WriteList[T any](w *Writer, items []T, listName, elemName string, write func(*T, *Writer)) {
	w.StartElement(listName)
	w.IntAttr("count", len(items))
	for i := range items {
		w.StartElement(elemName)
		write(&items[i], w)
		w.EndElement()
	}
	w.EndElement()
}

// ReadList reads every child of the list element start with read. The count
// attribute only sizes the result; a wrong or missing count is not an error.
func ReadList[T any](r *Reader, start xml.StartElement, read func(*Reader, xml.StartElement) (T, error)) ([]T, error) {
	var list []T
	if v, ok := AttrValue(start, "count"); ok {
		if count, err := strconv.Atoi(v); err == nil && count > 0 {
			if count > maxPresize {
				count = maxPresize
			}
			list = make([]T, 0, count)
		}
	}
	err := r.Children(func(se xml.StartElement) error {
		item, err := read(r, se)
		if err != nil {
			return err
		}
		list = append(list, item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

// ReadDocument reads a document whose root element rootName is itself a list.
func ReadDocument[T any](r io.Reader, rootName string, read func(*Reader, xml.StartElement) (T, error)) ([]T, error) {
	xr := NewReader(r)
	root, err := xr.Root()
	if err != nil {
		return nil, err
	}
	if root.Name.Local != rootName {
		return nil, errors.Errorf("expected root element %v, found %v", rootName, root.Name.Local)
	}
	return ReadList(xr, root, read)
}

// WriteDocument writes items as a document with a list root element.
func WriteDocument[T any](w io.Writer, items []T, rootName, elemName string, write func(*T, *Writer)) error {
	xw := NewWriter(w, Abridged)
	xw.StartDocument()
	WriteList(xw, items, rootName, elemName, write)
	return xw.Flush()
}
