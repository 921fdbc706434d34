package model

import "strings"

type CommentType int

const (
	CommentUnknown CommentType = iota
	CommentToolkit
	CommentEOF
	CommentDDC
	CommentDDCImprover
)

func (t CommentType) String() string {
	switch t {
	case CommentToolkit:
		return "Toolkit"
	case CommentEOF:
		return "EOF"
	case CommentDDC:
		return "DDC"
	case CommentDDCImprover:
		return "DDC Improver"
	}
	return "Unknown"
}

// Comment is the verbatim text of a comment kept from the top of a file.
type Comment string

// Type tells which tool left the comment.
func (c Comment) Type() CommentType {
	s := strings.ToLower(string(c))
	switch {
	case strings.Contains(s, "cst v"):
		return CommentToolkit
	case strings.Contains(s, "eof"):
		return CommentEOF
	case strings.Contains(s, "ddc improver"):
		return CommentDDCImprover
	case strings.Contains(s, "ddc v"):
		return CommentDDC
	}
	return CommentUnknown
}
