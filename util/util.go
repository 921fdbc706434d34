package util

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/exp/constraints"
)

// GatherAllXmlPaths walks path and returns every .xml file beneath it in
// lexical order. A maxNum of 0 means no limit.
func GatherAllXmlPaths(path string, maxNum int) ([]string, error) {
	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(s), ".xml") {
			if maxNum == 0 || len(res) < maxNum {
				res = append(res, s)
			}
		}
		return nil
	}
	if err := filepath.WalkDir(path, walk); err != nil {
		return nil, err
	}
	return res, nil
}

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

func Max[A constraints.Ordered](num1 A, num2 A) A {
	if num1 < num2 {
		return num2
	}
	return num1
}

func Min[A constraints.Ordered](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

// Ptr returns a pointer to a copy of v. Used for the nullable string fields
// of the model where nil and "" mean different things.
func Ptr[A any](v A) *A {
	return &v
}

// Deref returns *p, or the zero value when p is nil.
func Deref[A any](p *A) A {
	var zero A
	if p == nil {
		return zero
	}
	return *p
}

// HasFlag reports whether every bit of flag is set in mask.
func HasFlag[M constraints.Unsigned](mask M, flag M) bool {
	return mask&flag == flag && flag != 0
}

// SetFlag turns the bits of flag on or off in mask, leaving all others alone.
func SetFlag[M constraints.Unsigned](mask *M, flag M, on bool) {
	if on {
		*mask |= flag
	} else {
		*mask &^= flag
	}
}
