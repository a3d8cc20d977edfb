package content

import (
	"fmt"
	"strings"

	"catalog/internal/pkg/errs"
)

// Kind is the type of material a content item carries.
type Kind int

const (
	// Unknown catches uninitialised values.
	Unknown Kind = iota
	Text
	Video
	Image
	File
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		Unknown: "unknown",
		Text:    "text",
		Video:   "video",
		Image:   "image",
		File:    "file",
	}
}

// ParseKind maps the lowercase wire name to a Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, v := range getKindStrings() {
		if k != Unknown && v == name {
			return k, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("kind is invalid", fmt.Errorf("%q is not a content kind", s))
}

func (k Kind) Validate() error {
	if k <= Unknown || k > File {
		return errs.NewValueIsInvalidErrorWithCause("kind is invalid", fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}

func (k Kind) String() string {
	if s, ok := getKindStrings()[k]; ok {
		return s
	}
	return "unknown"
}

// HasURL reports whether the body of this kind is a URL rather than text.
func (k Kind) HasURL() bool {
	return k == Video || k == Image || k == File
}
