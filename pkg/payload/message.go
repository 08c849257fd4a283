package payload

import (
	"net/url"
	"strings"
)

// SMS builds an SMSTO: messaging URI. The body may be empty.
type SMS struct {
	Phone string
	Body  string
}

func (s SMS) String() string {
	// SMSTO uses raw colon separation; only the body needs escaping because a
	// colon inside a phone number has no meaning to parsers.
	return "SMSTO:" + s.Phone + ":" + s.Body
}

// Mail builds a mailto: URI with optional subject and body.
type Mail struct {
	To      string
	Subject string
	Body    string
}

func (m Mail) String() string {
	q := url.Values{}
	if m.Subject != "" {
		q.Set("subject", m.Subject)
	}
	if m.Body != "" {
		q.Set("body", m.Body)
	}

	s := "mailto:" + m.To
	if encoded := q.Encode(); encoded != "" {
		// mailto bodies conventionally use %20, not '+'
		s += "?" + strings.ReplaceAll(encoded, "+", "%20")
	}
	return s
}

// Tel builds a tel: URI for click-to-call codes.
type Tel struct {
	Number string
}

func (t Tel) String() string {
	return "tel:" + strings.Map(func(r rune) rune {
		switch r {
		case ' ', '(', ')', '-', '.':
			return -1
		}
		return r
	}, t.Number)
}
