package payload

import (
	"net/url"
	"strconv"
	"strings"
)

// Payment builds a BIP-21 style payment URI: <scheme>:<address>?amount=...
// The same shape covers bitcoin:, ethereum:, and similar wallet schemes.
type Payment struct {
	Scheme  string  // payment scheme without the colon, e.g. "bitcoin"
	Address string  // destination address or handle
	Amount  float64 // zero means "no amount requested"
	Label   string
	Message string
}

func (p Payment) String() string {
	scheme := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(p.Scheme)), ":")
	if scheme == "" {
		scheme = "bitcoin"
	}

	q := url.Values{}
	if p.Amount > 0 {
		q.Set("amount", strconv.FormatFloat(p.Amount, 'f', -1, 64))
	}
	if p.Label != "" {
		q.Set("label", p.Label)
	}
	if p.Message != "" {
		q.Set("message", p.Message)
	}

	s := scheme + ":" + p.Address
	if encoded := q.Encode(); encoded != "" {
		s += "?" + strings.ReplaceAll(encoded, "+", "%20")
	}
	return s
}
