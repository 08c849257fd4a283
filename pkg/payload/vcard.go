package payload

import "strings"

// VCard builds a vCard 3.0 contact-card payload.
type VCard struct {
	FirstName    string
	LastName     string
	Organization string
	Title        string
	Phone        string
	Email        string
	URL          string
	Street       string
	City         string
	Country      string
}

// String renders the contact card. Field values are escaped per RFC 2426;
// empty fields are omitted entirely.
func (v VCard) String() string {
	var b strings.Builder
	b.WriteString("BEGIN:VCARD\nVERSION:3.0\n")

	b.WriteString("N:")
	b.WriteString(escapeVCard(v.LastName))
	b.WriteString(";")
	b.WriteString(escapeVCard(v.FirstName))
	b.WriteString("\n")

	fullName := strings.TrimSpace(v.FirstName + " " + v.LastName)
	if fullName != "" {
		b.WriteString("FN:")
		b.WriteString(escapeVCard(fullName))
		b.WriteString("\n")
	}
	if v.Organization != "" {
		b.WriteString("ORG:")
		b.WriteString(escapeVCard(v.Organization))
		b.WriteString("\n")
	}
	if v.Title != "" {
		b.WriteString("TITLE:")
		b.WriteString(escapeVCard(v.Title))
		b.WriteString("\n")
	}
	if v.Phone != "" {
		b.WriteString("TEL:")
		b.WriteString(escapeVCard(v.Phone))
		b.WriteString("\n")
	}
	if v.Email != "" {
		b.WriteString("EMAIL:")
		b.WriteString(escapeVCard(v.Email))
		b.WriteString("\n")
	}
	if v.URL != "" {
		b.WriteString("URL:")
		b.WriteString(escapeVCard(v.URL))
		b.WriteString("\n")
	}
	if v.Street != "" || v.City != "" || v.Country != "" {
		b.WriteString("ADR:;;")
		b.WriteString(escapeVCard(v.Street))
		b.WriteString(";")
		b.WriteString(escapeVCard(v.City))
		b.WriteString(";;;")
		b.WriteString(escapeVCard(v.Country))
		b.WriteString("\n")
	}

	b.WriteString("END:VCARD")
	return b.String()
}

// escapeVCard escapes the separators reserved by vCard text values.
func escapeVCard(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		`;`, `\;`,
		`,`, `\,`,
		"\n", `\n`,
	)
	return r.Replace(s)
}
