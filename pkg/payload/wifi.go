package payload

import "strings"

// Encryption identifies the authentication mode advertised in a WIFI payload.
type Encryption string

// Supported WIFI encryption modes.
const (
	EncryptionWPA  Encryption = "WPA"
	EncryptionWEP  Encryption = "WEP"
	EncryptionNone Encryption = "nopass"
)

// WiFi builds a network-credential payload following the de facto
// WIFI:T:<type>;S:<ssid>;P:<password>;H:<hidden>;; format understood by
// mobile cameras.
type WiFi struct {
	SSID       string
	Password   string
	Encryption Encryption
	Hidden     bool
}

// String renders the payload. SSID and password are escaped so that the
// field separators of the format survive arbitrary input.
func (w WiFi) String() string {
	enc := w.Encryption
	if enc == "" {
		enc = EncryptionWPA
	}

	var b strings.Builder
	b.WriteString("WIFI:T:")
	b.WriteString(string(enc))
	b.WriteString(";S:")
	b.WriteString(escapeWiFi(w.SSID))
	if enc != EncryptionNone {
		b.WriteString(";P:")
		b.WriteString(escapeWiFi(w.Password))
	}
	if w.Hidden {
		b.WriteString(";H:true")
	}
	b.WriteString(";;")
	return b.String()
}

// escapeWiFi prefixes the format's reserved characters with a backslash.
// Backslash must be escaped first so the other escapes are not doubled.
func escapeWiFi(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		`;`, `\;`,
		`,`, `\,`,
		`:`, `\:`,
		`"`, `\"`,
	)
	return r.Replace(s)
}
