// Package payload builds the payload strings encoded into QR codes for
// structured content types: network credentials, contact cards, messaging
// URIs, and payment URIs.
//
// Each builder owns the escaping rules of its format. The builders only
// produce strings; they never validate payload semantics (a phone number is
// not checked for being dialable) and never talk to the encoder directly.
//
// # Usage
//
//	wifi := payload.WiFi{
//		SSID:       "Guest Network",
//		Password:   "hunter2",
//		Encryption: payload.EncryptionWPA,
//	}
//	content := wifi.String() // WIFI:T:WPA;S:Guest Network;P:hunter2;;
//
//	card := payload.VCard{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}
//	content = card.String()
package payload
