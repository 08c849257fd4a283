// Package config provides type-safe environment variable loading with
// caching. Each configuration type is loaded once and cached for subsequent
// calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/qrcraft/core/config"
//
//	type RenderDefaults struct {
//		Size       int    `env:"QR_SIZE" envDefault:"1024"`
//		Style      string `env:"QR_STYLE" envDefault:"square"`
//		Foreground string `env:"QR_FOREGROUND" envDefault:"#000000"`
//		Background string `env:"QR_BACKGROUND" envDefault:"#ffffff"`
//	}
//
//	func main() {
//		var defaults RenderDefaults
//
//		// Load with error handling
//		if err := config.Load(&defaults); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&defaults)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var a RenderDefaults
//	config.Load(&a) // Loads from environment
//
//	var b RenderDefaults
//	config.Load(&b) // Returns cached value, a == b
//
// Different types are cached independently, so render defaults and resolver
// limits can be loaded side by side without interfering with each other.
package config
