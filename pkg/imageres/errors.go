package imageres

import "errors"

var (
	// ErrTooLarge is recorded when the referenced resource exceeds the
	// configured byte limit.
	ErrTooLarge = errors.New("imageres: resource exceeds size limit")

	// ErrBadStatus is recorded when an HTTP fetch returns a non-200 status.
	ErrBadStatus = errors.New("imageres: unexpected response status")

	// ErrUnsupportedScheme is recorded for reference schemes the resolver
	// does not handle.
	ErrUnsupportedScheme = errors.New("imageres: unsupported reference scheme")

	// ErrDecode is recorded when the fetched bytes are not a decodable
	// raster image.
	ErrDecode = errors.New("imageres: decode image")

	// ErrMalformedDataURI is recorded for data: references without a
	// payload separator.
	ErrMalformedDataURI = errors.New("imageres: malformed data URI")
)
