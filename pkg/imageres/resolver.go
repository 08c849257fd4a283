package imageres

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/nfnt/resize"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/dmitrymomot/qrcraft/pkg/async"
)

// Resolution is the outcome of resolving one logo reference. Image is nil
// when the reference was empty or could not be resolved; Cause then carries
// the reason, already logged, for callers that want to surface it.
type Resolution struct {
	Image image.Image
	Cause error
}

// Absent reports whether no usable raster was resolved.
func (r Resolution) Absent() bool { return r.Image == nil }

// Resolver fetches and decodes logo references. The zero value is not
// usable; construct with NewResolver.
type Resolver struct {
	client   *http.Client
	log      *slog.Logger
	maxBytes int64
	timeout  time.Duration
	maxEdge  uint
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithHTTPClient replaces the HTTP client used for http(s) references.
func WithHTTPClient(client *http.Client) Option {
	return func(r *Resolver) {
		if client != nil {
			r.client = client
		}
	}
}

// WithLogger sets the logger for resolution failures. Defaults to discard.
func WithLogger(log *slog.Logger) Option {
	return func(r *Resolver) {
		if log != nil {
			r.log = log
		}
	}
}

// WithMaxBytes caps the fetched resource size. Defaults to 8 MiB.
func WithMaxBytes(n int64) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.maxBytes = n
		}
	}
}

// WithTimeout bounds a single resolution end to end. Defaults to 10s.
func WithTimeout(d time.Duration) Option {
	return func(r *Resolver) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithMaxEdge caps the decoded raster's longest edge; larger images are
// downscaled preserving aspect ratio. Defaults to 1024.
func WithMaxEdge(px uint) Option {
	return func(r *Resolver) {
		if px > 0 {
			r.maxEdge = px
		}
	}
}

// NewResolver returns a Resolver with the given options applied over
// defaults suitable for logo-sized images.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		client:   http.DefaultClient,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxBytes: 8 << 20,
		timeout:  10 * time.Second,
		maxEdge:  1024,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve starts resolving ref and returns a Future for the outcome. The
// empty reference completes immediately with an Absent Resolution. Fetch and
// decode failures also resolve to Absent (with Cause set); only context
// cancellation is reported as a Future error.
func (r *Resolver) Resolve(ctx context.Context, ref string) *async.Future[Resolution] {
	if ref == "" {
		return async.Resolved(Resolution{})
	}
	return async.Async(ctx, ref, r.resolve)
}

func (r *Resolver) resolve(ctx context.Context, ref string) (Resolution, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	img, err := r.load(ctx, ref)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Resolution{}, ctxErr
		}
		r.log.Warn("logo resolution failed", "ref", ref, "error", err)
		return Resolution{Cause: err}, nil
	}
	return Resolution{Image: r.normalize(img)}, nil
}

func (r *Resolver) load(ctx context.Context, ref string) (image.Image, error) {
	switch {
	case strings.HasPrefix(ref, "data:"):
		return r.loadData(ref)
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return r.loadHTTP(ctx, ref)
	case strings.HasPrefix(ref, "file://"):
		return r.loadFile(strings.TrimPrefix(ref, "file://"))
	case strings.Contains(ref, "://"):
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedScheme, ref)
	default:
		return r.loadFile(ref)
	}
}

func (r *Resolver) loadData(ref string) (image.Image, error) {
	meta, payload, ok := strings.Cut(strings.TrimPrefix(ref, "data:"), ",")
	if !ok {
		return nil, ErrMalformedDataURI
	}

	var raw []byte
	if strings.HasSuffix(meta, ";base64") {
		decoded, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDataURI, err)
		}
		raw = decoded
	} else {
		unescaped, err := url.QueryUnescape(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDataURI, err)
		}
		raw = []byte(unescaped)
	}
	if int64(len(raw)) > r.maxBytes {
		return nil, ErrTooLarge
	}
	return r.decode(raw)
}

func (r *Resolver) loadHTTP(ctx context.Context, ref string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", ErrBadStatus, resp.Status)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, r.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(raw)) > r.maxBytes {
		return nil, ErrTooLarge
	}
	return r.decode(raw)
}

func (r *Resolver) loadFile(path string) (image.Image, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat: %w", err)
	}
	if info.Size() > r.maxBytes {
		return nil, ErrTooLarge
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return r.decode(raw)
}

func (r *Resolver) decode(raw []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return img, nil
}

func (r *Resolver) normalize(img image.Image) image.Image {
	bounds := img.Bounds()
	if uint(bounds.Dx()) <= r.maxEdge && uint(bounds.Dy()) <= r.maxEdge {
		return img
	}
	return resize.Thumbnail(r.maxEdge, r.maxEdge, img, resize.Lanczos3)
}
