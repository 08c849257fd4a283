package imageres_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrcraft/pkg/imageres"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestResolveEmptyRef(t *testing.T) {
	t.Parallel()

	resolver := imageres.NewResolver()
	future := resolver.Resolve(context.Background(), "")

	require.True(t, future.IsComplete(), "empty ref must resolve synchronously")
	res, err := future.Await()
	require.NoError(t, err)
	assert.True(t, res.Absent())
	assert.NoError(t, res.Cause)
}

func TestResolveDataURI(t *testing.T) {
	t.Parallel()

	t.Run("base64 png round-trips", func(t *testing.T) {
		t.Parallel()

		raw := encodePNG(t, 8, 8)
		ref := "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)

		resolver := imageres.NewResolver()
		res, err := resolver.Resolve(context.Background(), ref).Await()
		require.NoError(t, err)
		require.False(t, res.Absent())
		assert.Equal(t, 8, res.Image.Bounds().Dx())
		assert.Equal(t, 8, res.Image.Bounds().Dy())
	})

	t.Run("undecodable payload is absent with cause", func(t *testing.T) {
		t.Parallel()

		ref := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("not an image"))

		resolver := imageres.NewResolver()
		res, err := resolver.Resolve(context.Background(), ref).Await()
		require.NoError(t, err)
		assert.True(t, res.Absent())
		assert.ErrorIs(t, res.Cause, imageres.ErrDecode)
	})

	t.Run("missing separator is absent with cause", func(t *testing.T) {
		t.Parallel()

		resolver := imageres.NewResolver()
		res, err := resolver.Resolve(context.Background(), "data:image/png;base64").Await()
		require.NoError(t, err)
		assert.True(t, res.Absent())
		assert.ErrorIs(t, res.Cause, imageres.ErrMalformedDataURI)
	})
}

func TestResolveHTTP(t *testing.T) {
	t.Parallel()

	t.Run("fetches and decodes", func(t *testing.T) {
		t.Parallel()

		raw := encodePNG(t, 12, 6)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write(raw)
		}))
		t.Cleanup(srv.Close)

		resolver := imageres.NewResolver(imageres.WithHTTPClient(srv.Client()))
		res, err := resolver.Resolve(context.Background(), srv.URL+"/logo.png").Await()
		require.NoError(t, err)
		require.False(t, res.Absent())
		assert.Equal(t, 12, res.Image.Bounds().Dx())
	})

	t.Run("non-200 status is absent with cause", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		t.Cleanup(srv.Close)

		resolver := imageres.NewResolver(imageres.WithHTTPClient(srv.Client()))
		res, err := resolver.Resolve(context.Background(), srv.URL+"/missing.png").Await()
		require.NoError(t, err)
		assert.True(t, res.Absent())
		assert.ErrorIs(t, res.Cause, imageres.ErrBadStatus)
	})

	t.Run("oversized body is absent with cause", func(t *testing.T) {
		t.Parallel()

		raw := encodePNG(t, 64, 64)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write(raw)
		}))
		t.Cleanup(srv.Close)

		resolver := imageres.NewResolver(
			imageres.WithHTTPClient(srv.Client()),
			imageres.WithMaxBytes(16),
		)
		res, err := resolver.Resolve(context.Background(), srv.URL).Await()
		require.NoError(t, err)
		assert.True(t, res.Absent())
		assert.ErrorIs(t, res.Cause, imageres.ErrTooLarge)
	})
}

func TestResolveFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "logo.png")
	require.NoError(t, os.WriteFile(path, encodePNG(t, 10, 10), 0o600))

	resolver := imageres.NewResolver()

	for _, ref := range []string{path, "file://" + path} {
		res, err := resolver.Resolve(context.Background(), ref).Await()
		require.NoError(t, err)
		require.False(t, res.Absent(), "ref %q", ref)
		assert.Equal(t, 10, res.Image.Bounds().Dx())
	}

	res, err := resolver.Resolve(context.Background(), filepath.Join(t.TempDir(), "missing.png")).Await()
	require.NoError(t, err)
	assert.True(t, res.Absent())
}

func TestResolveUnsupportedScheme(t *testing.T) {
	t.Parallel()

	resolver := imageres.NewResolver()
	res, err := resolver.Resolve(context.Background(), "ftp://example.com/logo.png").Await()
	require.NoError(t, err)
	assert.True(t, res.Absent())
	assert.ErrorIs(t, res.Cause, imageres.ErrUnsupportedScheme)
}

func TestResolveCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resolver := imageres.NewResolver()
	_, err := resolver.Resolve(ctx, "https://example.com/logo.png").AwaitWithTimeout(time.Second)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResolveNormalizesLargeRasters(t *testing.T) {
	t.Parallel()

	raw := encodePNG(t, 64, 32)
	ref := "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)

	resolver := imageres.NewResolver(imageres.WithMaxEdge(16))
	res, err := resolver.Resolve(context.Background(), ref).Await()
	require.NoError(t, err)
	require.False(t, res.Absent())

	bounds := res.Image.Bounds()
	assert.LessOrEqual(t, bounds.Dx(), 16)
	assert.LessOrEqual(t, bounds.Dy(), 16)
	// Aspect ratio survives the downscale.
	assert.Equal(t, bounds.Dx(), bounds.Dy()*2)
}
