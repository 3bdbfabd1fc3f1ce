package quote

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	"io"
	"net/http"
	"strings"
	"time"

	// Decoders for the raster formats image links point at.
	_ "image/gif"
	_ "image/png"

	"github.com/pkg/errors"
)

const (
	imageTimeout  = 5 * time.Second
	maxImageBytes = 8 << 20
)

// ImageFetcher is what the generator needs for photo cells. Any error
// degrades the cell to a placeholder, never the document.
type ImageFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Fetcher downloads an item photo and re-encodes it as JPEG, so the
// PDF engine is handed bytes it is guaranteed to accept.
type Fetcher struct {
	client *http.Client
}

func NewFetcher() *Fetcher {
	return &Fetcher{client: &http.Client{Timeout: imageTimeout}}
}

func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if !strings.HasPrefix(url, "http") {
		return nil, errors.New("missing or non-http image reference")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "building image request")
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetching image")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("image fetch returned %s", resp.Status)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, errors.Wrap(err, "reading image body")
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Wrap(err, "decoding image")
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		return nil, errors.Wrap(err, "re-encoding image")
	}
	return buf.Bytes(), nil
}
