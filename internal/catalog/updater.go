package catalog

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

const updateTimeout = 10 * time.Second

// Updater pushes a single field edit to the sheet bridge endpoint.
// One field per call; HTTP 200 is the only success signal.
type Updater struct {
	url    string
	client *http.Client
}

func NewUpdater(url string) *Updater {
	return &Updater{
		url:    url,
		client: &http.Client{Timeout: updateTimeout},
	}
}

func (u *Updater) Update(ctx context.Context, product, column, value string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.url, nil)
	if err != nil {
		return errors.Wrap(err, "building bridge request")
	}

	q := req.URL.Query()
	q.Set("producto", product)
	q.Set("columna", column)
	q.Set("valor", value)
	req.URL.RawQuery = q.Encode()

	resp, err := u.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "calling sheet bridge")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errors.Errorf("sheet bridge returned %s: %s", resp.Status, string(body))
	}

	return nil
}
