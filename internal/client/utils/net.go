// Package utils holds small transport helpers for the CLI.
package utils

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// DownloadFromPresignedURL fetches url and copies the body to w. The
// request carries no credentials; the signature is part of the URL.
func DownloadFromPresignedURL(ctx context.Context, url string, w io.Writer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download failed: %s", resp.Status)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("download failed: %w", err)
	}
	return nil
}
