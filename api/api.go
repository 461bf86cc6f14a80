package api

import (
	"net/url"
	"os"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/rotisserie/eris"
)

var client = resty.New()

const defaultBase = "https://instances.mrnavastar.dev"

// Base returns the backend root every manifest and file URL is relative to.
func Base() string {
	if base := os.Getenv("INSTANCER_API"); base != "" {
		return strings.TrimSuffix(base, "/")
	}
	return defaultBase
}

// ResolveURL turns a manifest-relative download path into a full,
// URI-encoded URL. Absolute URLs pass through untouched.
func ResolveURL(raw string) string {
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	u := url.URL{Path: raw}
	return Base() + u.EscapedPath()
}

// DownloadFile streams url straight to path.
func DownloadFile(url string, path string) error {
	resp, err := client.R().SetOutput(path).Get(url)
	if err != nil {
		return eris.Wrapf(err, "failed to download %s", url)
	}
	if resp.IsError() {
		return eris.Errorf("download of %s returned %s", url, resp.Status())
	}
	return nil
}
