package services

import (
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/mrnavastar/instancer/util"
	"github.com/rotisserie/eris"
)

// Fetcher downloads a URL straight to a local path. api.DownloadFile is
// the production implementation.
type Fetcher func(url string, path string) error

// RetryPolicy controls how often a single download is attempted and how
// long to wait between failed attempts.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     func(attempt int) time.Duration
}

// DefaultRetryPolicy tries three times, waiting attempt*1s between
// failures: 1s before the second attempt, 2s before the third.
var DefaultRetryPolicy = RetryPolicy{
	MaxAttempts: 3,
	Backoff: func(attempt int) time.Duration {
		return time.Duration(attempt) * time.Second
	},
}

// retry runs fn until it succeeds or the policy is exhausted, sleeping
// between failed attempts. The last error is returned.
func retry(policy RetryPolicy, sleep func(time.Duration), fn func() error) error {
	var err error
	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if attempt < policy.MaxAttempts {
			sleep(policy.Backoff(attempt))
		}
	}
	return err
}

// Downloader runs batches of manifest files through the retry policy,
// reporting progress against the install-wide file total.
type Downloader struct {
	Fetch   Fetcher
	FileURL func(downloadURL string) string
	Policy  RetryPolicy
	Sink    EventSink
	Sleep   func(time.Duration)
}

// DownloadBatch fetches every downloadable entry in order and returns
// the filenames that failed all attempts. Index entries are skipped
// without advancing the progress counter. startIndex is the number of
// files already processed by earlier batches, totalCount the
// install-wide downloadable total.
func (d *Downloader) DownloadBatch(files []util.FileEntry, targetDir string, startIndex int, totalCount int) []string {
	var failed []string
	current := startIndex

	for _, entry := range files {
		if entry.IsIndex() {
			continue
		}

		dest := filepath.Join(targetDir, filepath.FromSlash(entry.Filename))
		err := os.MkdirAll(filepath.Dir(dest), 0755)
		if err == nil {
			url := d.FileURL(entry.DownloadURL)
			err = retry(d.Policy, d.Sleep, func() error {
				if ferr := d.Fetch(url, dest); ferr != nil {
					return ferr
				}
				return verifyDownload(dest)
			})
		}
		if err != nil {
			failed = append(failed, entry.Filename)
		}

		current++
		d.Sink.Progress(ProgressEvent{
			Type:       ProgressTypeDownload,
			Filename:   entry.Filename,
			Current:    current,
			Total:      totalCount,
			Percentage: percentage(current, totalCount),
		})
	}
	return failed
}

// A transfer only counts once the file actually landed on disk with
// content; an empty or missing file fails the attempt.
func verifyDownload(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return eris.Wrap(err, "downloaded file missing")
	}
	if !info.Mode().IsRegular() {
		return eris.Errorf("%s is not a regular file", path)
	}
	if info.Size() == 0 {
		return eris.Errorf("%s is empty", path)
	}
	return nil
}

func percentage(current int, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(current) / float64(total) * 100))
}
