// SPDX-FileCopyrightText: Copyright 2025 Contributors to the Eclipse Foundation
// SPDX-License-Identifier: Apache-2.0

/*
Package download streams remote resources to local files.

# Basic Usage

Download a resource with the default 30 second timeout:

	err := download.File("https://example.com/model.json", "/tmp/model.json")

Parent directories of the destination are created as needed and an
existing file is overwritten. On failure a partial file may remain; there
is no retry, resumption or integrity check.

# Configuration

Use functional options for anything beyond the defaults:

	client, err := download.New(
		download.WithTimeout(10*time.Second),
		download.WithHeader("Authorization", "Bearer "+token),
	)
	if err != nil {
		return err
	}
	err = client.Download(ctx, uri, localPath)

Request headers are validated against RFC 7230 at construction time.

# Error Handling

A response outside the 2xx range fails with a *StatusError carrying the
status code:

	var statusErr *download.StatusError
	if errors.As(err, &statusErr) && statusErr.HTTPCode() == http.StatusNotFound {
		// resource is gone
	}

# Cache Downloads

DownloadToCache places files under the XDG cache directory (or a custom
root via WithCacheRoot), deriving the file name from the URI path:

	localPath, err := client.DownloadToCache(ctx, "https://example.com/vss.json")
*/
package download
