// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"io"
	"strings"
)

// NotAvailable stands in for a build value the linker did not set.
const NotAvailable = "N/A"

// BuildInfo is the stamp written into both binaries with
// -ldflags "-X main.buildVersion=... -X main.buildDate=... -X main.buildCommit=...".
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// OrNotAvailable returns b with blank values replaced by [NotAvailable].
func (b BuildInfo) OrNotAvailable() BuildInfo {
	return BuildInfo{
		Version: orNotAvailable(b.Version),
		Date:    orNotAvailable(b.Date),
		Commit:  orNotAvailable(b.Commit),
	}
}

// Print writes the start-up banner both binaries show before logging starts.
func (b BuildInfo) Print(w io.Writer) error {
	b = b.OrNotAvailable()
	_, err := fmt.Fprintf(w, "Build version: %s\nBuild date: %s\nBuild commit: %s\n", b.Version, b.Date, b.Commit)
	return err
}

func orNotAvailable(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return NotAvailable
	}
	return v
}
