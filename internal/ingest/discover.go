// Package ingest finds receipt files to process.
package ingest

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// receiptExts are the file types the pipeline can handle.
var receiptExts = map[string]struct{}{
	".pdf":  {},
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".eml":  {},
}

// Discover lists receipt files directly under dir, in name order.
// Pre-approval documents are authorization forms, not receipts, and are
// excluded by filename. Returns the matched paths and the count of
// excluded pre-approval files.
func Discover(dir string) (files []string, skipped int, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, 0, err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if _, ok := receiptExts[strings.ToLower(filepath.Ext(name))]; !ok {
			continue
		}
		if strings.Contains(strings.ToLower(name), "pre-approval") {
			skipped++
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}

	sort.Strings(files)
	return files, skipped, nil
}
