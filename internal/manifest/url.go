package manifest

import (
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// DirName returns the leaf name of dir, resolving "." and relative paths
// against the working directory.
func DirName(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory %s: %w", dir, err)
	}
	name := filepath.Base(abs)
	if name == string(filepath.Separator) || name == "." || name == "" {
		return "", fmt.Errorf("cannot derive a directory name from %s", dir)
	}
	return name, nil
}

// DownloadURL builds https://<host>/<dirName>/<fileName>. host may carry a
// path prefix, e.g. "cdn.example.com/releases".
func DownloadURL(host, dirName, fileName string) string {
	host = strings.TrimPrefix(strings.TrimPrefix(host, "https://"), "http://")
	host, prefix, _ := strings.Cut(strings.Trim(host, "/"), "/")
	u := url.URL{
		Scheme: "https",
		Host:   host,
		Path:   path.Join("/", prefix, dirName, fileName),
	}
	return u.String()
}
