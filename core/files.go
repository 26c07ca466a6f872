package core

import (
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ReadSource loads the full content of an upload source.
func ReadSource(filePath string) ([]byte, error) {
	filePath = strings.TrimSpace(filePath)
	if filePath == "" {
		return nil, BadInput("file_path", "core: upload file path is required")
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, LocalIOError(err, filePath, "read")
	}
	return data, nil
}

// WriteDestination writes data to filePath. The file handle is closed on every
// path and a partially written file is removed.
func WriteDestination(filePath string, data []byte) (err error) {
	if dir := filepath.Dir(filePath); dir != "" && dir != "." {
		if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
			return LocalIOError(mkErr, filePath, "write")
		}
	}
	file, err := os.Create(filePath)
	if err != nil {
		return LocalIOError(err, filePath, "write")
	}
	defer func() {
		closeErr := file.Close()
		if err == nil && closeErr != nil {
			err = LocalIOError(closeErr, filePath, "write")
		}
		if err != nil {
			_ = os.Remove(filePath)
		}
	}()

	if _, writeErr := file.Write(data); writeErr != nil {
		return LocalIOError(writeErr, filePath, "write")
	}
	return nil
}

// ResolveDownloadPath picks the destination for a download: the file_name
// param verbatim when present, otherwise <itemID>.<extension> under dir. The
// derived name must stay inside dir, so item ids that are blank, dot segments
// or carry path separators are rejected.
func ResolveDownloadPath(params Params, dir string, itemID string, extension string) (string, error) {
	if name, ok := params.String(ParamFileName); ok {
		return name, nil
	}
	if !isPlainFileName(itemID) {
		return "", BadInput("item_id", fmt.Sprintf("core: item id %q cannot be used as a file name", itemID))
	}
	name := itemID
	if extension = strings.TrimPrefix(strings.TrimSpace(extension), "."); extension != "" {
		name += "." + extension
	}
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return name, nil
	}
	return filepath.Join(dir, name), nil
}

func isPlainFileName(name string) bool {
	if strings.TrimSpace(name) == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`) && !strings.ContainsRune(name, 0)
}

// ExtensionFromURL infers a file extension from the last path segment of
// rawURL, ignoring any query string or fragment.
func ExtensionFromURL(rawURL string, fallback string) string {
	fallback = strings.TrimPrefix(strings.TrimSpace(fallback), ".")
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return fallback
	}
	ext := strings.TrimPrefix(path.Ext(parsed.Path), ".")
	if ext == "" {
		return fallback
	}
	return ext
}
