package server

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// handleStatic serves widget assets from the configured static directory.
// Only paths matching the configured glob allowlist are served; everything
// else is a 404.
func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	rel := strings.TrimPrefix(r.URL.Path, "/")
	if rel == "" || s.cfg.StaticDir == "" {
		http.NotFound(w, r)
		return
	}

	clean := filepath.ToSlash(filepath.Clean(rel))
	if clean == ".." || strings.HasPrefix(clean, "../") {
		http.NotFound(w, r)
		return
	}

	if !matchesAny(clean, s.cfg.StaticAllow) {
		http.NotFound(w, r)
		return
	}

	http.ServeFile(w, r, filepath.Join(s.cfg.StaticDir, filepath.FromSlash(clean)))
}

// matchesAny reports whether the slash-separated path matches any pattern,
// either as a full path or by base name.
func matchesAny(path string, patterns []string) bool {
	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)

		if matched, err := doublestar.PathMatch(pattern, path); err == nil && matched {
			return true
		}

		base := filepath.Base(path)
		if matched, err := doublestar.PathMatch(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}
