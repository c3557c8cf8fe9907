package static

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/m04kA/SMC-ShuttleService/internal/api/handlers"
)

const indexFile = "index.html"

type Logger interface {
	Warn(format string, v ...interface{})
}

// Handler отдает собранное SPA: существующий файл из каталога или index.html
type Handler struct {
	dir    string
	logger Logger
}

func NewHandler(dir string, logger Logger) *Handler {
	return &Handler{
		dir:    dir,
		logger: logger,
	}
}

// Handle GET /{path}, все пути вне /api/
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		handlers.RespondNotFound(w, "Not found")
		return
	}

	name := filepath.Join(h.dir, filepath.FromSlash(path.Clean("/"+r.URL.Path)))
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		http.ServeFile(w, r, name)
		return
	}

	index := filepath.Join(h.dir, indexFile)
	if _, err := os.Stat(index); err != nil {
		h.logger.Warn("GET %s - index.html not found in %s", r.URL.Path, h.dir)
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, index)
}
