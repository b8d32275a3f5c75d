package server

import (
	"bytes"
	"net/http"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Credentials accepted by the login page.
const (
	DemoUser     = "automation"
	DemoPassword = "Automation@123"
)

// maxUploadBytes bounds the multipart form held in memory.
const maxUploadBytes = 10 << 20

type handler struct {
	logger logrus.FieldLogger
}

func (h *handler) render(w http.ResponseWriter, name string, v view) {
	var buf bytes.Buffer
	if err := views[name].ExecuteTemplate(&buf, "layout", v); err != nil {
		h.logger.WithError(err).WithField("view", name).Error("Failed to render page")
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// page serves a static view.
func (h *handler) page(name, title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.render(w, name, view{Title: title})
	}
}

// index serves the example list at "/" and 404s everything else.
func (h *handler) index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	h.render(w, "index", view{Title: InternetTitle})
}

// login shows the form on GET and greets the user on a valid POST.
func (h *handler) login(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		h.render(w, "login", view{Title: DemoQATitle})
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form", http.StatusBadRequest)
			return
		}
		user, pass := r.PostForm.Get("userName"), r.PostForm.Get("password")
		if user != DemoUser || pass != DemoPassword {
			h.logger.WithField("user", user).Info("Login rejected")
			h.render(w, "login", view{Title: DemoQATitle, Error: "Invalid username or password!"})
			return
		}
		h.logger.WithField("user", user).Info("Login accepted")
		h.render(w, "login", view{Title: DemoQATitle, User: user})
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// redirect sends the browser on to the status codes page.
func (h *handler) redirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/status_codes", http.StatusFound)
}

// upload shows the form on GET and echoes the uploaded file name on POST.
func (h *handler) upload(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		h.render(w, "upload", view{Title: InternetTitle})
	case http.MethodPost:
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			h.logger.WithError(err).Warn("Failed to parse upload")
			h.render(w, "upload", view{Title: InternetTitle, Error: "Invalid upload"})
			return
		}
		defer r.MultipartForm.RemoveAll()

		f, hdr, err := r.FormFile("file")
		if err != nil {
			h.render(w, "upload", view{Title: InternetTitle, Error: "No file selected"})
			return
		}
		_ = f.Close()

		name := filepath.Base(hdr.Filename)
		h.logger.WithFields(logrus.Fields{"file": name, "size": hdr.Size}).Info("File uploaded")
		h.render(w, "upload", view{Title: InternetTitle, Uploaded: name})
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
