package handlers

import (
	"log"
	"net/http"

	"github.com/vinhyan/midland-library/internal/session"
	"github.com/vinhyan/midland-library/internal/views"
)

func pageOf(d session.Data) views.Page {
	return views.Page{IsLoggedIn: d.LoggedIn, Username: d.Username}
}

func renderView(w http.ResponseWriter, v *views.Renderer, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := v.Render(w, name, data); err != nil {
		log.Println("render failed:", err)
	}
}

func renderError(w http.ResponseWriter, v *views.Renderer, status int, sess session.Data, message string, success bool) {
	renderView(w, v, status, "error", views.ErrorData{
		Page:    pageOf(sess),
		Message: message,
		Success: success,
	})
}

// renderStoreFailure is the handler-level answer to a document store error:
// log it and send a generic 500 page rather than leaving the request open.
func renderStoreFailure(w http.ResponseWriter, v *views.Renderer, sess session.Data, err error) {
	log.Println("document store failure:", err)
	renderError(w, v, http.StatusInternalServerError, sess, "Something went wrong, please try again later", false)
}
