package handlers

import (
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vinhyan/midland-library/internal/models"
	"github.com/vinhyan/midland-library/internal/session"
	"github.com/vinhyan/midland-library/internal/views"
)

type ProfileHandler struct {
	BookCol *mongo.Collection
	Views   *views.Renderer
}

// GET /profile
func (h *ProfileHandler) ShowProfile(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())

	if !sess.Data.LoggedIn {
		renderError(w, h.Views, http.StatusOK, sess.Data, "Please log in to see your profile", false)
		return
	}

	cursor, err := h.BookCol.Find(r.Context(), bson.M{"borrowBy": sess.Data.CardNumber})
	if err != nil {
		renderStoreFailure(w, h.Views, sess.Data, err)
		return
	}
	defer cursor.Close(r.Context())

	var books []models.Book
	if err := cursor.All(r.Context(), &books); err != nil {
		renderStoreFailure(w, h.Views, sess.Data, err)
		return
	}

	if len(books) == 0 {
		renderError(w, h.Views, http.StatusOK, sess.Data, "You are not borrowing any books", false)
		return
	}

	renderView(w, h.Views, http.StatusOK, "profile", views.ProfileData{
		Page:  pageOf(sess.Data),
		Books: books,
	})
}
