package handlers

import (
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vinhyan/midland-library/internal/models"
	"github.com/vinhyan/midland-library/internal/session"
	"github.com/vinhyan/midland-library/internal/views"
)

type CatalogHandler struct {
	BookCol *mongo.Collection
	Views   *views.Renderer
}

func NewCatalogHandler(bookCol *mongo.Collection, v *views.Renderer) *CatalogHandler {
	return &CatalogHandler{BookCol: bookCol, Views: v}
}

// GET /
func (h *CatalogHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())

	cursor, err := h.BookCol.Find(r.Context(), bson.M{})
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
		renderError(w, h.Views, http.StatusOK, sess.Data, "No more books available", false)
		return
	}

	renderView(w, h.Views, http.StatusOK, "home", views.HomeData{
		Page:  pageOf(sess.Data),
		Books: books,
	})
}
