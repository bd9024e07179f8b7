package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vinhyan/midland-library/internal/constants"
	"github.com/vinhyan/midland-library/internal/models"
	"github.com/vinhyan/midland-library/internal/session"
	"github.com/vinhyan/midland-library/internal/utils"
	"github.com/vinhyan/midland-library/internal/views"
)

type LoanHandler struct {
	BookCol     *mongo.Collection
	AuditLogger utils.Logger
	Views       *views.Renderer
}

// POST /borrow/{id}
func (h *LoanHandler) Borrow(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())

	if !sess.Data.LoggedIn {
		renderError(w, h.Views, http.StatusOK, sess.Data, "Please log in to borrow this book", false)
		return
	}

	bookID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		renderError(w, h.Views, http.StatusOK, sess.Data, "This book is cannot be found", false)
		return
	}

	// The borrowBy filter makes the update conditional: only an available
	// book matches, so two borrowers racing for the same copy cannot both
	// win.
	res := h.BookCol.FindOneAndUpdate(r.Context(),
		bson.M{"_id": bookID, "borrowBy": ""},
		bson.M{"$set": bson.M{
			"borrowBy":   sess.Data.CardNumber,
			"isBorrowed": true,
		}},
	)

	if err := res.Err(); err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			renderStoreFailure(w, h.Views, sess.Data, err)
			return
		}

		// No available copy matched. Distinguish a missing book from one
		// someone else already holds.
		err := h.BookCol.FindOne(r.Context(), bson.M{"_id": bookID}).Err()
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			renderError(w, h.Views, http.StatusOK, sess.Data, "This book is cannot be found", false)
		case err != nil:
			renderStoreFailure(w, h.Views, sess.Data, err)
		default:
			renderError(w, h.Views, http.StatusOK, sess.Data, "This book is already borrowed", false)
		}
		return
	}

	h.AuditLogger.Log(r.Context(), models.BookEntity, constants.Borrow, sess.Data.CardNumber, bookID.Hex())

	http.Redirect(w, r, "/", http.StatusFound)
}

// POST /return/{id}
//
// Deliberately unauthenticated: a book can be handed in at the desk by
// anyone, not only the borrower of record.
func (h *LoanHandler) Return(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())

	bookID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		renderError(w, h.Views, http.StatusOK, sess.Data, "Something went wrong, this book cannot be found!", false)
		return
	}

	res, err := h.BookCol.UpdateByID(r.Context(), bookID, bson.M{"$set": bson.M{
		"borrowBy":   "",
		"isBorrowed": false,
	}})
	if err != nil {
		renderStoreFailure(w, h.Views, sess.Data, err)
		return
	}
	if res.MatchedCount == 0 {
		renderError(w, h.Views, http.StatusOK, sess.Data, "Something went wrong, this book cannot be found!", false)
		return
	}

	h.AuditLogger.Log(r.Context(), models.BookEntity, constants.Return, sess.Data.CardNumber, bookID.Hex())

	renderError(w, h.Views, http.StatusOK, sess.Data, "You have returned sucessfully", true)
}
