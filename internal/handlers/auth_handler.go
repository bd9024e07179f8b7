package handlers

import (
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vinhyan/midland-library/internal/constants"
	"github.com/vinhyan/midland-library/internal/models"
	"github.com/vinhyan/midland-library/internal/session"
	"github.com/vinhyan/midland-library/internal/utils"
	"github.com/vinhyan/midland-library/internal/views"
)

type AuthHandler struct {
	UserCol     *mongo.Collection
	AuditLogger utils.Logger
	Views       *views.Renderer
}

// GET /login
func (h *AuthHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	renderView(w, h.Views, http.StatusOK, "login", pageOf(sess.Data))
}

// POST /login
//
// The card number is the whole credential. There is no password step; the
// catalog trusts whoever presents a registered card.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		renderError(w, h.Views, http.StatusOK, sess.Data, "Invalid Card Number", false)
		return
	}
	cardNum := r.PostFormValue("cardNum")

	var user models.User
	err := h.UserCol.FindOne(r.Context(), bson.M{"cardNumber": cardNum}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		renderError(w, h.Views, http.StatusOK, sess.Data, "Invalid Card Number", false)
		return
	}
	if err != nil {
		renderStoreFailure(w, h.Views, sess.Data, err)
		return
	}

	sess.Data = session.Data{
		LoggedIn:   true,
		Username:   user.Name,
		CardNumber: user.CardNumber,
	}
	if err := sess.Save(r.Context()); err != nil {
		renderStoreFailure(w, h.Views, sess.Data, err)
		return
	}

	h.AuditLogger.Log(r.Context(), models.UserEntity, constants.Login, user.CardNumber, user.Name)

	http.Redirect(w, r, "/", http.StatusFound)
}

// POST /logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	cardNum := sess.Data.CardNumber

	// Clear wipes the identity fields too, so nothing stale survives a
	// re-login under a different card.
	if err := sess.Clear(r.Context()); err != nil {
		renderStoreFailure(w, h.Views, sess.Data, err)
		return
	}

	h.AuditLogger.Log(r.Context(), models.UserEntity, constants.Logout, cardNum, nil)

	renderView(w, h.Views, http.StatusOK, "logout", pageOf(sess.Data))
}
