package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/vinhyan/midland-library/internal/handlers"
	"github.com/vinhyan/midland-library/internal/session"
	"github.com/vinhyan/midland-library/internal/utils"
)

func loginRequest(cardNum string, sess *session.Session) *http.Request {
	form := strings.NewReader("cardNum=" + cardNum)
	req := httptest.NewRequest(http.MethodPost, "/login", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return withSession(req, sess)
}

func TestAuthHandler_Login(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	if mt.Client != nil {
		defer mt.Client.Disconnect(context.Background())
	}

	mt.Run("registered card number logs in and redirects", func(mt *mtest.T) {
		handler := &handlers.AuthHandler{
			UserCol:     mt.Coll,
			AuditLogger: utils.Logger{Collection: mt.Coll},
			Views:       newTestRenderer(mt.T),
		}

		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, "test.users", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "cardNumber", Value: "0000"},
				{Key: "name", Value: "John"},
			}),
			// audit log insert
			mtest.CreateSuccessResponse(),
		)

		sess := newTestSession(mt.T, session.Data{})

		router := mux.NewRouter()
		router.HandleFunc("/login", handler.Login).Methods("POST")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, loginRequest("0000", sess))

		if w.Code != http.StatusFound {
			t.Errorf("expected redirect, got %v", w.Code)
		}
		if loc := w.Header().Get("Location"); loc != "/" {
			t.Errorf("expected redirect to /, got %q", loc)
		}

		if !sess.Data.LoggedIn {
			t.Error("expected session to be logged in")
		}
		if sess.Data.Username != "John" {
			t.Errorf("expected username John, got %q", sess.Data.Username)
		}
		if sess.Data.CardNumber != "0000" {
			t.Errorf("expected card number 0000, got %q", sess.Data.CardNumber)
		}
	})

	mt.Run("unregistered card number is rejected", func(mt *mtest.T) {
		handler := &handlers.AuthHandler{
			UserCol:     mt.Coll,
			AuditLogger: utils.Logger{Collection: mt.Coll},
			Views:       newTestRenderer(mt.T),
		}

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "test.users", mtest.FirstBatch),
		)

		sess := newTestSession(mt.T, session.Data{})

		w := httptest.NewRecorder()
		handler.Login(w, loginRequest("9999", sess))

		if w.Code != http.StatusOK {
			t.Errorf("expected status OK, got %v", w.Code)
		}
		assertBodyContains(mt.T, w, "Invalid Card Number")

		if sess.Data.LoggedIn {
			t.Error("session must stay unauthenticated after a failed login")
		}
	})
}

func TestAuthHandler_ShowLogin(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	if mt.Client != nil {
		defer mt.Client.Disconnect(context.Background())
	}

	mt.Run("renders the login form", func(mt *mtest.T) {
		handler := &handlers.AuthHandler{UserCol: mt.Coll, Views: newTestRenderer(mt.T)}

		req := httptest.NewRequest(http.MethodGet, "/login", nil)
		req = withSession(req, newTestSession(mt.T, session.Data{}))
		w := httptest.NewRecorder()

		handler.ShowLogin(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected status OK, got %v", w.Code)
		}
		assertBodyContains(mt.T, w, "cardNum")
	})

	mt.Run("shows the banner for a logged in visitor", func(mt *mtest.T) {
		handler := &handlers.AuthHandler{UserCol: mt.Coll, Views: newTestRenderer(mt.T)}

		req := httptest.NewRequest(http.MethodGet, "/login", nil)
		req = withSession(req, newTestSession(mt.T, session.Data{
			LoggedIn: true,
			Username: "Leah",
		}))
		w := httptest.NewRecorder()

		handler.ShowLogin(w, req)

		assertBodyContains(mt.T, w, "already logged in as Leah")
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	if mt.Client != nil {
		defer mt.Client.Disconnect(context.Background())
	}

	mt.Run("clears the whole identity, not just the flag", func(mt *mtest.T) {
		handler := &handlers.AuthHandler{
			UserCol:     mt.Coll,
			AuditLogger: utils.Logger{Collection: mt.Coll},
			Views:       newTestRenderer(mt.T),
		}

		mt.AddMockResponses(mtest.CreateSuccessResponse())

		sess := newTestSession(mt.T, session.Data{
			LoggedIn:   true,
			Username:   "John",
			CardNumber: "0000",
		})

		req := httptest.NewRequest(http.MethodPost, "/logout", nil)
		req = withSession(req, sess)
		w := httptest.NewRecorder()

		handler.Logout(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected status OK, got %v", w.Code)
		}
		assertBodyContains(mt.T, w, "logged out")

		if sess.Data.LoggedIn || sess.Data.Username != "" || sess.Data.CardNumber != "" {
			t.Errorf("expected empty session after logout, got %+v", sess.Data)
		}
	})
}
