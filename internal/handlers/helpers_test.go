package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vinhyan/midland-library/internal/session"
	"github.com/vinhyan/midland-library/internal/views"
)

func newTestRenderer(t *testing.T) *views.Renderer {
	t.Helper()
	renderer, err := views.NewRenderer()
	if err != nil {
		t.Fatalf("failed to load views: %v", err)
	}
	return renderer
}

func newTestSession(t *testing.T, data session.Data) *session.Session {
	t.Helper()
	store, err := session.NewMemDBStore()
	if err != nil {
		t.Fatalf("failed to create session store: %v", err)
	}
	sess := session.New("test-session", data, store)
	if err := sess.Save(context.Background()); err != nil {
		t.Fatalf("failed to save session: %v", err)
	}
	return sess
}

func withSession(req *http.Request, sess *session.Session) *http.Request {
	return req.WithContext(session.NewContext(req.Context(), sess))
}

func assertBodyContains(t *testing.T, w *httptest.ResponseRecorder, want string) {
	t.Helper()
	if !strings.Contains(w.Body.String(), want) {
		t.Errorf("response body does not contain %q:\n%s", want, w.Body.String())
	}
}
