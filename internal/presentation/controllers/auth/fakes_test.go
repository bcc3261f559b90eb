package auth

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/anuntech/budget-manager/internal/domain/models"
	"github.com/anuntech/budget-manager/internal/domain/usecase"
	presentationProtocols "github.com/anuntech/budget-manager/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeUsers struct {
	byEmail map[string]*models.User
	err     error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byEmail: map[string]*models.User{}}
}

func (f *fakeUsers) Find(email string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byEmail[email], nil
}

func (f *fakeUsers) Create(user *models.User) (*models.User, error) {
	if _, exists := f.byEmail[user.Email]; exists {
		return nil, usecase.ErrEmailAlreadyRegistered
	}
	saved := *user
	saved.Id = primitive.NewObjectID()
	saved.Expenses = []primitive.ObjectID{}
	saved.Budgets = []primitive.ObjectID{}
	f.byEmail[saved.Email] = &saved
	return &saved, nil
}

type fakeSessions struct {
	sessions map[string]*models.Session
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{sessions: map[string]*models.Session{}}
}

func (f *fakeSessions) Create(session *models.Session) error {
	f.sessions[session.Id] = session
	return nil
}

func (f *fakeSessions) Delete(sessionId string) error {
	delete(f.sessions, sessionId)
	return nil
}

func jsonRequest(t *testing.T, method, target string, body any) presentationProtocols.HttpRequest {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(method, target, bytes.NewReader(data))
	return presentationProtocols.HttpRequest{
		Body:      req.Body,
		Header:    req.Header,
		UrlParams: req.URL.Query(),
		Req:       req,
	}
}

func rawRequest(method, target, body string) presentationProtocols.HttpRequest {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	return presentationProtocols.HttpRequest{Body: req.Body, Header: req.Header, UrlParams: req.URL.Query(), Req: req}
}

func decodeBody(t *testing.T, resp *presentationProtocols.HttpResponse) map[string]any {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var out map[string]any
	if len(data) > 0 {
		if err := json.Unmarshal(data, &out); err != nil {
			t.Fatalf("decode body %q: %v", data, err)
		}
	}
	return out
}
