package adapters

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anuntech/budget-manager/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/budget-manager/internal/presentation/protocols"
)

type controllerFunc func(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse

func (f controllerFunc) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	return f(r)
}

func TestAdaptRouteWritesResponse(t *testing.T) {
	var gotDate, gotQuery string
	controller := controllerFunc(func(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
		gotDate = r.Req.PathValue("date")
		gotQuery = r.UrlParams.Get("q")
		response := helpers.CreateRedirect("/budget-manager?date=2024-01-01", map[string]string{"ok": "yes"})
		response.Cookies = []*http.Cookie{{Name: "session", Value: "abc"}}
		return response
	})

	mux := http.NewServeMux()
	mux.Handle("POST /items/{date}", AdaptRoute(controller))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/items/2024-01-15?q=x", nil))

	if gotDate != "2024-01-15" || gotQuery != "x" {
		t.Fatalf("controller saw date=%q q=%q", gotDate, gotQuery)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/budget-manager?date=2024-01-01" {
		t.Fatalf("location = %q", got)
	}
	if got := rec.Header().Get("Set-Cookie"); got == "" {
		t.Fatal("cookie not written")
	}
	if got := rec.Body.String(); got != `{"ok":"yes"}` {
		t.Fatalf("body = %q", got)
	}
}
