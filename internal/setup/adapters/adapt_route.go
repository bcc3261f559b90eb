package adapters

import (
	"io"
	"log/slog"
	"net/http"

	presentationProtocols "github.com/anuntech/budget-manager/internal/presentation/protocols"
)

func AdaptRoute(controller presentationProtocols.Controller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := controller.Handle(presentationProtocols.HttpRequest{
			Body:      r.Body,
			Header:    r.Header,
			UrlParams: r.URL.Query(),
			Req:       r,
		})

		for key, values := range response.Header {
			for _, value := range values {
				w.Header().Add(key, value)
			}
		}

		for _, cookie := range response.Cookies {
			http.SetCookie(w, cookie)
		}

		w.WriteHeader(response.StatusCode)

		if response.Body == nil {
			return
		}
		defer response.Body.Close()

		if _, err := io.Copy(w, response.Body); err != nil {
			slog.Error("Error writing response body", "path", r.URL.Path, "error", err)
		}
	})
}
