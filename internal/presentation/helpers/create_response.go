package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	presentationProtocols "github.com/anuntech/budget-manager/internal/presentation/protocols"
)

func CreateResponse(body any, statusCode int) *presentationProtocols.HttpResponse {
	response := &presentationProtocols.HttpResponse{
		StatusCode: statusCode,
		Header:     http.Header{},
	}

	if body == nil || statusCode == http.StatusNoContent {
		response.Body = io.NopCloser(bytes.NewReader(nil))
		return response
	}

	data, err := json.Marshal(body)
	if err != nil {
		slog.Error("Error encoding response body", "error", err)
		response.StatusCode = http.StatusInternalServerError
		data = []byte(`{"error":"error encoding response"}`)
	}

	response.Header.Set("Content-Type", "application/json")
	response.Body = io.NopCloser(bytes.NewReader(data))
	return response
}

// CreateRedirect answers a form submission with 303 See Other so the client
// follows up with a GET on location.
func CreateRedirect(location string, body any) *presentationProtocols.HttpResponse {
	response := CreateResponse(body, http.StatusSeeOther)
	response.Header.Set("Location", location)
	return response
}

func CreateFileResponse(data []byte, contentType string, filename string) *presentationProtocols.HttpResponse {
	header := http.Header{}
	header.Set("Content-Type", contentType)
	header.Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	return &presentationProtocols.HttpResponse{
		Body:       io.NopCloser(bytes.NewReader(data)),
		StatusCode: http.StatusOK,
		Header:     header,
	}
}
