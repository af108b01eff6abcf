package wire

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/nikmy/classbook/pkg/errors"
)

const ContentTypeJSON = "application/json"

var corsHeaders = [...][2]string{
	{"Access-Control-Allow-Origin", "*"},
	{"Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS"},
	{"Access-Control-Allow-Headers", "Content-Type, Authorization"},
}

type Response struct {
	Status      int
	ContentType string
	Body        []byte
}

// JSON encodes v as the response body. An encoding failure turns into a
// 500 with an error body.
func JSON(status int, v any) *Response {
	body, err := json.Marshal(v)
	if err != nil {
		return Empty(http.StatusInternalServerError)
	}
	return &Response{Status: status, ContentType: ContentTypeJSON, Body: body}
}

// Empty is a JSON-typed response without a body.
func Empty(status int) *Response {
	return &Response{Status: status, ContentType: ContentTypeJSON}
}

// Headers lists the response headers in wire order.
func (r *Response) Headers() [][2]string {
	contentType := r.ContentType
	if contentType == "" {
		contentType = ContentTypeJSON
	}

	h := make([][2]string, 0, len(corsHeaders)+3)
	h = append(h, [2]string{"Content-Type", contentType})
	h = append(h, [2]string{"Content-Length", strconv.Itoa(len(r.Body))})
	h = append(h, corsHeaders[:]...)
	h = append(h, [2]string{"Connection", "close"})
	return h
}

func (r *Response) Bytes() []byte {
	var b bytes.Buffer
	b.Grow(256 + len(r.Body))

	b.WriteString("HTTP/1.1 ")
	b.WriteString(strconv.Itoa(r.Status))
	b.WriteByte(' ')
	b.WriteString(http.StatusText(r.Status))
	b.WriteString("\r\n")

	for _, kv := range r.Headers() {
		b.WriteString(kv[0])
		b.WriteString(": ")
		b.WriteString(kv[1])
		b.WriteString("\r\n")
	}

	b.WriteString("\r\n")
	b.Write(r.Body)
	return b.Bytes()
}

func (r *Response) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(r.Bytes())
	return int64(n), errors.WrapFail(err, "write response")
}
