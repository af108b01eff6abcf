package wire

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/nikmy/classbook/pkg/errors"
)

const (
	readChunk = 4096
	maxHead   = 64 << 10
)

var (
	ErrMalformed    = errors.Error("malformed http request")
	ErrBodyTooLarge = errors.Error("request body too large")
)

// Request is a parsed HTTP/1.x request. Path keeps the query string,
// so "/api/courses?x=1" does not match "/api/courses".
type Request struct {
	Method  string
	Path    string
	Proto   string
	Headers map[string]string
	Body    []byte
}

// Header looks a header up case-insensitively.
func (r *Request) Header(name string) string {
	if v, ok := r.Headers[name]; ok {
		return v
	}
	for k, v := range r.Headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

// ContentLength returns -1 when the header is absent.
func (r *Request) ContentLength() (int64, error) {
	raw := strings.TrimSpace(r.Header("Content-Length"))
	if raw == "" {
		return -1, nil
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return 0, errors.Wrapf(ErrMalformed, "bad Content-Length %q", raw)
	}
	return n, nil
}

// ParseRequest splits a raw blob into request line, headers and body.
// Everything after the blank line is the body, taken verbatim.
func ParseRequest(raw []byte) (*Request, error) {
	head, body, _ := splitHead(raw)

	lines := strings.Split(string(head), "\n")
	first := strings.Fields(strings.TrimSuffix(lines[0], "\r"))
	if len(first) < 2 {
		return nil, errors.Wrapf(ErrMalformed, "bad request line %q", lines[0])
	}

	req := &Request{
		Method:  first[0],
		Path:    first[1],
		Headers: make(map[string]string, len(lines)-1),
		Body:    body,
	}
	if len(first) > 2 {
		req.Proto = first[2]
	}

	for _, line := range lines[1:] {
		line = strings.TrimSuffix(line, "\r")
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		req.Headers[key] = strings.TrimPrefix(value, " ")
	}

	return req, nil
}

// splitHead finds the first blank line. ok is false when the head is not
// terminated yet.
func splitHead(raw []byte) (head, body []byte, ok bool) {
	crlf := bytes.Index(raw, []byte("\r\n\r\n"))
	lf := bytes.Index(raw, []byte("\n\n"))

	switch {
	case crlf >= 0 && (lf < 0 || crlf < lf):
		return raw[:crlf], raw[crlf+4:], true
	case lf >= 0:
		return raw[:lf], raw[lf+2:], true
	default:
		return raw, nil, false
	}
}

// ReadRequest reads one request from r. A single read may stop short of
// the body, so reading continues until the advertised Content-Length is
// reached. Without Content-Length whatever arrived with the head is the
// body. maxBody <= 0 disables the body size check; the head is always
// capped. The body buffer grows with the bytes that actually arrive, never
// with the advertised length.
func ReadRequest(r io.Reader, maxBody int64) (*Request, error) {
	var buf bytes.Buffer
	chunk := make([]byte, readChunk)

	for {
		n, err := r.Read(chunk)
		buf.Write(chunk[:n])

		if _, _, ok := splitHead(buf.Bytes()); ok {
			break
		}
		if errors.Is(err, io.EOF) {
			if buf.Len() == 0 {
				return nil, io.EOF
			}
			break
		}
		if err != nil {
			return nil, errors.WrapFail(err, "read request head")
		}
		if buf.Len() > maxHead {
			return nil, errors.Wrap(ErrMalformed, "request head too large")
		}
	}

	req, err := ParseRequest(buf.Bytes())
	if err != nil {
		return nil, err
	}

	length, err := req.ContentLength()
	if err != nil {
		return nil, err
	}
	if length < 0 {
		return req, nil
	}
	if maxBody > 0 && length > maxBody {
		return nil, ErrBodyTooLarge
	}

	have := int64(len(req.Body))
	if have >= length {
		req.Body = req.Body[:length]
		return req, nil
	}

	var body bytes.Buffer
	body.Write(req.Body)

	_, err = io.CopyN(&body, r, length-have)
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	if err != nil {
		return nil, errors.WrapFailf(err, "read %d body bytes", length)
	}

	req.Body = body.Bytes()
	return req, nil
}
