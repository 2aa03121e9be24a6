package httpclient

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
)

// FileField is a single file part of a multipart request.
type FileField struct {
	FieldName   string
	FileName    string
	Reader      io.Reader
	ContentType string
}

// MultipartBody describes a multipart/form-data request body with
// plain fields and file parts. Pass it as Request.Body; the client
// encodes it and sets the boundary content type.
type MultipartBody struct {
	Fields map[string]string
	Files  []FileField
}

// NewMultipartBody creates an empty multipart body.
func NewMultipartBody() *MultipartBody {
	return &MultipartBody{Fields: make(map[string]string)}
}

// AddField adds a plain form field.
func (m *MultipartBody) AddField(name, value string) *MultipartBody {
	if m.Fields == nil {
		m.Fields = make(map[string]string)
	}
	m.Fields[name] = value
	return m
}

// AddFile adds a file part read from r.
func (m *MultipartBody) AddFile(fieldName, fileName string, r io.Reader) *MultipartBody {
	m.Files = append(m.Files, FileField{FieldName: fieldName, FileName: fileName, Reader: r})
	return m
}

// encode writes the multipart payload into a buffer and returns it
// together with the boundary content type.
func (m *MultipartBody) encode() (io.Reader, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	for name, value := range m.Fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("write field %q: %w", name, err)
		}
	}

	for _, f := range m.Files {
		part, err := w.CreateFormFile(f.FieldName, f.FileName)
		if err != nil {
			return nil, "", fmt.Errorf("create file part %q: %w", f.FieldName, err)
		}
		if _, err := io.Copy(part, f.Reader); err != nil {
			return nil, "", fmt.Errorf("copy file %q: %w", f.FileName, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}

	return buf, w.FormDataContentType(), nil
}
