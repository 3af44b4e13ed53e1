package infrastructure

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const mimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// DecodeResume turns an uploaded resume file into plain text. The scoring
// pipeline treats this as a trusted decode step: the returned text may be
// empty or noisy, downstream extraction degrades instead of failing.
func DecodeResume(mime string, data []byte) (string, error) {
	switch {
	case strings.HasPrefix(mime, "text/plain"):
		return string(data), nil
	case mime == "application/pdf":
		return decodePDF(data)
	case mime == mimeDocx:
		return decodeDocx(data)
	default:
		return "", fmt.Errorf("unsupported file type: %s", mime)
	}
}

func decodePDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}
	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, _ := page.GetPlainText(nil)
		sb.WriteString(text)
	}
	return sb.String(), nil
}

func decodeDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()
	return doc.Editable().GetContent(), nil
}

// ReadAll buffers an upload stream fully in memory. Resume files are capped
// at a few megabytes by the HTTP layer.
func ReadAll(r io.Reader) ([]byte, error) {
	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
