package storage

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["file"][0]
}

func newStore(t *testing.T, max int64) (*LocalStore, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "uploads")
	s, err := NewLocalStore(dir, max, []string{".pdf", "png"}, []string{"application/pdf", "image/png"})
	require.NoError(t, err)
	return s, dir
}

func TestLocalStore_Save(t *testing.T) {
	s, dir := newStore(t, 1024)

	stored, appErr := s.Save("file", fileHeader(t, "Report.PDF", "application/pdf", []byte("%PDF-1.4")))

	require.Nil(t, appErr)
	assert.Equal(t, "Report.PDF", stored.Filename)
	assert.Equal(t, int64(8), stored.Size)
	assert.Equal(t, "application/pdf", stored.MimeType)
	assert.Equal(t, dir, filepath.Dir(stored.Path))
	assert.Regexp(t, regexp.MustCompile(`^file-\d+-\d{9}\.pdf$`), filepath.Base(stored.Path))
	assert.True(t, s.Exists(stored.Path))

	data, err := os.ReadFile(stored.Path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))
}

func TestLocalStore_RejectsType(t *testing.T) {
	s, _ := newStore(t, 1024)

	_, appErr := s.Save("file", fileHeader(t, "script.sh", "application/pdf", []byte("echo")))
	require.NotNil(t, appErr)
	assert.Equal(t, "attachment.type_not_allowed", appErr.MessageKey)

	_, appErr = s.Save("file", fileHeader(t, "fake.pdf", "text/html", []byte("<html>")))
	require.NotNil(t, appErr)
	assert.Equal(t, 400, appErr.Code)
}

func TestLocalStore_RejectsTooLarge(t *testing.T) {
	s, dir := newStore(t, 4)

	_, appErr := s.Save("file", fileHeader(t, "big.png", "image/png", []byte(strings.Repeat("x", 10))))

	require.NotNil(t, appErr)
	assert.Equal(t, 413, appErr.Code)
	entries, _ := os.ReadDir(dir)
	assert.Empty(t, entries)
}

func TestLocalStore_Remove(t *testing.T) {
	s, _ := newStore(t, 1024)
	stored, appErr := s.Save("file", fileHeader(t, "a.png", "image/png", []byte("png")))
	require.Nil(t, appErr)

	require.NoError(t, s.Remove(stored.Path))
	assert.False(t, s.Exists(stored.Path))
	assert.Error(t, s.Remove(stored.Path))
}
