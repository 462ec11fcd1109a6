package upload

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	fw, err := mw.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	mr := multipart.NewReader(buf, mw.Boundary())
	form, err := mr.ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["image"][0]
}

func TestSaverSave(t *testing.T) {
	dir := t.TempDir()
	s := NewSaver(dir)

	fh := fileHeader(t, "Tarta.PNG", []byte("fake-png-bytes"))
	name, err := s.Save(fh)
	require.NoError(t, err)

	// 扩展名保留并小写，文件名换成生成的 id
	assert.True(t, strings.HasSuffix(name, ".png"), name)
	assert.NotEqual(t, "Tarta.PNG", name)

	b, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, []byte("fake-png-bytes"), b)
}

func TestSaverDistinctNamesForSameFilename(t *testing.T) {
	s := NewSaver(t.TempDir())

	a, err := s.Save(fileHeader(t, "pic.png", []byte("one")))
	require.NoError(t, err)
	b, err := s.Save(fileHeader(t, "pic.png", []byte("two")))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestSaverCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	s := NewSaver(dir)

	_, err := s.Save(fileHeader(t, "pic.jpg", []byte("x")))
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
