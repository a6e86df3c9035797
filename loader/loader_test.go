package loader

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

func TestParse_DropsBlankLinesAndCarriageReturns(t *testing.T) {
	lines, err := Parse([]byte("第一章\r\n\r\n   \n第二章\nlast\n"), Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"第一章", "第二章", "last"}, lines)
}

func TestParse_KeepBlank(t *testing.T) {
	lines, err := Parse([]byte("a\n\nb\n"), Options{KeepBlank: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "", "b"}, lines)
}

func TestParse_EmptyInput(t *testing.T) {
	lines, err := Parse(nil, Options{})
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestParse_AutoDetectsEncodings(t *testing.T) {
	gb, err := simplifiedchinese.GB18030.NewEncoder().Bytes([]byte("第一章\n你好"))
	require.NoError(t, err)
	u16, err := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder().Bytes([]byte("第一章\n你好"))
	require.NoError(t, err)

	cases := []struct {
		name string
		data []byte
	}{
		{name: "utf-8", data: []byte("第一章\n你好")},
		{name: "utf-8 bom", data: append([]byte{0xef, 0xbb, 0xbf}, "第一章\n你好"...)},
		{name: "gb18030", data: gb},
		{name: "utf-16 bom", data: u16},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lines, err := Parse(tc.data, Options{Encoding: EncodingAuto})
			require.NoError(t, err)
			assert.Equal(t, []string{"第一章", "你好"}, lines)
		})
	}
}

func TestParse_StrictUTF8(t *testing.T) {
	_, err := Parse([]byte("ok\n\xff\xfe broken"), Options{Encoding: EncodingUTF8})
	require.ErrorIs(t, err, ErrDecode)
	assert.Contains(t, err.Error(), "byte 3")
}

func TestParse_ExplicitGB18030(t *testing.T) {
	gb, err := simplifiedchinese.GB18030.NewEncoder().Bytes([]byte("天地玄黄"))
	require.NoError(t, err)

	lines, err := Parse(gb, Options{Encoding: EncodingGB18030})
	require.NoError(t, err)
	assert.Equal(t, []string{"天地玄黄"}, lines)
}

func TestParseEncoding(t *testing.T) {
	for in, want := range map[string]Encoding{
		"":        EncodingAuto,
		"AUTO":    EncodingAuto,
		"utf8":    EncodingUTF8,
		"UTF-16":  EncodingUTF16,
		"gbk":     EncodingGB18030,
		"gb18030": EncodingGB18030,
	} {
		got, err := ParseEncoding(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseEncoding("latin-9")
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "book.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\n"), 0o644))

	lines, err := Load(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, lines)

	_, err = Load(filepath.Join(dir, "missing.txt"), Options{})
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestRead(t *testing.T) {
	lines, err := Read(strings.NewReader("a\r\nb"), Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, lines)
}
