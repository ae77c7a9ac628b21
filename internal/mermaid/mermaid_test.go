package mermaid

import (
	"bytes"
	"encoding/base64"
	"io"
	"regexp"
	"strings"
	"testing"

	"github.com/klauspost/compress/zlib"
	"github.com/stretchr/testify/require"
)

var linkPattern = regexp.MustCompile(`^https://mermaid\.live/edit#pako:[A-Za-z0-9_-]+$`)

func TestEditURL_RoundTrip(t *testing.T) {
	t.Parallel()

	codes := []string{
		"graph LR\n    A((Ads FB)) --> B[Bot Cualificador]:::ai",
		"graph TD; C{¿Responde?} -->|Sí| D",
		`sequenceDiagram
    Alice->>Bob: "quoted" & <tagged>`,
	}

	for _, code := range codes {
		link, err := EditURL(code)
		require.NoError(t, err)
		require.Regexp(t, linkPattern, link)
		require.False(t, strings.Contains(link, "\n"))

		st, err := Decode(strings.TrimPrefix(link, EditURLPrefix))
		require.NoError(t, err)
		require.Equal(t, NewState(code), st)
	}
}

func TestEncode_PayloadMatchesHelperScript(t *testing.T) {
	t.Parallel()

	token, err := Encode(NewState("A --> B"))
	require.NoError(t, err)

	raw, err := base64.RawURLEncoding.DecodeString(token)
	require.NoError(t, err)
	zr, err := zlib.NewReader(bytes.NewReader(raw))
	require.NoError(t, err)
	payload, err := io.ReadAll(zr)
	require.NoError(t, err)

	require.Equal(t,
		`{"code":"A --> B","mermaid":{"theme":"default"},"autoSync":true,"updateDiagram":true}`,
		string(payload))
}

func TestEncode_LineSeparatorsStayRaw(t *testing.T) {
	t.Parallel()

	code := "A\u2028B\u2029C \\u2028 D"
	token, err := Encode(NewState(code))
	require.NoError(t, err)

	raw, err := base64.RawURLEncoding.DecodeString(token)
	require.NoError(t, err)
	zr, err := zlib.NewReader(bytes.NewReader(raw))
	require.NoError(t, err)
	payload, err := io.ReadAll(zr)
	require.NoError(t, err)

	require.Equal(t,
		`{"code":"A`+"\u2028"+`B`+"\u2029"+`C \\u2028 D","mermaid":{"theme":"default"},"autoSync":true,"updateDiagram":true}`,
		string(payload))

	st, err := Decode(token)
	require.NoError(t, err)
	require.Equal(t, code, st.Code)
}

func TestEditURL_Empty(t *testing.T) {
	t.Parallel()

	_, err := EditURL("")
	require.ErrorIs(t, err, ErrEmptyCode)
}

func TestDecode_AcceptsFullLinkAndPadding(t *testing.T) {
	t.Parallel()

	link, err := EditURL("graph LR; a-->b")
	require.NoError(t, err)

	st, err := Decode(link + "==")
	require.NoError(t, err)
	require.Equal(t, "graph LR; a-->b", st.Code)
}

func TestDecode_Invalid(t *testing.T) {
	t.Parallel()

	_, err := Decode("***")
	require.Error(t, err)

	_, err = Decode(base64.RawURLEncoding.EncodeToString([]byte("not zlib")))
	require.Error(t, err)
}
