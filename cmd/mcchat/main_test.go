package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestDecodeCanonicalizesShorthand(t *testing.T) {
	out, _, err := run(t, `["hi", {"color":"RED","text":"there"}]`, "decode")
	require.NoError(t, err)
	require.Equal(t, `{"text":"","extra":[{"text":"hi"},{"text":"there","color":"red"}]}`+"\n", out)
}

func TestEncodeForLegacyVersion(t *testing.T) {
	out, _, err := run(t, `{"text":"x","color":"#ff5656","font":"minecraft:alt"}`, "encode", "--protocol", "1.12.2")
	require.NoError(t, err)
	require.Equal(t, `{"text":"x","color":"red"}`+"\n", out)
}

func TestDecodeJSONCFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "motd.jsonc")
	src := `{
	// greeting shown in the server list
	"text": "Welcome",
	"bold": true,
}`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	out, _, err := run(t, "", "decode", "--jsonc", path)
	require.NoError(t, err)
	require.Equal(t, `{"text":"Welcome","bold":true}`+"\n", out)

	_, _, err = run(t, "", "decode", path)
	require.Error(t, err)
}

func TestDecodeYAMLOutput(t *testing.T) {
	out, _, err := run(t, `{"text":"a","bold":false,"extra":["b"]}`, "decode", "--yaml")
	require.NoError(t, err)
	require.Equal(t, "text: a\nbold: false\nextra:\n  - text: b\n", out)
}

func TestPlain(t *testing.T) {
	out, _, err := run(t, `{"translate":"chat.type.text","with":["Steve",{"text":"hello"}]}`, "plain")
	require.NoError(t, err)
	require.Equal(t, "chat.type.text(Steve, hello)\n", out)
}

func TestDecodeErrors(t *testing.T) {
	_, _, err := run(t, `{"bold":true}`, "decode")
	require.ErrorContains(t, err, "missing discriminant")

	_, _, err = run(t, `"x"`, "decode", "--protocol", "25w37a")
	require.ErrorContains(t, err, "unknown game version")
}

func TestVerboseLogsToStderr(t *testing.T) {
	out, errOut, err := run(t, `"x"`, "decode", "-v")
	require.NoError(t, err)
	require.Equal(t, `{"text":"x"}`+"\n", out)
	require.Contains(t, errOut, "decoded component")
}

func TestVersionCommand(t *testing.T) {
	original := version
	t.Cleanup(func() { version = original })
	version = "1.2.3"

	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	require.Contains(t, out, "mcchat 1.2.3")
	require.Contains(t, out, "1.7.10 - 1.21.8")
}
