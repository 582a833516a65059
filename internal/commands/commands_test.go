package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/next-trace/release-errors/catalog"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	root := NewRootCmd("test")
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--no-color"}, args...))

	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestDescribe_Markdown(t *testing.T) {
	out, _, err := run(t, "describe", "EINVALIDASSETS", "--set", "assets=42")
	require.NoError(t, err)

	lines := strings.SplitN(out, "\n", 2)
	require.Equal(t, "EINVALIDASSETS Invalid `assets` option.", lines[0])
	require.Contains(t, out, "`42`")
	require.Contains(t, out, catalog.Linkify("README.md#assets"))
}

func TestDescribe_CaseInsensitiveCodeAndJSON(t *testing.T) {
	out, _, err := run(t, "describe", "emissingrepo", "--set", "owner=acme", "--set", "repo=widgets", "--json")
	require.NoError(t, err)

	var got report
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, "EMISSINGREPO", got.Code)
	require.Equal(t, "repository", got.Key)
	require.Equal(t, 404, got.Status)
	require.Equal(t, "The repository acme/widgets doesn't exist.", got.Message)
	require.NotEmpty(t, got.Details)
}

func TestDescribe_ContextFileAndOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ctx.yaml")
	require.NoError(t, os.WriteFile(path, []byte("owner: acme\nrepo: old\n"), 0o600))

	out, _, err := run(t, "describe", "ENOGHTOKEN", "-f", path, "--set", "repo=widgets")
	require.NoError(t, err)
	require.Contains(t, out, "push to the repository acme/widgets.")
}

func TestDescribe_Errors(t *testing.T) {
	_, _, err := run(t, "describe", "ENOPE")
	require.ErrorIs(t, err, catalog.ErrUnknownKind)

	_, _, err = run(t, "describe", "EMISSINGREPO", "--set", "owner")
	require.ErrorIs(t, err, errBadAssignment)

	_, _, err = run(t, "describe", "EMISSINGREPO", "-f", filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "read context file")

	_, _, err = run(t, "describe")
	require.Error(t, err)
}

func TestList(t *testing.T) {
	out, _, err := run(t, "list")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "CODE"))
	for _, k := range catalog.Kinds() {
		require.Contains(t, out, k.String())
	}

	out, _, err = run(t, "list", "--json")
	require.NoError(t, err)

	var entries []listEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, len(catalog.Kinds()))
	require.Equal(t, listEntry{Code: "EINVALIDGHTOKEN", Key: "auth", Status: 401}, entries[5])
}

func TestVerboseLogsToStderr(t *testing.T) {
	_, errOut, err := run(t, "--verbose", "describe", "ENOGHTOKEN")
	require.NoError(t, err)
	require.Contains(t, errOut, "rendering descriptor")
	require.Contains(t, errOut, "error.code=ENOGHTOKEN")
}

func TestLoadContext_DecodesYAMLValues(t *testing.T) {
	ctx, err := loadContext("", []string{
		"assets=[dist/a.zip, {path: b, label: B}]",
		"count=3",
		"flag=false",
		"successComment=",
		" owner = acme",
		"note=a: b: c",
	})
	require.NoError(t, err)

	require.Equal(t, []any{"dist/a.zip", map[string]any{"path": "b", "label": "B"}}, ctx["assets"])
	require.Equal(t, 3, ctx["count"])
	require.Equal(t, false, ctx["flag"])
	require.Equal(t, "", ctx["successComment"])
	require.Equal(t, "acme", ctx["owner"])
	require.Equal(t, "a: b: c", ctx["note"])
}

func TestLoadContext_NullAndEmptyFiles(t *testing.T) {
	for name, body := range map[string]string{
		"null":  "null\n",
		"tilde": "~\n",
		"empty": "",
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "ctx.yaml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

			ctx, err := loadContext(path, []string{"owner=acme"})
			require.NoError(t, err)
			require.Equal(t, "acme", ctx["owner"])

			out, _, err := run(t, "describe", "EMISSINGREPO", "-f", path, "--set", "owner=acme", "--set", "repo=widgets")
			require.NoError(t, err)
			require.Contains(t, out, "The repository acme/widgets doesn't exist.")
		})
	}
}
