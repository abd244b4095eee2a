package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/propsel/registry"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
log_level: error
components:
  - name: LoginForm
    properties:
      - name: Disabled
        selector: "form > input; form > MyButton"
      - name: OnSubmit
        selector: "form > MyButton:last"
        inject_as: onclick
        handler: true
`

const testDocument = `<form>
  <label>User</label>
  <input name="user">
  <MyButton/>
  <MyButton>Go</MyButton>
</form>`

func setup(t *testing.T) options {
	dir := t.TempDir()
	conf := filepath.Join(dir, "propsel.yml")
	doc := filepath.Join(dir, "login.html")
	require.NoError(t, os.WriteFile(conf, []byte(testConfig), 0o600))
	require.NoError(t, os.WriteFile(doc, []byte(testDocument), 0o600))
	return options{configPath: conf, htmlPath: doc}
}

func TestRunReport(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "propsel.dom")
	defer teardown()
	//
	opts := setup(t)
	opts.component = "LoginForm"
	opts.printTree = true
	var stdout, stderr bytes.Buffer
	require.NoError(t, run(opts, &stdout, &stderr))
	out := stdout.String()
	t.Logf("\n%s", out)
	assert.Contains(t, out, "MyButton [3] @1")
	assert.Contains(t, out, "form[0] > input[1]")
	assert.Contains(t, out, "onclick")
	assert.Equal(t, 3, strings.Count(out, "disabled"))
}

func TestRunUnknownComponent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "propsel.dom")
	defer teardown()
	//
	opts := setup(t)
	opts.component = "LogonForm"
	err := run(opts, &bytes.Buffer{}, &bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, registry.IsUnknownComponent(err))
	assert.Contains(t, err.Error(), "did you mean 'LoginForm'?")
}

func TestRunDump(t *testing.T) {
	opts := setup(t)
	opts.htmlPath = ""
	opts.dump = true
	var stdout bytes.Buffer
	require.NoError(t, run(opts, &stdout, &bytes.Buffer{}))
	assert.Contains(t, stdout.String(), "name: LoginForm")
	assert.Contains(t, stdout.String(), "form > MyButton:last")
}

func TestRunGraph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "propsel.dom")
	defer teardown()
	//
	opts := setup(t)
	opts.component = "LoginForm"
	opts.dotPath = filepath.Join(t.TempDir(), "login.dot")
	require.NoError(t, run(opts, &bytes.Buffer{}, &bytes.Buffer{}))
	dot, err := os.ReadFile(opts.dotPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(dot), "digraph g {"))
}

func TestRunNeedsDocument(t *testing.T) {
	opts := setup(t)
	opts.htmlPath = ""
	opts.component = "LoginForm"
	assert.ErrorIs(t, run(opts, &bytes.Buffer{}, &bytes.Buffer{}), errNoDocument)
}

func TestRunSetValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "propsel.dom")
	defer teardown()
	//
	opts := setup(t)
	opts.component = "LoginForm"
	opts.debug = true
	values := valueMap{}
	require.NoError(t, values.Set("Disabled=true"))
	require.NoError(t, values.Set("OnSubmit=submit()"))
	opts.values = values
	var stdout, stderr bytes.Buffer
	require.NoError(t, run(opts, &stdout, &stderr))
	assert.Equal(t, 3, strings.Count(stdout.String(), "true"))
	assert.NotContains(t, stdout.String(), "submit()", "handlers are not applied")
	assert.Contains(t, stderr.String(), "component=LoginForm")
	assert.Contains(t, stderr.String(), "attributes=3")
	assert.Error(t, valueMap{}.Set("Disabled"))
}

func TestRunDuplicateComponent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "propsel.registry")
	defer teardown()
	//
	opts := setup(t)
	src := t.TempDir()
	props := "package forms\n\ntype LoginFormProps struct {\n\tDisabled bool `selector:\"form > input\"`\n}\n"
	require.NoError(t, os.WriteFile(filepath.Join(src, "forms.go"), []byte(props), 0o600))
	opts.sources = []string{src}
	err := run(opts, &bytes.Buffer{}, &bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, registry.IsAlreadyRegistered(err))
	assert.Contains(t, err.Error(), "declared more than once")
}

func TestSuggest(t *testing.T) {
	known := []string{"MyButton", "LoginForm", "Card"}
	assert.Equal(t, "LoginForm", suggest("loginform", known))
	assert.Equal(t, "Card", suggest("Cart", known))
	assert.Equal(t, "", suggest("Navigation", known))
}
