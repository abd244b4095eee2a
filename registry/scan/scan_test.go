package scan

import (
	"testing"

	"github.com/npillmayer/propsel/registry"
	"github.com/npillmayer/propsel/selector"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanDir(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "propsel.registry")
	defer teardown()
	//
	comps, err := Dir("testdata/forms")
	require.NoError(t, err)
	require.Len(t, comps, 2, "test files and non-props types are skipped")
	login := comps[0]
	assert.Equal(t, "LoginForm", login.Name)
	assert.Equal(t, "forms", login.Package)
	require.Len(t, login.Fields, 3, "unexported fields are skipped")
	assert.Equal(t, registry.Field{
		Name: "Disabled", Selector: "form > input; form > MyButton", Optional: true,
	}, login.Fields[0])
	assert.Equal(t, registry.Field{
		Name: "OnSubmit", Selector: "form > MyButton:last", InjectAs: "onclick", Handler: true,
	}, login.Fields[1])
	assert.Equal(t, "SearchBar", comps[1].Name)
	assert.Equal(t, 3, login.Position.Line)
}

func TestScanSource(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "propsel.registry")
	defer teardown()
	//
	src := "package x\n\ntype MenuProps struct {\n\tActive bool `selector:\"ul > li:first\"`\n}\n"
	comps, err := Source("menu.go", src)
	require.NoError(t, err)
	require.Len(t, comps, 1)
	assert.Equal(t, "Menu", comps[0].Name)
	assert.Equal(t, "ul > li:first", comps[0].Fields[0].Selector)
	//
	_, err = Source("bad.go", "package x\ntype {")
	assert.Error(t, err)
}

func TestScanRegister(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "propsel.registry")
	defer teardown()
	//
	r := registry.New()
	names, err := Register(r, "testdata/forms")
	require.NoError(t, err)
	assert.Equal(t, []string{"LoginForm", "SearchBar"}, names)
	props, err := r.ComponentProperties("LoginForm")
	require.NoError(t, err)
	assert.Len(t, props, 2)
	//
	_, err = Register(registry.New(), "testdata/broken")
	require.Error(t, err)
	assert.True(t, selector.IsInvalidSelector(err))
	assert.Contains(t, err.Error(), "broken.go:3")
	assert.Contains(t, err.Error(), "range start cannot be more than end; 2 < 5")
}
