package hir

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const erc20Dump = `{
  "module": "erc20",
  "source": "lib.rs",
  "topLevel": [1, 2],
  "items": [
    {
      "id": 1, "name": "Erc20", "kind": "struct",
      "attrs": ["#[cfg(not(target_vendor = \"fortanix\"))]"],
      "span": {"file": "lib.rs", "startLine": 5, "endLine": 9}
    },
    {
      "id": 2, "name": "_", "kind": "const",
      "span": {"file": "lib.rs", "startLine": 12, "endLine": 40},
      "const": {
        "ty": {"kind": "tuple"},
        "body": {"kind": "block", "block": {"stmts": [{"kind": "item", "item": 3}, {"kind": "expr"}]}}
      }
    },
    {
      "id": 3, "kind": "impl",
      "span": {"file": "lib.rs", "startLine": 13, "endLine": 20},
      "impl": {
        "selfTy": {"kind": "path", "path": "Erc20", "res": 7},
        "trait": {"path": "ink_env::contract::ContractEnv"}
      }
    }
  ]
}`

func TestParseDump(t *testing.T) {
	cx, err := Parse([]byte(erc20Dump))
	require.NoError(t, err)

	assert.Equal(t, "erc20", cx.Module())
	assert.Equal(t, "lib.rs", cx.Source())
	assert.Equal(t, []ItemID{1, 2}, cx.TopLevel())

	storage := cx.Item(1)
	require.NotNil(t, storage)
	assert.Equal(t, KindStruct, storage.Kind)
	assert.Contains(t, cx.Attrs(1)[0], "fortanix")

	anon := cx.Item(2)
	require.NotNil(t, anon)
	assert.Equal(t, KindConst, anon.Kind)
	assert.True(t, anon.Const.Ty.IsUnit())
	assert.Equal(t, ExprBlock, anon.Const.Body.Kind)

	impl := cx.Item(3)
	require.NotNil(t, impl)
	assert.Equal(t, KindImpl, impl.Kind)
	assert.Equal(t, DefID(7), impl.Impl.SelfTy.Res)
	assert.Equal(t, "ink_env::contract::ContractEnv", impl.Impl.Trait.Path)

	assert.Nil(t, cx.Item(99), "unknown ids resolve to nil")
}

func TestParseDumpRejectsDanglingTopLevel(t *testing.T) {
	_, err := Parse([]byte(`{"module":"m","topLevel":[9],"items":[{"id":1,"kind":"fn"}]}`))
	assert.Error(t, err)
}

func TestParseDumpRejectsDanglingNestedItem(t *testing.T) {
	_, err := Parse([]byte(`{
	  "module": "m", "topLevel": [1],
	  "items": [{
	    "id": 1, "kind": "const",
	    "const": {"ty": {"kind": "tuple"}, "body": {"kind": "block", "block": {"stmts": [{"kind": "item", "item": 42}]}}}
	  }]
	}`))
	assert.Error(t, err)
}

func TestParseDumpRejectsDuplicateIDs(t *testing.T) {
	_, err := Parse([]byte(`{"module":"m","topLevel":[1],"items":[{"id":1,"kind":"fn"},{"id":1,"kind":"fn"}]}`))
	assert.Error(t, err)
}

func TestParseDumpRejectsGarbage(t *testing.T) {
	_, err := Parse([]byte(`not json`))
	assert.Error(t, err)
}

func TestParseCachedReusesContext(t *testing.T) {
	cx, err := ParseCached([]byte(erc20Dump))
	require.NoError(t, err)

	again, err := ParseCached([]byte(erc20Dump))
	require.NoError(t, err)
	assert.Same(t, cx, again, "identical content decodes once")

	// malformed content is never cached
	_, err = ParseCached([]byte(`{"oops"`))
	assert.Error(t, err)
	_, err = ParseCached([]byte(`{"oops"`))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "erc20.hir.json")
	require.NoError(t, os.WriteFile(path, []byte(erc20Dump), 0o644))

	cx, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "erc20", cx.Module())

	// second load of identical content hits the parse cache
	again, err := Load(path)
	require.NoError(t, err)
	assert.Same(t, cx, again)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.hir.json"))
	assert.Error(t, err)
}
