package plugins

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xab-mack/inklint/internal/hir"
	"github.com/xab-mack/inklint/internal/model"
)

const (
	storageAttr  = `#[cfg(not(target_vendor = "fortanix"))]`
	envTraitPath = "ink_env::contract::ContractEnv"
	erc20Def     = hir.DefID(7)
)

// healthyUnit models a well-formed expanded contract: a marked storage
// struct, the generated ContractEnv impl hidden in an unnamed const, and an
// inherent impl with one message.
func healthyUnit() *hir.Context {
	return hir.NewContext("erc20", "lib.rs", []hir.ItemID{1, 2, 3},
		[]*hir.Item{
			{ID: 1, Name: "Erc20", Kind: hir.KindStruct, Attrs: []string{storageAttr}},
			{ID: 2, Name: "_", Kind: hir.KindConst, Const: &hir.ConstItem{
				Ty:   &hir.Type{Kind: hir.TypeTuple},
				Body: &hir.Expr{Kind: hir.ExprBlock, Block: &hir.Block{Stmts: []hir.Stmt{{Kind: hir.StmtItem, Item: 10}}}},
			}},
			{ID: 3, Kind: hir.KindImpl, Impl: &hir.ImplItem{
				SelfTy: &hir.Type{Kind: hir.TypePath, Path: "Erc20", Res: erc20Def},
				Fns:    []hir.ItemID{4},
			}},
			{ID: 4, Name: "transfer", Kind: hir.KindFn, Fn: &hir.FnItem{Public: true}},
			{ID: 10, Kind: hir.KindImpl, Impl: &hir.ImplItem{
				SelfTy: &hir.Type{Kind: hir.TypePath, Path: "Erc20", Res: erc20Def},
				Trait:  &hir.TraitRef{Path: envTraitPath},
			}},
		})
}

func ruleIDs(fs []model.Finding) []string {
	var ids []string
	for _, f := range fs {
		ids = append(ids, f.RuleID)
	}
	return ids
}

func TestBuiltinRulesCleanOnHealthyUnit(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterBuiltin()

	fs := reg.Run(context.Background(), healthyUnit(), model.LintRequest{})
	assert.Empty(t, fs, "a well-formed contract lints clean")
}

func TestStorageMissingRule(t *testing.T) {
	unit := hir.NewContext("broken", "lib.rs", []hir.ItemID{1},
		[]*hir.Item{{ID: 1, Name: "Erc20", Kind: hir.KindStruct}})

	fs, err := (&storageMissing{}).Analyze(context.Background(), unit, model.LintRequest{})
	require.NoError(t, err)
	require.Len(t, fs, 1)
	assert.Equal(t, "INK-STORAGE-MISSING", fs[0].RuleID)
	assert.Equal(t, "broken", fs[0].Module)
	assert.NotEmpty(t, fs[0].Fingerprint)
}

func TestStorageDuplicateRule(t *testing.T) {
	unit := hir.NewContext("dup", "lib.rs", []hir.ItemID{1, 2},
		[]*hir.Item{
			{ID: 1, Name: "Erc20", Kind: hir.KindStruct, Attrs: []string{storageAttr}},
			{ID: 2, Name: "Shadow", Kind: hir.KindStruct, Attrs: []string{storageAttr}},
		})

	fs, err := (&storageDuplicate{}).Analyze(context.Background(), unit, model.LintRequest{})
	require.NoError(t, err)
	require.Len(t, fs, 1, "only structs beyond the first are reported")
	assert.Contains(t, fs[0].Message, "Shadow")
}

func TestImplMissingRule(t *testing.T) {
	// ContractEnv impl present, inherent impl absent.
	unit := hir.NewContext("noimpl", "lib.rs", []hir.ItemID{1, 2},
		[]*hir.Item{
			{ID: 1, Name: "Erc20", Kind: hir.KindStruct, Attrs: []string{storageAttr}},
			{ID: 2, Kind: hir.KindImpl, Impl: &hir.ImplItem{
				SelfTy: &hir.Type{Kind: hir.TypePath, Path: "Erc20", Res: erc20Def},
				Trait:  &hir.TraitRef{Path: envTraitPath},
			}},
		})

	fs, err := (&implMissing{}).Analyze(context.Background(), unit, model.LintRequest{})
	require.NoError(t, err)
	require.Len(t, fs, 1)
	assert.Equal(t, "INK-IMPL-MISSING", fs[0].RuleID)
}

func TestImplMissingRuleQuietWithoutContractType(t *testing.T) {
	unit := hir.NewContext("plain", "lib.rs", []hir.ItemID{1},
		[]*hir.Item{{ID: 1, Name: "Erc20", Kind: hir.KindStruct}})

	fs, err := (&implMissing{}).Analyze(context.Background(), unit, model.LintRequest{})
	require.NoError(t, err)
	assert.Empty(t, fs)
}

func TestImplEmptyRule(t *testing.T) {
	unit := hir.NewContext("empty", "lib.rs", []hir.ItemID{1, 2},
		[]*hir.Item{
			{ID: 1, Kind: hir.KindImpl, Impl: &hir.ImplItem{
				SelfTy: &hir.Type{Kind: hir.TypePath, Path: "Erc20", Res: erc20Def},
				Trait:  &hir.TraitRef{Path: envTraitPath},
			}},
			{ID: 2, Kind: hir.KindImpl, Impl: &hir.ImplItem{
				SelfTy: &hir.Type{Kind: hir.TypePath, Path: "Erc20", Res: erc20Def},
			}},
		})

	fs, err := (&implEmpty{}).Analyze(context.Background(), unit, model.LintRequest{})
	require.NoError(t, err)
	require.Len(t, fs, 1)
	assert.Equal(t, "INK-IMPL-EMPTY", fs[0].RuleID)
}

func TestRegistryCollectsAcrossRules(t *testing.T) {
	// Broken unit trips storage and impl rules at once.
	unit := hir.NewContext("broken", "lib.rs", []hir.ItemID{1},
		[]*hir.Item{{ID: 1, Kind: hir.KindImpl, Impl: &hir.ImplItem{
			SelfTy: &hir.Type{Kind: hir.TypePath, Path: "Erc20", Res: erc20Def},
			Trait:  &hir.TraitRef{Path: envTraitPath},
		}}})

	reg := NewRegistry()
	reg.RegisterBuiltin()
	fs := reg.Run(context.Background(), unit, model.LintRequest{})
	ids := ruleIDs(fs)
	assert.Contains(t, ids, "INK-STORAGE-MISSING")
	assert.Contains(t, ids, "INK-IMPL-MISSING")
	assert.NotContains(t, ids, "INK-IMPL-EMPTY")
}
