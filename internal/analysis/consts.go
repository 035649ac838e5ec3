package analysis

import (
	"github.com/xab-mack/inklint/internal/hir"
)

// itemsInUnnamedConst returns the items declared directly inside a
// `const _: () = { … }` block. Code generation uses these blocks to hold
// generated impls without polluting the module namespace. Anything that is
// not a unit-typed const with a block initializer yields no items.
func itemsInUnnamedConst(cx *hir.Context, id hir.ItemID) []hir.ItemID {
	it := cx.Item(id)
	if it == nil || it.Kind != hir.KindConst || it.Const == nil {
		return nil
	}
	if !it.Const.Ty.IsUnit() {
		return nil
	}
	body := it.Const.Body
	if body == nil || body.Kind != hir.ExprBlock || body.Block == nil {
		return nil
	}
	var out []hir.ItemID
	for _, st := range body.Block.Stmts {
		if st.Kind == hir.StmtItem {
			// No recursion: generated code never nests these blocks.
			out = append(out, st.Item)
		}
	}
	return out
}

// ExpandUnnamedConsts returns items with the contents of every unnamed const
// block spliced in after its const, preserving input order.
func ExpandUnnamedConsts(cx *hir.Context, items []hir.ItemID) []hir.ItemID {
	out := make([]hir.ItemID, 0, len(items))
	for _, id := range items {
		out = append(out, id)
		out = append(out, itemsInUnnamedConst(cx, id)...)
	}
	return out
}
