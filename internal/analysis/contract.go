package analysis

import (
	"github.com/xab-mack/inklint/internal/hir"
)

// contractEnvTrait is the trait code generation implements exactly once, for
// the struct the contract author wrote. Its impl is how we learn which type
// "the contract" is.
const contractEnvTrait = "ink_env::contract::ContractEnv"

// SameType reports whether two type references denote the same declaration.
// Only resolved path types can match: identity follows resolution, so two
// differently spelled paths to one struct are equal, while unresolved or
// composite types never are.
func SameType(lhs, rhs *hir.Type) bool {
	if lhs == nil || rhs == nil {
		return false
	}
	if lhs.Kind != hir.TypePath || rhs.Kind != hir.TypePath {
		return false
	}
	return lhs.Res != 0 && lhs.Res == rhs.Res
}

// FindContractType returns the self-type of the impl block implementing the
// contract environment trait. The returned type borrows from cx and must not
// outlive it.
func FindContractType(cx *hir.Context, items []hir.ItemID) (*hir.Type, bool) {
	for _, id := range items {
		it := cx.Item(id)
		if it == nil || it.Kind != hir.KindImpl || it.Impl == nil {
			continue
		}
		if tr := it.Impl.Trait; tr != nil && tr.Path == contractEnvTrait {
			return it.Impl.SelfTy, true
		}
	}
	return nil, false
}

// FindContractImplID returns the inherent impl block of the contract type,
// which is where the author's hand-written methods live. Trait impls for the
// same type are skipped. Callers that need to see inside unnamed const
// blocks expand items with ExpandUnnamedConsts first.
func FindContractImplID(cx *hir.Context, items []hir.ItemID) (hir.ItemID, bool) {
	contractTy, ok := FindContractType(cx, items)
	if !ok {
		return 0, false
	}
	for _, id := range items {
		it := cx.Item(id)
		if it == nil || it.Kind != hir.KindImpl || it.Impl == nil {
			continue
		}
		if it.Impl.Trait != nil {
			continue
		}
		if SameType(contractTy, it.Impl.SelfTy) {
			return id, true
		}
	}
	return 0, false
}
