package analysis

import (
	"fmt"
	"strings"

	"github.com/xab-mack/inklint/internal/hir"
)

// Code generation marks the storage struct in two ways, depending on
// toolchain vintage. Older generators attached
// `#[cfg(not(feature = "__ink_dylint_Storage"))]`; newer Rust releases warn
// about cfg features that are not declared in the manifest, so generation
// switched to `#[cfg(not(target_vendor = "fortanix"))]`, a target no
// contract is ever built for. Both markers stay recognized so contracts
// expanded by either generator keep linting.
const (
	storageMarkerLegacy  = "__ink_dylint_Storage"
	storageMarkerCurrent = "fortanix"
)

// HasStorageMarker reports whether the item carries the storage annotation
// emitted by contract code generation. The attribute set is matched as
// rendered text, not structurally: the match survives changes to the exact
// attribute shape across generator versions, at the cost of a possible false
// positive if an unrelated attribute happens to contain a marker substring.
func HasStorageMarker(cx *hir.Context, id hir.ItemID) bool {
	attrs := fmt.Sprintf("%v", cx.Attrs(id))
	return strings.Contains(attrs, storageMarkerLegacy) ||
		strings.Contains(attrs, storageMarkerCurrent)
}

// FindStorageStruct returns the first struct declaration annotated as the
// contract's storage.
func FindStorageStruct(cx *hir.Context, items []hir.ItemID) (hir.ItemID, bool) {
	for _, id := range items {
		it := cx.Item(id)
		if it == nil || it.Kind != hir.KindStruct {
			continue
		}
		if HasStorageMarker(cx, id) {
			return id, true
		}
	}
	return 0, false
}
