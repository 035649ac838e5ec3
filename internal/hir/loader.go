package hir

import (
	"encoding/json"
	"os"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"

	"github.com/xab-mack/inklint/internal/cache"
)

// DumpTag versions the dump format for cache keys.
const DumpTag = "hir-dump-v1"

// dump mirrors the JSON the contract build emits after macro expansion.
type dump struct {
	Module   string   `json:"module"`
	Source   string   `json:"source,omitempty"`
	TopLevel []ItemID `json:"topLevel"`
	Items    []*Item  `json:"items"`
}

// parsed keeps recently decoded units in memory, keyed by content hash, so
// repeated lints of unchanged dumps skip decoding.
var parsed, _ = lru.New[string, *Context](64)

// Parse decodes a dump into a query context. The dump must be self-contained:
// every id referenced from topLevel or from an item statement has to be
// declared in items.
func Parse(data []byte) (*Context, error) {
	var d dump
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, errors.Wrap(err, "decode hir dump")
	}
	known := make(map[ItemID]bool, len(d.Items))
	for _, it := range d.Items {
		if it == nil {
			return nil, errors.New("hir dump: null item")
		}
		if known[it.ID] {
			return nil, errors.Errorf("hir dump: duplicate item id %d", it.ID)
		}
		known[it.ID] = true
	}
	for _, id := range d.TopLevel {
		if !known[id] {
			return nil, errors.Errorf("hir dump: top-level id %d not declared", id)
		}
	}
	for _, it := range d.Items {
		if it.Kind != KindConst || it.Const == nil || it.Const.Body == nil {
			continue
		}
		body := it.Const.Body
		if body.Kind != ExprBlock || body.Block == nil {
			continue
		}
		for _, st := range body.Block.Stmts {
			if st.Kind == StmtItem && !known[st.Item] {
				return nil, errors.Errorf("hir dump: nested id %d not declared", st.Item)
			}
		}
	}
	return NewContext(d.Module, d.Source, d.TopLevel, d.Items), nil
}

// ParseCached decodes a dump, reusing a previously parsed context when the
// content is unchanged. Decode failures are not cached.
func ParseCached(data []byte) (*Context, error) {
	key := cache.Key(DumpTag, string(data))
	if cx, ok := parsed.Get(key); ok {
		return cx, nil
	}
	cx, err := Parse(data)
	if err != nil {
		return nil, err
	}
	parsed.Add(key, cx)
	return cx, nil
}

// Load reads and decodes a dump file, reusing a previously parsed context
// when the file content is unchanged.
func Load(path string) (*Context, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read hir dump %s", path)
	}
	cx, err := ParseCached(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parse hir dump %s", path)
	}
	return cx, nil
}
