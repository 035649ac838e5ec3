package hir

import "encoding/json"

// The dump format spells kinds as strings; unknown strings decode to a
// harmless kind rather than failing the whole dump.

var itemKindNames = map[ItemKind]string{
	KindStruct: "struct",
	KindEnum:   "enum",
	KindConst:  "const",
	KindImpl:   "impl",
	KindFn:     "fn",
}

func (k ItemKind) String() string { return itemKindNames[k] }

func (k ItemKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(itemKindNames[k])
}

func (k *ItemKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for kind, name := range itemKindNames {
		if name == s {
			*k = kind
			return nil
		}
	}
	*k = KindFn
	return nil
}

var typeKindNames = map[TypeKind]string{
	TypePath:  "path",
	TypeTuple: "tuple",
}

func (k TypeKind) String() string { return typeKindNames[k] }

func (k TypeKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(typeKindNames[k])
}

func (k *TypeKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "tuple" {
		*k = TypeTuple
	} else {
		*k = TypePath
	}
	return nil
}

var exprKindNames = map[ExprKind]string{
	ExprBlock: "block",
	ExprOther: "other",
}

func (k ExprKind) String() string { return exprKindNames[k] }

func (k ExprKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(exprKindNames[k])
}

func (k *ExprKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "block" {
		*k = ExprBlock
	} else {
		*k = ExprOther
	}
	return nil
}

var stmtKindNames = map[StmtKind]string{
	StmtItem:  "item",
	StmtExpr:  "expr",
	StmtLocal: "local",
}

func (k StmtKind) String() string { return stmtKindNames[k] }

func (k StmtKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(stmtKindNames[k])
}

func (k *StmtKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "item":
		*k = StmtItem
	case "local":
		*k = StmtLocal
	default:
		*k = StmtExpr
	}
	return nil
}
