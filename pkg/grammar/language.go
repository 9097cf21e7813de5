package grammar

import (
	"fmt"
	"sync"

	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/alexaandru/go-sitter-forest/c"
)

// CName is the name of the tree-sitter-c grammar.
const CName = "c"

var (
	cOnce  sync.Once
	cLang  *sitter.Language
	cTable *Table
	cErr   error
)

// CLanguage returns the linked tree-sitter-c language.
func CLanguage() *sitter.Language {
	loadC()

	return cLang
}

// C returns the symbol table of the linked tree-sitter-c grammar. The table is
// built on first use and shared afterwards. It panics if the grammar cannot be
// loaded, which only happens with a broken build.
func C() *Table {
	loadC()

	if cErr != nil {
		panic(cErr)
	}

	return cTable
}

func loadC() {
	cOnce.Do(func() {
		cLang = sitter.NewLanguage(c.GetLanguage())
		cTable, cErr = FromLanguage(CName, cLang)
	})
}

// FromLanguage reads the symbol and field tables out of a tree-sitter language.
// The public identifier of every resolvable symbol comes from the language's
// own name lookup, so resolved identifiers match the ones parse trees carry.
func FromLanguage(name string, lang *sitter.Language) (*Table, error) {
	if lang == nil {
		return nil, ErrNilLanguage
	}

	count := lang.SymbolCount()
	symbols := make([]SymbolInfo, 0, count)

	for idx := range count {
		sym := sitter.Symbol(idx)

		info := SymbolInfo{
			ID:   Symbol(idx),
			Name: lang.SymbolName(sym),
			Kind: kindOf(lang.SymbolType(sym)),
		}

		info.Public = info.ID

		if info.Kind.Resolvable() {
			// The lookup matches names by prefix against "ERROR"; a name it
			// maps to the error symbol is not actually ERROR.
			if public := Symbol(lang.SymbolID(info.Name, info.Kind.Named())); public != SymbolError {
				info.Public = public
			}
		}

		symbols = append(symbols, info)
	}

	fieldCount := int(lang.FieldCount())
	fields := make([]FieldInfo, 0, fieldCount)

	// Field ids are dense and start at 1.
	for id := 1; id <= fieldCount; id++ {
		fieldName := lang.FieldName(id)
		if fieldName == "" {
			continue
		}

		fields = append(fields, FieldInfo{ID: FieldID(id), Name: fieldName})
	}

	table, err := New(name, symbols, fields)
	if err != nil {
		return nil, fmt.Errorf("grammar %s: %w", name, err)
	}

	return table, nil
}

func kindOf(st sitter.SymbolType) SymbolKind {
	switch st {
	case sitter.SymbolTypeRegular:
		return KindNamed
	case sitter.SymbolTypeAnonymous:
		return KindAnonymous
	case sitter.SymbolTypeSupertype:
		return KindSupertype
	default:
		return KindHidden
	}
}
