package walk

import (
	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/Sumatoshi-tech/tscsym/pkg/csym"
)

var (
	kindFunctionDefinition = csym.Kind("function_definition")
	kindIfStatement        = csym.Kind("if_statement")
	kindReturnStatement    = csym.Kind("return_statement")
	kindStructSpecifier    = csym.Kind("struct_specifier")
	kindFieldDeclaration   = csym.Kind("field_declaration")
	kindCallExpression     = csym.Kind("call_expression")
	kindDeclaration        = csym.Kind("declaration")
	kindIdentifier         = csym.Kind("identifier")
	kindFieldIdentifier    = csym.Kind("field_identifier")
	kindComment            = csym.Kind("comment")

	fieldDeclarator = csym.Field("declarator")
	fieldName       = csym.Field("name")
	fieldBody       = csym.Field("body")
	fieldType       = csym.Field("type")
	fieldCondition  = csym.Field("condition")
	fieldFunction   = csym.Field("function")
	fieldArguments  = csym.Field("arguments")
)

// anonymousStruct names structs declared without a tag.
const anonymousStruct = "anonymous"

// Function is a function definition.
type Function struct {
	Name string
	Row  uint
}

// If is an if statement and its condition text.
type If struct {
	Condition string
	Row       uint
}

// Return is a return statement. Value is empty for a bare "return;".
type Return struct {
	Value string
	Row   uint
}

// StructField is a member of a struct.
type StructField struct {
	Name string
	Type string
}

// Struct is a struct specifier with a body.
type Struct struct {
	Name   string
	Fields []StructField
	Row    uint
}

// Call is a call expression.
type Call struct {
	Function string
	Args     int
	Row      uint
}

// Declaration is a variable declaration.
type Declaration struct {
	Name string
	Type string
	Row  uint
}

// Functions returns every function definition under root.
func Functions(root sitter.Node, src []byte) []Function {
	var out []Function

	Visit(root, func(n sitter.Node) bool {
		if !csym.Is(n, kindFunctionDefinition) {
			return true
		}

		if name := declaredName(csym.ChildByField(n, fieldDeclarator), src); name != "" {
			out = append(out, Function{Name: name, Row: n.StartPoint().Row})
		}

		return true
	})

	return out
}

// IfConditions returns every if statement under root.
func IfConditions(root sitter.Node, src []byte) []If {
	var out []If

	Visit(root, func(n sitter.Node) bool {
		if !csym.Is(n, kindIfStatement) {
			return true
		}

		if cond := csym.ChildByField(n, fieldCondition); !cond.IsNull() {
			out = append(out, If{Condition: cond.Content(src), Row: n.StartPoint().Row})
		}

		return true
	})

	return out
}

// Returns returns every return statement under root.
func Returns(root sitter.Node, src []byte) []Return {
	var out []Return

	Visit(root, func(n sitter.Node) bool {
		if !csym.Is(n, kindReturnStatement) {
			return true
		}

		ret := Return{Row: n.StartPoint().Row}

		for i := range n.NamedChildCount() {
			child := n.NamedChild(i)
			if csym.Is(child, kindComment) {
				continue
			}

			ret.Value = child.Content(src)

			break
		}

		out = append(out, ret)

		return true
	})

	return out
}

// Structs returns every struct specifier with a body under root.
func Structs(root sitter.Node, src []byte) []Struct {
	var out []Struct

	Visit(root, func(n sitter.Node) bool {
		if !csym.Is(n, kindStructSpecifier) {
			return true
		}

		body := csym.ChildByField(n, fieldBody)
		if body.IsNull() {
			return true
		}

		st := Struct{Name: anonymousStruct, Row: n.StartPoint().Row}
		if name := csym.ChildByField(n, fieldName); !name.IsNull() {
			st.Name = name.Content(src)
		}

		for i := range body.NamedChildCount() {
			member := body.NamedChild(i)
			if !csym.Is(member, kindFieldDeclaration) {
				continue
			}

			typ := csym.ChildByField(member, fieldType)
			name := declaredName(csym.ChildByField(member, fieldDeclarator), src)

			if typ.IsNull() || name == "" {
				continue
			}

			st.Fields = append(st.Fields, StructField{Name: name, Type: typ.Content(src)})
		}

		out = append(out, st)

		return true
	})

	return out
}

// Calls returns every call expression under root with its argument count.
func Calls(root sitter.Node, src []byte) []Call {
	var out []Call

	Visit(root, func(n sitter.Node) bool {
		if !csym.Is(n, kindCallExpression) {
			return true
		}

		fn := csym.ChildByField(n, fieldFunction)
		args := csym.ChildByField(n, fieldArguments)

		if fn.IsNull() || args.IsNull() {
			return true
		}

		call := Call{Function: fn.Content(src), Row: n.StartPoint().Row}

		for i := range args.NamedChildCount() {
			if !csym.Is(args.NamedChild(i), kindComment) {
				call.Args++
			}
		}

		out = append(out, call)

		return true
	})

	return out
}

// Declarations returns every declared variable under root. A declaration with
// several declarators yields one entry per name.
func Declarations(root sitter.Node, src []byte) []Declaration {
	var out []Declaration

	Visit(root, func(n sitter.Node) bool {
		if !csym.Is(n, kindDeclaration) {
			return true
		}

		typ := csym.ChildByField(n, fieldType)
		if typ.IsNull() {
			return true
		}

		// Only declarators reach an identifier through the declarator chain;
		// the type and any specifiers yield "".
		for i := range n.NamedChildCount() {
			if name := declaredName(n.NamedChild(i), src); name != "" {
				out = append(out, Declaration{Name: name, Type: typ.Content(src), Row: n.StartPoint().Row})
			}
		}

		return true
	})

	return out
}

// declaredName follows the declarator chain of n (pointer, array, function
// and init declarators) down to the declared identifier.
func declaredName(n sitter.Node, src []byte) string {
	for !n.IsNull() {
		if csym.Is(n, kindIdentifier) || csym.Is(n, kindFieldIdentifier) {
			return n.Content(src)
		}

		n = csym.ChildByField(n, fieldDeclarator)
	}

	return ""
}
