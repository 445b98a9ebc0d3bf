package gen

import (
	"fmt"
	"go/ast"
	"go/token"
)

// FromSyntax locates the declaration of typeName and its constants
// in the given files and returns a description of the enumeration.
// It fails if the type is not declared in the files, or if it is
// not a plain integer type: only data-free C-style enumerations
// can have ordinal mappings, so struct, interface and other
// data-carrying kinds are rejected here.
func FromSyntax(pkgName, typeName string, files []*ast.File) (*Enum, error) {
	e := &Enum{
		Name: typeName,
		Pkg:  pkgName,
	}
	found := false
	for _, f := range files {
		for _, decl := range f.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok {
				continue
			}
			switch gd.Tok {
			case token.TYPE:
				for _, spec := range gd.Specs {
					ts, ok := spec.(*ast.TypeSpec)
					if !ok || ts.Name.Name != typeName {
						continue
					}
					found = true
					if !isIntegerType(ts.Type) {
						return nil, fmt.Errorf("type %s is not an integer type; only data-free C-style enumerations are supported", typeName)
					}
				}
			case token.CONST:
				e.Members = append(e.Members, constMembers(gd, typeName)...)
			}
		}
	}
	if !found {
		return nil, fmt.Errorf("no declaration found for type %s in package %s", typeName, pkgName)
	}
	return e, nil
}

// constMembers extracts the members of typeName declared in one
// const block, resolving the implicit repetition of the type and
// value expressions across specs. The iota counter is the spec's
// position within the block, exactly as in the language.
func constMembers(decl *ast.GenDecl, typeName string) []Member {
	var members []Member
	curType := ""
	var curValues []ast.Expr
	for iotaVal, spec := range decl.Specs {
		vs, ok := spec.(*ast.ValueSpec)
		if !ok {
			continue
		}
		if vs.Type != nil || len(vs.Values) > 0 {
			curType = ""
			if id, ok := vs.Type.(*ast.Ident); ok {
				curType = id.Name
			}
			curValues = vs.Values
		}
		if curType != typeName {
			continue
		}
		positional := len(vs.Names) == 1 && len(curValues) == 1 && isIota(curValues[0])
		for _, name := range vs.Names {
			if name.Name == "_" {
				// A blank member still consumes an ordinal;
				// the resulting gap is rejected by validation.
				continue
			}
			m := Member{Name: name.Name}
			if positional {
				m.Value = uint32(iotaVal)
			} else {
				m.Explicit = true
			}
			members = append(members, m)
		}
	}
	return members
}

func isIota(expr ast.Expr) bool {
	id, ok := expr.(*ast.Ident)
	return ok && id.Name == "iota"
}

var integerTypes = map[string]bool{
	"int":     true,
	"int8":    true,
	"int16":   true,
	"int32":   true,
	"int64":   true,
	"uint":    true,
	"uint8":   true,
	"uint16":  true,
	"uint32":  true,
	"uint64":  true,
	"uintptr": true,
	"byte":    true,
	"rune":    true,
}

func isIntegerType(expr ast.Expr) bool {
	id, ok := expr.(*ast.Ident)
	return ok && integerTypes[id.Name]
}
