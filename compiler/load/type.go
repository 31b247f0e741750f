package load

import (
	"errors"
	"fmt"
	"go/ast"
	"go/types"
	"path"
	"regexp"
	"strconv"
	"strings"
)

// TypeKind classifies a field type expression.
type TypeKind uint8

// Type kinds.
const (
	KindBasic   TypeKind = iota + 1 // predeclared type such as int32 or string
	KindNamed                       // named type, local or imported
	KindPointer                     // *Elem
	KindSlice                       // []Elem
	KindArray                       // [Len]Elem
	KindMap                         // map[Key]Elem
)

// Comparability tells whether values of a named type support ==.
type Comparability uint8

// Comparability values.
const (
	// ComparableUnknown is left on named types a syntax-only load cannot
	// see through, such as types of other packages.
	ComparableUnknown Comparability = iota
	ComparableYes
	ComparableNo
)

// TypeInfo describes a field type.
type TypeInfo struct {
	Kind TypeKind `msgpack:"kind"`
	// Name is the type name for KindBasic and KindNamed.
	Name string `msgpack:"name,omitempty"`
	// PkgPath is the import path of a KindNamed type.
	PkgPath string `msgpack:"pkg_path,omitempty"`
	// Args holds the type arguments of an instantiated generic type.
	Args []*TypeInfo `msgpack:"args,omitempty"`
	// Key is the key type of a KindMap.
	Key  *TypeInfo `msgpack:"key,omitempty"`
	Elem *TypeInfo `msgpack:"elem,omitempty"`
	Len  string    `msgpack:"len,omitempty"`
	// Comparability of a KindNamed type.
	Comparability Comparability `msgpack:"comparability,omitempty"`
}

// String returns the type in Go syntax, qualified by package path.
func (t *TypeInfo) String() string {
	switch t.Kind {
	case KindPointer:
		return "*" + t.Elem.String()
	case KindSlice:
		return "[]" + t.Elem.String()
	case KindArray:
		return "[" + t.Len + "]" + t.Elem.String()
	case KindMap:
		return "map[" + t.Key.String() + "]" + t.Elem.String()
	case KindNamed:
		name := t.Name
		if t.PkgPath != "" {
			name = t.PkgPath + "." + name
		}
		if len(t.Args) > 0 {
			args := make([]string, len(t.Args))
			for i, a := range t.Args {
				args[i] = a.String()
			}
			name += "[" + strings.Join(args, ", ") + "]"
		}
		return name
	}
	return t.Name
}

// Nillable reports whether the zero value of the type is nil.
func (t *TypeInfo) Nillable() bool {
	return t.Kind == KindPointer || t.Kind == KindSlice || t.Kind == KindMap
}

// Optional reports whether the type already models an absent value: a
// pointer or one of the database/sql Null types, sql.Null[T] included.
func (t *TypeInfo) Optional() bool {
	switch {
	case t.Kind == KindPointer:
		return true
	case t.Kind == KindNamed && t.PkgPath == "database/sql":
		return strings.HasPrefix(t.Name, "Null")
	default:
		return false
	}
}

// Comparable reports whether values of the type can be compared with ==,
// which composite key members need. It fails for named types whose
// underlying type was not resolved.
func (t *TypeInfo) Comparable() (bool, error) {
	switch t.Kind {
	case KindSlice, KindMap:
		return false, nil
	case KindArray:
		return t.Elem.Comparable()
	case KindNamed:
		switch t.Comparability {
		case ComparableYes:
			return true, nil
		case ComparableNo:
			return false, nil
		default:
			return false, fmt.Errorf("comparability of %s is unsupported in syntax-only mode: load the package with load.Packages", t)
		}
	default:
		return true, nil
	}
}

// versionRe matches major-version path elements such as "v5".
var versionRe = regexp.MustCompile(`^v[0-9]+$`)

// importName guesses the package name of an unaliased import the way the
// go command names packages by convention. Type-checked loads never need
// it.
func importName(importPath string) string {
	base := path.Base(importPath)
	if versionRe.MatchString(base) {
		if dir := path.Dir(importPath); dir != "." {
			base = path.Base(dir)
		}
	}
	if i := strings.Index(base, ".v"); i > 0 {
		base = base[:i]
	}
	base = strings.TrimPrefix(base, "go-")
	return strings.ReplaceAll(base, "-", "_")
}

// syntaxTypes converts field type expressions without type information.
type syntaxTypes struct {
	imports map[string]string
	pkgPath string
	// local holds the type declarations of the package being loaded.
	local map[string]ast.Expr
}

// typeOf converts a field type expression into a TypeInfo. imports maps
// package names to import paths for the enclosing file and pkgPath is the
// path of the package being loaded.
func typeOf(expr ast.Expr, imports map[string]string, pkgPath string) (*TypeInfo, error) {
	return (&syntaxTypes{imports: imports, pkgPath: pkgPath}).typeOf(expr)
}

func (s *syntaxTypes) typeOf(expr ast.Expr) (*TypeInfo, error) {
	switch x := expr.(type) {
	case *ast.Ident:
		if _, ok := s.local[x.Name]; !ok {
			if obj := types.Universe.Lookup(x.Name); obj != nil {
				if _, ok := obj.(*types.TypeName); ok {
					return &TypeInfo{Kind: KindBasic, Name: x.Name}, nil
				}
			}
		}
		return &TypeInfo{
			Kind:          KindNamed,
			Name:          x.Name,
			PkgPath:       s.pkgPath,
			Comparability: s.comparability(x, map[string]bool{}),
		}, nil
	case *ast.SelectorExpr:
		pkg, ok := x.X.(*ast.Ident)
		if !ok {
			return nil, fmt.Errorf("unsupported qualified type %T", x.X)
		}
		p, ok := s.imports[pkg.Name]
		if !ok {
			return nil, fmt.Errorf("unknown package %q", pkg.Name)
		}
		return &TypeInfo{Kind: KindNamed, Name: x.Sel.Name, PkgPath: p}, nil
	case *ast.IndexExpr:
		return s.instance(x.X, []ast.Expr{x.Index})
	case *ast.IndexListExpr:
		return s.instance(x.X, x.Indices)
	case *ast.StarExpr:
		elem, err := s.typeOf(x.X)
		if err != nil {
			return nil, err
		}
		return &TypeInfo{Kind: KindPointer, Elem: elem}, nil
	case *ast.ArrayType:
		elem, err := s.typeOf(x.Elt)
		if err != nil {
			return nil, err
		}
		if x.Len == nil {
			return &TypeInfo{Kind: KindSlice, Elem: elem}, nil
		}
		lit, ok := x.Len.(*ast.BasicLit)
		if !ok {
			return nil, fmt.Errorf("unsupported array length %T", x.Len)
		}
		return &TypeInfo{Kind: KindArray, Elem: elem, Len: lit.Value}, nil
	case *ast.MapType:
		key, err := s.typeOf(x.Key)
		if err != nil {
			return nil, err
		}
		elem, err := s.typeOf(x.Value)
		if err != nil {
			return nil, err
		}
		return &TypeInfo{Kind: KindMap, Key: key, Elem: elem}, nil
	case *ast.ParenExpr:
		return s.typeOf(x.X)
	default:
		return nil, fmt.Errorf("unsupported field type %s", types.ExprString(expr))
	}
}

// instance converts an instantiated generic type such as sql.Null[int64].
func (s *syntaxTypes) instance(generic ast.Expr, indices []ast.Expr) (*TypeInfo, error) {
	info, err := s.typeOf(generic)
	if err != nil {
		return nil, err
	}
	if info.Kind != KindNamed {
		return nil, fmt.Errorf("unsupported field type %s", types.ExprString(generic))
	}
	for _, idx := range indices {
		arg, err := s.typeOf(idx)
		if err != nil {
			return nil, err
		}
		info.Args = append(info.Args, arg)
	}
	// The type parameters of the generic type are not visible here.
	info.Comparability = ComparableUnknown
	return info, nil
}

// comparability resolves a local named type through its declaration.
func (s *syntaxTypes) comparability(id *ast.Ident, seen map[string]bool) Comparability {
	decl, ok := s.local[id.Name]
	if !ok || seen[id.Name] {
		return ComparableUnknown
	}
	seen[id.Name] = true
	return s.exprComparability(decl, seen)
}

func (s *syntaxTypes) exprComparability(expr ast.Expr, seen map[string]bool) Comparability {
	switch x := expr.(type) {
	case *ast.Ident:
		if _, ok := s.local[x.Name]; ok {
			return s.comparability(x, seen)
		}
		if obj := types.Universe.Lookup(x.Name); obj != nil {
			if types.Comparable(obj.Type()) {
				return ComparableYes
			}
			return ComparableNo
		}
		return ComparableUnknown
	case *ast.StarExpr, *ast.ChanType, *ast.InterfaceType:
		return ComparableYes
	case *ast.FuncType, *ast.MapType:
		return ComparableNo
	case *ast.ArrayType:
		if x.Len == nil {
			return ComparableNo
		}
		return s.exprComparability(x.Elt, seen)
	case *ast.StructType:
		for _, f := range x.Fields.List {
			if c := s.exprComparability(f.Type, seen); c != ComparableYes {
				return c
			}
		}
		return ComparableYes
	case *ast.ParenExpr:
		return s.exprComparability(x.X, seen)
	default:
		return ComparableUnknown
	}
}

// typeInfo converts a type-checked field type into a TypeInfo.
func typeInfo(typ types.Type) (*TypeInfo, error) {
	switch t := types.Unalias(typ).(type) {
	case *types.Basic:
		if t.Kind() == types.Invalid {
			return nil, errors.New("unresolved field type")
		}
		return &TypeInfo{Kind: KindBasic, Name: t.Name()}, nil
	case *types.Named:
		obj := t.Obj()
		if obj.Pkg() == nil {
			// Predeclared named types such as error.
			return &TypeInfo{Kind: KindBasic, Name: obj.Name()}, nil
		}
		info := &TypeInfo{
			Kind:          KindNamed,
			Name:          obj.Name(),
			PkgPath:       obj.Pkg().Path(),
			Comparability: ComparableNo,
		}
		if types.Comparable(t) {
			info.Comparability = ComparableYes
		}
		args := t.TypeArgs()
		for i := range args.Len() {
			a, err := typeInfo(args.At(i))
			if err != nil {
				return nil, err
			}
			info.Args = append(info.Args, a)
		}
		return info, nil
	case *types.Pointer:
		elem, err := typeInfo(t.Elem())
		if err != nil {
			return nil, err
		}
		return &TypeInfo{Kind: KindPointer, Elem: elem}, nil
	case *types.Slice:
		elem, err := typeInfo(t.Elem())
		if err != nil {
			return nil, err
		}
		return &TypeInfo{Kind: KindSlice, Elem: elem}, nil
	case *types.Array:
		elem, err := typeInfo(t.Elem())
		if err != nil {
			return nil, err
		}
		return &TypeInfo{Kind: KindArray, Elem: elem, Len: strconv.FormatInt(t.Len(), 10)}, nil
	case *types.Map:
		key, err := typeInfo(t.Key())
		if err != nil {
			return nil, err
		}
		elem, err := typeInfo(t.Elem())
		if err != nil {
			return nil, err
		}
		return &TypeInfo{Kind: KindMap, Key: key, Elem: elem}, nil
	case *types.Interface:
		if t.Empty() {
			return &TypeInfo{Kind: KindBasic, Name: "any"}, nil
		}
	}
	return nil, errors.New("unsupported field type")
}
