package load

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/tools/go/packages"
)

// GeneratedSuffix is the file name suffix of generated files, which the
// extractor never reads.
const GeneratedSuffix = "_georm.go"

// Packages loads and type-checks the packages matching patterns and
// extracts their entities. Patterns follow the go command, e.g. "./models"
// or "./...". Field types are resolved by the type checker. Type errors
// are ignored so that stale generated files never block a run; a field
// whose type cannot be resolved is reported instead.
func Packages(ctx context.Context, patterns ...string) ([]*Schema, error) {
	if len(patterns) == 0 {
		patterns = []string{"."}
	}
	pkgs, err := packages.Load(&packages.Config{
		Context: ctx,
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax |
			packages.NeedTypes | packages.NeedTypesInfo,
	}, patterns...)
	if err != nil {
		return nil, fmt.Errorf("load: loading packages %v: %w", patterns, err)
	}
	var (
		schemas []*Schema
		errs    []error
	)
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			if e.Kind == packages.TypeError {
				continue
			}
			errs = append(errs, fmt.Errorf("load: %s: %s", pkg.PkgPath, e.Msg))
		}
		if len(pkg.GoFiles) == 0 || pkg.TypesInfo == nil {
			continue
		}
		x := &extractor{
			fset:    pkg.Fset,
			pkgName: pkg.Name,
			pkgPath: pkg.PkgPath,
			dir:     filepath.Dir(pkg.GoFiles[0]),
			info:    pkg.TypesInfo,
		}
		for _, f := range pkg.Syntax {
			s, err := x.file(f)
			schemas = append(schemas, s...)
			if err != nil {
				errs = append(errs, err)
			}
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	sortByName(schemas)
	return schemas, nil
}

// Dir parses the non-test Go files of the package in dir and extracts its
// entities without invoking the go command. pkgPath is the import path
// recorded on every Schema; when empty the package name is used.
//
// Dir reads syntax only: named types are resolved through the type
// declarations of the package, and imports are named after their path.
func Dir(dir, pkgPath string) ([]*Schema, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("load: reading %s: %w", dir, err)
	}
	fset := token.NewFileSet()
	var files []*ast.File
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("load: parsing %s: %w", name, err)
		}
		files = append(files, f)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("load: no Go files in %s", dir)
	}
	x := &extractor{fset: fset, pkgName: files[0].Name.Name, pkgPath: pkgPath, dir: dir, local: localTypes(files...)}
	if x.pkgPath == "" {
		x.pkgPath = x.pkgName
	}
	var (
		schemas []*Schema
		errs    []error
	)
	for _, f := range files {
		if f.Name.Name != x.pkgName {
			return nil, fmt.Errorf("load: found packages %s and %s in %s", x.pkgName, f.Name.Name, dir)
		}
		s, err := x.file(f)
		schemas = append(schemas, s...)
		if err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	sortByName(schemas)
	return schemas, nil
}

// ParseSource extracts the entities of a single source file. src may be a
// string, []byte or io.Reader, as accepted by go/parser. Like Dir, it
// reads syntax only.
func ParseSource(filename string, src any) ([]*Schema, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("load: parsing %s: %w", filename, err)
	}
	x := &extractor{fset: fset, pkgName: f.Name.Name, pkgPath: f.Name.Name, dir: filepath.Dir(filename), local: localTypes(f)}
	return x.file(f)
}

// extractor walks the files of one package.
type extractor struct {
	fset    *token.FileSet
	pkgName string
	pkgPath string
	dir     string
	// info is set by type-checked loads.
	info *types.Info
	// local holds the type declarations of syntax-only loads.
	local map[string]ast.Expr
}

// localTypes collects the type declarations of the given files.
func localTypes(files ...*ast.File) map[string]ast.Expr {
	local := make(map[string]ast.Expr)
	for _, f := range files {
		for _, decl := range f.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}
			for _, spec := range gd.Specs {
				if ts, ok := spec.(*ast.TypeSpec); ok {
					local[ts.Name.Name] = ts.Type
				}
			}
		}
	}
	return local
}

// fieldType resolves the type of a field, through the type checker when
// available.
func (x *extractor) fieldType(expr ast.Expr, imports map[string]string) (*TypeInfo, error) {
	if x.info == nil {
		return (&syntaxTypes{imports: imports, pkgPath: x.pkgPath, local: x.local}).typeOf(expr)
	}
	typ := x.info.TypeOf(expr)
	if typ == nil {
		return nil, fmt.Errorf("unresolved field type %s", types.ExprString(expr))
	}
	info, err := typeInfo(typ)
	if err != nil {
		return nil, fmt.Errorf("%w %s", err, types.ExprString(expr))
	}
	return info, nil
}

func (x *extractor) pos(p token.Pos) string {
	if !p.IsValid() {
		return ""
	}
	return x.fset.Position(p).String()
}

// file extracts the entities declared in f. Every malformed declaration is
// reported; well-formed entities are returned alongside the errors.
func (x *extractor) file(f *ast.File) ([]*Schema, error) {
	if tf := x.fset.File(f.Pos()); tf != nil && strings.HasSuffix(tf.Name(), GeneratedSuffix) {
		return nil, nil
	}
	imports := fileImports(f)
	var (
		schemas []*Schema
		errs    []error
	)
	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			st, ok := ts.Type.(*ast.StructType)
			if !ok {
				continue
			}
			doc := ts.Doc
			if doc == nil && len(gd.Specs) == 1 {
				doc = gd.Doc
			}
			s, err := x.entity(ts, st, doc, imports)
			switch {
			case err != nil:
				errs = append(errs, err)
			case s != nil:
				schemas = append(schemas, s)
			}
		}
	}
	return schemas, errors.Join(errs...)
}

// entity extracts one struct. It returns nil for structs that are not
// entities.
func (x *extractor) entity(ts *ast.TypeSpec, st *ast.StructType, doc *ast.CommentGroup, imports map[string]string) (*Schema, error) {
	dirs := x.directives(doc)
	if len(dirs) == 0 {
		if tagged := x.firstGeormTag(st); tagged != nil {
			return nil, declErrorf(x.pos(tagged.Pos()), ts.Name.Name, "", "georm struct tags without a georm:table directive")
		}
		return nil, nil
	}
	if ts.TypeParams != nil && len(ts.TypeParams.List) > 0 {
		return nil, declErrorf(x.pos(ts.Pos()), ts.Name.Name, "", "generic entities are not supported")
	}
	s := &Schema{
		Name:    ts.Name.Name,
		PkgName: x.pkgName,
		PkgPath: x.pkgPath,
		Dir:     x.dir,
		Pos:     x.pos(ts.Pos()),
	}
	if err := applyDirectives(s, dirs); err != nil {
		return nil, err
	}
	for _, f := range st.Fields.List {
		ft, err := parseFieldTags(f)
		if err != nil {
			return nil, declErrorf(x.pos(f.Pos()), s.Name, fieldLabel(f), "%v", err)
		}
		if ft.skip {
			continue
		}
		if len(f.Names) == 0 {
			if len(ft.georm) > 0 {
				return nil, declErrorf(x.pos(f.Pos()), s.Name, fieldLabel(f), "embedded fields are not supported")
			}
			continue
		}
		typ, err := x.fieldType(f.Type, imports)
		if err != nil {
			return nil, declErrorf(x.pos(f.Pos()), s.Name, fieldLabel(f), "%v", err)
		}
		for _, n := range f.Names {
			if n.Name == "_" {
				continue
			}
			fd, err := buildField(n.Name, typ, ft)
			if err != nil {
				return nil, declErrorf(x.pos(n.Pos()), s.Name, n.Name, "%v", err)
			}
			fd.Pos = x.pos(n.Pos())
			if fd.Relation != nil {
				fd.Relation.Pos = fd.Pos
			}
			s.Fields = append(s.Fields, fd)
		}
	}
	if len(s.IDs()) == 0 {
		return nil, declErrorf(s.Pos, s.Name, "", `no field is marked georm:"id"`)
	}
	return s, nil
}

// firstGeormTag returns the first field carrying a georm struct tag.
func (x *extractor) firstGeormTag(st *ast.StructType) *ast.Field {
	for _, f := range st.Fields.List {
		if ft, err := parseFieldTags(f); err == nil && len(ft.georm) > 0 {
			return f
		}
	}
	return nil
}

// fieldLabel names a field for error messages.
func fieldLabel(f *ast.Field) string {
	if len(f.Names) > 0 {
		return f.Names[0].Name
	}
	return types.ExprString(f.Type)
}

// fileImports maps the package names visible in f to their import paths.
func fileImports(f *ast.File) map[string]string {
	imports := make(map[string]string, len(f.Imports))
	for _, imp := range f.Imports {
		p, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			continue
		}
		name := importName(p)
		if imp.Name != nil {
			if imp.Name.Name == "_" || imp.Name.Name == "." {
				continue
			}
			name = imp.Name.Name
		}
		imports[name] = p
	}
	return imports
}

// sortByName orders schemas by package path and entity name.
func sortByName(schemas []*Schema) {
	sort.SliceStable(schemas, func(i, j int) bool {
		if schemas[i].PkgPath != schemas[j].PkgPath {
			return schemas[i].PkgPath < schemas[j].PkgPath
		}
		return schemas[i].Name < schemas[j].Name
	})
}
