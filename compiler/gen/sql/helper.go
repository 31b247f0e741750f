package sql

import (
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/georm/compiler/gen"
	"github.com/syssam/georm/compiler/load"
)

// docWidth is the width doc comments of generated code are wrapped at,
// excluding the "// " prefix.
const docWidth = 76

// docf writes the formatted doc comment to f, wrapping it at docWidth.
func docf(f *jen.File, format string, args ...any) {
	var line string
	for _, w := range strings.Fields(fmt.Sprintf(format, args...)) {
		switch {
		case line == "":
			line = w
		case len(line)+1+len(w) > docWidth:
			f.Comment(line)
			line = w
		default:
			line += " " + w
		}
	}
	if line != "" {
		f.Comment(line)
	}
}

// ctxParam returns the "ctx context.Context" parameter.
func ctxParam() jen.Code {
	return jen.Id("ctx").Qual("context", "Context")
}

// dbParam returns the "db sql.ExecQuerier" parameter.
func dbParam(h gen.GeneratorHelper) jen.Code {
	return jen.Id("db").Qual(h.SQLPkg(), "ExecQuerier")
}

// keyParam returns the "id <Key>" parameter.
func keyParam(h gen.GeneratorHelper, t *gen.Type) jen.Code {
	return jen.Id("id").Add(h.KeyType(t))
}

// recv returns the pointer receiver of the generated methods of t.
func recv(t *gen.Type) *jen.Statement {
	return jen.Id(t.Receiver()).Op("*").Id(t.Name)
}

// bindArgs renders the bind arguments of q, reading fields from the
// receiver of t.
func bindArgs(t *gen.Type, q *gen.Query) ([]jen.Code, error) {
	args := make([]jen.Code, 0, len(q.Args))
	for _, a := range q.Args {
		switch a.Source {
		case gen.ArgField:
			args = append(args, jen.Id(t.Receiver()).Dot(a.Field.Name))
		case gen.ArgKey:
			if t.HasCompositeID() {
				args = append(args, jen.Id("id").Dot(a.Field.Name))
			} else {
				args = append(args, jen.Id("id"))
			}
		case gen.ArgSelfID:
			args = append(args, jen.Id(t.Receiver()).Dot("GetID").Call())
		default:
			return nil, fmt.Errorf("unknown argument source %s", a.Source)
		}
	}
	return args, nil
}

// queryCall renders "sql.<fn>[T](ctx, db, [label,] text, args...)".
func queryCall(h gen.GeneratorHelper, fn string, target *gen.Type, label bool, text string, args []jen.Code) *jen.Statement {
	params := []jen.Code{jen.Id("ctx"), jen.Id("db")}
	if label {
		params = append(params, jen.Lit(target.Label()))
	}
	params = append(params, jen.Lit(text))
	params = append(params, args...)
	return jen.Qual(h.SQLPkg(), fn).Types(h.EntityType(target)).Call(params...)
}

// wrapErr renders the error check of a query result, wrapping err with the
// georm error constructor ctor ("NewQueryError" or "NewMutationError").
func wrapErr(h gen.GeneratorHelper, t *gen.Type, ctor, op string, zero jen.Code) jen.Code {
	return jen.If(jen.Err().Op("!=").Nil()).Block(
		jen.Return(zero, jen.Qual(h.GeormPkg(), ctor).Call(jen.Lit(t.Label()), jen.Lit(op), jen.Err())),
	)
}

// resultBlock renders the body shared by single-row operations:
//
//	node, err := <call>
//	if err != nil {
//		return nil, georm.<ctor>(<label>, <op>, err)
//	}
//	return node, nil
func resultBlock(h gen.GeneratorHelper, t *gen.Type, ctor, op string, call jen.Code) []jen.Code {
	return []jen.Code{
		jen.List(jen.Id("node"), jen.Err()).Op(":=").Add(call),
		wrapErr(h, t, ctor, op, jen.Nil()),
		jen.Return(jen.Id("node"), jen.Nil()),
	}
}

// listBlock is like resultBlock for slice results.
func listBlock(h gen.GeneratorHelper, t *gen.Type, ctor, op string, call jen.Code) []jen.Code {
	return []jen.Code{
		jen.List(jen.Id("nodes"), jen.Err()).Op(":=").Add(call),
		wrapErr(h, t, ctor, op, jen.Nil()),
		jen.Return(jen.Id("nodes"), jen.Nil()),
	}
}

// isNullType reports whether the type is one of the database/sql Null
// types, whose absence is read from the Valid field.
func isNullType(info *load.TypeInfo) bool {
	return info.Kind == load.KindNamed && info.PkgPath == "database/sql" && info.Optional()
}
