package sql

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/georm/compiler/gen"
)

// genEntity generates the entity file ({entity}_georm.go).
func genEntity(h gen.GeneratorHelper, t *gen.Type) (*jen.File, error) {
	f := h.NewFile(t)

	genTable(f, t)
	genKey(h, f, t)
	genScanDest(f, t)

	gens := []func(gen.GeneratorHelper, *jen.File, *gen.Type) error{
		genFind,
		genCreate,
		genUpdate,
		genUpsert,
		genDelete,
		genRelations,
		genDefault,
	}
	for _, g := range gens {
		if err := g(h, f, t); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// genTable generates the table constant and the column list.
func genTable(f *jen.File, t *gen.Type) {
	docf(f, "%s is the table holding %s entities.", t.TableConst(), t.Name)
	f.Const().Id(t.TableConst()).Op("=").Lit(t.Table)

	docf(f, "%s holds the columns of %s in declaration order.", t.ColumnsVar(), t.TableConst())
	f.Var().Id(t.ColumnsVar()).Op("=").Index().String().ValuesFunc(func(g *jen.Group) {
		for _, c := range t.Columns() {
			g.Lit(c)
		}
	})
}

// genKey generates the composite key type, the GetID method and the
// georm.Entity assertion.
func genKey(h gen.GeneratorHelper, f *jen.File, t *gen.Type) {
	var body jen.Code
	switch id := t.ID.(type) {
	case *gen.SimpleID:
		body = jen.Return(jen.Id(t.Receiver()).Dot(id.Field.Name))
	case *gen.CompositeID:
		docf(f, "%s is the key of %s. It is comparable, so two keys are equal when all of their members are.", id.Name, t.Name)
		f.Type().Id(id.Name).StructFunc(func(g *jen.Group) {
			for _, m := range id.Members {
				g.Id(m.Name).Add(h.GoType(m.Type))
			}
		})
		body = jen.Return(jen.Id(id.Name).Values(jen.DictFunc(func(d jen.Dict) {
			for _, m := range id.Members {
				d[jen.Id(m.Name)] = jen.Id(t.Receiver()).Dot(m.Name)
			}
		})))
	}

	f.Var().Id("_").Qual(h.GeormPkg(), "Entity").Types(jen.Id(t.Name), h.KeyType(t)).Op("=").Parens(jen.Op("*").Id(t.Name)).Parens(jen.Nil())

	docf(f, "GetID returns the key of the %s.", t.Name)
	f.Func().Params(recv(t)).Id("GetID").Params().Add(h.KeyType(t)).Block(body)
}

// genScanDest generates the ScanDest method mapping result columns to
// fields by name.
func genScanDest(f *jen.File, t *gen.Type) {
	docf(f, "ScanDest returns one scan destination per column. Columns that are not mapped by %s are scanned and discarded.", t.Name)
	f.Func().Params(recv(t)).Id("ScanDest").Params(jen.Id("columns").Index().String()).Index().Any().Block(
		jen.Id("dest").Op(":=").Make(jen.Index().Any(), jen.Len(jen.Id("columns"))),
		jen.For(jen.List(jen.Id("i"), jen.Id("column")).Op(":=").Range().Id("columns")).Block(
			jen.Switch(jen.Id("column")).BlockFunc(func(g *jen.Group) {
				for _, fd := range t.Fields {
					g.Case(jen.Lit(fd.Column)).Block(
						jen.Id("dest").Index(jen.Id("i")).Op("=").Op("&").Id(t.Receiver()).Dot(fd.Name),
					)
				}
				g.Default().Block(
					jen.Id("dest").Index(jen.Id("i")).Op("=").New(jen.Any()),
				)
			}),
		),
		jen.Return(jen.Id("dest")),
	)
}
