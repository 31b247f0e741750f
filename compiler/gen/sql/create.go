package sql

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/georm/compiler/gen"
)

// genCreate generates the Create method inserting every column.
func genCreate(h gen.GeneratorHelper, f *jen.File, t *gen.Type) error {
	q := t.CreateQuery()
	args, err := bindArgs(t, q)
	if err != nil {
		return err
	}
	docf(f, "Create inserts the %s and returns the stored row.", t.Name)
	f.Func().Params(recv(t)).Id("Create").Params(ctxParam(), dbParam(h)).Params(
		jen.Op("*").Id(t.Name), jen.Error(),
	).Block(
		resultBlock(h, t, "NewMutationError", "create", queryCall(h, "QueryOne", t, true, q.Text, args))...,
	)
	return nil
}

// genDefault generates the <Entity>Default companion of an entity with
// defaultable fields. Its Create method includes a defaultable column only
// when the field is set, so the database supplies the others.
func genDefault(h gen.GeneratorHelper, f *jen.File, t *gen.Type) error {
	if !t.HasDefaultable() {
		return nil
	}
	name, rd := t.DefaultName(), t.DefaultReceiver()
	docf(f, "%s mirrors %s for inserts that leave defaultable columns to the database. A nil field is omitted from the INSERT statement.", name, t.Name)
	f.Type().Id(name).StructFunc(func(g *jen.Group) {
		for _, fd := range t.Fields {
			typ := jen.Add(h.GoType(fd.Type))
			if fd.Defaultable {
				typ = jen.Op("*").Add(h.GoType(fd.Type))
			}
			g.Id(fd.Name).Add(typ).Tag(map[string]string{"db": fd.Column})
		}
	})

	f.Var().Id("_").Qual(h.GeormPkg(), "Defaultable").Types(jen.Id(t.Name)).Op("=").Parens(jen.Op("*").Id(name)).Parens(jen.Nil())

	body := []jen.Code{
		jen.Id("insert").Op(":=").Qual(h.SQLPkg(), "Insert").Call(jen.Id(t.TableConst())),
	}
	for _, fd := range t.Fields {
		if !fd.Defaultable {
			body = append(body, jen.Id("insert").Dot("Set").Call(jen.Lit(fd.Column), jen.Id(rd).Dot(fd.Name)))
			continue
		}
		body = append(body, jen.If(jen.Id(rd).Dot(fd.Name).Op("!=").Nil()).Block(
			jen.Id("insert").Dot("Set").Call(jen.Lit(fd.Column), jen.Op("*").Id(rd).Dot(fd.Name)),
		))
	}
	body = append(body, jen.List(jen.Id("query"), jen.Id("args")).Op(":=").Id("insert").Dot("Query").Call())
	call := jen.Qual(h.SQLPkg(), "QueryOne").Types(h.EntityType(t)).Call(
		jen.Id("ctx"), jen.Id("db"), jen.Lit(t.Label()), jen.Id("query"), jen.Id("args").Op("..."),
	)
	body = append(body, resultBlock(h, t, "NewMutationError", "create", call)...)

	docf(f, "Create inserts the %s, omitting every nil defaultable field, and returns the stored row.", t.Name)
	f.Func().Params(jen.Id(rd).Op("*").Id(name)).Id("Create").Params(ctxParam(), dbParam(h)).Params(
		jen.Op("*").Id(t.Name), jen.Error(),
	).Block(body...)
	return nil
}
