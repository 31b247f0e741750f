package sql

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/georm/compiler/gen"
)

// genFind generates the FindAll<Entities> and Find<Entity> functions.
func genFind(h gen.GeneratorHelper, f *jen.File, t *gen.Type) error {
	all := t.FindAllQuery()
	docf(f, "%s returns every row of %s.", t.FindAllName(), t.TableConst())
	f.Func().Id(t.FindAllName()).Params(ctxParam(), dbParam(h)).Params(
		jen.Index().Op("*").Id(t.Name), jen.Error(),
	).Block(
		listBlock(h, t, "NewQueryError", "find_all", queryCall(h, "QueryAll", t, false, all.Text, nil))...,
	)

	one := t.FindQuery()
	args, err := bindArgs(t, one)
	if err != nil {
		return err
	}
	docf(f, "%s returns the %s with the given key, or nil if no row matches.", t.FindName(), t.Name)
	f.Func().Id(t.FindName()).Params(ctxParam(), dbParam(h), keyParam(h, t)).Params(
		jen.Op("*").Id(t.Name), jen.Error(),
	).Block(
		resultBlock(h, t, "NewQueryError", "find", queryCall(h, "QueryOptional", t, true, one.Text, args))...,
	)
	return nil
}
