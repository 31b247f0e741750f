package sql

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/georm/compiler/gen"
)

// genDelete generates the Delete method and the Delete<Entity>ByID function.
func genDelete(h gen.GeneratorHelper, f *jen.File, t *gen.Type) error {
	q := t.DeleteQuery()
	args, err := bindArgs(t, q)
	if err != nil {
		return err
	}

	docf(f, "Delete removes the row matching the key of the %s and reports the number of rows removed.", t.Name)
	f.Func().Params(recv(t)).Id("Delete").Params(ctxParam(), dbParam(h)).Params(jen.Int64(), jen.Error()).Block(
		jen.Return(jen.Id(t.DeleteByIDName()).Call(jen.Id("ctx"), jen.Id("db"), jen.Id(t.Receiver()).Dot("GetID").Call())),
	)

	params := append([]jen.Code{jen.Id("ctx"), jen.Id("db"), jen.Lit(q.Text)}, args...)
	docf(f, "%s removes the %s with the given key and reports the number of rows removed. Deleting a missing row is not an error.", t.DeleteByIDName(), t.Name)
	f.Func().Id(t.DeleteByIDName()).Params(ctxParam(), dbParam(h), keyParam(h, t)).Params(jen.Int64(), jen.Error()).Block(
		jen.List(jen.Id("affected"), jen.Err()).Op(":=").Qual(h.SQLPkg(), "Exec").Call(params...),
		wrapErr(h, t, "NewMutationError", "delete", jen.Lit(0)),
		jen.Return(jen.Id("affected"), jen.Nil()),
	)
	return nil
}
