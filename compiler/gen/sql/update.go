package sql

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/georm/compiler/gen"
)

// genUpdate generates the Update method.
func genUpdate(h gen.GeneratorHelper, f *jen.File, t *gen.Type) error {
	q := t.UpdateQuery()
	args, err := bindArgs(t, q)
	if err != nil {
		return err
	}
	docf(f, "Update writes every non-key column of the %s row matching its key and returns the stored row. A missing row is a *georm.NotFoundError.", t.Name)
	f.Func().Params(recv(t)).Id("Update").Params(ctxParam(), dbParam(h)).Params(
		jen.Op("*").Id(t.Name), jen.Error(),
	).Block(
		resultBlock(h, t, "NewMutationError", "update", queryCall(h, "QueryOne", t, true, q.Text, args))...,
	)
	return nil
}

// genUpsert generates the CreateOrUpdate method, either as a single
// INSERT ... ON CONFLICT statement or, with the fallback-upsert feature,
// as a lookup followed by Update or Create.
func genUpsert(h gen.GeneratorHelper, f *jen.File, t *gen.Type) error {
	var body []jen.Code
	if h.FeatureEnabled(gen.FeatureFallbackUpsert.Name) {
		docf(f, "CreateOrUpdate looks the %s up by key, then updates it if found or creates it otherwise. The lookup and the write are separate statements and are not atomic: a concurrent writer may create the row in between, making Create fail with a unique constraint violation.", t.Name)
		body = []jen.Code{
			jen.Return(jen.Qual(h.GeormPkg(), "CheckThenAct").Types(jen.Id(t.Name), h.KeyType(t)).Call(
				jen.Id("ctx"), jen.Id("db"), jen.Id(t.Receiver()), jen.Id(t.FindName()),
			)),
		}
	} else {
		q := t.UpsertQuery()
		args, err := bindArgs(t, q)
		if err != nil {
			return err
		}
		docf(f, "CreateOrUpdate inserts the %s, or updates every non-key column when a row with the same key exists, in one statement. It returns the stored row.", t.Name)
		body = resultBlock(h, t, "NewMutationError", "create_or_update", queryCall(h, "QueryOne", t, true, q.Text, args))
	}
	f.Func().Params(recv(t)).Id("CreateOrUpdate").Params(ctxParam(), dbParam(h)).Params(
		jen.Op("*").Id(t.Name), jen.Error(),
	).Block(body...)
	return nil
}
