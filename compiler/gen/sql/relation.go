package sql

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/georm/compiler/gen"
	"github.com/syssam/georm/compiler/load"
)

// genRelations generates one accessor per relation of the entity. Relations
// of entities with a composite key were dropped by gen.NewGraph.
func genRelations(h gen.GeneratorHelper, f *jen.File, t *gen.Type) error {
	for _, r := range t.Relations {
		if err := genRelation(h, f, t, r); err != nil {
			return err
		}
	}
	return nil
}

func genRelation(h gen.GeneratorHelper, f *jen.File, t *gen.Type, r *gen.Relation) error {
	q := r.Query()
	args, err := bindArgs(t, q)
	if err != nil {
		return err
	}
	op := "get_" + r.Name
	target := r.Target

	var (
		result jen.Code
		body   []jen.Code
	)
	switch {
	case r.Many():
		result = jen.Index().Op("*").Add(h.EntityType(target))
		docf(f, "%s returns the %s entities of the %s relation.", r.Accessor(), target.Name, r.Name)
		body = listBlock(h, t, "NewQueryError", op, queryCall(h, "QueryAll", target, false, q.Text, args))
	case r.Optional():
		result = jen.Op("*").Add(h.EntityType(target))
		if r.Kind == gen.FieldOneToOne {
			docf(f, "%s returns the %s referenced by %s, or nil if it is unset or no row matches.", r.Accessor(), target.Name, r.Field.Name)
			body = append(body, nullGuard(t, r.Field)...)
			args = []jen.Code{fkArg(t, r.Field)}
		} else {
			docf(f, "%s returns the %s of the %s relation, or nil if no row matches.", r.Accessor(), target.Name, r.Name)
		}
		body = append(body, resultBlock(h, t, "NewQueryError", op, queryCall(h, "QueryOptional", target, true, q.Text, args))...)
	default:
		result = jen.Op("*").Add(h.EntityType(target))
		docf(f, "%s returns the %s referenced by %s. A missing row is a *georm.NotFoundError.", r.Accessor(), target.Name, r.Field.Name)
		body = resultBlock(h, t, "NewQueryError", op, queryCall(h, "QueryOne", target, true, q.Text, args))
	}

	f.Func().Params(recv(t)).Id(r.Accessor()).Params(ctxParam(), dbParam(h)).Params(result, jen.Error()).Block(body...)
	return nil
}

// nullGuard returns the early "return nil, nil" of a nullable foreign key
// holding no value.
func nullGuard(t *gen.Type, fd *gen.Field) []jen.Code {
	v := jen.Id(t.Receiver()).Dot(fd.Name)
	switch {
	case fd.Type.Kind == load.KindPointer:
		return []jen.Code{jen.If(v.Clone().Op("==").Nil()).Block(jen.Return(jen.Nil(), jen.Nil()))}
	case isNullType(fd.Type):
		return []jen.Code{jen.If(jen.Op("!").Add(v.Clone().Dot("Valid"))).Block(jen.Return(jen.Nil(), jen.Nil()))}
	default:
		return nil
	}
}

// fkArg returns the bind argument of a nullable foreign key, dereferencing
// pointers checked by nullGuard.
func fkArg(t *gen.Type, fd *gen.Field) jen.Code {
	v := jen.Id(t.Receiver()).Dot(fd.Name)
	if fd.Type.Kind == load.KindPointer {
		return jen.Op("*").Add(v)
	}
	return v
}
