package rust

import (
	"github.com/ggriffiniii/google-apis/apigen/desc"
	"github.com/ggriffiniii/google-apis/apigen/naming"
)

// names tracks generated identifiers within one Rust namespace.
type names struct {
	what string
	seen map[string]string
}

func newNames(what string) *names {
	return &names{what: what, seen: make(map[string]string)}
}

// add records ident as generated from source. It returns an error when ident
// is empty or already generated from a different source.
func (n *names) add(loc desc.Location, ident, source string) *desc.SchemaError {
	if ident == "" {
		return loc.Errorf(desc.CodeInvalidIdentifier, "%s %q has no identifier characters", n.what, source)
	}
	if prev, ok := n.seen[ident]; ok {
		return loc.Errorf(desc.CodeIdentifierCollision, "%s %q and %q both map to %s", n.what, prev, source, ident)
	}
	n.seen[ident] = source
	return nil
}

type collector struct {
	errs desc.SchemaErrors
}

func (c *collector) check(err *desc.SchemaError) {
	if err != nil {
		c.errs = append(c.errs, err)
	}
}

// checkIdentifiers reports description names that cannot be emitted as
// distinct Rust identifiers.
func checkIdentifiers(d *desc.ServiceDescription) desc.SchemaErrors {
	var c collector

	globalFields := newNames("parameter")
	globalFields.seen[reqwestField] = reqwestField
	globalFields.seen[requestField] = requestField
	var globalDefs []*desc.EnumType
	for _, p := range d.GlobalParams {
		loc := desc.Location{Param: p.WireName()}
		c.check(globalFields.add(loc, naming.FieldName(p.Identifier), p.Identifier))
		if def := p.TypeDef(); def != nil {
			globalDefs = c.checkTypeDef(loc, globalDefs, def)
		}
	}

	schemaNames := newNames("schema")
	for _, s := range d.Schemas {
		loc := desc.Location{Schema: s.Name}
		c.check(schemaNames.add(loc, naming.TypeName(s.Name), s.Name))
		fields := newNames("property")
		for _, prop := range s.Properties {
			c.check(fields.add(desc.Location{Schema: s.Name, Param: prop.Name}, naming.VarName(prop.Name), prop.Name))
		}
	}

	if d.Resource != nil {
		sc := newScope(d).child(d.Resource.Identifier)
		if naming.TypeName(d.Resource.Identifier) == "" {
			c.check(sc.resourceLoc().Errorf(desc.CodeInvalidIdentifier, "resource %q has no identifier characters", d.Resource.Identifier))
		}
		client := newNames("callable")
		for _, fn := range clientFns {
			client.seen[fn] = fn
		}
		if len(d.Resource.Methods) > 0 {
			c.check(client.add(sc.resourceLoc(), naming.VarName(d.Resource.Identifier), d.Resource.Identifier))
		}
		for i := range d.Resource.Resources {
			id := d.Resource.Resources[i].Identifier
			if fn := naming.VarName(id); fn != "" {
				c.check(client.add(sc.resourceLoc().Child(id), fn, id))
			}
		}
		c.checkResource(sc, d.Resource, globalFields)
	}
	return c.errs
}

func (c *collector) checkResource(sc scope, r *desc.Resource, globals *names) {
	loc := sc.resourceLoc()

	callables := newNames("callable")
	builders := newNames("method")
	var defs []*desc.EnumType
	for i := range r.Methods {
		m := &r.Methods[i]
		mloc := sc.methodLoc(m.ID)
		c.check(callables.add(mloc, naming.VarName(m.ID), m.ID))
		c.check(builders.add(mloc, naming.BuilderName(m.ID), m.ID))

		fields := &names{what: "parameter", seen: make(map[string]string, len(globals.seen))}
		for k, v := range globals.seen {
			fields.seen[k] = v
		}
		for _, p := range m.Params {
			ploc := mloc
			ploc.Param = p.WireName()
			c.check(fields.add(ploc, naming.FieldName(p.Identifier), p.Identifier))
			if def := p.TypeDef(); def != nil {
				defs = c.checkTypeDef(ploc, defs, def)
			}
		}
	}

	modules := newNames("resource")
	for i := range r.Resources {
		child := &r.Resources[i]
		cloc := loc.Child(child.Identifier)
		c.check(modules.add(cloc, naming.ModuleName(child.Identifier), child.Identifier))
		c.check(callables.add(cloc, naming.VarName(child.Identifier), child.Identifier))
		c.checkResource(sc.child(child.Identifier), child, globals)
	}
}

// checkTypeDef adds def to the definitions emitted into one params module.
// Identical definitions are merged; different ones with the same type name collide.
func (c *collector) checkTypeDef(loc desc.Location, defs []*desc.EnumType, def *desc.EnumType) []*desc.EnumType {
	name := naming.TypeName(def.Name)
	if name == "" {
		c.check(loc.Errorf(desc.CodeInvalidIdentifier, "enum %q has no identifier characters", def.Name))
		return defs
	}
	for _, seen := range defs {
		if sameEnum(seen, def) {
			return defs
		}
		if naming.TypeName(seen.Name) == name {
			c.check(loc.Errorf(desc.CodeIdentifierCollision, "enums %q and %q both map to %s with different values", seen.Name, def.Name, name))
			return defs
		}
	}
	variants := newNames("enum value")
	for _, v := range def.Variants {
		c.check(variants.add(loc, naming.VariantName(v.Value), v.Value))
	}
	return append(defs, def)
}
