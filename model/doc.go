// Package model defines core types used throughout facetgrid.
//
// # Value Types
//
//   - Value: typed scalar field value (number, string, other, absent)
//   - Record: field name to Value mapping, owned by the caller
//   - Key: bucket identifier along a facet axis (number, string, other, none)
//
// # Construction
//
// Values are built with typed constructors or coerced from generic data:
//
//	rec := model.Record{
//	    "price":    model.Number(9.99),
//	    "category": model.String("tech"),
//	}
//	rec = model.RecordFromAny(map[string]any{"price": 9.99, "category": "tech"})
//
// # Stable Map Keys
//
// Value.Key and Key.MapKey return stable type+value composites so that
// heterogeneous scalars can be used as map keys without collisions between
// types (the number 7 and the string "7" hash differently).
package model
