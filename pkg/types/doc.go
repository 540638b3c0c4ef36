// Package types defines the entity records stored by Curio, the schema
// descriptors that drive the generic persistence engine, and the standard
// error values shared across the storage, session, and authorization layers.
package types
