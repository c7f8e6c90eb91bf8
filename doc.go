// Package archecs implements an archetype-based entity-component store:
// entities are grouped into archetypes by the sorted set of component ids
// they carry, component columns are stored as type-erased byte buffers, and
// queries are dispatched by intersecting per-component presence bitsets.
//
// There is no global registry. Every piece of mutable state — the entity
// registry, the component layout table, the archetype list, the per-
// component lock table — lives on a *World value. Programs construct one
// World per simulation and pass it explicitly; nothing here reaches for
// package-level state.
package archecs
