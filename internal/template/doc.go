// Package template defines the agent template data model and the immutable
// template registry. Templates are declarative blueprints: a base prompt with
// named placeholders, the capabilities an agent offers, the tools and
// permissions those capabilities require, and the enumerated specialization
// axes a caller may choose from. Registries are built once by Load, never
// mutated, and swapped wholesale on reload via Store.
package template
