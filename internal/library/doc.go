// Package library discovers agent template manifests across configured
// source directories and assembles them, together with the embedded
// builtins, into a template registry snapshot. Earlier sources win on name
// conflicts, and a JSON cache keyed on directory modification times avoids
// rescanning unchanged sources.
package library
