// Package instantiate turns an agent template plus a caller-supplied
// specialization into an immutable AgentConfig. The pipeline is a single
// pass (lookup, capability resolution, specialization validation, prompt
// rendering, availability gate) and each stage either feeds the next or
// aborts the whole call with a typed error. Calls are stateless and
// side-effect-free; they may run fully in parallel against one registry
// snapshot.
package instantiate
