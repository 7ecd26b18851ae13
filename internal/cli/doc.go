// Package cli wires the cobra command tree for the agentforge binary:
// listing and inspecting templates, validating manifests, scaffolding new
// ones, and running the instantiation pipeline from the command line.
package cli
