// Package config manages the AgentForge configuration file and environment
// overrides via Viper. Configuration lives at ~/.agentforge/config.yaml and
// every key can be overridden with an AGENTFORGE_-prefixed environment
// variable.
package config
