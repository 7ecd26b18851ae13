// Package scaffold generates new agent template manifests from an embedded
// skeleton, then schema-validates the result so authors start from a
// manifest the registry will accept.
package scaffold
