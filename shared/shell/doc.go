// Package shell contains the contracts and the infrastructure helpers shared by all feature slices.
//
// Commands, queries, and their handlers are declared here as small generic interfaces,
// so that the observable wrappers can decorate any handler without knowing its feature.
// The observability helpers record metrics, spans, and log lines for handler invocations
// through the dependency-free interfaces from the catalog package.
//
// This package is part of the shell (infrastructure) layer, the feature slices contain the core logic.
package shell
