// Package design implements the design-system layer: element registration,
// tag disambiguation, and the two-phase definition pass that turns element
// compositions into platform definitions.
//
// # Overview
//
// A DesignSystem owns a tag prefix, a default shadow root mode, a
// disambiguation policy, and a DI scope. Registering a component kit against
// it runs a registration pass:
//
//	ds := design.New(container.New()).WithPrefix("fast")
//	ds.Register(showcase.Kit()...)
//
// The pass forwards every registration value into the scope with an
// ElementContext attached. Element compositions (see Compose) call
// TryDefineElement there, producing DefinitionEntry records; after the whole
// pass has been forwarded, every entry's callback runs, and only then are the
// finished definitions handed to the element platform, in registration order.
//
// # Disambiguation
//
// When an attempted tag already has a registrant, the system's policy decides
// the outcome: skip the platform define but keep the entry (the default),
// drop the attempt entirely, or retry under a new name:
//
//	ds.WithElementDisambiguation(design.RenameWithSuffix("2"))
//
// Policies return a closed Outcome value built with Rename, SkipDefine, or
// Ignore; anything else aborts the registration with ErrInvalidOutcome.
//
// # Tag registry
//
// A TagRegistry keeps the bidirectional tag↔type mapping. Types registered
// under a second tag, and every registration of the shared base element type,
// receive a fresh per-registration identity so earlier lookups stay intact.
// The process-wide default registry backs the package-level TagFor and the
// locator functions.
//
// # Locator
//
// GetOrCreate and ResponsibleFor tie design systems to document nodes: each
// node owns at most one system, its DI scope chains to the nearest ancestor
// scope, and detached nodes fall back to the process-wide root system.
package design
