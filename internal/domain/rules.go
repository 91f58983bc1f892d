package domain

import (
	m "github.com/mouse-blink/archdoc/internal/model"
)

// DefaultLayer is assigned when no layer rule matches a path.
const DefaultLayer m.LayerLabel = "Core System"

// DefaultLayerRules classifies files by the directory they live in.
// Order matters: the first matching pattern wins.
var DefaultLayerRules = []m.LayerRule{
	{Pattern: "domain/", Label: "Domain Layer"},
	{Pattern: "application/", Label: "Application Layer"},
	{Pattern: "infrastructure/", Label: "Infrastructure Layer"},
	{Pattern: "presentation/", Label: "Presentation Layer"},
	{Pattern: "cli/", Label: "Interface / Presentation Layer"},
	{Pattern: "swarm/", Label: "Swarm Coordination Layer"},
	{Pattern: "cortex/", Label: "Learning & Memory Layer"},
}

// DefaultReferenceRules links path fragments to the architecture
// decision records that govern them. All matching entries apply.
var DefaultReferenceRules = []m.ReferenceRule{
	{Pattern: "cortex/src/infrastructure/embedding_client.rs", ID: "ADR-028: Embedding Model Selection"},
	{Pattern: "cortex/src/application/cortex_pruner.rs", ID: "ADR-029: Cortex Time-Decay Parameters"},
	{Pattern: "orchestrator/core/src/infrastructure/runtime.rs", ID: "ADR-027: Docker Runtime Implementation"},
	{Pattern: "orchestrator/core/src/infrastructure/event_bus.rs", ID: "ADR-030: Event Bus Architecture"},
	{Pattern: "orchestrator/core/src/application/workflow_engine.rs", ID: "ADR-031: Handlebars Template Engine"},
	{Pattern: "orchestrator/core/src/domain/volume.rs", ID: "ADR-032: Unified Storage via SeaweedFS"},
	{Pattern: "orchestrator/tool_integration", ID: "ADR-033: Orchestrator-Mediated MCP Tool Routing"},
	{Pattern: "orchestrator/core/src/infrastructure/secrets", ID: "ADR-034: OpenBao Secrets Management"},
	{Pattern: "orchestrator/core/src/infrastructure/smcp", ID: "ADR-035: SMCP Implementation"},
	{Pattern: "orchestrator/core/src/infrastructure/nfs_gateway", ID: "ADR-036: NFS Server Gateway Architecture"},
	{Pattern: "storage/fsal", ID: "ADR-036: NFS Server Gateway Architecture"},
}
