package types

// ComponentMetadata defines the essential identifying information for components within the system.
// It includes identifiers and descriptive information to help manage and differentiate components dynamically.
type ComponentMetadata struct {
	ID   string // Unique identifier for the component.
	Type string // Type of the component, used to distinguish between different classes of components.
	Name string // Human-readable name for the component.
}

// ConcurrencyConfig provides configuration details for managing concurrency within the system.
// It is used by components that split work across multiple workers.
type ConcurrencyConfig struct {
	MaxWorkers        int // Maximum number of concurrent workers; <= 0 selects max(1, NumCPU-1).
	ParallelThreshold int // Point count at or above which work is partitioned across workers.
}

// Option defines a configuration option function applicable to any component T. This generic approach
// allows for flexible configuration mechanisms across different types of components.
type Option[T any] func(T)
