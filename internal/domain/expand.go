package domain

// Expander is implemented by entities whose collection listing embeds
// the full rows reachable through their association tables.
type Expander interface {
	// Preloads lists the gorm preload paths Expanded relies on.
	Preloads() []string
	// Expanded returns the entity wrapped with its related entities.
	Expanded() any
}
