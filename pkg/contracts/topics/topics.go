package topics

const (
	// Interações do dashboard
	SelectionChanged = "selection_changed"
)
