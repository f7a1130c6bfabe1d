package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// It is assembled once in main and handed to the service container.
type RepositoryProvider struct {
	StateRateRepo StateRateRepositoryFacade
}
