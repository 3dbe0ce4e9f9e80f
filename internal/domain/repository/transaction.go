package repository

import "context"

// TransactionManager scopes a unit of work, such as consuming an invitation and creating the
// user it admits, to one atomic transaction.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise. Repositories obtained from the
	// factory are only valid inside fn.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory vends the repositories that take part in a transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	InvitationRepo() InvitationRepository
}
