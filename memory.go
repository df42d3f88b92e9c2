package bankxterm

// MemoryRepository keeps accounts for the lifetime of the process only.
type MemoryRepository struct {
	accts map[AccountKind]Account
}

var (
	_ Repository = (*MemoryRepository)(nil)
)

// NewMemoryRepository registers accts by kind. A later account of the same
// kind replaces an earlier one.
func NewMemoryRepository(accts ...Account) *MemoryRepository {
	m := make(map[AccountKind]Account, len(accts))
	for _, a := range accts {
		m[a.Kind()] = a
	}
	return &MemoryRepository{accts: m}
}

func (m *MemoryRepository) GetAccount(kind AccountKind) (Account, error) {
	acct, ok := m.accts[kind]
	if !ok {
		return nil, ErrNotFound{Kind: kind}
	}
	return acct, nil
}
