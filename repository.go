package bankxterm

type Repository interface {
	GetAccount(kind AccountKind) (Account, error)
}
