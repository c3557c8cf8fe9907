package demand

import "errors"

var (
	// ErrKeyNotFound возвращается, когда по ключу (date, time) не было ни одной заявки
	ErrKeyNotFound = errors.New("demand.repository: demand key not found")

	// ErrAlreadyResolved возвращается при попытке сменить уже установленный итоговый статус
	ErrAlreadyResolved = errors.New("demand.repository: demand key already resolved")

	// ErrTransaction возвращается при ошибках работы с транзакцией
	ErrTransaction = errors.New("demand.repository: transaction error")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("demand.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("demand.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("demand.repository: failed to scan row")
)
