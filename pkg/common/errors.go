package common

import "github.com/cockroachdb/errors"

var (
	ErrDuplicate      = errors.New("duplicate transaction")
	ErrRecordNotFound = errors.New("record not found")

	ErrValidation       = errors.New("validation failed")
	ErrInvalidDateRange = errors.Wrap(ErrValidation, "invalid date range")
	ErrInvalidToken     = errors.Wrap(ErrValidation, "invalid api token")

	ErrCredentialNotFound = errors.New("credential not found")
	ErrDecryption         = errors.New("token decryption failed")

	ErrAuthentication = errors.New("bank api authentication failed")
	ErrRateLimit      = errors.New("bank api rate limit exceeded")
	ErrNotFound       = errors.New("bank api resource not found")
	ErrServer         = errors.New("bank api server error")
	ErrNetwork        = errors.New("bank api network error")
	ErrParsing        = errors.New("bank api response parsing failed")
	ErrMapping        = errors.New("transaction mapping failed")

	ErrInvalidTransition = errors.New("invalid import batch transition")

	ErrNoTransactionsFound      = errors.New("no transactions found")
	ErrAllTransactionsDuplicate = errors.New("all transactions are duplicates")

	ErrImportBatchStorage = errors.New("import batch storage failed")
	ErrTransactionStorage = errors.New("transaction storage failed")
)

// IsRetryable reports whether an import may succeed when repeated later without
// caller intervention.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrNetwork) || errors.Is(err, ErrServer)
}

// IsOutcome reports errors that describe a finished import with nothing new rather
// than a failure of the system.
func IsOutcome(err error) bool {
	return errors.Is(err, ErrNoTransactionsFound) || errors.Is(err, ErrAllTransactionsDuplicate)
}
