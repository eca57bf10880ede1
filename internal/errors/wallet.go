package errors

var (
	ErrWalletNotFound = &DomainError{
		Code:    "WALLET_NOT_FOUND",
		Message: "wallet does not exist",
	}
	ErrSenderWalletNotFound = &DomainError{
		Code:    "WALLET_NOT_FOUND",
		Message: "sender wallet does not exist",
	}
	ErrRecipientWalletNotFound = &DomainError{
		Code:    "WALLET_NOT_FOUND",
		Message: "recipient wallet does not exist",
	}
	ErrWalletLimit = &DomainError{
		Code:    "WALLET_LIMIT_REACHED",
		Message: "maximum number of wallets reached for this user",
	}
	ErrWalletOwnership = &DomainError{
		Code:    "WALLET_OWNERSHIP",
		Message: "wallet does not belong to the user",
	}
	ErrSenderOwnership = &DomainError{
		Code:    "WALLET_OWNERSHIP",
		Message: "sender wallet does not belong to the user",
	}
	ErrInsufficientBalance = &DomainError{
		Code:    "INSUFFICIENT_BALANCE",
		Message: "insufficient balance in the sender's wallet",
	}
)
