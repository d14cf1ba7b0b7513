package handlers

// Tags for failures the client treats generically. The tags it branches on
// live in dto.
const (
	tagInvalidPayload   = "invalid_payload"
	tagAccountExists    = "account_exists"
	tagPhoneNotFound    = "phone_not_found"
	tagAccountNotFound  = "account_not_found"
	tagSenderNotFound   = "sender_not_found"
	tagRecipientMissing = "recipient_not_found"
	tagPayerNotFound    = "payer_not_found"
	tagNoPayments       = "no_payments"
	tagInternal         = "internal_error"
)
