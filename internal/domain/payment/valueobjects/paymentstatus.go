package valueobjects

// PaymentStatus is the stored status of a payment. Besides the three known
// values any status reported by the gateway is kept verbatim.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusSuccess PaymentStatus = "SUCCESS"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

// GatewayStatusPaid is the gateway order status that means the customer paid.
const GatewayStatusPaid = "PAID"

// FromGatewayStatus maps a gateway order status onto a stored status.
// Only the exact "PAID" becomes SUCCESS; everything else, including other
// casings, passes through unchanged.
func FromGatewayStatus(status string) PaymentStatus {
	if status == GatewayStatusPaid {
		return PaymentStatusSuccess
	}
	return PaymentStatus(status)
}

func (s PaymentStatus) IsSuccess() bool {
	return s == PaymentStatusSuccess
}

func (s PaymentStatus) IsPending() bool {
	return s == PaymentStatusPending
}

func (s PaymentStatus) String() string {
	return string(s)
}
