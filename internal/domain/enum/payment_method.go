package enum

import "encoding/json"

// PaymentMethod represents how a sale was paid
type PaymentMethod int

const (
	PaymentCash PaymentMethod = 0
	PaymentCard PaymentMethod = 1
)

func (m PaymentMethod) String() string {
	names := [...]string{"Cash", "Card"}
	if int(m) < 0 || int(m) >= len(names) {
		return "Cash"
	}
	return names[m]
}

// IsValid reports whether the value is a known payment method.
func (m PaymentMethod) IsValid() bool {
	return m == PaymentCash || m == PaymentCard
}

// ParsePaymentMethod converts a wire string ("Cash"/"Card") to a PaymentMethod.
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch s {
	case "Cash":
		return PaymentCash, true
	case "Card":
		return PaymentCard, true
	}
	return 0, false
}

func (m PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = PaymentMethod(i)
		return nil
	}
	if parsed, ok := ParsePaymentMethod(str); ok {
		*m = parsed
	}
	return nil
}
