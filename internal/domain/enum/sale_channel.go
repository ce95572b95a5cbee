package enum

import "encoding/json"

// SaleChannel represents where a sale originated
type SaleChannel int

const (
	ChannelOnline SaleChannel = 0
	ChannelPOS    SaleChannel = 1
)

func (c SaleChannel) String() string {
	names := [...]string{"Online", "POS"}
	if int(c) < 0 || int(c) >= len(names) {
		return "Online"
	}
	return names[c]
}

func (c SaleChannel) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *SaleChannel) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*c = SaleChannel(i)
		return nil
	}
	switch str {
	case "Online":
		*c = ChannelOnline
	case "POS":
		*c = ChannelPOS
	}
	return nil
}
