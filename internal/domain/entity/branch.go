package entity

// Branch is a physical restaurant location shown on the contact page.
type Branch struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Hours   string `json:"hours"`
	MapURL  string `json:"mapUrl,omitempty"`
}
