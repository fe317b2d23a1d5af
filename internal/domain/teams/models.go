package teams

// Team is a league club as shown to fans. Identity is Code.
type Team struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Color   string `json:"color"`
	LogoURL string `json:"logoUrl"`
}
