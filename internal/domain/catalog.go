package domain

// Language is one offered dubbing target for a country.
type Language struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"nativeName"`
}

// Country groups the dubbing languages offered for one market.
type Country struct {
	Code      string     `json:"code"`
	Name      string     `json:"name"`
	Flag      string     `json:"flag"`
	Languages []Language `json:"languages"`
}
