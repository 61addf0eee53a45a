package cricapi

// SeriesInfoResponse é o envelope de /v1/series_info.
// Status "success" indica payload válido; qualquer outro valor é falha lógica da API.
type SeriesInfoResponse struct {
	Status string      `json:"status"`
	Reason string      `json:"reason,omitempty"`
	Data   *SeriesData `json:"data,omitempty"`
}

type SeriesData struct {
	MatchList []RawMatch `json:"matchList"`
}

// RawMatch representa uma partida como a CricAPI entrega
type RawMatch struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	MatchType    string     `json:"matchType,omitempty"`
	Status       string     `json:"status"`
	Venue        string     `json:"venue"`
	Date         string     `json:"date"`
	DateTimeGMT  string     `json:"dateTimeGMT"`
	Teams        []string   `json:"teams"`
	TeamInfo     []TeamInfo `json:"teamInfo,omitempty"`
	MatchStarted bool       `json:"matchStarted"`
	MatchEnded   bool       `json:"matchEnded"`
}

type TeamInfo struct {
	Name      string `json:"name"`
	ShortName string `json:"shortname"`
	Img       string `json:"img,omitempty"`
}
