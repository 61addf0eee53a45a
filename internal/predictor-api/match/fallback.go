package match

// fallbackMatches é servido quando não há rede nem cache algum
var fallbackMatches = []Match{
	{
		ID:          "fallback_sl_ire",
		Team1:       Team{Name: "Sri Lanka", ShortName: "SL", Flag: "🇱🇰", Color: "#004B87"},
		Team2:       Team{Name: "Ireland", ShortName: "IRE", Flag: "🇮🇪", Color: "#169B62"},
		Venue:       "R.Premadasa Stadium, Colombo",
		Date:        "2026-02-08",
		DateTimeGMT: "2026-02-08T13:30:00",
		Status:      StatusUpcoming,
	},
	{
		ID:          "fallback_sco_ita",
		Team1:       Team{Name: "Scotland", ShortName: "SCO", Flag: "🏴󠁧󠁢󠁳󠁣󠁴󠁿", Color: "#005EB8"},
		Team2:       Team{Name: "Italy", ShortName: "ITA", Flag: "🇮🇹", Color: "#009246"},
		Venue:       "Eden Gardens, Kolkata",
		Date:        "2026-02-09",
		DateTimeGMT: "2026-02-09T05:30:00",
		Status:      StatusUpcoming,
	},
	{
		ID:          "fallback_zim_oman",
		Team1:       Team{Name: "Zimbabwe", ShortName: "ZIM", Flag: "🇿🇼", Color: "#EFB509"},
		Team2:       Team{Name: "Oman", ShortName: "OMAN", Flag: "🇴🇲", Color: "#C8102E"},
		Venue:       "Sinhalese Sports Club, Colombo",
		Date:        "2026-02-09",
		DateTimeGMT: "2026-02-09T09:30:00",
		Status:      StatusUpcoming,
	},
}

// Fallback devolve uma cópia da lista fixa
func Fallback() []Match {
	out := make([]Match, len(fallbackMatches))
	copy(out, fallbackMatches)
	return out
}
