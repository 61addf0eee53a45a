package match

// Fallbacks para seleções fora da tabela
const (
	DefaultFlag       = "🏏"
	DefaultTeam1Color = "#667eea"
	DefaultTeam2Color = "#764ba2"
)

var teamFlags = map[string]string{
	"India":                    "🇮🇳",
	"Pakistan":                 "🇵🇰",
	"Australia":                "🇦🇺",
	"England":                  "🏴󠁧󠁢󠁥󠁮󠁧󠁿",
	"South Africa":             "🇿🇦",
	"New Zealand":              "🇳🇿",
	"Sri Lanka":                "🇱🇰",
	"Bangladesh":               "🇧🇩",
	"Afghanistan":              "🇦🇫",
	"West Indies":              "🌴",
	"Ireland":                  "🇮🇪",
	"Netherlands":              "🇳🇱",
	"Scotland":                 "🏴󠁧󠁢󠁳󠁣󠁴󠁿",
	"Nepal":                    "🇳🇵",
	"Oman":                     "🇴🇲",
	"United States of America": "🇺🇸",
	"United States Of America": "🇺🇸",
	"Namibia":                  "🇳🇦",
	"Zimbabwe":                 "🇿🇼",
	"United Arab Emirates":     "🇦🇪",
	"Canada":                   "🇨🇦",
	"Italy":                    "🇮🇹",
}

var teamColors = map[string]string{
	"India":                    "#FF9933",
	"Pakistan":                 "#01411C",
	"Australia":                "#FFD700",
	"England":                  "#C8102E",
	"South Africa":             "#007749",
	"New Zealand":              "#000000",
	"Sri Lanka":                "#004B87",
	"Bangladesh":               "#006A4E",
	"Afghanistan":              "#0066B3",
	"West Indies":              "#7B0041",
	"Ireland":                  "#169B62",
	"Netherlands":              "#FF6B00",
	"Scotland":                 "#005EB8",
	"Nepal":                    "#DC143C",
	"Oman":                     "#C8102E",
	"United States of America": "#3C3B6E",
	"United States Of America": "#3C3B6E",
	"Namibia":                  "#003580",
	"Zimbabwe":                 "#EFB509",
	"United Arab Emirates":     "#00732F",
	"Canada":                   "#FF0000",
	"Italy":                    "#009246",
}
