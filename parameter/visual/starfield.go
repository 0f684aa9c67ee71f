package visual

// Star palette entries, sampled by cumulative weight at generation time
// Hex strings keep the table readable next to design references
const (
	StarWhiteHex  = "#ffffff"
	StarBlueHex   = "#cad7ff"
	StarYellowHex = "#fff4ea"
	StarRedHex    = "#ffd2a1"
)

const (
	StarWhiteWeight  = 70.0
	StarBlueWeight   = 15.0
	StarYellowWeight = 10.0
	StarRedWeight    = 5.0
)

// StarFallbackHex is used when weight sampling exhausts the palette
const StarFallbackHex = "#ffffff"

// BackgroundHex is the space backdrop
const BackgroundHex = "#000000"
