package constants

// AirlinePhoto is a hand-picked aircraft photo for an airline and aircraft
// family prefix. Key is "{airline ICAO}_{3 char aircraft prefix}".
type AirlinePhoto struct {
	Key string
	URL string
}

// AirlinePhotos is ordered: partial matching returns the first hit.
var AirlinePhotos = []AirlinePhoto{
	{"LAN_A32", "https://cdn.jetphotos.com/400/5/889433_1745494364.jpg?v=0"},
	{"TAM_A32", "https://cdn.jetphotos.com/400/5/889433_1745494364.jpg?v=0"},
	{"GLO_B73", "https://cdn.jetphotos.com/400/5/1166417_1755987529.jpg?v=0"},
	{"AZU_E19", "https://cdn.jetphotos.com/400/5/818842_1758043089.jpg?v=0"},
	{"AZU_AT7", "https://cdn.jetphotos.com/400/6/1353548_1752808693.jpg?v=0"},
	{"AZU_A32", "https://cdn.jetphotos.com/400/6/58970_1697983802.jpg?v=0"},
	{"ETH_B78", "https://cdn.jetphotos.com/400/5/449518_1760903836.jpg?v=0"},
	{"ETH_B77", "https://cdn.jetphotos.com/400/6/78609_1709488842.jpg?v=0"},
	{"TAP_A33", "https://cdn.jetphotos.com/400/5/441714_1761435923.jpg?v=0"},
	{"TAP_A32", "https://cdn.jetphotos.com/400/6/22683_1666548866.jpg?v=0"},
	{"AVA_A32", "https://cdn.jetphotos.com/400/6/1162486_1755630182.jpg?v=0"},
	{"AAL_B77", "https://cdn.jetphotos.com/400/6/59532_1683418982.jpg?v=0"},
	{"UAL_B77", "https://cdn.jetphotos.com/400/6/37635_1695085682.jpg?v=0"},
	{"DAL_A33", "https://cdn.jetphotos.com/400/6/95562_1694905682.jpg?v=0"},
}
