package travel

// Coordinates географическая точка в градусах
type Coordinates struct {
	Lat float64
	Lon float64
}

// DefaultCoordinates центр Лондона, используется когда ключ не удалось разрешить
var DefaultCoordinates = Coordinates{Lat: 51.507, Lon: -0.127}

// postcodeCoords координаты полных почтовых индексов
var postcodeCoords = map[string]Coordinates{
	"W2 4DX":   {Lat: 51.515, Lon: -0.183}, // Paddington
	"W11 2BQ":  {Lat: 51.515, Lon: -0.196}, // Notting Hill
	"W1D 4HT":  {Lat: 51.515, Lon: -0.131}, // Soho
	"N1 9GU":   {Lat: 51.536, Lon: -0.106}, // Islington
	"W1K 6TF":  {Lat: 51.509, Lon: -0.150}, // Mayfair
	"NW1 7AB":  {Lat: 51.539, Lon: -0.142}, // Camden
	"E1 6AN":   {Lat: 51.524, Lon: -0.081}, // Shoreditch
	"SW4 0LG":  {Lat: 51.465, Lon: -0.138}, // Clapham
	"SE10 9RT": {Lat: 51.483, Lon: 0.008},  // Greenwich
	"E14 5AB":  {Lat: 51.505, Lon: -0.020}, // Canary Wharf
	"W2 2PF":   {Lat: 51.515, Lon: -0.183}, // Paddington
	"EC2A 3AR": {Lat: 51.524, Lon: -0.081}, // Shoreditch
}

// prefixCoords приблизительные координаты по outward-коду
var prefixCoords = map[string]Coordinates{
	"W1":   {Lat: 51.515, Lon: -0.145},
	"W2":   {Lat: 51.515, Lon: -0.183},
	"W11":  {Lat: 51.515, Lon: -0.196},
	"W10":  {Lat: 51.525, Lon: -0.220},
	"W9":   {Lat: 51.525, Lon: -0.190},
	"W8":   {Lat: 51.500, Lon: -0.195},
	"SW1":  {Lat: 51.495, Lon: -0.140},
	"SW3":  {Lat: 51.490, Lon: -0.165},
	"SW4":  {Lat: 51.465, Lon: -0.138},
	"SW5":  {Lat: 51.490, Lon: -0.190},
	"SW7":  {Lat: 51.495, Lon: -0.175},
	"SW10": {Lat: 51.485, Lon: -0.180},
	"N1":   {Lat: 51.536, Lon: -0.106},
	"N7":   {Lat: 51.550, Lon: -0.120},
	"N19":  {Lat: 51.565, Lon: -0.130},
	"NW1":  {Lat: 51.539, Lon: -0.142},
	"NW3":  {Lat: 51.550, Lon: -0.165},
	"NW5":  {Lat: 51.550, Lon: -0.140},
	"E1":   {Lat: 51.524, Lon: -0.081},
	"E2":   {Lat: 51.530, Lon: -0.075},
	"E14":  {Lat: 51.505, Lon: -0.020},
	"E8":   {Lat: 51.540, Lon: -0.070},
	"SE1":  {Lat: 51.500, Lon: -0.090},
	"SE10": {Lat: 51.483, Lon: 0.008},
	"SE11": {Lat: 51.490, Lon: -0.110},
	"EC1":  {Lat: 51.520, Lon: -0.095},
	"EC2":  {Lat: 51.520, Lon: -0.085},
	"EC3":  {Lat: 51.515, Lon: -0.080},
	"EC4":  {Lat: 51.510, Lon: -0.095},
}
