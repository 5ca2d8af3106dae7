package airport

// Traffic is annual enplanements, rounded
var defaultAirports = []Airport{
	{IATA: "ATL", Name: "Hartsfield-Jackson Atlanta", Lat: 33.6367, Lon: -84.4281, Traffic: 50950068},
	{IATA: "DFW", Name: "Dallas/Fort Worth", Lat: 32.8968, Lon: -97.0380, Traffic: 35345138},
	{IATA: "DEN", Name: "Denver", Lat: 39.8617, Lon: -104.6731, Traffic: 33773832},
	{IATA: "ORD", Name: "Chicago O'Hare", Lat: 41.9786, Lon: -87.9048, Traffic: 33120474},
	{IATA: "LAX", Name: "Los Angeles", Lat: 33.9425, Lon: -118.4081, Traffic: 32326616},
	{IATA: "JFK", Name: "New York John F. Kennedy", Lat: 40.6398, Lon: -73.7789, Traffic: 26919982},
	{IATA: "LAS", Name: "Las Vegas Harry Reid", Lat: 36.0801, Lon: -115.1522, Traffic: 25480500},
	{IATA: "MCO", Name: "Orlando", Lat: 28.4294, Lon: -81.3090, Traffic: 24469733},
	{IATA: "MIA", Name: "Miami", Lat: 25.7932, Lon: -80.2906, Traffic: 23949892},
	{IATA: "CLT", Name: "Charlotte Douglas", Lat: 35.2140, Lon: -80.9431, Traffic: 23100300},
	{IATA: "SEA", Name: "Seattle-Tacoma", Lat: 47.4490, Lon: -122.3093, Traffic: 22157862},
	{IATA: "PHX", Name: "Phoenix Sky Harbor", Lat: 33.4343, Lon: -112.0080, Traffic: 21852586},
	{IATA: "EWR", Name: "Newark Liberty", Lat: 40.6925, Lon: -74.1687, Traffic: 21572147},
	{IATA: "SFO", Name: "San Francisco", Lat: 37.6190, Lon: -122.3749, Traffic: 20411420},
	{IATA: "IAH", Name: "Houston George Bush", Lat: 29.9844, Lon: -95.3414, Traffic: 19814052},
	{IATA: "BOS", Name: "Boston Logan", Lat: 42.3643, Lon: -71.0052, Traffic: 19962936},
	{IATA: "FLL", Name: "Fort Lauderdale-Hollywood", Lat: 26.0726, Lon: -80.1527, Traffic: 17087590},
	{IATA: "MSP", Name: "Minneapolis-St Paul", Lat: 44.8820, Lon: -93.2218, Traffic: 16241984},
	{IATA: "LGA", Name: "New York LaGuardia", Lat: 40.7772, Lon: -73.8726, Traffic: 16173073},
	{IATA: "DTW", Name: "Detroit Metropolitan", Lat: 42.2124, Lon: -83.3534, Traffic: 14599870},
	{IATA: "PHL", Name: "Philadelphia", Lat: 39.8719, Lon: -75.2411, Traffic: 13759470},
	{IATA: "SLC", Name: "Salt Lake City", Lat: 40.7884, Lon: -111.9778, Traffic: 12798520},
	{IATA: "BWI", Name: "Baltimore/Washington", Lat: 39.1754, Lon: -76.6683, Traffic: 12807543},
	{IATA: "DCA", Name: "Washington Reagan National", Lat: 38.8521, Lon: -77.0377, Traffic: 12578476},
	{IATA: "SAN", Name: "San Diego", Lat: 32.7336, Lon: -117.1897, Traffic: 12212450},
	{IATA: "IAD", Name: "Washington Dulles", Lat: 38.9445, Lon: -77.4558, Traffic: 12231312},
	{IATA: "TPA", Name: "Tampa", Lat: 27.9755, Lon: -82.5332, Traffic: 11416780},
	{IATA: "BNA", Name: "Nashville", Lat: 36.1245, Lon: -86.6782, Traffic: 11326411},
	{IATA: "AUS", Name: "Austin-Bergstrom", Lat: 30.1945, Lon: -97.6699, Traffic: 10585620},
	{IATA: "MDW", Name: "Chicago Midway", Lat: 41.7860, Lon: -87.7524, Traffic: 10267200},
	{IATA: "HNL", Name: "Honolulu Daniel K. Inouye", Lat: 21.3187, Lon: -157.9225, Traffic: 10127624},
	{IATA: "DAL", Name: "Dallas Love Field", Lat: 32.8471, Lon: -96.8518, Traffic: 8200400},
	{IATA: "PDX", Name: "Portland", Lat: 45.5887, Lon: -122.5975, Traffic: 7636720},
	{IATA: "STL", Name: "St. Louis Lambert", Lat: 38.7487, Lon: -90.3700, Traffic: 7198460},
	{IATA: "ANC", Name: "Anchorage Ted Stevens", Lat: 61.1743, Lon: -149.9983, Traffic: 2750400},
	{IATA: "SJU", Name: "San Juan Luis Munoz Marin", Lat: 18.4394, Lon: -66.0018, Traffic: 5600840},
}
