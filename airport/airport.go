package airport

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lixenwraith/flight-globe/parameter"
	"github.com/lixenwraith/flight-globe/vmath"
)

var (
	ErrEmptyIATA     = errors.New("airport: empty IATA code")
	ErrDuplicateIATA = errors.New("airport: duplicate IATA code")
	ErrBadCoordinate = errors.New("airport: coordinate out of range")
)

// Airport is a named point on the globe with an annual traffic figure
type Airport struct {
	IATA    string  `toml:"iata"`
	Name    string  `toml:"name"`
	Lat     float64 `toml:"lat"`
	Lon     float64 `toml:"lon"`
	Traffic float64 `toml:"traffic"` // enplanements
}

// MarkerRadius grows logarithmically with traffic so small airports stay visible
func (a Airport) MarkerRadius() float64 {
	return parameter.AirportMarkerBaseRadius + math.Log10(a.Traffic+1)*parameter.AirportMarkerTrafficScale
}

// SpikeHeight is the length of the traffic spike above the surface
func (a Airport) SpikeHeight() float64 {
	return math.Sqrt(math.Max(a.Traffic, 0)) * parameter.AirportSpikeScale
}

// Catalog is an immutable, ordered airport set with IATA lookup
type Catalog struct {
	airports []Airport
	byIATA   map[string]int
}

// NewCatalog validates and indexes airports; IATA codes are upper-cased
func NewCatalog(airports []Airport) (*Catalog, error) {
	c := &Catalog{
		airports: make([]Airport, 0, len(airports)),
		byIATA:   make(map[string]int, len(airports)),
	}
	for i, a := range airports {
		a.IATA = strings.ToUpper(strings.TrimSpace(a.IATA))
		if a.IATA == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrEmptyIATA)
		}
		if _, ok := c.byIATA[a.IATA]; ok {
			return nil, fmt.Errorf("%s: %w", a.IATA, ErrDuplicateIATA)
		}
		if a.Lat < -90 || a.Lat > 90 || a.Lon < -180 || a.Lon > 180 {
			return nil, fmt.Errorf("%s (%v, %v): %w", a.IATA, a.Lat, a.Lon, ErrBadCoordinate)
		}
		c.byIATA[a.IATA] = len(c.airports)
		c.airports = append(c.airports, a)
	}
	return c, nil
}

// Default returns the built-in catalog
func Default() *Catalog {
	c, err := NewCatalog(defaultAirports)
	if err != nil {
		panic(fmt.Sprintf("built-in airport set invalid: %v", err))
	}
	return c
}

// Lookup finds an airport by IATA code, case-insensitive
func (c *Catalog) Lookup(iata string) (Airport, bool) {
	i, ok := c.byIATA[strings.ToUpper(strings.TrimSpace(iata))]
	if !ok {
		return Airport{}, false
	}
	return c.airports[i], true
}

// Len returns the number of airports
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.airports)
}

// At returns airport i in catalog order
func (c *Catalog) At(i int) Airport {
	return c.airports[i]
}

// All returns a copy of the airports in catalog order
func (c *Catalog) All() []Airport {
	out := make([]Airport, len(c.airports))
	copy(out, c.airports)
	return out
}

// Positions places every airport at radius and pushes overlapping markers apart
// Each position is compared against all previously placed ones, in catalog order
func (c *Catalog) Positions(radius float64) []vmath.Vec3F {
	out := make([]vmath.Vec3F, 0, len(c.airports))
	for _, a := range c.airports {
		p := vmath.LatLongToVec3(a.Lat, a.Lon, radius)
		out = append(out, ResolveOverlap(p, out, parameter.AirportMinSeparation))
	}
	return out
}

// ResolveOverlap nudges p away from each placed point closer than minDist
func ResolveOverlap(p vmath.Vec3F, placed []vmath.Vec3F, minDist float64) vmath.Vec3F {
	for _, q := range placed {
		if vmath.V3FDist(p, q) >= minDist {
			continue
		}
		away := vmath.V3FSub(p, q)
		if vmath.V3FMagSq(away) == 0 {
			away = vmath.V3FPerpendicular(q)
		}
		p = vmath.V3FAdd(p, vmath.V3FSetLength(away, minDist))
	}
	return p
}
