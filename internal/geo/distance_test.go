package geo_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/USA-RedDragon/geodist-server/internal/geo"
	"github.com/USA-RedDragon/geodist-server/internal/units"
	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

type furlongs struct{}

func (furlongs) UnitType() units.Type { return units.Type(42) }
func (furlongs) String() string       { return "furlongs" }

func TestInvalidUnitKind(t *testing.T) {
	t.Parallel()

	_, err := geo.Distance(devonTower.lat, devonTower.lng, tokyo.lat, tokyo.lng, units.Degrees)
	if !errors.Is(err, geo.ErrInvalidUnitKind) {
		t.Errorf("unexpected error: %v", err)
	}
	_, err = geo.DistanceEllipsoidal(devonTower.lat, devonTower.lng, tokyo.lat, tokyo.lng, units.Radians)
	if !errors.Is(err, geo.ErrInvalidUnitKind) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestUnsupportedUnitType(t *testing.T) {
	t.Parallel()

	_, err := geo.Distance(devonTower.lat, devonTower.lng, tokyo.lat, tokyo.lng, furlongs{})
	if !errors.Is(err, geo.ErrUnsupportedUnitType) {
		t.Errorf("unexpected error: %v", err)
	}
	_, err = geo.Distance(devonTower.lat, devonTower.lng, tokyo.lat, tokyo.lng, nil)
	if !errors.Is(err, geo.ErrUnsupportedUnitType) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDistanceUnits(t *testing.T) {
	t.Parallel()

	meters := geo.DistanceInMeters(gatewayArch.lat, gatewayArch.lng, statueOfLiberty.lat, statueOfLiberty.lng)
	km, err := geo.DistanceLinear(gatewayArch.lat, gatewayArch.lng, statueOfLiberty.lat, statueOfLiberty.lng, units.Kilometers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(km*1000-meters) > 1e-6 {
		t.Errorf("expected %f km to equal %f m", km, meters)
	}
	miles, err := geo.DistanceLinear(gatewayArch.lat, gatewayArch.lng, statueOfLiberty.lat, statueOfLiberty.lng, units.Miles)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(miles*1609.344-meters) > 1e-6 {
		t.Errorf("expected %f mi to equal %f m", miles, meters)
	}
}

func TestComputeUnknownStrategy(t *testing.T) {
	t.Parallel()

	_, err := geo.Compute(geo.Strategy("flat"), geo.Coordinate{}, geo.Coordinate{}, units.Meters)
	if !errors.Is(err, geo.ErrUnknownStrategy) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseStrategy(t *testing.T) {
	t.Parallel()

	if s, err := geo.ParseStrategy(" Haversine "); err != nil || s != geo.StrategyEllipsoidal {
		t.Errorf("expected ellipsoidal strategy, got %q (%v)", s, err)
	}
	if s, err := geo.ParseStrategy("mean"); err != nil || s != geo.StrategyMeanRadius {
		t.Errorf("expected mean strategy, got %q (%v)", s, err)
	}
	if _, err := geo.ParseStrategy("vincenty"); !errors.Is(err, geo.ErrUnknownStrategy) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestAngularSeparation(t *testing.T) {
	t.Parallel()

	from := geo.NewCoordinate(0, 0)
	to := geo.NewCoordinate(0, 90)
	deg, err := geo.AngularSeparation(from, to, units.Degrees)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(deg-90) > 1e-9 {
		t.Errorf("expected 90 degrees, got %v", deg)
	}
	rad, err := geo.AngularSeparation(from, to, units.Radians)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(rad-math.Pi/2) > 1e-12 {
		t.Errorf("expected pi/2 radians, got %v", rad)
	}
	if _, err := geo.AngularSeparation(from, to, units.Miles); !errors.Is(err, geo.ErrUnsupportedUnitType) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestAgreesWithOrbHaversine(t *testing.T) {
	t.Parallel()

	for _, tc := range landmarkCases {
		from := orb.Point{tc.from.lng, tc.from.lat}
		to := orb.Point{tc.to.lng, tc.to.lat}
		want := orbgeo.DistanceHaversine(from, to)
		got, err := geo.Compute(geo.StrategyEllipsoidal, geo.FromPoint(from), geo.FromPoint(to), units.Meters)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(got-want)/want > 0.005 {
			t.Errorf("expected %s to be within 0.5%% of %f, got %f", tc.name, want, got)
		}
	}
}

func TestParseCoordinate(t *testing.T) {
	t.Parallel()

	c, err := geo.ParseCoordinate("35.4669626, -97.5280147")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Latitude != devonTower.lat || c.Longitude != devonTower.lng || c.Elevation != 0 {
		t.Errorf("unexpected coordinate: %+v", c)
	}
	c, err = geo.ParseCoordinate("1,2,300.5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Elevation != 300.5 {
		t.Errorf("unexpected elevation: %v", c.Elevation)
	}
	for _, bad := range []string{"", "1", "1,2,3,4", "north,west", "NaN,0", "0,Inf", "-inf,1", "1,2,nan", "1e400,0"} {
		if _, err := geo.ParseCoordinate(bad); !errors.Is(err, geo.ErrInvalidCoordinate) {
			t.Errorf("unexpected error for %q: %v", bad, err)
		}
	}
	if p := c.Point(); p.Lat() != 1 || p.Lon() != 2 {
		t.Errorf("unexpected orb point: %v", p)
	}
}

func TestBatchDistance(t *testing.T) {
	t.Parallel()

	pairs := make([]geo.Pair, 0, len(landmarkCases))
	for _, tc := range landmarkCases {
		pairs = append(pairs, geo.Pair{
			From: geo.NewCoordinate(tc.from.lat, tc.from.lng),
			To:   geo.NewCoordinate(tc.to.lat, tc.to.lng),
		})
	}

	results, err := geo.BatchDistance(context.Background(), pairs, geo.StrategyEllipsoidal, units.Meters, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != len(pairs) {
		t.Fatalf("expected %d results, got %d", len(pairs), len(results))
	}
	for i, tc := range landmarkCases {
		if math.Round(results[i]) != tc.ellipsoidal {
			t.Errorf("expected %.0f meters for %s, got %f", tc.ellipsoidal, tc.name, results[i])
		}
	}

	_, err = geo.BatchDistance(context.Background(), pairs, geo.StrategyMeanRadius, units.Degrees, 0)
	if !errors.Is(err, geo.ErrInvalidUnitKind) {
		t.Errorf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = geo.BatchDistance(ctx, pairs, geo.StrategyMeanRadius, units.Meters, 0)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("unexpected error: %v", err)
	}
}
